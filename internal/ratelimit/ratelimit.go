// Package ratelimit caps failed PIN submissions per client address.
//
// State lives only in process memory: counters are lost on restart and are
// not shared between instances. Callers with no resolvable address all land
// in a single shared bucket, so one abusive anonymous client can exhaust the
// budget for every other anonymous client. Both are accepted trade-offs for
// a gate that sits in front of real credential authentication; a keyed
// external store would be needed before running more than one instance.
package ratelimit

import (
	"sync"
	"time"
)

// UnknownAddress is the shared bucket for requests whose client address
// could not be resolved.
const UnknownAddress = "unknown"

type entry struct {
	attempts int
	resetAt  time.Time
}

// Limiter tracks failed attempts per address within a rolling window.
type Limiter struct {
	mu      sync.Mutex
	entries map[string]*entry

	window      time.Duration
	maxAttempts int
	now         func() time.Time
}

// New returns a limiter allowing maxAttempts failures per address within
// window.
func New(window time.Duration, maxAttempts int) *Limiter {
	return &Limiter{
		entries:     make(map[string]*entry),
		window:      window,
		maxAttempts: maxAttempts,
		now:         time.Now,
	}
}

// Allow reports whether addr may attempt another PIN check. A stale record
// is deleted before its count is consulted, so an expired window always
// starts from zero rather than accumulating.
func (l *Limiter) Allow(addr string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	e, ok := l.entries[addr]
	if !ok {
		return true
	}
	if l.now().After(e.resetAt) {
		delete(l.entries, addr)
		return true
	}
	return e.attempts < l.maxAttempts
}

// RecordFailure counts one failed attempt for addr. The window deadline is
// set when the record is created and not extended by later failures.
func (l *Limiter) RecordFailure(addr string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	e, ok := l.entries[addr]
	if !ok || now.After(e.resetAt) {
		l.entries[addr] = &entry{attempts: 1, resetAt: now.Add(l.window)}
		return
	}
	e.attempts++
}

// Clear drops the record for addr, typically after a successful validation.
func (l *Limiter) Clear(addr string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.entries, addr)
}

// Attempts returns the live failure count for addr, treating an expired
// window as zero.
func (l *Limiter) Attempts(addr string) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	e, ok := l.entries[addr]
	if !ok || l.now().After(e.resetAt) {
		return 0
	}
	return e.attempts
}

// SetClock replaces the limiter's time source. Tests only.
func (l *Limiter) SetClock(now func() time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.now = now
}
