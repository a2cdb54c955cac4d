package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func submitPin(t *testing.T, s *Server, pin, clientIP string) *httptest.ResponseRecorder {
	t.Helper()
	body := map[string]string{"pin": pin}
	if clientIP != "" {
		body["clientIp"] = clientIP
	}
	c, rec := newTestContext(newJSONRequest(http.MethodPost, "/admin/validate-pin", body))
	require.NoError(t, s.ValidatePin(c))
	return rec
}

func TestValidatePin_CorrectPin(t *testing.T) {
	s := newTestServer(t)

	rec := submitPin(t, s, "1234", "203.0.113.7")
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"valid":true}`, rec.Body.String())
}

func TestValidatePin_WrongPin(t *testing.T) {
	s := newTestServer(t)

	rec := submitPin(t, s, "0000", "203.0.113.7")
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"valid":false}`, rec.Body.String())
}

func TestValidatePin_RateLimitBlocksCorrectPin(t *testing.T) {
	s := newTestServer(t)

	for i := 0; i < 3; i++ {
		rec := submitPin(t, s, "0000", "203.0.113.7")
		require.JSONEq(t, `{"valid":false}`, rec.Body.String(), "attempt %d", i+1)
	}

	// The 4th submission carries the correct PIN but the address is
	// rate-limited; the response must be indistinguishable from a plain
	// invalid PIN.
	rec := submitPin(t, s, "1234", "203.0.113.7")
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"valid":false}`, rec.Body.String())

	// A different address is unaffected.
	rec = submitPin(t, s, "1234", "198.51.100.9")
	require.JSONEq(t, `{"valid":true}`, rec.Body.String())
}

func TestValidatePin_WindowExpiryAllowsRetry(t *testing.T) {
	s := newTestServer(t)

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s.PinLimiter.SetClock(func() time.Time { return now })

	for i := 0; i < 3; i++ {
		submitPin(t, s, "0000", "203.0.113.7")
	}
	rec := submitPin(t, s, "1234", "203.0.113.7")
	require.JSONEq(t, `{"valid":false}`, rec.Body.String())

	now = now.Add(time.Hour + time.Minute)

	rec = submitPin(t, s, "1234", "203.0.113.7")
	require.JSONEq(t, `{"valid":true}`, rec.Body.String())
}

func TestValidatePin_SuccessClearsCounter(t *testing.T) {
	s := newTestServer(t)

	submitPin(t, s, "0000", "203.0.113.7")
	submitPin(t, s, "0000", "203.0.113.7")

	rec := submitPin(t, s, "1234", "203.0.113.7")
	require.JSONEq(t, `{"valid":true}`, rec.Body.String())

	// A later wrong PIN counts from zero, so two more failures still
	// leave room for a third attempt.
	submitPin(t, s, "0000", "203.0.113.7")
	submitPin(t, s, "0000", "203.0.113.7")
	rec = submitPin(t, s, "1234", "203.0.113.7")
	require.JSONEq(t, `{"valid":true}`, rec.Body.String())
}

func TestValidatePin_MissingSecretFailsClosed(t *testing.T) {
	s := newTestServer(t)
	s.Cfg.AdminAccessPIN = ""

	// Every submission fails with a normal 200 response, including the
	// degenerate empty PIN.
	for _, pin := range []string{"1234", "0000", ""} {
		rec := submitPin(t, s, pin, "203.0.113.7")
		require.Equal(t, http.StatusOK, rec.Code)
		require.JSONEq(t, `{"valid":false}`, rec.Body.String())
	}
}

func TestValidatePin_MalformedPayload(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/admin/validate-pin", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	c, rec := newTestContext(req)

	require.NoError(t, s.ValidatePin(c))
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"valid":false}`, rec.Body.String())
}

func TestValidatePin_AddressResolution(t *testing.T) {
	s := newTestServer(t)

	// Forwarded-for header is used when no explicit address is supplied.
	req := newJSONRequest(http.MethodPost, "/admin/validate-pin", map[string]string{"pin": "0000"})
	req.Header.Set("X-Forwarded-For", "203.0.113.50")
	c, _ := newTestContext(req)
	require.NoError(t, s.ValidatePin(c))
	require.Equal(t, 1, s.PinLimiter.Attempts("203.0.113.50"))

	// X-Real-IP is next in line.
	req = newJSONRequest(http.MethodPost, "/admin/validate-pin", map[string]string{"pin": "0000"})
	req.Header.Set("X-Real-IP", "198.51.100.80")
	c, _ = newTestContext(req)
	require.NoError(t, s.ValidatePin(c))
	require.Equal(t, 1, s.PinLimiter.Attempts("198.51.100.80"))

	// Callers with no resolvable address share the "unknown" bucket.
	for i := 0; i < 2; i++ {
		c, _ = newTestContext(newJSONRequest(http.MethodPost, "/admin/validate-pin", map[string]string{"pin": "0000"}))
		require.NoError(t, s.ValidatePin(c))
	}
	require.Equal(t, 2, s.PinLimiter.Attempts("unknown"))
}
