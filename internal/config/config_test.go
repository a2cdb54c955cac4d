package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	require.Equal(t, "5001", cfg.Port)
	require.Equal(t, time.Hour, cfg.PinRateWindow)
	require.Equal(t, 3, cfg.PinMaxAttempts)
	require.Equal(t, 5, cfg.LoginMaxFailures)

	// With no environment the PIN gate has no secret and must fail closed.
	require.Empty(t, cfg.AdminAccessPIN)
	require.False(t, cfg.BrevoConfigured())

	require.True(t, cfg.PoolPrePing)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("ADMIN_ACCESS_PIN", "4321")
	t.Setenv("PIN_RATE_WINDOW_MINUTES", "15")
	t.Setenv("PIN_MAX_ATTEMPTS", "10")
	t.Setenv("DB_POOL_PREPING", "false")

	cfg := Load()
	require.Equal(t, "9000", cfg.Port)
	require.Equal(t, "4321", cfg.AdminAccessPIN)
	require.Equal(t, 15*time.Minute, cfg.PinRateWindow)
	require.Equal(t, 10, cfg.PinMaxAttempts)
	require.False(t, cfg.PoolPrePing)
}

func TestBrevoConfigured(t *testing.T) {
	cfg := AppConfig{
		BrevoAPIKey:      "key",
		BrevoSenderEmail: "noreply@thedcode.in",
	}
	require.False(t, cfg.BrevoConfigured())

	cfg.ContactFormRecipient = "hello@thedcode.in"
	require.True(t, cfg.BrevoConfigured())
}
