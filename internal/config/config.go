package config

import (
	"fmt"
	"os"
	"time"
)

type AppConfig struct {
	Port string

	DatabaseURL string

	// Two-step admin login: the PIN gate in front of credential login.
	AdminAccessPIN   string
	PinRateWindow    time.Duration
	PinMaxAttempts   int
	LoginMaxFailures int

	// Brevo transactional email settings for the contact form.
	BrevoAPIKey          string
	BrevoSenderEmail     string
	ContactFormRecipient string
	CompanyName          string

	JWTSecret string
	JWTExpiry time.Duration

	// Development settings
	DevMode bool

	PoolSize        int
	PoolRecycle     time.Duration
	PoolPrePing     bool
	ConnectTimeout  time.Duration
	ApplicationName string
}

func Load() AppConfig {
	cfg := AppConfig{}
	cfg.Port = getenv("PORT", "5001")
	cfg.DatabaseURL = getenv("DATABASE_URL", defaultPgURL())

	// No default PIN: an unset PIN means the gate fails closed.
	cfg.AdminAccessPIN = os.Getenv("ADMIN_ACCESS_PIN")
	cfg.PinRateWindow = time.Duration(getenvInt("PIN_RATE_WINDOW_MINUTES", 60)) * time.Minute
	cfg.PinMaxAttempts = getenvInt("PIN_MAX_ATTEMPTS", 3)
	cfg.LoginMaxFailures = getenvInt("LOGIN_MAX_FAILURES", 5)

	cfg.BrevoAPIKey = os.Getenv("BREVO_API_KEY")
	cfg.BrevoSenderEmail = os.Getenv("BREVO_SENDER_EMAIL")
	cfg.ContactFormRecipient = os.Getenv("CONTACT_FORM_RECIPIENT")
	cfg.CompanyName = getenv("COMPANY_NAME", "The DCode")

	cfg.JWTSecret = getenv("JWT_SECRET", "your-super-secret-jwt-key-change-this-in-production")
	cfg.JWTExpiry = time.Duration(getenvInt("JWT_EXPIRY_HOURS", 24)) * time.Hour

	cfg.DevMode = getenv("DEV_MODE", "false") == "true"

	cfg.PoolSize = getenvInt("DB_POOL_SIZE", 25)
	cfg.PoolRecycle = time.Duration(getenvInt("DB_POOL_RECYCLE_SECONDS", 300)) * time.Second
	cfg.PoolPrePing = getenv("DB_POOL_PREPING", "true") == "true"
	cfg.ConnectTimeout = time.Duration(getenvInt("DB_CONNECT_TIMEOUT_SECONDS", 10)) * time.Second
	cfg.ApplicationName = getenv("DB_APPLICATION_NAME", "thedcode_cms")
	return cfg
}

// BrevoConfigured reports whether every setting the contact-email path needs
// is present.
func (c AppConfig) BrevoConfigured() bool {
	return c.BrevoAPIKey != "" && c.BrevoSenderEmail != "" && c.ContactFormRecipient != ""
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		var n int
		_, _ = fmt.Sscanf(v, "%d", &n)
		if n != 0 {
			return n
		}
	}
	return def
}

func defaultPgURL() string {
	user := getenv("POSTGRES_USER", "postgres_user")
	pass := getenv("POSTGRES_PASSWORD", "postgres_pass")
	host := getenv("POSTGRES_HOST", "localhost")
	port := getenv("POSTGRES_PORT", "5432")
	db := getenv("POSTGRES_DB", "postgres")
	return "postgresql://" + user + ":" + pass + "@" + host + ":" + port + "/" + db
}
