package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/thedcode/backend/internal/config"
	"github.com/thedcode/backend/internal/mailer"
	"github.com/thedcode/backend/internal/models"
	"github.com/thedcode/backend/internal/ratelimit"
)

func testConfig() config.AppConfig {
	return config.AppConfig{
		AdminAccessPIN:   "1234",
		PinRateWindow:    time.Hour,
		PinMaxAttempts:   3,
		LoginMaxFailures: 5,
		JWTSecret:        "test-secret",
		JWTExpiry:        time.Hour,
		CompanyName:      "The DCode",
	}
}

// newTestServer builds a Server backed by an in-memory SQLite database,
// isolated per test.
func newTestServer(t *testing.T) *Server {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.LoginAttempt{},
		&models.GalleryImage{},
		&models.Testimonial{},
		&models.BlogPost{},
		&models.Lead{},
		&models.AdminActivity{},
	))

	cfg := testConfig()
	return &Server{
		DB:         db,
		Cfg:        cfg,
		PinLimiter: ratelimit.New(cfg.PinRateWindow, cfg.PinMaxAttempts),
		Mailer:     mailer.New(""),
		Log:        zap.NewNop().Sugar(),
	}
}

func newJSONRequest(method, target string, body any) *http.Request {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return req
}

func newTestContext(req *http.Request) (echo.Context, *httptest.ResponseRecorder) {
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)
	return c, rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func createUser(t *testing.T, s *Server, email, password, role string) *models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	user := models.User{
		Email:      email,
		Name:       "Test User",
		Password:   string(hash),
		Role:       role,
		IsVerified: true,
	}
	require.NoError(t, s.DB.Create(&user).Error)
	return &user
}

// loginAs runs the real login handler and returns the issued token.
func loginAs(t *testing.T, s *Server, email, password string) string {
	t.Helper()
	c, rec := newTestContext(newJSONRequest(http.MethodPost, "/login", map[string]string{
		"email":    email,
		"password": password,
	}))
	require.NoError(t, s.Login(c))
	require.Equal(t, http.StatusOK, rec.Code, "login should succeed: %s", rec.Body.String())
	body := decodeBody(t, rec)
	token, _ := body["token"].(string)
	require.NotEmpty(t, token)
	return token
}
