package server

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/thedcode/backend/internal/models"
	"github.com/thedcode/backend/internal/utils"
)

type loginRequest struct {
	Email    string `json:"email" example:"admin@thedcode.in" binding:"required"`
	Password string `json:"password" example:"password123" binding:"required"`
}

type simpleResponse struct {
	Success bool   `json:"success" example:"true"`
	Message string `json:"message" example:"Operation successful"`
}

// Login godoc
// @Summary Admin login
// @Description Second step of the admin login flow, after PIN validation. Authenticates credentials and returns a JWT session token. Every failure, including valid credentials without the admin role, yields the same generic payload.
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body loginRequest true "Login credentials"
// @Success 200 {object} map[string]interface{} "Login successful"
// @Failure 401 {object} map[string]interface{} "Generic failure"
// @Failure 429 {object} map[string]interface{} "Generic failure"
// @Router /login [post]
func (s *Server) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusUnauthorized, genericAuthFailure())
	}
	email := strings.TrimSpace(strings.ToLower(req.Email))
	password := utils.SanitizeString(req.Password)

	if email == "" || password == "" || !utils.ValidateEmail(email) {
		return c.JSON(http.StatusUnauthorized, genericAuthFailure())
	}

	ipAddress := s.getClientIP(c)

	// Check for too many failed attempts
	if s.GetFailedAttemptsCount(email, ipAddress) >= int64(s.Cfg.LoginMaxFailures) {
		s.Log.Warnw("login throttled", "email", email, "ip", ipAddress)
		return c.JSON(http.StatusTooManyRequests, genericAuthFailure())
	}

	var user models.User
	if err := s.DB.Where("email = ?", email).First(&user).Error; err != nil || user.ID == 0 {
		s.RecordLoginAttempt(email, ipAddress, false)
		s.Log.Warnw("login failed: unknown email", "email", email, "ip", ipAddress)
		return c.JSON(http.StatusUnauthorized, genericAuthFailure())
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		s.RecordLoginAttempt(email, ipAddress, false)
		s.Log.Warnw("login failed: bad password", "email", email, "ip", ipAddress)
		return c.JSON(http.StatusUnauthorized, genericAuthFailure())
	}

	// Valid credentials without the admin role: terminate any stored
	// session and answer exactly like every other failure.
	if !user.IsAdmin() {
		user.SessionToken = nil
		_ = s.DB.Save(&user).Error
		s.RecordLoginAttempt(email, ipAddress, false)
		s.Log.Warnw("login failed: account lacks admin role", "email", email, "ip", ipAddress)
		return c.JSON(http.StatusUnauthorized, genericAuthFailure())
	}

	token, err := utils.GenerateJWT(user.ID, user.Email, s.Cfg.JWTSecret, s.Cfg.JWTExpiry)
	if err != nil {
		s.Log.Errorw("login failed: token generation", "error", err)
		return c.JSON(http.StatusUnauthorized, genericAuthFailure())
	}

	now := utils.NowUTC()
	user.LastLoginAt = &now
	user.SessionToken = &token
	if err := s.DB.Save(&user).Error; err != nil {
		s.Log.Errorw("login failed: session save", "error", err)
		return c.JSON(http.StatusUnauthorized, genericAuthFailure())
	}

	s.RecordLoginAttempt(email, ipAddress, true)

	return c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"message": "Login successful.",
		"token":   token,
		"user": map[string]any{
			"id":    user.ID,
			"email": user.Email,
			"name":  user.Name,
			"role":  user.Role,
		},
	})
}

// Logout godoc
// @Summary Admin logout
// @Description Logout and invalidate the current session
// @Tags Authentication
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} simpleResponse
// @Failure 401 {object} simpleResponse
// @Router /auth/logout [post]
func (s *Server) Logout(c echo.Context) error {
	user := c.Get("user").(*models.User)

	user.SessionToken = nil
	if err := s.DB.Save(user).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, simpleResponse{Success: false, Message: "Failed to logout."})
	}

	return c.JSON(http.StatusOK, simpleResponse{Success: true, Message: "Logged out successfully."})
}

// GetProfile godoc
// @Summary Get the authenticated user's profile
// @Tags Authentication
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "User profile"
// @Failure 401 {object} simpleResponse
// @Router /auth/profile [get]
func (s *Server) GetProfile(c echo.Context) error {
	user := c.Get("user").(*models.User)

	return c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"user": map[string]any{
			"id":            user.ID,
			"email":         user.Email,
			"name":          user.Name,
			"role":          user.Role,
			"last_login_at": user.LastLoginAt,
			"created_at":    user.CreatedAt,
		},
	})
}
