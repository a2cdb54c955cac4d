package server

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/thedcode/backend/internal/models"
)

// AdminMiddleware confirms the authenticated user carries the admin role.
// An authenticated non-admin has its session terminated server-side and gets
// the same generic payload the login flow uses, pointing at the site root
// rather than the login page, so valid-but-unprivileged credentials are not
// distinguishable from any other failure.
func (s *Server) AdminMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user := c.Get("user").(*models.User)

			if !user.IsAdmin() {
				user.SessionToken = nil
				if err := s.DB.Save(user).Error; err != nil {
					s.Log.Errorw("failed to terminate non-admin session", "user_id", user.ID, "error", err)
				}
				s.Log.Warnw("non-admin session rejected on admin route", "user_id", user.ID, "path", c.Path())
				return c.JSON(http.StatusForbidden, genericAuthFailure())
			}

			return next(c)
		}
	}
}

// SuperAdminMiddleware checks if the user has super admin privileges
func (s *Server) SuperAdminMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user := c.Get("user").(*models.User)

			if user.Role != "super_admin" {
				return c.JSON(http.StatusForbidden, genericAuthFailure())
			}

			return next(c)
		}
	}
}

// genericAuthFailure is the single payload every admin-login failure maps
// to. It never names the cause and never points back at the login page.
func genericAuthFailure() map[string]any {
	return map[string]any{
		"success":  false,
		"message":  "Session timeout. Please try again.",
		"redirect": "/",
	}
}

// logAdminActivity logs admin activities for audit trail
func (s *Server) logAdminActivity(adminID uint, action, resource string, resourceID *uint, details string, c echo.Context) {
	ipAddress := c.Request().Header.Get("X-Forwarded-For")
	if ipAddress == "" {
		ipAddress = c.RealIP()
	}

	userAgent := c.Request().Header.Get("User-Agent")

	var detailsPtr *string
	if details != "" {
		detailsPtr = &details
	}

	activity := models.AdminActivity{
		AdminID:    adminID,
		Action:     action,
		Resource:   resource,
		ResourceID: resourceID,
		Details:    detailsPtr,
		IPAddress:  ipAddress,
		UserAgent:  userAgent,
	}

	// Log asynchronously to avoid blocking the main request
	go func() {
		if err := s.DB.Create(&activity).Error; err != nil {
			s.Log.Errorw("failed to log admin activity", "error", err)
		}
	}()
}

// getClientIP extracts the client IP address from the request
func (s *Server) getClientIP(c echo.Context) string {
	ip := c.Request().Header.Get("X-Forwarded-For")
	if ip == "" {
		ip = c.Request().Header.Get("X-Real-IP")
	}
	if ip == "" {
		ip = c.RealIP()
	}

	// Handle comma-separated IPs (from proxies)
	if strings.Contains(ip, ",") {
		ips := strings.Split(ip, ",")
		ip = strings.TrimSpace(ips[0])
	}

	return ip
}
