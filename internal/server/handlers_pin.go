package server

import (
	"crypto/subtle"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/thedcode/backend/internal/ratelimit"
)

type pinValidationRequest struct {
	Pin      string `json:"pin" example:"1234"`
	ClientIP string `json:"clientIp,omitempty" example:"203.0.113.7"`
}

type pinValidationResponse struct {
	Valid bool `json:"valid" example:"false"`
}

// ValidatePin godoc
// @Summary Validate the admin access PIN
// @Description First step of the admin login flow. Always responds 200; the body carries only a valid flag, never the reason for a failure.
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body pinValidationRequest true "PIN submission"
// @Success 200 {object} pinValidationResponse
// @Router /admin/validate-pin [post]
func (s *Server) ValidatePin(c echo.Context) error {
	// Every failure path below returns the identical response. Bad PIN,
	// rate-limited, unconfigured secret, and malformed payload must be
	// indistinguishable so the endpoint is not an oracle. Causes are
	// written to the server log only.
	var req pinValidationRequest
	if err := c.Bind(&req); err != nil {
		s.Log.Warnw("pin validation: malformed payload", "error", err)
		return c.JSON(http.StatusOK, pinValidationResponse{Valid: false})
	}

	addr := s.resolvePinAddress(c, req.ClientIP)

	if !s.PinLimiter.Allow(addr) {
		// Short-circuit before the comparison; the response shape stays
		// identical to a plain invalid PIN.
		s.Log.Warnw("pin validation: rate limit exceeded", "addr", addr)
		return c.JSON(http.StatusOK, pinValidationResponse{Valid: false})
	}

	secret := s.Cfg.AdminAccessPIN
	if secret == "" {
		// Fail closed rather than erroring out to the caller.
		s.Log.Errorw("pin validation: ADMIN_ACCESS_PIN not configured")
		return c.JSON(http.StatusOK, pinValidationResponse{Valid: false})
	}

	valid := subtle.ConstantTimeCompare([]byte(req.Pin), []byte(secret)) == 1

	if valid {
		s.PinLimiter.Clear(addr)
		s.Log.Infow("pin validation: valid pin", "addr", addr)
	} else {
		s.PinLimiter.RecordFailure(addr)
		s.Log.Warnw("pin validation: invalid pin", "addr", addr, "attempts", s.PinLimiter.Attempts(addr))
	}

	return c.JSON(http.StatusOK, pinValidationResponse{Valid: valid})
}

// resolvePinAddress picks the rate-limit bucket for a PIN request: the
// caller-supplied address, then forwarding headers, then a shared bucket for
// anything unresolvable.
func (s *Server) resolvePinAddress(c echo.Context, clientIP string) string {
	if clientIP != "" {
		return clientIP
	}
	if ip := c.Request().Header.Get("X-Forwarded-For"); ip != "" {
		return ip
	}
	if ip := c.Request().Header.Get("X-Real-IP"); ip != "" {
		return ip
	}
	return ratelimit.UnknownAddress
}
