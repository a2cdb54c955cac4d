package server

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/thedcode/backend/internal/mailer"
	"github.com/thedcode/backend/internal/utils"
)

type contactEmailRequest struct {
	Name     string `json:"name" example:"Priya Sharma" binding:"required"`
	Email    string `json:"email" example:"priya@example.com" binding:"required"`
	Phone    string `json:"phone" example:"+91 98765 43210" binding:"required"`
	Location string `json:"location" example:"Mumbai" binding:"required"`
	Message  string `json:"message" example:"Looking to redo a 3BHK." binding:"required"`
}

// SendContactEmail godoc
// @Summary Send a contact-form inquiry email
// @Description Validates the contact-form fields and dispatches a notification email to the studio via Brevo. Unlike the PIN gate this endpoint reports specific validation errors.
// @Tags Contact
// @Accept json
// @Produce json
// @Param request body contactEmailRequest true "Contact form fields"
// @Success 200 {object} map[string]interface{} "Email sent"
// @Failure 400 {object} map[string]interface{} "Missing or malformed fields"
// @Failure 500 {object} map[string]interface{} "Email service not configured or provider failure"
// @Router /send-contact-email [post]
func (s *Server) SendContactEmail(c echo.Context) error {
	var req contactEmailRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "Invalid payload"})
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Phone = strings.TrimSpace(req.Phone)
	req.Location = strings.TrimSpace(req.Location)
	req.Message = strings.TrimSpace(req.Message)

	if req.Name == "" || req.Email == "" || req.Phone == "" || req.Location == "" || req.Message == "" {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "All fields are required"})
	}

	if !utils.ValidateEmail(req.Email) {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "Invalid email format"})
	}

	if !s.Cfg.BrevoConfigured() {
		s.Log.Errorw("contact email: brevo settings incomplete",
			"api_key_set", s.Cfg.BrevoAPIKey != "",
			"sender_set", s.Cfg.BrevoSenderEmail != "",
			"recipient_set", s.Cfg.ContactFormRecipient != "")
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "Email service not configured"})
	}

	messageID, err := s.Mailer.SendContactInquiry(mailer.ContactInquiry{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Location:    req.Location,
		Message:     req.Message,
		ReceivedAt:  utils.NowUTC(),
		SenderName:  s.Cfg.CompanyName,
		SenderEmail: s.Cfg.BrevoSenderEmail,
		Recipient:   s.Cfg.ContactFormRecipient,
	})
	if err != nil {
		s.Log.Errorw("contact email: send failed", "error", err)
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": err.Error()})
	}

	s.Log.Infow("contact email sent", "message_id", messageID, "from", req.Email)

	return c.JSON(http.StatusOK, map[string]any{
		"success":   true,
		"messageId": messageID,
	})
}
