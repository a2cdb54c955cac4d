package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/thedcode/backend/internal/mailer"
)

func fullContactForm() map[string]string {
	return map[string]string{
		"name":     "Priya Sharma",
		"email":    "priya@example.com",
		"phone":    "+91 98765 43210",
		"location": "Mumbai",
		"message":  "Looking to redo a 3BHK.",
	}
}

func configureBrevo(s *Server, baseURL string) {
	s.Cfg.BrevoAPIKey = "test-key"
	s.Cfg.BrevoSenderEmail = "noreply@thedcode.in"
	s.Cfg.ContactFormRecipient = "hello@thedcode.in"
	s.Mailer = mailer.New("test-key", mailer.WithBaseURL(baseURL))
}

func TestSendContactEmail_MissingField(t *testing.T) {
	s := newTestServer(t)

	form := fullContactForm()
	delete(form, "phone")

	c, rec := newTestContext(newJSONRequest(http.MethodPost, "/send-contact-email", form))
	require.NoError(t, s.SendContactEmail(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.JSONEq(t, `{"error":"All fields are required"}`, rec.Body.String())
}

func TestSendContactEmail_MalformedEmail(t *testing.T) {
	s := newTestServer(t)

	form := fullContactForm()
	form["email"] = "not-an-email"

	c, rec := newTestContext(newJSONRequest(http.MethodPost, "/send-contact-email", form))
	require.NoError(t, s.SendContactEmail(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.JSONEq(t, `{"error":"Invalid email format"}`, rec.Body.String())
}

func TestSendContactEmail_NotConfigured(t *testing.T) {
	s := newTestServer(t)
	// No Brevo settings at all.

	c, rec := newTestContext(newJSONRequest(http.MethodPost, "/send-contact-email", fullContactForm()))
	require.NoError(t, s.SendContactEmail(c))
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.JSONEq(t, `{"error":"Email service not configured"}`, rec.Body.String())
}

func TestSendContactEmail_PartialConfigIsNotConfigured(t *testing.T) {
	s := newTestServer(t)
	s.Cfg.BrevoAPIKey = "test-key"
	s.Cfg.BrevoSenderEmail = "noreply@thedcode.in"
	// Recipient still missing.

	c, rec := newTestContext(newJSONRequest(http.MethodPost, "/send-contact-email", fullContactForm()))
	require.NoError(t, s.SendContactEmail(c))
	require.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestSendContactEmail_Success(t *testing.T) {
	s := newTestServer(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v3/smtp/email", r.URL.Path)
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"messageId":"<202506.xyz@smtp-relay>"}`))
	}))
	defer srv.Close()
	configureBrevo(s, srv.URL)

	c, rec := newTestContext(newJSONRequest(http.MethodPost, "/send-contact-email", fullContactForm()))
	require.NoError(t, s.SendContactEmail(c))
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	require.Equal(t, true, body["success"])
	require.Equal(t, "<202506.xyz@smtp-relay>", body["messageId"])
}

func TestSendContactEmail_ProviderFailure(t *testing.T) {
	s := newTestServer(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message":"sender not allowed"}`))
	}))
	defer srv.Close()
	configureBrevo(s, srv.URL)

	c, rec := newTestContext(newJSONRequest(http.MethodPost, "/send-contact-email", fullContactForm()))
	require.NoError(t, s.SendContactEmail(c))
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	body := decodeBody(t, rec)
	require.Contains(t, body["error"], "sender not allowed")
}
