package mailer

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func testInquiry() ContactInquiry {
	return ContactInquiry{
		Name:        "Priya Sharma",
		Email:       "priya@example.com",
		Phone:       "+91 98765 43210",
		Location:    "Mumbai",
		Message:     "Looking to redo a 3BHK.",
		ReceivedAt:  time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		SenderName:  "The DCode",
		SenderEmail: "noreply@thedcode.in",
		Recipient:   "hello@thedcode.in",
	}
}

func TestSendContactInquiry_Success(t *testing.T) {
	var gotPath, gotKey string
	var gotBody map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("api-key")
		raw, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(raw, &gotBody))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"messageId":"<202506.abc@smtp-relay>"}`))
	}))
	defer srv.Close()

	c := New("test-key", WithBaseURL(srv.URL))
	messageID, err := c.SendContactInquiry(testInquiry())
	require.NoError(t, err)
	require.Equal(t, "<202506.abc@smtp-relay>", messageID)

	require.Equal(t, "/v3/smtp/email", gotPath)
	require.Equal(t, "test-key", gotKey)

	replyTo := gotBody["replyTo"].(map[string]any)
	require.Equal(t, "priya@example.com", replyTo["email"])
	require.Equal(t, "New Project Inquiry from Priya Sharma", gotBody["subject"])
	require.Contains(t, gotBody["textContent"], "Looking to redo a 3BHK.")
	require.Contains(t, gotBody["textContent"], "Received: 01 Jun 2025 12:00 UTC")
	require.Contains(t, gotBody["htmlContent"], "01 Jun 2025 12:00 UTC")
}

func TestSendContactInquiry_ProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"Key not found"}`))
	}))
	defer srv.Close()

	c := New("bad-key", WithBaseURL(srv.URL))
	_, err := c.SendContactInquiry(testInquiry())
	require.Error(t, err)
	require.Contains(t, err.Error(), "Key not found")
}

func TestSendContactInquiry_HTMLEscaping(t *testing.T) {
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(raw, &gotBody))
		_, _ = w.Write([]byte(`{"messageId":"x"}`))
	}))
	defer srv.Close()

	inq := testInquiry()
	inq.Message = `<script>alert("x")</script>`

	c := New("test-key", WithBaseURL(srv.URL))
	_, err := c.SendContactInquiry(inq)
	require.NoError(t, err)

	require.NotContains(t, gotBody["htmlContent"], "<script>")
	require.Contains(t, gotBody["htmlContent"], "&lt;script&gt;")
}
