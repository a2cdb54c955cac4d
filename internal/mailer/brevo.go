// Package mailer sends transactional email through the Brevo HTTP API.
package mailer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html"
	"net/http"
	"time"

	"github.com/thedcode/backend/internal/utils"
)

const (
	defaultBaseURL = "https://api.brevo.com"
	receivedLayout = "02 Jan 2006 15:04 MST"
)

type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// Option tweaks a Client. Tests use WithBaseURL to point at a stub server.
type Option func(*Client)

func WithBaseURL(url string) Option {
	return func(c *Client) { c.baseURL = url }
}

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

func New(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:     apiKey,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ContactInquiry carries the contact-form fields forwarded to the studio.
type ContactInquiry struct {
	Name     string
	Email    string
	Phone    string
	Location string
	Message  string

	ReceivedAt time.Time

	SenderName  string
	SenderEmail string
	Recipient   string
}

type party struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email"`
}

type sendRequest struct {
	Sender      party   `json:"sender"`
	To          []party `json:"to"`
	ReplyTo     party   `json:"replyTo"`
	Subject     string  `json:"subject"`
	TextContent string  `json:"textContent"`
	HTMLContent string  `json:"htmlContent"`
}

type sendResponse struct {
	MessageID string `json:"messageId"`
	Message   string `json:"message"`
}

// SendContactInquiry dispatches the inquiry to the configured recipient with
// reply-to set to the visitor. Returns the provider message id.
func (c *Client) SendContactInquiry(inq ContactInquiry) (string, error) {
	payload := sendRequest{
		Sender:      party{Name: inq.SenderName, Email: inq.SenderEmail},
		To:          []party{{Name: inq.SenderName, Email: inq.Recipient}},
		ReplyTo:     party{Name: inq.Name, Email: inq.Email},
		Subject:     fmt.Sprintf("New Project Inquiry from %s", inq.Name),
		TextContent: inq.textBody(),
		HTMLContent: inq.htmlBody(),
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal email payload: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, c.baseURL+"/v3/smtp/email", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build email request: %w", err)
	}
	req.Header.Set("api-key", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("brevo request: %w", err)
	}
	defer resp.Body.Close()

	var parsed sendResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil && resp.StatusCode < 300 {
		return "", fmt.Errorf("decode brevo response: %w", err)
	}

	if resp.StatusCode >= 300 {
		if parsed.Message != "" {
			return "", fmt.Errorf("brevo api: %s", parsed.Message)
		}
		return "", fmt.Errorf("brevo api: status %d", resp.StatusCode)
	}

	return parsed.MessageID, nil
}

func (i ContactInquiry) textBody() string {
	return fmt.Sprintf(
		"New Project Inquiry\n\nReceived: %s\nName: %s\nEmail: %s\nPhone: %s\nLocation: %s\n\nMessage:\n%s\n\n---\nReply directly to this email to respond to %s at %s",
		utils.FormatUTC(i.ReceivedAt, receivedLayout), i.Name, i.Email, i.Phone, i.Location, i.Message, i.Name, i.Email)
}

func (i ContactInquiry) htmlBody() string {
	name := html.EscapeString(i.Name)
	email := html.EscapeString(i.Email)
	return fmt.Sprintf(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <h2 style="border-bottom: 2px solid #D4B483; padding-bottom: 10px;">New Project Inquiry</h2>
  <p><strong>Received:</strong> %s</p>
  <p><strong>Name:</strong> %s</p>
  <p><strong>Email:</strong> %s</p>
  <p><strong>Phone:</strong> %s</p>
  <p><strong>Location:</strong> %s</p>
  <p><strong>Message:</strong></p>
  <p style="white-space: pre-wrap;">%s</p>
  <hr style="border: none; border-top: 1px solid #eee;" />
  <p style="color: #999; font-size: 12px;">Reply directly to this email to respond to %s at %s</p>
</div>`,
		utils.FormatUTC(i.ReceivedAt, receivedLayout), name, email,
		html.EscapeString(i.Phone), html.EscapeString(i.Location),
		html.EscapeString(i.Message), name, email)
}
