package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"html"
	"io"
	"net/http"
	"time"

	"foliolink/internal/api/dto/v1/contact"
	"foliolink/internal/logging"
)

const defaultMailBaseURL = "https://api.resend.com"

// contactEmailTemplate embeds the escaped sender fields; the message body is
// rendered preformatted so it is never reinterpreted as HTML.
const contactEmailTemplate = `<div style="font-family: sans-serif; max-width: 600px;">
  <h2>New message from your portfolio</h2>
  <p><strong>From:</strong> %s &lt;%s&gt;</p>
  <pre style="white-space: pre-wrap; background: #f4f4f5; padding: 16px; border-radius: 8px;">%s</pre>
  <p style="color: #71717a; font-size: 12px;">Sent via your Foliolink contact form. Reply directly to this email to answer.</p>
</div>`

// MailConfig holds the transactional mail relay settings.
type MailConfig struct {
	APIKey  string
	BaseURL string
	From    string
}

// MailService renders and submits transactional contact emails to the relay.
type MailService struct {
	config MailConfig
	client *http.Client
	logger *logging.Logger
}

// NewMailService creates a new mail relay service
func NewMailService(config MailConfig) *MailService {
	if config.BaseURL == "" {
		config.BaseURL = defaultMailBaseURL
	}
	return &MailService{
		config: config,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		logger: logging.GetGlobalLogger(),
	}
}

// mailRequest is the relay's send payload
type mailRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	ReplyTo string   `json:"reply_to,omitempty"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

// Send relays one submission as an HTML email. The caller sees success or
// failure synchronously; there is no queued retry.
func (s *MailService) Send(ctx context.Context, req *contact.ContactRequest) (map[string]interface{}, error) {
	if req.RecipientEmail == "" {
		return nil, &ConfigError{Reason: "recipient email is not set"}
	}
	if s.config.APIKey == "" {
		return nil, &ConfigError{Reason: "mail API key not configured"}
	}

	body := fmt.Sprintf(contactEmailTemplate,
		html.EscapeString(req.SenderName),
		html.EscapeString(req.SenderEmail),
		html.EscapeString(req.Message),
	)

	payload := mailRequest{
		From:    s.config.From,
		To:      []string{req.RecipientEmail},
		ReplyTo: req.SenderEmail,
		Subject: fmt.Sprintf("New portfolio message from %s", req.SenderName),
		HTML:    body,
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal mail payload: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.config.BaseURL+"/emails", bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create mail request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+s.config.APIKey)

	resp, err := s.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to reach mail relay: %w", err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		s.logger.Error("mail relay rejected submission: status=%d body=%s", resp.StatusCode, respBody)
		return nil, &RelayError{StatusCode: resp.StatusCode, Payload: string(respBody)}
	}

	// The provider acknowledgement is passed through to the caller verbatim.
	ack := map[string]interface{}{}
	if err := json.Unmarshal(respBody, &ack); err != nil {
		s.logger.Warn("could not parse mail relay acknowledgement: %v", err)
	}

	return ack, nil
}
