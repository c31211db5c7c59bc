package service

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"foliolink/internal/api/dto/v1/contact"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSubmission() *contact.ContactRequest {
	return &contact.ContactRequest{
		RecipientEmail: "owner@example.com",
		RecipientName:  "Owner",
		SenderName:     "Jane Visitor",
		SenderEmail:    "jane@example.com",
		Message:        "Hi, I saw your portfolio.",
	}
}

func TestMailSend_MissingRecipientIsConfigError(t *testing.T) {
	svc := NewMailService(MailConfig{APIKey: "key"})

	req := testSubmission()
	req.RecipientEmail = ""

	_, err := svc.Send(context.Background(), req)

	var configErr *ConfigError
	require.ErrorAs(t, err, &configErr)
}

func TestMailSend_MissingAPIKeyIsConfigError(t *testing.T) {
	svc := NewMailService(MailConfig{})

	_, err := svc.Send(context.Background(), testSubmission())

	var configErr *ConfigError
	require.ErrorAs(t, err, &configErr)
}

func TestMailSend_Success(t *testing.T) {
	var captured struct {
		path string
		auth string
		body map[string]interface{}
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured.path = r.URL.Path
		captured.auth = r.Header.Get("Authorization")
		raw, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(raw, &captured.body))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		io.WriteString(w, `{"id":"msg_123"}`)
	}))
	t.Cleanup(server.Close)

	svc := NewMailService(MailConfig{APIKey: "key", BaseURL: server.URL, From: "Foliolink <noreply@foliolink.app>"})
	ack, err := svc.Send(context.Background(), testSubmission())

	require.NoError(t, err)
	assert.Equal(t, "msg_123", ack["id"])
	assert.Equal(t, "/emails", captured.path)
	assert.Equal(t, "Bearer key", captured.auth)
	assert.Equal(t, []interface{}{"owner@example.com"}, captured.body["to"])
	assert.Equal(t, "jane@example.com", captured.body["reply_to"])
}

func TestMailSend_EscapesHTMLInMessage(t *testing.T) {
	var sentHTML string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		sentHTML, _ = payload["html"].(string)
		io.WriteString(w, `{"id":"msg_124"}`)
	}))
	t.Cleanup(server.Close)

	svc := NewMailService(MailConfig{APIKey: "key", BaseURL: server.URL})

	req := testSubmission()
	req.SenderName = `Jane <b>Visitor</b>`
	req.Message = `<script>alert("xss")</script>`

	_, err := svc.Send(context.Background(), req)
	require.NoError(t, err)

	assert.NotContains(t, sentHTML, "<script>")
	assert.Contains(t, sentHTML, "&lt;script&gt;")
	assert.Contains(t, sentHTML, "Jane &lt;b&gt;Visitor&lt;/b&gt;")
}

func TestMailSend_RelayRejectionSurfacesPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		io.WriteString(w, `{"message":"invalid from address"}`)
	}))
	t.Cleanup(server.Close)

	svc := NewMailService(MailConfig{APIKey: "key", BaseURL: server.URL})
	_, err := svc.Send(context.Background(), testSubmission())

	var relayErr *RelayError
	require.ErrorAs(t, err, &relayErr)
	assert.Equal(t, http.StatusUnprocessableEntity, relayErr.StatusCode)
	assert.True(t, strings.Contains(relayErr.Payload, "invalid from address"))
}
