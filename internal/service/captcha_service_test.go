package service

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newVerifyServer(t *testing.T, success bool, score float64) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.NotEmpty(t, r.Form.Get("secret"))
		assert.NotEmpty(t, r.Form.Get("response"))

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"success":%t,"score":%g,"action":"contact"}`, success, score)
	}))
	t.Cleanup(server.Close)
	return server
}

func TestCaptchaVerify_MissingSecret(t *testing.T) {
	svc := NewCaptchaService(CaptchaConfig{})

	result := svc.Verify(context.Background(), "some-token")

	assert.False(t, result.Success)
	assert.Equal(t, "not configured", result.Err)
}

func TestCaptchaVerify_MissingToken(t *testing.T) {
	svc := NewCaptchaService(CaptchaConfig{SecretKey: "secret"})

	result := svc.Verify(context.Background(), "")

	assert.False(t, result.Success)
	assert.Equal(t, "token required", result.Err)
}

func TestCaptchaVerify_ProviderRejects(t *testing.T) {
	server := newVerifyServer(t, false, 0)

	svc := NewCaptchaService(CaptchaConfig{SecretKey: "secret", VerifyURL: server.URL})
	result := svc.Verify(context.Background(), "bad-token")

	assert.False(t, result.Success)
	assert.Equal(t, "verification failed", result.Err)
}

func TestCaptchaVerify_ScoreBoundary(t *testing.T) {
	tests := []struct {
		name        string
		score       float64
		wantSuccess bool
		wantErr     string
	}{
		{name: "exactly at threshold passes", score: 0.5, wantSuccess: true},
		{name: "just below threshold fails", score: 0.49, wantSuccess: false, wantErr: "suspicious activity"},
		{name: "high score passes", score: 0.9, wantSuccess: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := newVerifyServer(t, true, tt.score)

			svc := NewCaptchaService(CaptchaConfig{SecretKey: "secret", VerifyURL: server.URL})
			result := svc.Verify(context.Background(), "token")

			assert.Equal(t, tt.wantSuccess, result.Success)
			assert.Equal(t, tt.wantErr, result.Err)
			assert.Equal(t, tt.score, result.Score)
		})
	}
}

func TestCaptchaVerify_ProviderUnreachableFailsOpen(t *testing.T) {
	// Grab a URL that refuses connections
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	svc := NewCaptchaService(CaptchaConfig{SecretKey: "secret", VerifyURL: url})
	result := svc.Verify(context.Background(), "token")

	assert.True(t, result.Success)
	assert.Equal(t, 0.5, result.Score)
	assert.Equal(t, "service unavailable", result.Err)
}

func TestCaptchaVerify_MalformedResponseFailsClosed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "not json")
	}))
	t.Cleanup(server.Close)

	svc := NewCaptchaService(CaptchaConfig{SecretKey: "secret", VerifyURL: server.URL})
	result := svc.Verify(context.Background(), "token")

	assert.False(t, result.Success)
	assert.Equal(t, "verification failed", result.Err)
}
