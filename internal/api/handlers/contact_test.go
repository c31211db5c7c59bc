package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"foliolink/internal/api/middleware"
	"foliolink/internal/db/ent"
	"foliolink/internal/logging"
	"foliolink/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	if err := logging.InitLogger(&logging.LogConfig{
		Level: "info",
		File:  filepath.Join(os.TempDir(), "foliolink-handlers-test.log"),
	}); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

// fakeRateLimitRepository is a small in-memory rate-limit store
type fakeRateLimitRepository struct {
	mu      sync.Mutex
	entries []*ent.RateLimitEntry
}

func (f *fakeRateLimitRepository) ListSince(ctx context.Context, ip, endpoint string, since time.Time) ([]*ent.RateLimitEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []*ent.RateLimitEntry
	for _, e := range f.entries {
		if e.IPAddress == ip && e.Endpoint == endpoint && !e.CreatedAt.Before(since) {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeRateLimitRepository) Create(ctx context.Context, ip, endpoint string, at time.Time) (*ent.RateLimitEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	entry := &ent.RateLimitEntry{IPAddress: ip, Endpoint: endpoint, CreatedAt: at}
	f.entries = append(f.entries, entry)
	return entry, nil
}

func (f *fakeRateLimitRepository) DeleteOlderThan(ctx context.Context, endpoint string, cutoff time.Time) (int, error) {
	return 0, nil
}

type contactRouterOptions struct {
	verifyScore float64
	mailAPIKey  string
	prefillIP   string
	prefill     int
}

func newContactRouter(t *testing.T, opts contactRouterOptions) *gin.Engine {
	t.Helper()

	verifyServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `{"success":true,"score":%g}`, opts.verifyScore)
	}))
	t.Cleanup(verifyServer.Close)

	relayServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"id":"msg_1"}`)
	}))
	t.Cleanup(relayServer.Close)

	rateRepo := &fakeRateLimitRepository{}
	for i := 0; i < opts.prefill; i++ {
		_, err := rateRepo.Create(context.Background(), opts.prefillIP, service.ContactFormEndpoint, time.Now())
		require.NoError(t, err)
	}

	contactService := service.NewContactService(
		service.NewCaptchaService(service.CaptchaConfig{SecretKey: "secret", VerifyURL: verifyServer.URL}),
		service.NewRateLimitService(rateRepo, service.RateLimitConfig{}),
		service.NewMailService(service.MailConfig{APIKey: opts.mailAPIKey, BaseURL: relayServer.URL}),
		nil,
	)

	router := gin.New()
	validation := middleware.NewValidationMiddleware()
	handler := NewContactHandler(contactService)
	router.POST("/api/v1/contact/submit", validation.ValidateContactRequest(), handler.Submit)
	return router
}

func submitJSON(router *gin.Engine, body string, ip string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/contact/submit", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if ip != "" {
		req.Header.Set("X-Real-IP", ip)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

const validSubmission = `{
	"recipient_email": "owner@example.com",
	"recipient_name": "Owner",
	"sender_name": "Jane",
	"sender_email": "jane@example.com",
	"message": "Hello there",
	"recaptcha_token": "token"
}`

func TestContactSubmit_Success(t *testing.T) {
	router := newContactRouter(t, contactRouterOptions{verifyScore: 0.9, mailAPIKey: "key"})

	w := submitJSON(router, validSubmission, "1.2.3.4")

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool                   `json:"success"`
		Data    map[string]interface{} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "msg_1", resp.Data["id"])
}

func TestContactSubmit_MissingTokenReturns403(t *testing.T) {
	router := newContactRouter(t, contactRouterOptions{verifyScore: 0.9, mailAPIKey: "key"})

	body := strings.Replace(validSubmission, `"recaptcha_token": "token"`, `"recaptcha_token": ""`, 1)
	w := submitJSON(router, body, "1.2.3.4")

	require.Equal(t, http.StatusForbidden, w.Code)

	var resp struct {
		Success bool `json:"success"`
		Error   struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "verification_failed", resp.Error.Code)
	assert.Contains(t, resp.Error.Message, "Security verification failed")
}

func TestContactSubmit_RateLimitedReturns429WithRetryAfter(t *testing.T) {
	router := newContactRouter(t, contactRouterOptions{
		verifyScore: 0.9,
		mailAPIKey:  "key",
		prefillIP:   "1.2.3.4",
		prefill:     3,
	})

	w := submitJSON(router, validSubmission, "1.2.3.4")

	require.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))

	var resp struct {
		Error struct {
			Code    string `json:"code"`
			Details struct {
				RemainingTime int `json:"remainingTime"`
			} `json:"details"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "rate_limited", resp.Error.Code)
	assert.GreaterOrEqual(t, resp.Error.Details.RemainingTime, 1)
	assert.LessOrEqual(t, resp.Error.Details.RemainingTime, 120)
}

func TestContactSubmit_MissingMailKeyReturns500(t *testing.T) {
	router := newContactRouter(t, contactRouterOptions{verifyScore: 0.9})

	w := submitJSON(router, validSubmission, "1.2.3.4")

	require.Equal(t, http.StatusInternalServerError, w.Code)

	var resp struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "internal_server_error", resp.Error.Code)
}

func TestContactSubmit_MalformedBodyReturns400(t *testing.T) {
	router := newContactRouter(t, contactRouterOptions{verifyScore: 0.9, mailAPIKey: "key"})

	w := submitJSON(router, "{not json", "1.2.3.4")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
