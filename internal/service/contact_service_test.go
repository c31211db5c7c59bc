package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"foliolink/internal/db/ent"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pipelineFixture wires a full pipeline against httptest providers
type pipelineFixture struct {
	svc        *ContactService
	rateRepo   *memRateLimitRepository
	messages   *mockContactMessageRepository
	relayCalls *atomic.Int64
}

func newPipelineFixture(t *testing.T, verifyScore float64) *pipelineFixture {
	t.Helper()

	verifyServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `{"success":true,"score":%g}`, verifyScore)
	}))
	t.Cleanup(verifyServer.Close)

	relayCalls := &atomic.Int64{}
	relayServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		relayCalls.Add(1)
		io.WriteString(w, `{"id":"msg_1"}`)
	}))
	t.Cleanup(relayServer.Close)

	rateRepo := &memRateLimitRepository{}
	messages := &mockContactMessageRepository{}

	svc := NewContactService(
		NewCaptchaService(CaptchaConfig{SecretKey: "secret", VerifyURL: verifyServer.URL}),
		NewRateLimitService(rateRepo, RateLimitConfig{}),
		NewMailService(MailConfig{APIKey: "key", BaseURL: relayServer.URL}),
		messages,
	)

	return &pipelineFixture{
		svc:        svc,
		rateRepo:   rateRepo,
		messages:   messages,
		relayCalls: relayCalls,
	}
}

func TestPipeline_MissingTokenNeverReachesRelay(t *testing.T) {
	f := newPipelineFixture(t, 0.9)

	req := testSubmission()
	req.RecaptchaToken = ""

	_, err := f.svc.Submit(context.Background(), req, SubmissionMeta{IPAddress: "1.2.3.4"})

	var verificationErr *VerificationError
	require.ErrorAs(t, err, &verificationErr)
	assert.Equal(t, int64(0), f.relayCalls.Load())
	// Bot traffic must not consume rate-limit quota
	assert.Equal(t, 0, f.rateRepo.count())
}

func TestPipeline_LowScoreRejected(t *testing.T) {
	f := newPipelineFixture(t, 0.2)

	req := testSubmission()
	req.RecaptchaToken = "token"

	_, err := f.svc.Submit(context.Background(), req, SubmissionMeta{IPAddress: "1.2.3.4"})

	var verificationErr *VerificationError
	require.ErrorAs(t, err, &verificationErr)
	assert.Equal(t, int64(0), f.relayCalls.Load())
}

func TestPipeline_RateLimitedBeforeRelay(t *testing.T) {
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	setTimeNow(t, base)

	f := newPipelineFixture(t, 0.9)
	for i := 0; i < 3; i++ {
		_, err := f.rateRepo.Create(context.Background(), "1.2.3.4", ContactFormEndpoint, base)
		require.NoError(t, err)
	}

	req := testSubmission()
	req.RecaptchaToken = "token"

	_, err := f.svc.Submit(context.Background(), req, SubmissionMeta{IPAddress: "1.2.3.4"})

	var rateLimitedErr *RateLimitedError
	require.ErrorAs(t, err, &rateLimitedErr)
	assert.GreaterOrEqual(t, rateLimitedErr.RemainingSeconds, 1)
	assert.LessOrEqual(t, rateLimitedErr.RemainingSeconds, 120)
	assert.Equal(t, int64(0), f.relayCalls.Load())
}

func TestPipeline_SuccessRecordsExactlyOneEntry(t *testing.T) {
	f := newPipelineFixture(t, 0.9)

	req := testSubmission()
	req.RecaptchaToken = "token"

	ack, err := f.svc.Submit(context.Background(), req, SubmissionMeta{IPAddress: "1.2.3.4", UserAgent: "go-test"})

	require.NoError(t, err)
	assert.Equal(t, "msg_1", ack["id"])
	assert.Equal(t, int64(1), f.relayCalls.Load())
	assert.Equal(t, 1, f.rateRepo.count())

	// Audit trail
	require.Len(t, f.messages.records, 1)
	assert.Equal(t, "owner@example.com", f.messages.records[0].RecipientEmail)
	assert.Equal(t, "1.2.3.4", f.messages.records[0].IPAddress)
}

func TestPipeline_VerifierDownFallsBackToRateLimiter(t *testing.T) {
	// Provider URL that refuses connections
	verifyServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	deadURL := verifyServer.URL
	verifyServer.Close()

	relayCalls := &atomic.Int64{}
	relayServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		relayCalls.Add(1)
		io.WriteString(w, `{"id":"msg_2"}`)
	}))
	t.Cleanup(relayServer.Close)

	rateRepo := &memRateLimitRepository{}
	svc := NewContactService(
		NewCaptchaService(CaptchaConfig{SecretKey: "secret", VerifyURL: deadURL}),
		NewRateLimitService(rateRepo, RateLimitConfig{}),
		NewMailService(MailConfig{APIKey: "key", BaseURL: relayServer.URL}),
		&mockContactMessageRepository{},
	)

	req := testSubmission()
	req.RecaptchaToken = "token"

	_, err := svc.Submit(context.Background(), req, SubmissionMeta{IPAddress: "1.2.3.4"})

	require.NoError(t, err)
	assert.Equal(t, int64(1), relayCalls.Load())
	assert.Equal(t, 1, rateRepo.count())
}

func TestPipeline_StoreDownStillDispatches(t *testing.T) {
	verifyServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"success":true,"score":0.9}`)
	}))
	t.Cleanup(verifyServer.Close)

	relayCalls := &atomic.Int64{}
	relayServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		relayCalls.Add(1)
		io.WriteString(w, `{"id":"msg_3"}`)
	}))
	t.Cleanup(relayServer.Close)

	downRepo := &mockRateLimitRepository{
		listSinceFunc: func(ctx context.Context, ip, endpoint string, since time.Time) ([]*ent.RateLimitEntry, error) {
			return nil, errors.New("connection refused")
		},
	}

	svc := NewContactService(
		NewCaptchaService(CaptchaConfig{SecretKey: "secret", VerifyURL: verifyServer.URL}),
		NewRateLimitService(downRepo, RateLimitConfig{}),
		NewMailService(MailConfig{APIKey: "key", BaseURL: relayServer.URL}),
		&mockContactMessageRepository{},
	)

	req := testSubmission()
	req.RecaptchaToken = "token"

	_, err := svc.Submit(context.Background(), req, SubmissionMeta{IPAddress: "1.2.3.4"})

	require.NoError(t, err)
	assert.Equal(t, int64(1), relayCalls.Load())
}

func TestPipeline_RelayFailureSurfaced(t *testing.T) {
	verifyServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"success":true,"score":0.9}`)
	}))
	t.Cleanup(verifyServer.Close)

	relayServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		io.WriteString(w, `{"message":"upstream error"}`)
	}))
	t.Cleanup(relayServer.Close)

	svc := NewContactService(
		NewCaptchaService(CaptchaConfig{SecretKey: "secret", VerifyURL: verifyServer.URL}),
		NewRateLimitService(&memRateLimitRepository{}, RateLimitConfig{}),
		NewMailService(MailConfig{APIKey: "key", BaseURL: relayServer.URL}),
		&mockContactMessageRepository{},
	)

	req := testSubmission()
	req.RecaptchaToken = "token"

	_, err := svc.Submit(context.Background(), req, SubmissionMeta{IPAddress: "1.2.3.4"})

	var relayErr *RelayError
	require.ErrorAs(t, err, &relayErr)
	assert.Equal(t, http.StatusBadGateway, relayErr.StatusCode)
}

func TestPipeline_AuditFailureDoesNotFailSubmission(t *testing.T) {
	f := newPipelineFixture(t, 0.9)
	f.messages.err = errors.New("insert failed")

	req := testSubmission()
	req.RecaptchaToken = "token"

	_, err := f.svc.Submit(context.Background(), req, SubmissionMeta{IPAddress: "1.2.3.4"})

	require.NoError(t, err)
	assert.Equal(t, int64(1), f.relayCalls.Load())
}
