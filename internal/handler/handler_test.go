package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vaultpass/passgen/internal/model"
	"github.com/vaultpass/passgen/internal/service"
)

func newGeneratorHandler() *GeneratorHandler {
	return NewGeneratorHandler(service.NewGeneratorService(5, nil))
}

func post(t *testing.T, h http.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(http.MethodPost, "/", nil)
	} else {
		req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	}
	rr := httptest.NewRecorder()
	h(rr, req)
	return rr
}

func TestHandleGenerate(t *testing.T) {
	h := newGeneratorHandler()

	rr := post(t, h.HandleGenerate, `{"length": 24, "symbols": false, "count": 3}`)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var resp model.GenerateResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, 24, resp.Length)
	require.Len(t, resp.Passwords, 3)
	for _, pw := range resp.Passwords {
		assert.Regexp(t, `^[A-Za-z0-9]{24}$`, pw)
	}
}

func TestHandleGenerate_EmptyBody(t *testing.T) {
	h := newGeneratorHandler()

	rr := post(t, h.HandleGenerate, "")
	require.Equal(t, http.StatusOK, rr.Code)

	var resp model.GenerateResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, 16, resp.Length)
	assert.Len(t, resp.Passwords, 1)
}

func TestHandleGenerate_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantError  string
	}{
		{name: "malformed json", body: `{"length":`, wantStatus: http.StatusBadRequest, wantError: "invalid request body"},
		{name: "length too large", body: `{"length": 5000}`, wantStatus: http.StatusBadRequest, wantError: "password length is too large: 5000 (max: 1024)"},
		{name: "negative length", body: `{"length": -3}`, wantStatus: http.StatusBadRequest, wantError: "invalid password length: -3"},
		{
			name:       "no categories",
			body:       `{"uppercase": false, "lowercase": false, "digits": false, "symbols": false}`,
			wantStatus: http.StatusBadRequest,
			wantError:  "at least one character set must be enabled",
		},
		{name: "batch too large", body: `{"count": 6}`, wantStatus: http.StatusBadRequest, wantError: "too many items requested: 6 (max: 5)"},
		{
			name:       "body too large",
			body:       `{"length": 16, "pad": "` + strings.Repeat("a", maxBodyBytes) + `"}`,
			wantStatus: http.StatusRequestEntityTooLarge,
			wantError:  "request body too large",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := post(t, newGeneratorHandler().HandleGenerate, tt.body)
			assert.Equal(t, tt.wantStatus, rr.Code)

			var body map[string]string
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
			assert.Equal(t, tt.wantError, body["error"])
		})
	}
}

func TestHandlePassphrase(t *testing.T) {
	h := newGeneratorHandler()

	rr := post(t, h.HandlePassphrase, `{"words": 5, "count": 2}`)
	require.Equal(t, http.StatusOK, rr.Code)

	var resp model.PassphraseResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, 5, resp.Words)
	require.Len(t, resp.Passphrases, 2)
	for _, p := range resp.Passphrases {
		assert.Len(t, strings.Split(p, "-"), 5)
	}
}

func TestHandlePassphrase_TooManyWords(t *testing.T) {
	rr := post(t, newGeneratorHandler().HandlePassphrase, `{"words": 21}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "word count is too large")
}

type stubUsage struct {
	since time.Time
	out   []model.UsageSummary
	err   error
}

func (s *stubUsage) Summary(_ context.Context, since time.Time) ([]model.UsageSummary, error) {
	s.since = since
	return s.out, s.err
}

func TestHandleStats(t *testing.T) {
	usage := &stubUsage{out: []model.UsageSummary{{Mode: model.ModePassword, Requests: 2, Items: 4}}}
	h := NewStatsHandler(service.NewStatsService(usage))

	rr := httptest.NewRecorder()
	h.HandleStats(rr, httptest.NewRequest(http.MethodGet, "/api/v1/stats?window=1h", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	var resp model.StatsResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, usage.out, resp.Modes)
	assert.WithinDuration(t, time.Now().Add(-time.Hour), usage.since, time.Minute)
}

func TestHandleStats_Errors(t *testing.T) {
	h := NewStatsHandler(service.NewStatsService(&stubUsage{err: errors.New("db down")}))

	for _, tt := range []struct {
		url        string
		wantStatus int
	}{
		{url: "/api/v1/stats?window=abc", wantStatus: http.StatusBadRequest},
		{url: "/api/v1/stats?window=-1h", wantStatus: http.StatusBadRequest},
		{url: "/api/v1/stats?window=10000h", wantStatus: http.StatusBadRequest},
		{url: "/api/v1/stats", wantStatus: http.StatusInternalServerError},
	} {
		rr := httptest.NewRecorder()
		h.HandleStats(rr, httptest.NewRequest(http.MethodGet, tt.url, nil))
		assert.Equal(t, tt.wantStatus, rr.Code, tt.url)
	}
}
