package service

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/vaultpass/passgen/internal/crypto"
	"github.com/vaultpass/passgen/internal/model"
)

func boolPtr(b bool) *bool { return &b }

type mockRecorder struct {
	mock.Mock
}

func (m *mockRecorder) Record(ctx context.Context, ev *model.GenerationEvent) error {
	return m.Called(ctx, ev).Error(0)
}

type mockUsage struct {
	mock.Mock
}

func (m *mockUsage) Summary(ctx context.Context, since time.Time) ([]model.UsageSummary, error) {
	args := m.Called(ctx, since)
	out, _ := args.Get(0).([]model.UsageSummary)
	return out, args.Error(1)
}

func TestGenerate_Defaults(t *testing.T) {
	svc := NewGeneratorService(10, nil)
	resp, err := svc.Generate(context.Background(), "", model.GenerateRequest{})
	require.NoError(t, err)

	assert.Equal(t, 16, resp.Length)
	require.Len(t, resp.Passwords, 1)
	assert.Len(t, resp.Passwords[0], 16)
}

func TestGenerate_CustomOptions(t *testing.T) {
	svc := NewGeneratorService(10, nil)
	resp, err := svc.Generate(context.Background(), "", model.GenerateRequest{
		Length:    32,
		Uppercase: boolPtr(true),
		Lowercase: boolPtr(true),
		Digits:    boolPtr(false),
		Symbols:   boolPtr(false),
		Count:     4,
	})
	require.NoError(t, err)

	assert.Equal(t, 32, resp.Length)
	require.Len(t, resp.Passwords, 4)
	for _, pw := range resp.Passwords {
		assert.Regexp(t, regexp.MustCompile(`^[A-Za-z]{32}$`), pw)
	}
}

func TestGenerate_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		req     model.GenerateRequest
		wantErr error
	}{
		{name: "length too large", req: model.GenerateRequest{Length: 1025}, wantErr: crypto.ErrLengthTooLarge},
		{name: "negative length", req: model.GenerateRequest{Length: -1}, wantErr: crypto.ErrInvalidLength},
		{name: "negative count", req: model.GenerateRequest{Count: -2}, wantErr: crypto.ErrInvalidGenerationCount},
		{name: "batch too large", req: model.GenerateRequest{Count: 11}, wantErr: ErrBatchTooLarge},
		{
			name: "no categories",
			req: model.GenerateRequest{
				Length:    16,
				Uppercase: boolPtr(false),
				Lowercase: boolPtr(false),
				Digits:    boolPtr(false),
				Symbols:   boolPtr(false),
			},
			wantErr: crypto.ErrNoCharacterSetsEnabled,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &mockRecorder{}
			svc := NewGeneratorService(10, rec)

			_, err := svc.Generate(context.Background(), "client", tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
			rec.AssertNotCalled(t, "Record", mock.Anything, mock.Anything)
		})
	}
}

func TestGenerate_RecordsEvent(t *testing.T) {
	rec := &mockRecorder{}
	rec.On("Record", mock.Anything, mock.MatchedBy(func(ev *model.GenerationEvent) bool {
		return ev.Client == "ci-runner" && ev.Mode == model.ModePassword && ev.Size == 20 && ev.Count == 2
	})).Return(nil).Once()

	svc := NewGeneratorService(10, rec)
	_, err := svc.Generate(context.Background(), "ci-runner", model.GenerateRequest{Length: 20, Count: 2})
	require.NoError(t, err)

	rec.AssertExpectations(t)
}

func TestGenerate_RecordFailureDoesNotFailRequest(t *testing.T) {
	rec := &mockRecorder{}
	rec.On("Record", mock.Anything, mock.Anything).Return(errors.New("db down"))

	svc := NewGeneratorService(10, rec)
	resp, err := svc.Generate(context.Background(), "", model.GenerateRequest{})
	require.NoError(t, err)
	assert.Len(t, resp.Passwords, 1)
}

func TestGeneratePassphrases(t *testing.T) {
	rec := &mockRecorder{}
	rec.On("Record", mock.Anything, mock.MatchedBy(func(ev *model.GenerationEvent) bool {
		return ev.Mode == model.ModePassphrase && ev.Size == 6 && ev.Count == 3
	})).Return(nil).Once()

	svc := NewGeneratorService(10, rec)
	resp, err := svc.GeneratePassphrases(context.Background(), "", model.PassphraseRequest{Words: 6, Count: 3})
	require.NoError(t, err)

	assert.Equal(t, 6, resp.Words)
	require.Len(t, resp.Passphrases, 3)
	for _, p := range resp.Passphrases {
		assert.Len(t, strings.Split(p, "-"), 6)
	}
	rec.AssertExpectations(t)
}

func TestGeneratePassphrases_Defaults(t *testing.T) {
	svc := NewGeneratorService(10, nil)
	resp, err := svc.GeneratePassphrases(context.Background(), "", model.PassphraseRequest{})
	require.NoError(t, err)

	assert.Equal(t, 4, resp.Words)
	require.Len(t, resp.Passphrases, 1)
	assert.Regexp(t, `^\w+-\w+-\w+-\w+$`, resp.Passphrases[0])
}

func TestGeneratePassphrases_ValidationErrors(t *testing.T) {
	svc := NewGeneratorService(10, nil)

	_, err := svc.GeneratePassphrases(context.Background(), "", model.PassphraseRequest{Words: 21})
	assert.ErrorIs(t, err, crypto.ErrWordCountTooLarge)

	_, err = svc.GeneratePassphrases(context.Background(), "", model.PassphraseRequest{Words: -1})
	assert.ErrorIs(t, err, crypto.ErrInvalidWordCount)

	_, err = svc.GeneratePassphrases(context.Background(), "", model.PassphraseRequest{Count: 100})
	assert.ErrorIs(t, err, ErrBatchTooLarge)
}

type zeroSource struct{}

func (zeroSource) IntN(int) int { return 0 }

func TestGenerate_UsesInjectedSource(t *testing.T) {
	svc := NewGeneratorService(10, nil, crypto.WithSource(zeroSource{}))

	resp, err := svc.Generate(context.Background(), "", model.GenerateRequest{Length: 5})
	require.NoError(t, err)
	assert.Equal(t, []string{"AAAAA"}, resp.Passwords)

	phrases, err := svc.GeneratePassphrases(context.Background(), "", model.PassphraseRequest{Words: 2})
	require.NoError(t, err)
	words := crypto.Words()
	assert.Equal(t, []string{words[0] + "-" + words[1]}, phrases.Passphrases)
}

func TestStatsService_Summary(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	want := []model.UsageSummary{{Mode: model.ModePassword, Requests: 3, Items: 9}}

	usage := &mockUsage{}
	usage.On("Summary", mock.Anything, now.Add(-24*time.Hour)).Return(want, nil)

	svc := NewStatsService(usage)
	svc.now = func() time.Time { return now }

	resp, err := svc.Summary(context.Background(), 24*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, now.Add(-24*time.Hour), resp.Since)
	assert.Equal(t, want, resp.Modes)
}

func TestStatsService_Error(t *testing.T) {
	usage := &mockUsage{}
	usage.On("Summary", mock.Anything, mock.Anything).Return(nil, errors.New("db down"))

	_, err := NewStatsService(usage).Summary(context.Background(), time.Hour)
	assert.EqualError(t, err, "db down")
}
