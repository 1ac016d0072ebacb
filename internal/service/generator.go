package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/vaultpass/passgen/internal/crypto"
	"github.com/vaultpass/passgen/internal/model"
)

// ErrBatchTooLarge is returned when a request asks for more items than allowed.
var ErrBatchTooLarge = errors.New("too many items requested")

// EventRecorder persists generation events. It is satisfied by
// *repository.EventRepository.
type EventRecorder interface {
	Record(ctx context.Context, ev *model.GenerationEvent) error
}

// UsageReader reads aggregated generation events.
type UsageReader interface {
	Summary(ctx context.Context, since time.Time) ([]model.UsageSummary, error)
}

// GeneratorService handles password and passphrase generation business logic.
type GeneratorService struct {
	maxBatch int
	events   EventRecorder
	opts     []crypto.Option
}

// NewGeneratorService creates a new GeneratorService. events may be nil, in
// which case nothing is recorded.
func NewGeneratorService(maxBatch int, events EventRecorder, opts ...crypto.Option) *GeneratorService {
	if maxBatch < 1 {
		maxBatch = 1
	}
	return &GeneratorService{maxBatch: maxBatch, events: events, opts: opts}
}

// Generate produces passwords based on the given request.
func (s *GeneratorService) Generate(ctx context.Context, client string, req model.GenerateRequest) (model.GenerateResponse, error) {
	cfg := crypto.PasswordConfig{
		Length:    req.Length,
		Uppercase: boolOrDefault(req.Uppercase, true),
		Lowercase: boolOrDefault(req.Lowercase, true),
		Digits:    boolOrDefault(req.Digits, true),
		Symbols:   boolOrDefault(req.Symbols, true),
	}
	if cfg.Length == 0 {
		cfg.Length = crypto.DefaultLength
	}

	count, err := s.batchSize(req.Count)
	if err != nil {
		return model.GenerateResponse{}, err
	}

	gen, err := crypto.NewPasswordGenerator(cfg, s.opts...)
	if err != nil {
		return model.GenerateResponse{}, err
	}

	passwords, err := gen.GenerateN(count)
	if err != nil {
		return model.GenerateResponse{}, err
	}

	s.record(ctx, client, model.ModePassword, cfg.Length, count)

	return model.GenerateResponse{
		Passwords: passwords,
		Length:    cfg.Length,
	}, nil
}

// GeneratePassphrases produces passphrases based on the given request.
func (s *GeneratorService) GeneratePassphrases(ctx context.Context, client string, req model.PassphraseRequest) (model.PassphraseResponse, error) {
	cfg := crypto.PassphraseConfig{WordCount: req.Words}
	if cfg.WordCount == 0 {
		cfg.WordCount = crypto.DefaultWordCount
	}

	count, err := s.batchSize(req.Count)
	if err != nil {
		return model.PassphraseResponse{}, err
	}

	gen, err := crypto.NewPassphraseGenerator(cfg, s.opts...)
	if err != nil {
		return model.PassphraseResponse{}, err
	}

	phrases, err := gen.GenerateN(count)
	if err != nil {
		return model.PassphraseResponse{}, err
	}

	s.record(ctx, client, model.ModePassphrase, cfg.WordCount, count)

	return model.PassphraseResponse{
		Passphrases: phrases,
		Words:       cfg.WordCount,
	}, nil
}

func (s *GeneratorService) batchSize(requested int) (int, error) {
	if requested == 0 {
		return 1, nil
	}
	if err := crypto.ValidateGenerationCount(requested); err != nil {
		return 0, err
	}
	if requested > s.maxBatch {
		return 0, fmt.Errorf("%w: %d (max: %d)", ErrBatchTooLarge, requested, s.maxBatch)
	}
	return requested, nil
}

// record stores a usage event. Failures are logged and never fail the request.
func (s *GeneratorService) record(ctx context.Context, client, mode string, size, count int) {
	if s.events == nil {
		return
	}

	ev := &model.GenerationEvent{Client: client, Mode: mode, Size: size, Count: count}
	if err := s.events.Record(ctx, ev); err != nil {
		slog.Warn("recording generation event failed", "mode", mode, "client", client, "error", err)
	}
}

// boolOrDefault returns the dereferenced pointer value, or the fallback if nil.
func boolOrDefault(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}
	return *p
}
