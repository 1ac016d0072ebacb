package service

import (
	"context"
	"time"

	"github.com/vaultpass/passgen/internal/model"
)

// StatsService reports aggregated usage of the generator endpoints.
type StatsService struct {
	usage UsageReader
	now   func() time.Time
}

// NewStatsService creates a new StatsService.
func NewStatsService(usage UsageReader) *StatsService {
	return &StatsService{usage: usage, now: time.Now}
}

// Summary returns usage over the trailing window.
func (s *StatsService) Summary(ctx context.Context, window time.Duration) (model.StatsResponse, error) {
	since := s.now().UTC().Add(-window)

	modes, err := s.usage.Summary(ctx, since)
	if err != nil {
		return model.StatsResponse{}, err
	}

	return model.StatsResponse{Since: since, Modes: modes}, nil
}
