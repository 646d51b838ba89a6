package service

import (
	"context"

	"github.com/dreamwell/sleep-coach/internal/domain"
	"github.com/dreamwell/sleep-coach/internal/repository"
)

// SleepLogService manages a user's append-only log collection.
type SleepLogService interface {
	// Append adds a validated entry to the user's collection.
	Append(ctx context.Context, userID string, entry domain.SleepLogEntry) error
	// List returns the user's collection in submission order, or
	// domain.ErrNotFound when the user has no entries.
	List(ctx context.Context, userID string) ([]domain.SleepLogEntry, error)
}

type sleepLogService struct {
	repo repository.SleepLogRepository
}

// NewSleepLogService creates a new SleepLogService.
func NewSleepLogService(repo repository.SleepLogRepository) SleepLogService {
	return &sleepLogService{repo: repo}
}

func (s *sleepLogService) Append(ctx context.Context, userID string, entry domain.SleepLogEntry) error {
	return s.repo.Append(ctx, userID, entry)
}

func (s *sleepLogService) List(ctx context.Context, userID string) ([]domain.SleepLogEntry, error) {
	logs, err := s.repo.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(logs) == 0 {
		return nil, domain.ErrNotFound
	}
	return logs, nil
}
