package handler

import (
	"context"

	"github.com/dreamwell/sleep-coach/internal/domain"
)

// MockSleepLogService is a mock implementation of SleepLogService
type MockSleepLogService struct {
	appendFunc func(ctx context.Context, userID string, entry domain.SleepLogEntry) error
	listFunc   func(ctx context.Context, userID string) ([]domain.SleepLogEntry, error)
}

func (m *MockSleepLogService) Append(ctx context.Context, userID string, entry domain.SleepLogEntry) error {
	if m.appendFunc != nil {
		return m.appendFunc(ctx, userID, entry)
	}
	return nil
}

func (m *MockSleepLogService) List(ctx context.Context, userID string) ([]domain.SleepLogEntry, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, userID)
	}
	return nil, domain.ErrNotFound
}

// MockInsightsService is a mock implementation of InsightsService
type MockInsightsService struct {
	analyzeFunc func(ctx context.Context, userID string) (*domain.Insight, error)
	latestFunc  func(ctx context.Context, userID string) (*domain.Insight, error)
}

func (m *MockInsightsService) Analyze(ctx context.Context, userID string) (*domain.Insight, error) {
	if m.analyzeFunc != nil {
		return m.analyzeFunc(ctx, userID)
	}
	return nil, domain.ErrInsufficientData
}

func (m *MockInsightsService) Latest(ctx context.Context, userID string) (*domain.Insight, error) {
	if m.latestFunc != nil {
		return m.latestFunc(ctx, userID)
	}
	return nil, domain.ErrNotFound
}

// MockChatModel returns scripted replies for pipeline-backed tests.
type MockChatModel struct {
	replies []string
	calls   int
}

func (m *MockChatModel) Complete(ctx context.Context, prompt string) (string, error) {
	reply := m.replies[m.calls%len(m.replies)]
	m.calls++
	return reply, nil
}
