package service

import (
	"context"

	"github.com/dreamwell/sleep-coach/internal/domain"
)

// MockChatModel is a scripted implementation of llm.ChatModel. The i-th
// call returns the i-th reply and error.
type MockChatModel struct {
	replies []string
	errs    []error
	calls   []string
}

func (m *MockChatModel) Complete(ctx context.Context, prompt string) (string, error) {
	i := len(m.calls)
	m.calls = append(m.calls, prompt)
	var err error
	if i < len(m.errs) {
		err = m.errs[i]
	}
	var reply string
	if i < len(m.replies) {
		reply = m.replies[i]
	}
	return reply, err
}

// MockSleepLogRepository is an in-memory SleepLogRepository.
type MockSleepLogRepository struct {
	logs map[string][]domain.SleepLogEntry
	err  error
}

func NewMockSleepLogRepository() *MockSleepLogRepository {
	return &MockSleepLogRepository{logs: make(map[string][]domain.SleepLogEntry)}
}

func (m *MockSleepLogRepository) Append(ctx context.Context, userID string, entry domain.SleepLogEntry) error {
	if m.err != nil {
		return m.err
	}
	m.logs[userID] = append(m.logs[userID], entry)
	return nil
}

func (m *MockSleepLogRepository) List(ctx context.Context, userID string) ([]domain.SleepLogEntry, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := make([]domain.SleepLogEntry, len(m.logs[userID]))
	copy(out, m.logs[userID])
	return out, nil
}

// MockInsightRepository is an in-memory InsightRepository.
type MockInsightRepository struct {
	insights map[string]domain.Insight
	err      error
}

func NewMockInsightRepository() *MockInsightRepository {
	return &MockInsightRepository{insights: make(map[string]domain.Insight)}
}

func (m *MockInsightRepository) Save(ctx context.Context, insight domain.Insight) error {
	if m.err != nil {
		return m.err
	}
	m.insights[insight.UserID] = insight
	return nil
}

func (m *MockInsightRepository) Latest(ctx context.Context, userID string) (*domain.Insight, error) {
	if m.err != nil {
		return nil, m.err
	}
	insight, ok := m.insights[userID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &insight, nil
}

func strPtr(s string) *string {
	return &s
}
