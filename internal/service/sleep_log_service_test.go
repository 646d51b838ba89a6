package service

import (
	"context"
	"errors"
	"testing"

	"github.com/dreamwell/sleep-coach/internal/domain"
)

func TestSleepLogService_AppendAndList(t *testing.T) {
	repo := NewMockSleepLogRepository()
	svc := NewSleepLogService(repo)
	ctx := context.Background()

	entries := []domain.SleepLogEntry{
		{Date: "2024-01-15", Duration: 6, Bedtime: "23:00", StressLevel: 5},
		{Date: "2024-01-16", Duration: 7, Bedtime: "22:30", StressLevel: 4, WakeTime: strPtr("06:30")},
	}
	for _, e := range entries {
		if err := svc.Append(ctx, "u1", e); err != nil {
			t.Fatalf("Append() error = %v", err)
		}
	}

	got, err := svc.List(ctx, "u1")
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("List() returned %d entries, want 2", len(got))
	}
	if got[0].Date != "2024-01-15" || got[1].Date != "2024-01-16" {
		t.Errorf("submission order not preserved: %+v", got)
	}
}

func TestSleepLogService_ListEmptyIsNotFound(t *testing.T) {
	svc := NewSleepLogService(NewMockSleepLogRepository())

	if _, err := svc.List(context.Background(), "nobody"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("List() error = %v, want ErrNotFound", err)
	}
}
