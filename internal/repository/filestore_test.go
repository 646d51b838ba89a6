package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/dreamwell/sleep-coach/internal/domain"
)

func entry(date string, duration float64) domain.SleepLogEntry {
	return domain.SleepLogEntry{
		Date:        date,
		Duration:    duration,
		Bedtime:     "23:00",
		StressLevel: 5,
	}
}

func TestSleepLogFileStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sleep_logs.json")
	ctx := context.Background()

	store, err := NewSleepLogFileStore(path)
	if err != nil {
		t.Fatalf("NewSleepLogFileStore() error = %v", err)
	}

	entries := []domain.SleepLogEntry{
		entry("2024-01-15", 6),
		entry("2024-01-16", 7),
		entry("2024-01-17", 8),
	}
	for _, e := range entries {
		if err := store.Append(ctx, "u1", e); err != nil {
			t.Fatalf("Append() error = %v", err)
		}
	}
	if err := store.Append(ctx, "u2", entry("2024-01-15", 5)); err != nil {
		t.Fatalf("Append() error = %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	// Reload from disk and verify the ordered sequence survives per user.
	reloaded, err := NewSleepLogFileStore(path)
	if err != nil {
		t.Fatalf("reload error = %v", err)
	}

	got, err := reloaded.List(ctx, "u1")
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("got %d entries, want 3", len(got))
	}
	for i, e := range got {
		if e.Date != entries[i].Date || e.Duration != entries[i].Duration {
			t.Errorf("entry %d = %+v, want %+v", i, e, entries[i])
		}
	}

	other, _ := reloaded.List(ctx, "u2")
	if len(other) != 1 {
		t.Fatalf("u2 got %d entries, want 1", len(other))
	}
}

func TestSleepLogFileStore_ListSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sleep_logs.json")
	ctx := context.Background()

	store, err := NewSleepLogFileStore(path)
	if err != nil {
		t.Fatalf("NewSleepLogFileStore() error = %v", err)
	}
	if err := store.Append(ctx, "u1", entry("2024-01-15", 6)); err != nil {
		t.Fatalf("Append() error = %v", err)
	}

	got, _ := store.List(ctx, "u1")
	got[0].Duration = 99

	again, _ := store.List(ctx, "u1")
	if again[0].Duration != 6 {
		t.Fatal("List() must return a copy, not the backing slice")
	}
}

func TestSleepLogFileStore_EmptyUser(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sleep_logs.json")
	store, err := NewSleepLogFileStore(path)
	if err != nil {
		t.Fatalf("NewSleepLogFileStore() error = %v", err)
	}

	got, err := store.List(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("got %d entries for unknown user", len(got))
	}
}

func TestSleepLogFileStore_EmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sleep_logs.json")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := NewSleepLogFileStore(path); err != nil {
		t.Fatalf("empty file should load as empty store, got %v", err)
	}
}

func TestInsightFileStore_OverwriteAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ai_insights.json")
	ctx := context.Background()

	store, err := NewInsightFileStore(path)
	if err != nil {
		t.Fatalf("NewInsightFileStore() error = %v", err)
	}

	if _, err := store.Latest(ctx, "u1"); err != domain.ErrNotFound {
		t.Fatalf("Latest() on empty store error = %v, want ErrNotFound", err)
	}

	first := domain.Insight{
		UserID:                "u1",
		GeneratedAt:           time.Date(2024, 1, 16, 7, 0, 0, 0, time.UTC),
		CoachingTip:           "first tip",
		SleepImprovementScore: 4,
	}
	second := first
	second.CoachingTip = "second tip"
	second.SleepImprovementScore = 6

	if err := store.Save(ctx, first); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if err := store.Save(ctx, second); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, err := store.Latest(ctx, "u1")
	if err != nil {
		t.Fatalf("Latest() error = %v", err)
	}
	if got.CoachingTip != "second tip" || got.SleepImprovementScore != 6 {
		t.Fatalf("Latest() = %+v, want the overwritten insight", got)
	}

	// Overwrite survives a reload.
	reloaded, err := NewInsightFileStore(path)
	if err != nil {
		t.Fatalf("reload error = %v", err)
	}
	got, err = reloaded.Latest(ctx, "u1")
	if err != nil {
		t.Fatalf("Latest() after reload error = %v", err)
	}
	if got.CoachingTip != "second tip" {
		t.Fatalf("reloaded insight = %+v", got)
	}
}
