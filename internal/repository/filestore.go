// File-backed stores: in-memory maps keyed by user id, mirrored to JSON
// documents on every mutation. The mutex covers both the in-memory write
// and the durable write so the two cannot diverge mid-mutation. Durable
// writes are best-effort: a disk failure is logged as a warning and the
// in-memory mutation stands.
package repository

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"os"
	"sync"

	"github.com/dreamwell/sleep-coach/internal/domain"
)

// SleepLogFileStore persists per-user log collections to a single JSON file.
type SleepLogFileStore struct {
	mu   sync.Mutex
	path string
	logs map[string][]domain.SleepLogEntry
}

// NewSleepLogFileStore loads (or initializes) the store at path.
func NewSleepLogFileStore(path string) (*SleepLogFileStore, error) {
	s := &SleepLogFileStore{
		path: path,
		logs: make(map[string][]domain.SleepLogEntry),
	}
	if err := loadJSON(path, &s.logs); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *SleepLogFileStore) Append(ctx context.Context, userID string, entry domain.SleepLogEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.logs[userID] = append(s.logs[userID], entry)
	if err := atomicWriteJSON(s.path, s.logs); err != nil {
		log.Printf("[store] warning: failed to persist sleep logs: %v", err)
	}
	return nil
}

func (s *SleepLogFileStore) List(ctx context.Context, userID string) ([]domain.SleepLogEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := s.logs[userID]
	out := make([]domain.SleepLogEntry, len(entries))
	copy(out, entries)
	return out, nil
}

// Close flushes the store to disk.
func (s *SleepLogFileStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return atomicWriteJSON(s.path, s.logs)
}

// InsightFileStore persists the latest insight per user to a single JSON file.
type InsightFileStore struct {
	mu       sync.Mutex
	path     string
	insights map[string]domain.Insight
}

// NewInsightFileStore loads (or initializes) the store at path.
func NewInsightFileStore(path string) (*InsightFileStore, error) {
	s := &InsightFileStore{
		path:     path,
		insights: make(map[string]domain.Insight),
	}
	if err := loadJSON(path, &s.insights); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *InsightFileStore) Save(ctx context.Context, insight domain.Insight) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.insights[insight.UserID] = insight
	if err := atomicWriteJSON(s.path, s.insights); err != nil {
		log.Printf("[store] warning: failed to persist insights: %v", err)
	}
	return nil
}

func (s *InsightFileStore) Latest(ctx context.Context, userID string) (*domain.Insight, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	insight, ok := s.insights[userID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &insight, nil
}

// Close flushes the store to disk.
func (s *InsightFileStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return atomicWriteJSON(s.path, s.insights)
}

// loadJSON reads a JSON document into v. A missing or empty file leaves
// v untouched.
func loadJSON(path string, v any) error {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	defer file.Close()

	if err := json.NewDecoder(file).Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}
	return nil
}

// atomicWriteJSON writes v to path via a temp file, fsync, and rename.
func atomicWriteJSON(path string, v any) error {
	tempFile := path + ".tmp"
	f, err := os.Create(tempFile)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		f.Close()
		os.Remove(tempFile)
		return err
	}

	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(tempFile)
		return err
	}

	if err := f.Close(); err != nil {
		os.Remove(tempFile)
		return err
	}

	return os.Rename(tempFile, path)
}

// Compile-time assertions
var _ SleepLogRepository = (*SleepLogFileStore)(nil)
var _ InsightRepository = (*InsightFileStore)(nil)
