package core

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// LessonResult records the outcome of a single lesson within a run.
type LessonResult struct {
	ID       string        `json:"id"`
	Duration time.Duration `json:"duration_ns"`
	Error    string        `json:"error,omitempty"`
}

// Report describes one full run of the service.
type Report struct {
	RunID     string         `json:"run_id"`
	StartedAt time.Time      `json:"started_at"`
	Results   []LessonResult `json:"results"`
}

// Service runs lessons from a catalog in registration order.
type Service struct {
	catalog Catalog
	logger  *slog.Logger

	mu        sync.RWMutex
	lastRunID string
}

// NewService creates a new Service. A nil logger falls back to slog.Default.
func NewService(catalog Catalog, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{catalog: catalog, logger: logger}
}

// List returns the lessons matching pattern in registration order.
// An empty pattern matches every lesson.
func (s *Service) List(pattern string) ([]Lesson, error) {
	return s.catalog.Match(pattern)
}

// Run executes every lesson matching pattern against env, in
// registration order, and returns a report with per-lesson timings.
//
// A failing lesson aborts the run; the partial report is returned
// alongside the wrapped error. Lessons that merely demonstrate error
// handling report those errors as output and do not fail the run.
func (s *Service) Run(ctx context.Context, pattern string, env *Env) (*Report, error) {
	if env == nil || env.Out == nil {
		return nil, errors.New("run environment requires an output writer")
	}

	matched, err := s.catalog.Match(pattern)
	if err != nil {
		return nil, err
	}

	report := &Report{
		RunID:     uuid.NewString(),
		StartedAt: time.Now(),
	}
	s.setLastRun(report.RunID)

	for _, lesson := range matched {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		fmt.Fprintf(env.Out, "\n=== %s ===\n", lesson.Title)

		start := time.Now()
		runErr := lesson.Run(ctx, env)
		result := LessonResult{ID: lesson.ID, Duration: time.Since(start)}
		if runErr != nil {
			result.Error = runErr.Error()
		}
		report.Results = append(report.Results, result)

		if runErr != nil {
			return report, fmt.Errorf("lesson %s: %w", lesson.ID, runErr)
		}

		s.logger.Debug("lesson completed", "id", lesson.ID, "duration", result.Duration)
	}

	return report, nil
}

func (s *Service) setLastRun(id string) {
	s.mu.Lock()
	s.lastRunID = id
	s.mu.Unlock()
}
