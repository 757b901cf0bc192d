package core

import (
	"github.com/aretw0/introspection"
)

// ServiceState exposes internal state for observability.
type ServiceState struct {
	Lessons   int    `json:"lessons"`
	LastRunID string `json:"last_run_id"`
}

// State implements introspection.Introspectable.
func (s *Service) State() any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	if s.catalog != nil {
		count = len(s.catalog.All())
	}

	return ServiceState{
		Lessons:   count,
		LastRunID: s.lastRunID,
	}
}

// ComponentType implements introspection.Component.
func (s *Service) ComponentType() string {
	return "runner"
}

var _ introspection.Introspectable = (*Service)(nil)
var _ introspection.Component = (*Service)(nil)
