package mocks

import (
	"salas/infras/otel"
	"sync"
)

// Scope records what was traced on it so tests can assert on spans without an exporter.
type Scope struct {
	mu         sync.Mutex
	Attributes map[string]any
	Events     []string
	Errors     []error
	Ended      bool
}

func NewScope() *Scope {
	return &Scope{Attributes: map[string]any{}}
}

var _ otel.Scope = (*Scope)(nil)

func (s *Scope) End() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Ended = true
}

func (s *Scope) TraceError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Errors = append(s.Errors, err)
}

func (s *Scope) TraceIfError(err error) {
	if err != nil {
		s.TraceError(err)
	}
}

func (s *Scope) AddEvent(name string, _ map[string]any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Events = append(s.Events, name)
}

func (s *Scope) SetAttribute(key string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Attributes[key] = value
}

func (s *Scope) SetAttributes(attributes map[string]any) {
	for key, value := range attributes {
		s.SetAttribute(key, value)
	}
}
