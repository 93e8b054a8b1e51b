package log

import (
	"cmp"
	"context"
	"sync"

	"golang.org/x/exp/slices"
)

// MemorySink keeps every warning it receives.
type MemorySink struct {
	mu       sync.Mutex
	warnings []Warning
}

func NewMemorySink() *MemorySink {
	return &MemorySink{}
}

func (s *MemorySink) Send(_ context.Context, w *Warning) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.warnings = append(s.warnings, *w)
	return nil
}

// Warnings returns the received warnings in the order they were logged.
func (s *MemorySink) Warnings() []Warning {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := slices.Clone(s.warnings)
	slices.SortStableFunc(out, func(a, b Warning) int {
		return cmp.Compare(a.Seq, b.Seq)
	})
	return out
}
