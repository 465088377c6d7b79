package pipeline

import (
	"errors"
	"sync/atomic"
)

// ErrNoResult indicates that no computation has been stored yet.
var ErrNoResult = errors.New("pipeline: no computation has been performed yet")

// Store holds the most recent Result. The zero value is empty and ready to use.
type Store struct {
	current atomic.Pointer[Result]
}

// Swap publishes r as the latest result and returns the previous one (nil if none).
func (s *Store) Swap(r *Result) *Result {
	return s.current.Swap(r)
}

// Load returns the latest result, or ErrNoResult.
func (s *Store) Load() (*Result, error) {
	r := s.current.Load()
	if r == nil {
		return nil, ErrNoResult
	}

	return r, nil
}
