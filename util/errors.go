package util

import (
	"errors"
)

// ErrorCollector accumulates errors so that a validation pass can report every problem at once instead of stopping
// at the first.
type ErrorCollector interface {
	Add(err error)
	Len() int
	Combined() error
}

type errorCollector struct {
	errors []error
}

func NewErrorCollector() ErrorCollector {
	return &errorCollector{}
}

// Add records the error. Nil errors are ignored so callers may pass results through unconditionally.
func (s *errorCollector) Add(err error) {
	if err != nil {
		s.errors = append(s.errors, err)
	}
}

func (s *errorCollector) Len() int {
	return len(s.errors)
}

func (s *errorCollector) Combined() error {
	if len(s.errors) > 0 {
		return errors.Join(s.errors...)
	}

	return nil
}
