package questionset

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidQuestionSet is wrapped by every structural load error.
var ErrInvalidQuestionSet = errors.New("invalid question set")

// ConfigError lists every structural problem found in a document.
type ConfigError struct {
	Source   string
	Problems []string
}

func (e *ConfigError) Error() string {
	head := "question set validation failed"
	if e.Source != "" {
		head = fmt.Sprintf("%s (%s)", head, e.Source)
	}
	return fmt.Sprintf("%s:\n  %s", head, strings.Join(e.Problems, "\n  "))
}

func (e *ConfigError) Unwrap() error { return ErrInvalidQuestionSet }
