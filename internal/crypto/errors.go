package crypto

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidLength          = errors.New("invalid password length")
	ErrLengthTooLarge         = errors.New("password length is too large")
	ErrNoCharacterSetsEnabled = errors.New("at least one character set must be enabled")
	ErrInvalidWordCount       = errors.New("invalid word count")
	ErrWordCountTooLarge      = errors.New("word count is too large")
	ErrInvalidGenerationCount = errors.New("invalid generation count")
)

// ValidationError carries the offending value of a rejected parameter.
// It unwraps to one of the sentinel errors above.
type ValidationError struct {
	Kind  error
	Value int
	Max   int
}

func (e *ValidationError) Error() string {
	if e.Max > 0 {
		return fmt.Sprintf("%s: %d (max: %d)", e.Kind, e.Value, e.Max)
	}
	return fmt.Sprintf("%s: %d", e.Kind, e.Value)
}

func (e *ValidationError) Unwrap() error {
	return e.Kind
}

// ValidateGenerationCount rejects batch sizes below one.
func ValidateGenerationCount(n int) error {
	if n < 1 {
		return &ValidationError{Kind: ErrInvalidGenerationCount, Value: n}
	}
	return nil
}

// IsValidationError reports whether err is one of the parameter validation
// failures of this package.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidLength) ||
		errors.Is(err, ErrLengthTooLarge) ||
		errors.Is(err, ErrNoCharacterSetsEnabled) ||
		errors.Is(err, ErrInvalidWordCount) ||
		errors.Is(err, ErrWordCountTooLarge) ||
		errors.Is(err, ErrInvalidGenerationCount)
}
