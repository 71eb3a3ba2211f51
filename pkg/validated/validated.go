package validated

import (
	"github.com/cockroachdb/errors"
)

// InvalidEntry describes a single field that failed validation.
type InvalidEntry struct {
	Message     string
	Path        string
	FieldName   string
	DisplayName string
	Cause       CauseType
}

func NewInvalidEntry(message, path, fieldName, displayName string, cause CauseType) InvalidEntry {
	return InvalidEntry{
		Message:     message,
		Path:        path,
		FieldName:   fieldName,
		DisplayName: displayName,
		Cause:       cause,
	}
}

// Validated is either a valid value or a non-empty list of failures.
// The zero value is invalid and carries no failures.
type Validated[T any] struct {
	value    T
	failures []InvalidEntry
	isValid  bool
}

func Valid[T any](value T) Validated[T] {
	return Validated[T]{
		value:   value,
		isValid: true,
	}
}

func Invalid[T any](first InvalidEntry, rest ...InvalidEntry) Validated[T] {
	failures := make([]InvalidEntry, 0, len(rest)+1)
	failures = append(failures, first)
	failures = append(failures, rest...)

	return Validated[T]{failures: failures}
}

// InvalidFrom builds an invalid outcome from a slice that must not be empty.
func InvalidFrom[T any](entries []InvalidEntry) (Validated[T], error) {
	if len(entries) == 0 {
		return Validated[T]{}, errors.AssertionFailedf("invalid outcome requires at least one entry")
	}
	return Invalid[T](entries[0], entries[1:]...), nil
}

func (v Validated[T]) IsValid() bool {
	return v.isValid
}

func (v Validated[T]) GetValueOr(defaultValue T) T {
	if v.isValid {
		return v.value
	}
	return defaultValue
}

// Failures returns a copy of the failures in their original order.
func (v Validated[T]) Failures() []InvalidEntry {
	out := make([]InvalidEntry, len(v.failures))
	copy(out, v.failures)
	return out
}
