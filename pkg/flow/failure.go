package flow

import (
	"maps"
	"time"
)

type Kind int

const (
	KindInvalidEntry Kind = iota + 1
	KindGeneral
	KindTaskCancellation
)

func (k Kind) String() string {
	switch k {
	case KindInvalidEntry:
		return "InvalidEntry"
	case KindGeneral:
		return "General"
	case KindTaskCancellation:
		return "TaskCancellation"
	default:
		return "Unknown"
	}
}

// Failure is the closed set of reasons a Flow can fail. Only types in this
// package implement it.
type Failure interface {
	Kind() Kind
	Reason() string
	Exception() error
	SubTypeID() int
	CanRetry() bool
	OccurredAt() time.Time
	Details() map[string]string
	Error() string

	isFailure()
}

// InvalidEntry is one field-level problem carried by an InvalidEntryFailure.
type InvalidEntry struct {
	Message     string
	Path        string
	FieldName   string
	DisplayName string
	Cause       string
}

type base struct {
	reason     string
	exception  error
	subTypeID  int
	canRetry   bool
	occurredAt time.Time
	details    map[string]string
}

func newBase(reason string, exception error, subTypeID int, canRetry bool, details map[string]string) base {
	d := make(map[string]string, len(details))
	maps.Copy(d, details)

	return base{
		reason:     reason,
		exception:  exception,
		subTypeID:  subTypeID,
		canRetry:   canRetry,
		occurredAt: time.Now().UTC(),
		details:    d,
	}
}

func (b base) Reason() string        { return b.reason }
func (b base) Exception() error      { return b.exception }
func (b base) SubTypeID() int        { return b.subTypeID }
func (b base) CanRetry() bool        { return b.canRetry }
func (b base) OccurredAt() time.Time { return b.occurredAt }

func (b base) Details() map[string]string {
	return maps.Clone(b.details)
}

func (b base) Error() string {
	if b.exception != nil {
		return b.reason + ": " + b.exception.Error()
	}
	return b.reason
}

func (base) isFailure() {}

// InvalidEntryFailure reports one or more known field-level problems.
type InvalidEntryFailure struct {
	base
	entries []InvalidEntry
}

func NewInvalidEntryFailure(entries []InvalidEntry, reason string, exception error,
	subTypeID int, canRetry bool) InvalidEntryFailure {

	e := make([]InvalidEntry, len(entries))
	copy(e, entries)

	return InvalidEntryFailure{
		base:    newBase(reason, exception, subTypeID, canRetry, nil),
		entries: e,
	}
}

func (InvalidEntryFailure) Kind() Kind { return KindInvalidEntry }

func (f InvalidEntryFailure) InvalidEntries() []InvalidEntry {
	out := make([]InvalidEntry, len(f.entries))
	copy(out, f.entries)
	return out
}

// GeneralFailure wraps an unexpected error.
type GeneralFailure struct {
	base
}

func NewGeneralFailure(reason string, exception error, subTypeID int, canRetry bool,
	details map[string]string) GeneralFailure {
	return GeneralFailure{base: newBase(reason, exception, subTypeID, canRetry, details)}
}

func (GeneralFailure) Kind() Kind { return KindGeneral }

// TaskCancellationFailure is produced when the surrounding context was
// canceled or timed out.
type TaskCancellationFailure struct {
	base
}

func NewTaskCancellationFailure(reason string, exception error, canRetry bool) TaskCancellationFailure {
	return TaskCancellationFailure{base: newBase(reason, exception, 0, canRetry, nil)}
}

func (TaskCancellationFailure) Kind() Kind { return KindTaskCancellation }
