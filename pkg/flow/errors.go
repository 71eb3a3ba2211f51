package flow

import (
	"context"

	"github.com/cockroachdb/errors"
)

// Sentinels marking the error form of each failure kind. Use errors.Is.
var (
	ErrInvalidEntry      = errors.New("invalid entry")
	ErrGeneral           = errors.New("general failure")
	ErrTaskCancellation  = errors.New("task cancelled")
	errUnexpectedFailure = errors.New("unexpected failure")
)

// AsError renders a Failure as an error marked with its kind sentinel.
// Invalid entries are attached as details.
func AsError(f Failure) error {
	if f == nil {
		return nil
	}

	var err error
	if ex := f.Exception(); ex != nil {
		err = errors.Wrap(ex, f.Reason())
	} else {
		err = errors.New(f.Reason())
	}

	switch v := f.(type) {
	case InvalidEntryFailure:
		for _, e := range v.InvalidEntries() {
			err = errors.WithDetailf(err, "%s (%s): %s", e.Path, e.Cause, e.Message)
		}
		return errors.Mark(err, ErrInvalidEntry)
	case GeneralFailure:
		return errors.Mark(err, ErrGeneral)
	case TaskCancellationFailure:
		return errors.Mark(err, ErrTaskCancellation)
	default:
		return errors.Mark(err, errUnexpectedFailure)
	}
}

func errMissingFailure() error {
	return errors.Mark(errors.New("flow failed without a failure"), errUnexpectedFailure)
}

// FailureFromError classifies err: context cancellation and deadlines become
// TaskCancellationFailure, anything else a non-retryable GeneralFailure.
func FailureFromError(err error) Failure {
	if IsCancellationError(err) {
		return NewTaskCancellationFailure("operation cancelled", err, false)
	}
	return NewGeneralFailure("operation failed", err, 0, false, nil)
}

func IsCancellationError(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)
}
