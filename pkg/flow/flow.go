package flow

import (
	"time"

	"github.com/google/uuid"
)

type Flow[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	failure   Failure
	isSuccess bool
}

func Success[T any](value T) Flow[T] {
	return Flow[T]{
		value:     value,
		isSuccess: true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Failed expects a non-nil failure; a nil one is reported by Err as an
// unexpected failure.
func Failed[T any](failure Failure) Flow[T] {
	return Flow[T]{
		failure:   failure,
		isSuccess: false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// FailedFrom moves a failure onto a flow of another type, keeping its identity.
func FailedFrom[In, Out any](from Flow[In]) Flow[Out] {
	return Flow[Out]{
		failure:   from.failure,
		isSuccess: from.isSuccess,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

func (f Flow[T]) Value() T {
	return f.value
}

func (f Flow[T]) GetValueOr(defaultValue T) T {
	if f.isSuccess {
		return f.value
	}
	return defaultValue
}

// Failure returns nil on success.
func (f Flow[T]) Failure() Failure {
	return f.failure
}

func (f Flow[T]) IsSuccess() bool {
	return f.isSuccess
}

func (f Flow[T]) IsFailure() bool {
	return !f.isSuccess
}

// Err renders the failure as an error, or nil on success. A failed flow
// without a failure, including the zero Flow, yields an error marked
// errUnexpectedFailure.
func (f Flow[T]) Err() error {
	if f.isSuccess {
		return nil
	}
	if f.failure == nil {
		return errMissingFailure()
	}
	return AsError(f.failure)
}

func (f Flow[T]) CreatedAt() time.Time {
	return f.createdAt
}

func (f Flow[T]) Id() uuid.UUID {
	return f.id
}
