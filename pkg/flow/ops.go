package flow

import "context"

func Switch[In any, Out any](ctx context.Context,
	input Flow[In],
	onSuccess func(ctx context.Context, r In) Flow[Out]) Flow[Out] {

	if input.IsSuccess() {
		return onSuccess(ctx, input.Value())
	}
	return FailedFrom[In, Out](input)
}

func Map[In any, Out any](ctx context.Context,
	input Flow[In],
	onSuccess func(ctx context.Context, r In) Out) Flow[Out] {

	if input.IsSuccess() {
		return Success(onSuccess(ctx, input.Value()))
	}
	return FailedFrom[In, Out](input)
}

func Try[In any, Out any](ctx context.Context,
	input Flow[In],
	onTryExecute func(ctx context.Context, r In) (Out, error)) Flow[Out] {

	if input.IsSuccess() {
		out, err := onTryExecute(ctx, input.Value())
		if err != nil {
			return Failed[Out](FailureFromError(err))
		}
		return Success(out)
	}
	return FailedFrom[In, Out](input)
}

func Tee[T any](ctx context.Context,
	input Flow[T],
	onSuccess func(ctx context.Context, r T),
	onFailure func(ctx context.Context, f Failure)) Flow[T] {

	if input.IsSuccess() {
		if onSuccess != nil {
			onSuccess(ctx, input.Value())
		}
	} else if onFailure != nil {
		onFailure(ctx, input.Failure())
	}

	return input
}

// Finally collapses a flow into a single value.
func Finally[In, Out any](ctx context.Context, input Flow[In],
	onSuccess func(ctx context.Context, r In) Out,
	onFailure func(ctx context.Context, f Failure) Out) Out {

	if input.IsSuccess() {
		return onSuccess(ctx, input.Value())
	}
	return onFailure(ctx, input.Failure())
}
