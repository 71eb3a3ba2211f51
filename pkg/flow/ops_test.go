package flow

import (
	"context"
	"errors"
	"strconv"
	"testing"
)

func TestSwitch(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := Switch(ctx, Success(3), func(ctx context.Context, n int) Flow[string] {
		return Success(strconv.Itoa(n * 2))
	})
	if !out.IsSuccess() || out.Value() != "6" {
		t.Fatalf("expected success 6, got success=%v value=%q", out.IsSuccess(), out.Value())
	}

	failed := Failed[int](NewGeneralFailure("boom", nil, 0, false, nil))
	called := false
	out = Switch(ctx, failed, func(ctx context.Context, n int) Flow[string] {
		called = true
		return Success("x")
	})
	if called {
		t.Fatalf("onSuccess should not be called on failure")
	}
	if out.IsSuccess() || out.Id() != failed.Id() || out.Failure().Reason() != "boom" {
		t.Fatalf("expected failure to pass through, got %+v", out)
	}
}

func TestMap(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := Map(ctx, Success(2), func(ctx context.Context, n int) int { return n * 100 })
	if out.Value() != 200 {
		t.Fatalf("expected 200, got %d", out.Value())
	}

	out = Map(ctx, Failed[int](NewTaskCancellationFailure("stop", context.Canceled, false)),
		func(ctx context.Context, n int) int { return n })
	if out.IsSuccess() || out.Failure().Kind() != KindTaskCancellation {
		t.Fatalf("expected cancellation to pass through, got %+v", out)
	}
}

func TestTry(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := Try(ctx, Success("12"), func(ctx context.Context, s string) (int, error) {
		return strconv.Atoi(s)
	})
	if !out.IsSuccess() || out.Value() != 12 {
		t.Fatalf("expected 12, got %+v", out)
	}

	out = Try(ctx, Success("x"), func(ctx context.Context, s string) (int, error) {
		return strconv.Atoi(s)
	})
	if out.IsSuccess() || out.Failure().Kind() != KindGeneral {
		t.Fatalf("expected general failure, got %+v", out)
	}

	out = Try(ctx, Success("x"), func(ctx context.Context, s string) (int, error) {
		return 0, context.DeadlineExceeded
	})
	if out.Failure().Kind() != KindTaskCancellation {
		t.Fatalf("expected cancellation failure, got %v", out.Failure().Kind())
	}
}

func TestTee(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	var seen int
	var seenFailure Failure

	in := Success(7)
	out := Tee(ctx, in, func(ctx context.Context, n int) { seen = n }, nil)
	if seen != 7 || out.Id() != in.Id() {
		t.Fatalf("expected side effect with 7 and unchanged flow")
	}

	failed := Failed[int](NewGeneralFailure("boom", errors.New("x"), 0, false, nil))
	Tee(ctx, failed, nil, func(ctx context.Context, f Failure) { seenFailure = f })
	if seenFailure == nil || seenFailure.Reason() != "boom" {
		t.Fatalf("expected failure side effect, got %v", seenFailure)
	}
}

func TestFinally(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	onSuccess := func(ctx context.Context, n int) string { return "ok:" + strconv.Itoa(n) }
	onFailure := func(ctx context.Context, f Failure) string { return "fail:" + f.Kind().String() }

	if got := Finally(ctx, Success(1), onSuccess, onFailure); got != "ok:1" {
		t.Fatalf("expected ok:1, got %q", got)
	}
	failed := Failed[int](NewInvalidEntryFailure(nil, "r", nil, 0, true))
	if got := Finally(ctx, failed, onSuccess, onFailure); got != "fail:InvalidEntry" {
		t.Fatalf("expected fail:InvalidEntry, got %q", got)
	}
}
