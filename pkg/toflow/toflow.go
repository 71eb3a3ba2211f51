package toflow

import (
	"context"
	"fmt"
	"slices"

	"github.com/ib-77/ropflow/pkg/flow"
	"github.com/ib-77/ropflow/pkg/validated"
)

// Convert maps a validated outcome onto a flow. It never fails.
//
// The zero Validated (invalid, no failures) yields a retryable failure with
// a count of 0.
func Convert[T any](v validated.Validated[T]) flow.Flow[T] {
	if v.IsValid() {
		var zero T
		return flow.Success(v.GetValueOr(zero))
	}

	failures := v.Failures()

	entries := make([]flow.InvalidEntry, 0, len(failures))
	for _, f := range failures {
		entries = append(entries, flow.InvalidEntry{
			Message:     f.Message,
			Path:        f.Path,
			FieldName:   f.FieldName,
			DisplayName: f.DisplayName,
			Cause:       f.Cause.String(),
		})
	}

	hasError := slices.ContainsFunc(failures, func(f validated.InvalidEntry) bool {
		return !f.Cause.IsValidation()
	})

	return flow.Failed[T](flow.NewInvalidEntryFailure(entries,
		fmt.Sprintf("Validation failed with %d error(s)", len(failures)), nil, 0, !hasError))
}

// ConvertAsync converts every outcome received on in, in order, and closes
// the returned channel once in is closed. A producer that closes without
// sending yields a closed, empty channel. ctx only guards the send so the
// stage does not outlive an abandoned consumer.
func ConvertAsync[T any](ctx context.Context, in <-chan validated.Validated[T]) <-chan flow.Flow[T] {
	out := make(chan flow.Flow[T])

	go func() {
		defer close(out)

		for v := range in {
			select {
			case out <- Convert(v):
			case <-ctx.Done():
				return
			}
		}
	}()

	return out
}
