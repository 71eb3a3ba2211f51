package flowlog

import (
	"context"

	"github.com/ib-77/ropflow/pkg/flow"
	"go.uber.org/zap"
)

const (
	FieldKind       = "kind"
	FieldReason     = "reason"
	FieldCanRetry   = "can_retry"
	FieldSubTypeID  = "sub_type_id"
	FieldOccurredAt = "occurred_at"
	FieldEntryCount = "entry_count"
	FieldDetails    = "details"
	FieldFlowID     = "flow_id"
	FieldPath       = "path"
	FieldFieldName  = "field_name"
	FieldCause      = "cause"
)

// Fields describes f as structured log fields.
func Fields(f flow.Failure) []zap.Field {
	if f == nil {
		return nil
	}

	fields := []zap.Field{
		zap.Stringer(FieldKind, f.Kind()),
		zap.String(FieldReason, f.Reason()),
		zap.Bool(FieldCanRetry, f.CanRetry()),
		zap.Int(FieldSubTypeID, f.SubTypeID()),
		zap.Time(FieldOccurredAt, f.OccurredAt()),
	}

	if ie, ok := f.(flow.InvalidEntryFailure); ok {
		fields = append(fields, zap.Int(FieldEntryCount, len(ie.InvalidEntries())))
	}
	if ex := f.Exception(); ex != nil {
		fields = append(fields, zap.Error(ex))
	}
	if d := f.Details(); len(d) > 0 {
		fields = append(fields, zap.Any(FieldDetails, d))
	}

	return fields
}

// Tee logs input and returns it unchanged: failures at Warn, with one Debug
// line per invalid entry, successes at Debug.
func Tee[T any](ctx context.Context, logger *zap.Logger, input flow.Flow[T]) flow.Flow[T] {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.With(zap.Stringer(FieldFlowID, input.Id()))

	return flow.Tee(ctx, input,
		func(ctx context.Context, r T) {
			logger.Debug("flow succeeded")
		},
		func(ctx context.Context, f flow.Failure) {
			logger.Warn("flow failed", Fields(f)...)

			ie, ok := f.(flow.InvalidEntryFailure)
			if !ok {
				return
			}
			for _, e := range ie.InvalidEntries() {
				logger.Debug(e.Message,
					zap.String(FieldPath, e.Path),
					zap.String(FieldFieldName, e.FieldName),
					zap.String(FieldCause, e.Cause))
			}
		})
}
