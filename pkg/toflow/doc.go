// Package toflow converts validation outcomes into flow outcomes.
//
// Valid values become flow.Success. Invalid outcomes become a flow.Failed
// carrying a single flow.InvalidEntryFailure that lists every failure in
// order, a "Validation failed with N error(s)" reason, and a retry flag that
// is true only when every failure was caused by validation.
package toflow
