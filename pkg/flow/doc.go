// Package flow defines Flow[T], the pipeline-wide result type: either a
// success value or a Failure drawn from a closed set of variants
// (InvalidEntryFailure, GeneralFailure, TaskCancellationFailure).
//
// It also carries the small set of rail operations used around it:
// Map, Switch, Try, Tee and Finally.
package flow
