// Package validated holds the outcome of a field-level validation pass: either
// a valid value or a non-empty, ordered set of InvalidEntry failures.
//
// It does not validate anything itself. Constructors only carry results that
// were computed elsewhere (see FromValidator for the go-playground bridge).
//
// Highlights:
// - Valid/Invalid/InvalidFrom: construct Validated[T]
// - IsValid/GetValueOr/Failures: read-only accessors
// - CauseType: why an entry failed (Validation vs SystemError)
package validated
