package validated

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
)

// FromValidator carries the result of validator.Struct(value) into a Validated.
// Field errors become CauseValidation entries; anything else the validator
// returned is treated as a CauseSystemError.
func FromValidator[T any](value T, err error) Validated[T] {
	if err == nil {
		return Valid(value)
	}

	entries := make([]InvalidEntry, 0)
	for _, e := range getErrors(err) {
		var fieldErrs validator.ValidationErrors
		if errors.As(e, &fieldErrs) {
			for _, fe := range fieldErrs {
				entries = append(entries, fromFieldError(fe))
			}
			continue
		}
		entries = append(entries, NewInvalidEntry(e.Error(), "", "", "", CauseSystemError))
	}

	v, buildErr := InvalidFrom[T](entries)
	if buildErr != nil {
		// an empty ValidationErrors slice still signals failure
		return Invalid[T](NewInvalidEntry(err.Error(), "", "", "", CauseSystemError))
	}
	return v
}

func fromFieldError(fe validator.FieldError) InvalidEntry {
	return NewInvalidEntry(
		fmt.Sprintf("%s failed on the '%s' rule", fe.Field(), fe.Tag()),
		fe.Namespace(),
		fe.StructField(),
		fe.Field(),
		CauseValidation,
	)
}

func getErrors(err error) []error {
	if err == nil {
		return []error{}
	}

	e, ok := err.(interface{ Unwrap() []error })
	if ok {
		return e.Unwrap()
	}

	return []error{err}
}
