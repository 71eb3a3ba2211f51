package validated

//go:generate go tool stringer -type=CauseType -linecomment

// CauseType classifies why an entry failed.
type CauseType int

const (
	CauseUnknown     CauseType = iota // Unknown
	CauseValidation                   // Validation
	CauseSystemError                  // SystemError
)

// IsValidation reports whether the cause is a business-rule violation,
// which callers may retry once the input is fixed.
func (c CauseType) IsValidation() bool {
	return c == CauseValidation
}
