package domain

import "errors"

var (
	// ErrInvalidValue indicates a string that is not a member of the enum it
	// was parsed as.
	ErrInvalidValue = errors.New("invalid value")

	// ErrMalformedAnswers indicates an answer combination that violates the
	// module-rule gating invariant.
	ErrMalformedAnswers = errors.New("malformed answers")
)
