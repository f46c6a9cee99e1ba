package domain

import "errors"

var (
	// ErrInvalidInput marks input rejected before it reaches the form pipeline.
	ErrInvalidInput = errors.New("invalid input")
	// ErrPostcondition marks a computed form that violates a sign or balance invariant.
	ErrPostcondition = errors.New("form postcondition violated")
	// ErrNegativeDisallowedLoss is reported when an EBL or NOL magnitude comes out negative.
	ErrNegativeDisallowedLoss = errors.New("disallowed loss reported as negative")
)
