package submit_contact

import "errors"

var (
	// ErrInvalidInput is returned for malformed request data.
	ErrInvalidInput = errors.New("submit_contact: invalid input data")

	// ErrInternal is returned for internal use case failures.
	ErrInternal = errors.New("submit_contact: internal error")
)
