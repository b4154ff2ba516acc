package messages

import "errors"

var (
	// ErrMessageNotFound is returned when the message does not exist.
	ErrMessageNotFound = errors.New("message not found")

	// ErrInvalidInput is returned for malformed request data.
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned for internal service failures.
	ErrInternal = errors.New("service: internal error")
)
