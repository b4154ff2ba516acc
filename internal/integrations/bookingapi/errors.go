package bookingapi

import "errors"

var (
	// ErrRejected is returned when the API answered with success=false.
	// The server-provided reason is attached to the error text.
	ErrRejected = errors.New("bookingapi client: booking rejected")

	// ErrSlotTaken is returned when the chosen slot was booked by someone
	// else between slot listing and submission (HTTP 409).
	ErrSlotTaken = errors.New("bookingapi client: slot already taken")

	// ErrUnavailable is returned when the service cannot be reached or
	// answers with an unexpected status.
	ErrUnavailable = errors.New("bookingapi client: service unavailable")

	// ErrInternal is returned for request building failures.
	ErrInternal = errors.New("bookingapi client: internal error")

	// ErrInvalidResponse is returned when the response body cannot be decoded.
	ErrInvalidResponse = errors.New("bookingapi client: invalid response")
)
