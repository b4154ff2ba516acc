package create_appointment

import "errors"

var (
	// ErrInvalidInput is returned for malformed request data.
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrUnknownService is returned for a service name outside the
	// offered catalogue.
	ErrUnknownService = errors.New("create_appointment: unknown service")

	// ErrInvalidDate is returned when the requested date is in the past.
	ErrInvalidDate = errors.New("create_appointment: invalid date")

	// ErrDateTooFarInFuture is returned when the date exceeds the advance
	// booking window.
	ErrDateTooFarInFuture = errors.New("create_appointment: date is too far in the future")

	// ErrClosed is returned when the company is closed on the date.
	ErrClosed = errors.New("create_appointment: closed on this date")

	// ErrInvalidTimeSlot is returned when the start time is outside the
	// opening hours or not aligned to the slot grid.
	ErrInvalidTimeSlot = errors.New("create_appointment: invalid time slot")

	// ErrTooLateToBook is returned when the slot starts within the
	// minimum notice period.
	ErrTooLateToBook = errors.New("create_appointment: too late to book this slot")

	// ErrSlotNotAvailable is returned when the slot is already taken.
	ErrSlotNotAvailable = errors.New("create_appointment: slot is not available")

	// ErrInternal is returned for internal use case failures.
	ErrInternal = errors.New("create_appointment: internal error")
)
