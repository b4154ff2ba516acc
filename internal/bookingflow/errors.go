package bookingflow

import "errors"

var (
	// ErrWrongStep is returned when an action does not apply to the
	// current step. The machine state is left unchanged.
	ErrWrongStep = errors.New("bookingflow: action not allowed in current step")

	// ErrDateInPast is returned when the selected date is before today.
	ErrDateInPast = errors.New("bookingflow: date is in the past")

	// ErrDateClosed is returned when the company is closed on the
	// selected weekday.
	ErrDateClosed = errors.New("bookingflow: company is closed on this date")

	// ErrSlotUnavailable is returned when the selected slot is occupied
	// or unknown. The machine stays in the time step.
	ErrSlotUnavailable = errors.New("bookingflow: slot is not available")

	// ErrMissingFields is returned when a required contact field is empty
	// at submission time.
	ErrMissingFields = errors.New("bookingflow: required fields missing")

	// ErrSubmitInFlight is returned when Submit is called while a
	// previous submission is still outstanding.
	ErrSubmitInFlight = errors.New("bookingflow: submission already in progress")

	// ErrSubmitFailed wraps submitter failures. The draft is preserved
	// so the user can retry without re-entering data.
	ErrSubmitFailed = errors.New("bookingflow: submission failed")

	// ErrSlotsUnavailable wraps slot provider failures during date selection.
	ErrSlotsUnavailable = errors.New("bookingflow: failed to load slots")
)
