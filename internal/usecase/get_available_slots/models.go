package get_available_slots

import (
	"time"

	"github.com/sanbud-pl/booking-service/pkg/types"
)

// Request asks for the bookable slots on a single date.
type Request struct {
	Date time.Time // date only, time part ignored
}

// Response carries the generated slot list for the date.
type Response struct {
	Date  time.Time
	Slots []Slot
}

// Slot is a single bookable time window.
type Slot struct {
	StartTime       types.TimeString
	DurationMinutes int
	Available       bool
}

// Policy bundles the booking policy values from configuration.
type Policy struct {
	SlotDurationMinutes        int
	AppointmentDurationMinutes int
	MinNoticeMinutes           int
	AdvanceBookingDays         int // 0 = unlimited
}
