package create_appointment

import (
	"time"

	"github.com/sanbud-pl/booking-service/pkg/types"
)

// Request carries a booking form submission.
type Request struct {
	Name        string
	Phone       string
	Email       *string
	Service     string
	Date        time.Time
	StartTime   types.TimeString
	Address     *string
	Description *string
}

// Response mirrors the created appointment.
type Response struct {
	ID              int64
	PublicRef       string
	Service         string
	Date            time.Time
	StartTime       types.TimeString
	DurationMinutes int
	Status          string
	CustomerName    string
	CustomerPhone   string
	CustomerEmail   *string
	Address         *string
	Description     *string
	CreatedAt       time.Time
}

// Policy bundles the booking policy values from configuration.
type Policy struct {
	SlotDurationMinutes        int
	AppointmentDurationMinutes int
	MinNoticeMinutes           int
	AdvanceBookingDays         int // 0 = unlimited
}
