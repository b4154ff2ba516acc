package domain

// Default booking policy values, overridable via config.toml.
const (
	DefaultSlotDurationMinutes        = 30
	DefaultAppointmentDurationMinutes = 60
	DefaultMinNoticeMinutes           = 60
	DefaultAdvanceBookingDays         = 0 // 0 = unlimited
)

// Business validation constants
const (
	MaxNameLength               = 200
	MaxPhoneLength              = 20
	MaxEmailLength              = 120
	MaxDescriptionLength        = 2000
	MaxMessageLength            = 5000
	MaxCancellationReasonLength = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses lists statuses that free up the appointment's slot.
var InactiveStatuses = []AppointmentStatus{
	StatusCancelled,
}

// ActiveStatuses lists statuses that keep the slot occupied.
var ActiveStatuses = []AppointmentStatus{
	StatusPending,
	StatusConfirmed,
	StatusCompleted,
}
