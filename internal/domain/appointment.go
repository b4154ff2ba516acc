package domain

import (
	"time"

	"github.com/sanbud-pl/booking-service/pkg/types"
)

// AppointmentStatus represents the lifecycle state of an appointment.
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
)

// ParseAppointmentStatus validates a status string coming from the API.
func ParseAppointmentStatus(s string) (AppointmentStatus, bool) {
	switch AppointmentStatus(s) {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return AppointmentStatus(s), true
	default:
		return "", false
	}
}

// Appointment represents a scheduled visit at the customer's address.
type Appointment struct {
	ID              int64
	PublicRef       string // UUID exposed to clients instead of the numeric ID
	CustomerID      int64
	Service         ServiceType
	ScheduledDate   time.Time
	ScheduledTime   types.TimeString
	DurationMinutes int
	Status          AppointmentStatus

	// Denormalized customer data for listings and calendar exports
	CustomerName  string
	CustomerPhone string
	CustomerEmail *string

	Address     *string
	Description *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true while the appointment still occupies its slot.
func (a *Appointment) IsActive() bool {
	return a.Status != StatusCancelled
}

// CanBeCancelled returns true if the appointment can still be cancelled.
func (a *Appointment) CanBeCancelled() bool {
	return a.Status == StatusPending || a.Status == StatusConfirmed
}

// CanTransitionTo validates an admin status change.
// pending → confirmed → completed, and pending/confirmed → cancelled.
func (a *Appointment) CanTransitionTo(next AppointmentStatus) bool {
	switch next {
	case StatusConfirmed:
		return a.Status == StatusPending
	case StatusCompleted:
		return a.Status == StatusConfirmed
	case StatusCancelled:
		return a.CanBeCancelled()
	case StatusPending:
		return false
	default:
		return false
	}
}

// AppointmentsFilter narrows admin appointment listings.
type AppointmentsFilter struct {
	StartDate       *time.Time
	EndDate         *time.Time
	Status          *AppointmentStatus
	IncludeInactive bool
}
