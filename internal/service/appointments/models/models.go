package models

import (
	"errors"
	"time"

	"github.com/sanbud-pl/booking-service/internal/domain"
)

var (
	// ErrInvalidStatus is returned for an unknown status string.
	ErrInvalidStatus = errors.New("invalid appointment status")
)

// Request models

// ListAppointmentsRequest narrows the admin appointment listing.
type ListAppointmentsRequest struct {
	StartDate       *time.Time `json:"startDate,omitempty"`
	EndDate         *time.Time `json:"endDate,omitempty"`
	Status          *string    `json:"status,omitempty"`
	IncludeInactive bool       `json:"includeInactive,omitempty"`
}

// ToDomainFilter converts the request into a domain filter.
func (r *ListAppointmentsRequest) ToDomainFilter() (domain.AppointmentsFilter, error) {
	filter := domain.AppointmentsFilter{
		StartDate:       r.StartDate,
		EndDate:         r.EndDate,
		IncludeInactive: r.IncludeInactive,
	}

	if r.Status != nil {
		status, ok := domain.ParseAppointmentStatus(*r.Status)
		if !ok {
			return filter, ErrInvalidStatus
		}
		filter.Status = &status
	}

	return filter, nil
}

// UpdateStatusRequest changes an appointment's lifecycle status.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// CancelAppointmentRequest cancels an appointment with a reason.
type CancelAppointmentRequest struct {
	CancellationReason string `json:"cancellationReason"`
}

// Response models

// AppointmentResponse is the admin-facing appointment DTO.
type AppointmentResponse struct {
	ID              int64  `json:"id"`
	PublicRef       string `json:"publicRef"`
	Service         string `json:"service"`
	ScheduledDate   string `json:"scheduledDate"` // "2025-10-15"
	ScheduledTime   string `json:"scheduledTime"` // "10:00"
	DurationMinutes int    `json:"durationMinutes"`
	Status          string `json:"status"`

	CustomerName  string  `json:"customerName"`
	CustomerPhone string  `json:"customerPhone"`
	CustomerEmail *string `json:"customerEmail,omitempty"`

	Address     *string `json:"address,omitempty"`
	Description *string `json:"description,omitempty"`

	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"` // ISO 8601

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AppointmentListResponse wraps a list of appointments.
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
}

// StatsResponse summarizes appointment counts for the admin dashboard.
type StatsResponse struct {
	Total     int `json:"total"`
	Pending   int `json:"pending"`
	Confirmed int `json:"confirmed"`
	Completed int `json:"completed"`
	Cancelled int `json:"cancelled"`
}

// Conversion helpers

// FromDomainAppointment converts the domain model into a DTO.
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	if a == nil {
		return nil
	}

	resp := &AppointmentResponse{
		ID:              a.ID,
		PublicRef:       a.PublicRef,
		Service:         a.Service.String(),
		ScheduledDate:   a.ScheduledDate.Format(domain.DateFormat),
		ScheduledTime:   a.ScheduledTime.String(),
		DurationMinutes: a.DurationMinutes,
		Status:          string(a.Status),
		CustomerName:    a.CustomerName,
		CustomerPhone:   a.CustomerPhone,
		CustomerEmail:   a.CustomerEmail,
		Address:         a.Address,
		Description:     a.Description,

		CancellationReason: a.CancellationReason,
		CreatedAt:          a.CreatedAt,
		UpdatedAt:          a.UpdatedAt,
	}

	if a.CancelledAt != nil {
		cancelledStr := a.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}

// FromDomainAppointmentList converts a list of domain models into DTOs.
func FromDomainAppointmentList(appointments []*domain.Appointment) *AppointmentListResponse {
	resp := &AppointmentListResponse{
		Appointments: make([]AppointmentResponse, 0, len(appointments)),
	}

	for _, appt := range appointments {
		if dto := FromDomainAppointment(appt); dto != nil {
			resp.Appointments = append(resp.Appointments, *dto)
		}
	}

	return resp
}

// FromStatusCounts converts a status count map into the stats DTO.
func FromStatusCounts(counts map[domain.AppointmentStatus]int) *StatsResponse {
	resp := &StatsResponse{
		Pending:   counts[domain.StatusPending],
		Confirmed: counts[domain.StatusConfirmed],
		Completed: counts[domain.StatusCompleted],
		Cancelled: counts[domain.StatusCancelled],
	}
	resp.Total = resp.Pending + resp.Confirmed + resp.Completed + resp.Cancelled
	return resp
}
