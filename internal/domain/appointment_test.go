package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCanTransitionTo(t *testing.T) {
	cases := []struct {
		name    string
		from    AppointmentStatus
		to      AppointmentStatus
		allowed bool
	}{
		{"pending to confirmed", StatusPending, StatusConfirmed, true},
		{"confirmed to completed", StatusConfirmed, StatusCompleted, true},
		{"pending to cancelled", StatusPending, StatusCancelled, true},
		{"confirmed to cancelled", StatusConfirmed, StatusCancelled, true},
		{"pending to completed", StatusPending, StatusCompleted, false},
		{"completed to cancelled", StatusCompleted, StatusCancelled, false},
		{"cancelled to confirmed", StatusCancelled, StatusConfirmed, false},
		{"confirmed back to pending", StatusConfirmed, StatusPending, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			appt := &Appointment{Status: tc.from}
			assert.Equal(t, tc.allowed, appt.CanTransitionTo(tc.to))
		})
	}
}

func TestCanBeCancelled(t *testing.T) {
	assert.True(t, (&Appointment{Status: StatusPending}).CanBeCancelled())
	assert.True(t, (&Appointment{Status: StatusConfirmed}).CanBeCancelled())
	assert.False(t, (&Appointment{Status: StatusCompleted}).CanBeCancelled())
	assert.False(t, (&Appointment{Status: StatusCancelled}).CanBeCancelled())
}

func TestIsActive(t *testing.T) {
	assert.True(t, (&Appointment{Status: StatusPending}).IsActive())
	assert.True(t, (&Appointment{Status: StatusCompleted}).IsActive())
	assert.False(t, (&Appointment{Status: StatusCancelled}).IsActive())
}

func TestParseAppointmentStatus(t *testing.T) {
	status, ok := ParseAppointmentStatus("confirmed")
	assert.True(t, ok)
	assert.Equal(t, StatusConfirmed, status)

	_, ok = ParseAppointmentStatus("archived")
	assert.False(t, ok)
}

func TestParseServiceType(t *testing.T) {
	st, ok := ParseServiceType("Awaria")
	assert.True(t, ok)
	assert.Equal(t, ServiceEmergency, st)

	_, ok = ParseServiceType("Naprawa dachu")
	assert.False(t, ok)
}

func TestWeekScheduleForDate(t *testing.T) {
	schedule := WeekSchedule{
		Monday:   DaySchedule{Open: true},
		Saturday: DaySchedule{Open: true},
		Sunday:   DaySchedule{Open: false},
	}

	monday := time.Date(2025, 10, 13, 0, 0, 0, 0, time.UTC)
	saturday := time.Date(2025, 10, 18, 0, 0, 0, 0, time.UTC)
	sunday := time.Date(2025, 10, 19, 0, 0, 0, 0, time.UTC)

	assert.False(t, schedule.IsClosedOn(monday))
	assert.False(t, schedule.IsClosedOn(saturday))
	assert.True(t, schedule.IsClosedOn(sunday))
}
