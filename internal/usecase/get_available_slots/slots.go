package get_available_slots

import (
	"time"

	"github.com/sanbud-pl/booking-service/internal/domain"
	"github.com/sanbud-pl/booking-service/pkg/types"
)

// generateTimeSlots builds every slot of the day starting at the opening
// time with a fixed step, then filters out slots that start too soon when
// the requested date is today.
func generateTimeSlots(
	day domain.DaySchedule,
	slotDuration int,
	requestDate time.Time,
	now time.Time,
	minNoticeMinutes int,
) ([]types.TimeString, error) {
	if isDateInPast(requestDate, now) {
		return []types.TimeString{}, nil
	}

	if !day.Open {
		return []types.TimeString{}, nil
	}

	// Step 1: generate every slot from opening to closing time. A slot
	// whose end would pass the closing time is dropped.
	allSlots := make([]types.TimeString, 0)
	currentSlot := day.OpenTime

	for currentSlot.IsBefore(day.CloseTime) {
		slotEnd, err := currentSlot.AddMinutes(slotDuration)
		if err != nil {
			return nil, err
		}
		if slotEnd.IsAfter(day.CloseTime) {
			break
		}

		allSlots = append(allSlots, currentSlot)
		currentSlot, err = currentSlot.AddMinutes(slotDuration)
		if err != nil {
			return nil, err
		}
	}

	// Step 2: for a future date every generated slot is offered.
	if !isSameDay(requestDate, now) {
		return allSlots, nil
	}

	// Step 3: for today, drop slots starting before now + minimum notice.
	currentTime := types.NewTimeString(now)
	minAllowedTime, err := currentTime.AddMinutes(minNoticeMinutes)
	if err != nil {
		// now + notice crosses midnight: nothing left to book today
		return []types.TimeString{}, nil
	}

	availableSlots := make([]types.TimeString, 0)
	for _, slot := range allSlots {
		if !slot.IsBefore(minAllowedTime) {
			availableSlots = append(availableSlots, slot)
		}
	}

	return availableSlots, nil
}

// markAvailability flags each slot as taken when an active appointment
// overlaps it.
func markAvailability(
	slots []types.TimeString,
	slotDuration int,
	appointments []*domain.Appointment,
) []Slot {
	result := make([]Slot, len(slots))

	for i, slotStart := range slots {
		result[i] = Slot{
			StartTime:       slotStart,
			DurationMinutes: slotDuration,
			Available:       !hasOverlappingAppointment(slotStart, slotDuration, appointments),
		}
	}

	return result
}

// hasOverlappingAppointment reports whether any active appointment truly
// overlaps the slot. Intervals that only touch at a boundary do not
// overlap: an appointment ending 11:30 leaves the 11:30 slot free.
func hasOverlappingAppointment(slotStart types.TimeString, slotDuration int, appointments []*domain.Appointment) bool {
	slotEnd, err := slotStart.AddMinutes(slotDuration)
	if err != nil {
		return false
	}

	for _, appt := range appointments {
		if !appt.IsActive() {
			continue
		}

		apptStart := appt.ScheduledTime
		apptEnd, err := appt.ScheduledTime.AddMinutes(appt.DurationMinutes)
		if err != nil {
			continue
		}

		// Strict inequalities keep touching intervals from counting.
		if apptStart.IsBefore(slotEnd) && apptEnd.IsAfter(slotStart) {
			return true
		}
	}

	return false
}

// isSameDay reports whether two times fall on the same calendar day.
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// isDateInPast reports whether the date is before today, comparing dates
// only.
func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
