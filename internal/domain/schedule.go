package domain

import (
	"time"

	"github.com/sanbud-pl/booking-service/pkg/types"
)

// DaySchedule describes the opening hours for a single day of the week.
type DaySchedule struct {
	Open      bool
	OpenTime  types.TimeString
	CloseTime types.TimeString
}

// WeekSchedule holds the opening hours for the whole week.
// The canonical Sanbud policy is weekdays 08:00–18:00, Saturday 09:00–14:00
// and Sunday closed; the concrete values come from configuration.
type WeekSchedule struct {
	Monday    DaySchedule
	Tuesday   DaySchedule
	Wednesday DaySchedule
	Thursday  DaySchedule
	Friday    DaySchedule
	Saturday  DaySchedule
	Sunday    DaySchedule
}

// ForDate returns the day schedule matching the weekday of the given date.
func (w WeekSchedule) ForDate(date time.Time) DaySchedule {
	switch date.Weekday() {
	case time.Monday:
		return w.Monday
	case time.Tuesday:
		return w.Tuesday
	case time.Wednesday:
		return w.Wednesday
	case time.Thursday:
		return w.Thursday
	case time.Friday:
		return w.Friday
	case time.Saturday:
		return w.Saturday
	case time.Sunday:
		return w.Sunday
	default:
		return DaySchedule{Open: false}
	}
}

// IsClosedOn reports whether the company is closed on the given date.
func (w WeekSchedule) IsClosedOn(date time.Time) bool {
	return !w.ForDate(date).Open
}
