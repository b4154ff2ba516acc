package calendarexport

import (
	"fmt"
	"strings"
	"time"

	"github.com/sanbud-pl/booking-service/internal/domain"
	"github.com/sanbud-pl/booking-service/pkg/types"
)

// CompanyInfo is the contact data embedded in every exported event.
type CompanyInfo struct {
	Name     string
	Phone    string
	Email    string
	Location string
}

// BookingDetails is the confirmed booking slice needed for calendar export.
type BookingDetails struct {
	Date         time.Time
	StartTime    types.TimeString
	Service      domain.ServiceType
	CustomerName string
	Phone        string
	Description  string
}

// Event is a calendar entry derived from a confirmed booking.
// It is a pure value: building it has no side effects, and the same
// booking always produces the same event.
type Event struct {
	Title          string
	Description    string
	Location       string
	Start          time.Time
	End            time.Time
	OrganizerName  string
	OrganizerEmail string
}

// NewEvent builds the calendar event for a confirmed booking.
// The event ends a fixed duration after its start, and the description
// mirrors what the company sends in booking confirmations.
func NewEvent(details BookingDetails, company CompanyInfo, duration time.Duration, loc *time.Location) (Event, error) {
	start, err := details.StartTime.At(details.Date, loc)
	if err != nil {
		return Event{}, fmt.Errorf("calendarexport: invalid start time: %w", err)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Wizyta hydraulika - %s\n\n", details.Service)
	fmt.Fprintf(&b, "Klient: %s\n", details.CustomerName)
	fmt.Fprintf(&b, "Telefon: %s\n", details.Phone)
	if details.Description != "" {
		fmt.Fprintf(&b, "\n%s\n", details.Description)
	}
	fmt.Fprintf(&b, "\nAdres: %s\n", company.Location)
	fmt.Fprintf(&b, "Kontakt: %s\n", company.Phone)
	fmt.Fprintf(&b, "Email: %s", company.Email)

	return Event{
		Title:          fmt.Sprintf("%s - %s", company.Name, details.Service),
		Description:    b.String(),
		Location:       company.Location,
		Start:          start,
		End:            start.Add(duration),
		OrganizerName:  company.Name,
		OrganizerEmail: company.Email,
	}, nil
}

// Filename returns the download name for the ICS file:
// sanbud-<date>-<time-without-colon>.ics
func Filename(date time.Time, startTime types.TimeString) string {
	return fmt.Sprintf("sanbud-%s-%s.ics",
		date.Format(domain.DateFormat),
		strings.ReplaceAll(startTime.String(), ":", ""))
}
