package bookingflow

import (
	"context"
	"time"

	"github.com/sanbud-pl/booking-service/internal/integrations/bookingapi"
)

// SlotProvider fetches candidate slots for a selected date.
type SlotProvider interface {
	GetAvailableSlots(ctx context.Context, date time.Time) ([]bookingapi.Slot, error)
}

// Submitter posts the completed booking to the booking API.
type Submitter interface {
	CreateBooking(ctx context.Context, req *bookingapi.BookingRequest) (*bookingapi.BookingData, error)
}

// TimeProvider supplies the current time (injectable for tests).
type TimeProvider interface {
	Now() time.Time
}

// Logger is the logging interface the machine depends on.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider is the production time source.
type RealTimeProvider struct{}

// Now returns the current time.
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
