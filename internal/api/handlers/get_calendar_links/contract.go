package get_calendar_links

import (
	"context"

	"github.com/sanbud-pl/booking-service/internal/service/appointments/models"
)

type AppointmentService interface {
	GetByPublicRef(ctx context.Context, ref string) (*models.AppointmentResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
