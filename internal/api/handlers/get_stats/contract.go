package get_stats

import (
	"context"

	"github.com/sanbud-pl/booking-service/internal/service/appointments/models"
)

type AppointmentService interface {
	Stats(ctx context.Context) (*models.StatsResponse, error)
}

type MessageService interface {
	CountUnread(ctx context.Context) (int, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
