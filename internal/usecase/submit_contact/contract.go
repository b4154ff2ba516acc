package submit_contact

import (
	"context"

	"github.com/sanbud-pl/booking-service/internal/domain"
)

// MessageRepository persists contact messages.
type MessageRepository interface {
	Create(ctx context.Context, msg *domain.Message) (*domain.Message, error)
}

// Logger is the logging interface used by this use case.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
