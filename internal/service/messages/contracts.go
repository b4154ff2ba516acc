package messages

import (
	"context"

	"github.com/sanbud-pl/booking-service/internal/domain"
)

// MessageRepository is the storage interface used by the service.
type MessageRepository interface {
	GetWithFilter(ctx context.Context, filter domain.MessagesFilter) ([]*domain.Message, error)
	MarkRead(ctx context.Context, id int64) error
	CountUnread(ctx context.Context) (int, error)
}

// Logger is the logging interface used by the service.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
