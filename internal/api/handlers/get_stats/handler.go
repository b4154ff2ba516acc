package get_stats

import (
	"net/http"

	"github.com/sanbud-pl/booking-service/internal/api/handlers"
)

type Handler struct {
	appointments AppointmentService
	messages     MessageService
	logger       Logger
}

func NewHandler(appointments AppointmentService, messages MessageService, logger Logger) *Handler {
	return &Handler{
		appointments: appointments,
		messages:     messages,
		logger:       logger,
	}
}

// Handle GET /api/v1/admin/stats
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	stats, err := h.appointments.Stats(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/stats - Failed to get appointment stats: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	unread, err := h.messages.CountUnread(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/stats - Failed to count unread messages: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/stats - Returned stats: total=%d, unread=%d", stats.Total, unread)
	handlers.RespondJSON(w, http.StatusOK, StatsResponse{
		Appointments:   *stats,
		UnreadMessages: unread,
	})
}
