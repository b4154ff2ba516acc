package list_messages

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/sanbud-pl/booking-service/internal/api/handlers"
	"github.com/sanbud-pl/booking-service/internal/service/messages"
	"github.com/sanbud-pl/booking-service/internal/service/messages/models"
)

const (
	msgInvalidFilter = "nieprawidłowe parametry filtrowania"
)

type Handler struct {
	service MessageService
	logger  Logger
}

func NewHandler(service MessageService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/messages
//
// Optional query parameters: unreadOnly (bool), type.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &models.ListMessagesRequest{}
	query := r.URL.Query()

	if v := query.Get("unreadOnly"); v != "" {
		unread, err := strconv.ParseBool(v)
		if err != nil {
			h.logger.Warn("GET /admin/messages - Invalid unreadOnly %q: %v", v, err)
			handlers.RespondBadRequest(w, msgInvalidFilter)
			return
		}
		req.UnreadOnly = unread
	}

	if v := query.Get("type"); v != "" {
		req.Type = &v
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, messages.ErrInvalidInput):
			h.logger.Warn("GET /admin/messages - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /admin/messages - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /admin/messages - Returned %d messages", len(result.Messages))
	handlers.RespondJSON(w, http.StatusOK, result)
}
