package mark_message_read

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/sanbud-pl/booking-service/internal/api/handlers"
	"github.com/sanbud-pl/booking-service/internal/service/messages"
)

const (
	msgInvalidID = "nieprawidłowy identyfikator wiadomości"
	msgNotFound  = "nie znaleziono wiadomości"
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

// Handle PATCH /api/v1/admin/messages/{messageId}/read
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["messageId"]

	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /admin/messages/{id}/read - Invalid ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	if err := h.service.MarkRead(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, messages.ErrMessageNotFound):
			h.logger.Warn("PATCH /admin/messages/{id}/read - Not found: id=%d", id)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("PATCH /admin/messages/{id}/read - Failed: id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /admin/messages/{id}/read - Marked read: id=%d", id)
	w.WriteHeader(http.StatusNoContent)
}
