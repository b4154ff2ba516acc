package submit_contact

import (
	"errors"
	"net/http"

	"github.com/sanbud-pl/booking-service/internal/api/handlers"
	submitContact "github.com/sanbud-pl/booking-service/internal/usecase/submit_contact"
)

const (
	msgInvalidRequestBody = "nieprawidłowe dane formularza"
	msgMissingFields      = "brak wymaganych pól: imię, email i treść wiadomości są obowiązkowe"
	msgInternalError      = "wystąpił błąd wewnętrzny serwera"
)

type Handler struct {
	useCase SubmitContactUseCase
	logger  Logger
}

func NewHandler(useCase SubmitContactUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/contact
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ContactRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /contact - Invalid request body: %v", err)
		handlers.RespondJSON(w, http.StatusBadRequest, ContactResponse{Success: false, Error: msgInvalidRequestBody})
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, submitContact.ErrInvalidInput):
			h.logger.Warn("POST /contact - Invalid input: %v", err)
			handlers.RespondJSON(w, http.StatusBadRequest, ContactResponse{Success: false, Error: msgMissingFields})

		default:
			h.logger.Error("POST /contact - Failed: %v", err)
			handlers.RespondJSON(w, http.StatusInternalServerError, ContactResponse{Success: false, Error: msgInternalError})
		}
		return
	}

	h.logger.Info("POST /contact - Message stored: id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, ContactResponse{Success: true, ID: result.ID})
}
