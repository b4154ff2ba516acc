package create_appointment

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/sanbud-pl/booking-service/internal/api/handlers"
	createAppointment "github.com/sanbud-pl/booking-service/internal/usecase/create_appointment"
)

const (
	msgInvalidRequestBody = "nieprawidłowe dane formularza"
	msgInvalidDateOrTime  = "nieprawidłowy format daty lub godziny"
	msgMissingFields      = "brak wymaganych pól: imię i telefon są obowiązkowe"
	msgUnknownService     = "nieznana usługa"
	msgSlotTaken          = "wybrany termin jest już zajęty"
	msgClosed             = "jesteśmy zamknięci w wybranym dniu"
	msgPastDate           = "nie można rezerwować terminów w przeszłości"
	msgDateTooFar         = "wybrana data jest zbyt odległa"
	msgInvalidTimeSlot    = "nieprawidłowa godzina wizyty"
	msgTooLateToBook      = "za późno na rezerwację tego terminu"
	msgInternalError      = "wystąpił błąd wewnętrzny serwera, prosimy o kontakt telefoniczny: %s"
)

type Handler struct {
	useCase       CreateAppointmentUseCase
	fallbackPhone string
	logger        Logger
}

func NewHandler(useCase CreateAppointmentUseCase, fallbackPhone string, logger Logger) *Handler {
	return &Handler{
		useCase:       useCase,
		fallbackPhone: fallbackPhone,
		logger:        logger,
	}
}

// Handle POST /api/v1/book-appointment
//
// The endpoint always answers with the {success, booking_data, error}
// envelope so the booking widget can show the failure reason inline.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req BookAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /book-appointment - Invalid request body: %v", err)
		respondFailure(w, http.StatusBadRequest, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /book-appointment - Failed to parse request: %v", err)
		respondFailure(w, http.StatusBadRequest, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createAppointment.ErrSlotNotAvailable):
			h.logger.Warn("POST /book-appointment - Slot taken: date=%s, time=%s", req.Date, req.Time)
			respondFailure(w, http.StatusConflict, msgSlotTaken)

		case errors.Is(err, createAppointment.ErrUnknownService):
			h.logger.Warn("POST /book-appointment - Unknown service: %q", req.Service)
			respondFailure(w, http.StatusBadRequest, msgUnknownService)

		case errors.Is(err, createAppointment.ErrClosed):
			h.logger.Warn("POST /book-appointment - Closed on %s", req.Date)
			respondFailure(w, http.StatusBadRequest, msgClosed)

		case errors.Is(err, createAppointment.ErrInvalidDate):
			h.logger.Warn("POST /book-appointment - Past date: %s", req.Date)
			respondFailure(w, http.StatusBadRequest, msgPastDate)

		case errors.Is(err, createAppointment.ErrDateTooFarInFuture):
			h.logger.Warn("POST /book-appointment - Date too far: %s", req.Date)
			respondFailure(w, http.StatusBadRequest, msgDateTooFar)

		case errors.Is(err, createAppointment.ErrInvalidTimeSlot):
			h.logger.Warn("POST /book-appointment - Invalid time slot: %s", req.Time)
			respondFailure(w, http.StatusBadRequest, msgInvalidTimeSlot)

		case errors.Is(err, createAppointment.ErrTooLateToBook):
			h.logger.Warn("POST /book-appointment - Too late to book: date=%s, time=%s", req.Date, req.Time)
			respondFailure(w, http.StatusBadRequest, msgTooLateToBook)

		case errors.Is(err, createAppointment.ErrInvalidInput):
			h.logger.Warn("POST /book-appointment - Invalid input: %v", err)
			respondFailure(w, http.StatusBadRequest, msgMissingFields)

		default:
			h.logger.Error("POST /book-appointment - Failed: date=%s, time=%s, error=%v",
				req.Date, req.Time, err)
			respondFailure(w, http.StatusInternalServerError,
				fmt.Sprintf(msgInternalError, h.fallbackPhone))
		}
		return
	}

	h.logger.Info("POST /book-appointment - Appointment created: ref=%s, date=%s, time=%s",
		result.PublicRef, req.Date, req.Time)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}

func respondFailure(w http.ResponseWriter, status int, message string) {
	handlers.RespondJSON(w, status, BookAppointmentResponse{
		Success: false,
		Error:   message,
	})
}
