package download_ics

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/sanbud-pl/booking-service/internal/api/handlers"
	"github.com/sanbud-pl/booking-service/internal/calendarexport"
	"github.com/sanbud-pl/booking-service/internal/domain"
	"github.com/sanbud-pl/booking-service/internal/service/appointments"
	"github.com/sanbud-pl/booking-service/internal/service/appointments/models"
	"github.com/sanbud-pl/booking-service/pkg/types"
)

const (
	msgNotFound    = "nie znaleziono wizyty"
	msgNotExported = "eksport do kalendarza jest dostępny tylko dla aktywnych wizyt"
)

type Handler struct {
	service  AppointmentService
	company  calendarexport.CompanyInfo
	duration time.Duration
	location *time.Location
	logger   Logger
}

func NewHandler(
	service AppointmentService,
	company calendarexport.CompanyInfo,
	duration time.Duration,
	location *time.Location,
	logger Logger,
) *Handler {
	return &Handler{
		service:  service,
		company:  company,
		duration: duration,
		location: location,
		logger:   logger,
	}
}

// Handle GET /api/v1/appointments/{ref}/calendar.ics
//
// Serves the event as an RFC 5545 attachment; the same appointment always
// produces byte-identical output.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	ref := mux.Vars(r)["ref"]

	appt, err := h.service.GetByPublicRef(r.Context(), ref)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrAppointmentNotFound):
			h.logger.Warn("GET /appointments/{ref}/calendar.ics - Not found: ref=%s", ref)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /appointments/{ref}/calendar.ics - Failed: ref=%s, error=%v", ref, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	if appt.Status == string(domain.StatusCancelled) {
		h.logger.Warn("GET /appointments/{ref}/calendar.ics - Cancelled appointment: ref=%s", ref)
		handlers.RespondNotFound(w, msgNotExported)
		return
	}

	event, details, err := buildEvent(appt, h.company, h.duration, h.location)
	if err != nil {
		h.logger.Error("GET /appointments/{ref}/calendar.ics - Failed to build event: ref=%s, error=%v", ref, err)
		handlers.RespondInternalError(w)
		return
	}

	filename := calendarexport.Filename(details.Date, details.StartTime)

	w.Header().Set("Content-Type", calendarexport.MIMEType())
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(event.ICS()))

	h.logger.Info("GET /appointments/{ref}/calendar.ics - Served %s: ref=%s", filename, ref)
}

// buildEvent converts the service DTO back into the calendar event input.
func buildEvent(
	appt *models.AppointmentResponse,
	company calendarexport.CompanyInfo,
	duration time.Duration,
	location *time.Location,
) (calendarexport.Event, calendarexport.BookingDetails, error) {
	date, err := time.Parse(domain.DateFormat, appt.ScheduledDate)
	if err != nil {
		return calendarexport.Event{}, calendarexport.BookingDetails{}, err
	}

	startTime, err := types.NewTimeStringFromString(appt.ScheduledTime)
	if err != nil {
		return calendarexport.Event{}, calendarexport.BookingDetails{}, err
	}

	service, ok := domain.ParseServiceType(appt.Service)
	if !ok {
		service = domain.ServiceOther
	}

	details := calendarexport.BookingDetails{
		Date:         date,
		StartTime:    startTime,
		Service:      service,
		CustomerName: appt.CustomerName,
		Phone:        appt.CustomerPhone,
	}
	if appt.Description != nil {
		details.Description = *appt.Description
	}

	event, err := calendarexport.NewEvent(details, company, duration, location)
	if err != nil {
		return calendarexport.Event{}, calendarexport.BookingDetails{}, err
	}

	return event, details, nil
}
