package get_calendar_links

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

// Handle GET /api/v1/appointments/{ref}/calendar
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	ref := mux.Vars(r)["ref"]

	appt, err := h.service.GetByPublicRef(r.Context(), ref)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrAppointmentNotFound):
			h.logger.Warn("GET /appointments/{ref}/calendar - Not found: ref=%s", ref)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /appointments/{ref}/calendar - Failed: ref=%s, error=%v", ref, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	if appt.Status == string(domain.StatusCancelled) {
		h.logger.Warn("GET /appointments/{ref}/calendar - Cancelled appointment: ref=%s", ref)
		handlers.RespondNotFound(w, msgNotExported)
		return
	}

	event, details, err := buildEvent(appt, h.company, h.duration, h.location)
	if err != nil {
		h.logger.Error("GET /appointments/{ref}/calendar - Failed to build event: ref=%s, error=%v", ref, err)
		handlers.RespondInternalError(w)
		return
	}

	preferred := calendarexport.DetectPreferred(r.UserAgent())

	resp := &CalendarLinksResponse{
		Google:    event.GoogleURL(),
		Outlook:   event.OutlookURL(),
		Office365: event.Office365URL(),
		ICS:       fmt.Sprintf("/api/v1/appointments/%s/calendar.ics", appt.PublicRef),
		Filename:  calendarexport.Filename(details.Date, details.StartTime),
		Preferred: string(preferred),
	}

	h.logger.Info("GET /appointments/{ref}/calendar - Links generated: ref=%s, preferred=%s", ref, preferred)
	handlers.RespondJSON(w, http.StatusOK, resp)
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
