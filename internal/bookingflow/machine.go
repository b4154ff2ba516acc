package bookingflow

import (
	"context"
	"fmt"
	"time"

	"github.com/sanbud-pl/booking-service/internal/domain"
	"github.com/sanbud-pl/booking-service/internal/integrations/bookingapi"
	"github.com/sanbud-pl/booking-service/pkg/types"
)

// Machine drives the booking widget through its ordered steps:
// date → time → form → success. It holds the draft, validates every
// transition, and performs exactly one network call: the final submit.
//
// The machine is single-threaded by design: all transitions happen on
// user interaction callbacks, so no locking is needed. The only guarded
// case is a second Submit while the first response is outstanding.
type Machine struct {
	schedule     domain.WeekSchedule
	slots        SlotProvider
	submitter    Submitter
	timeProvider TimeProvider
	logger       Logger

	fallbackPhone  string
	defaultService domain.ServiceType

	step       Step
	draft      Draft
	slotList   []bookingapi.Slot
	submitting bool
	lastError  string
	confirmed  *bookingapi.BookingData
}

// NewMachine creates a booking machine in the date step with an empty draft.
func NewMachine(
	schedule domain.WeekSchedule,
	slots SlotProvider,
	submitter Submitter,
	fallbackPhone string,
	logger Logger,
) *Machine {
	m := &Machine{
		schedule:       schedule,
		slots:          slots,
		submitter:      submitter,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
		fallbackPhone:  fallbackPhone,
		defaultService: domain.ServiceWaterInstallations,
	}
	m.reset()
	return m
}

// WithTimeProvider replaces the time source; used by tests.
func (m *Machine) WithTimeProvider(tp TimeProvider) *Machine {
	m.timeProvider = tp
	return m
}

// Step returns the current step.
func (m *Machine) Step() Step {
	return m.step
}

// Draft returns a copy of the current draft.
func (m *Machine) Draft() Draft {
	return m.draft
}

// Slots returns the slot list computed for the selected date.
func (m *Machine) Slots() []bookingapi.Slot {
	return m.slotList
}

// LastError returns the user-facing message of the most recent failure,
// or an empty string. It is cleared by the next successful transition.
func (m *Machine) LastError() string {
	return m.lastError
}

// Confirmed returns the booking data echoed by the API after a successful
// submission; nil before the success step.
func (m *Machine) Confirmed() *bookingapi.BookingData {
	return m.confirmed
}

// SelectDate validates the chosen date and, when valid, loads its slots
// and advances to the time step. Past dates and closed weekdays are
// rejected with the machine left unchanged; no slots are computed for them.
func (m *Machine) SelectDate(ctx context.Context, date time.Time) error {
	if m.step == StepSuccess {
		return ErrWrongStep
	}

	if isDateInPast(date, m.timeProvider.Now()) {
		m.logger.Warn("SelectDate: rejected past date %s", date.Format(domain.DateFormat))
		return ErrDateInPast
	}
	if m.schedule.IsClosedOn(date) {
		m.logger.Warn("SelectDate: rejected closed date %s", date.Format(domain.DateFormat))
		return ErrDateClosed
	}

	slots, err := m.slots.GetAvailableSlots(ctx, date)
	if err != nil {
		m.logger.Error("SelectDate: failed to load slots for %s: %v", date.Format(domain.DateFormat), err)
		return fmt.Errorf("%w: %v", ErrSlotsUnavailable, err)
	}

	d := date
	m.draft.SelectedDate = &d
	m.draft.SelectedTime = nil
	m.slotList = slots
	m.step = StepTime
	m.lastError = ""
	m.logger.Info("SelectDate: %s, %d slots", date.Format(domain.DateFormat), len(slots))
	return nil
}

// SelectTime validates the chosen slot and advances to the form step.
// An unavailable or unknown slot is a no-op: the machine stays in the
// time step with nothing recorded.
func (m *Machine) SelectTime(t types.TimeString) error {
	if m.step != StepTime {
		return ErrWrongStep
	}

	if !m.slotAvailable(t) {
		m.logger.Warn("SelectTime: rejected unavailable slot %s", t)
		return ErrSlotUnavailable
	}

	m.draft.SelectedTime = &t
	m.step = StepForm
	m.lastError = ""
	m.logger.Info("SelectTime: %s", t)
	return nil
}

// UpdateForm replaces the contact fields. Allowed in the form step only;
// an empty service falls back to the default offering.
func (m *Machine) UpdateForm(form ContactForm) error {
	if m.step != StepForm {
		return ErrWrongStep
	}
	if form.Service == "" {
		form.Service = m.defaultService
	}
	m.draft.Form = form
	return nil
}

// Submit posts the completed draft to the booking API. On success the
// machine advances to the terminal success step; on failure it stays in
// the form step, keeps the draft intact for retry and records an error
// message that includes the fallback phone number.
func (m *Machine) Submit(ctx context.Context) error {
	if m.step != StepForm {
		return ErrWrongStep
	}
	if m.submitting {
		return ErrSubmitInFlight
	}
	if err := m.validateForSubmit(); err != nil {
		return err
	}

	req := &bookingapi.BookingRequest{
		Name:        m.draft.Form.Name,
		Email:       m.draft.Form.Email,
		Phone:       m.draft.Form.Phone,
		Service:     m.draft.Form.Service.String(),
		Date:        m.draft.SelectedDate.Format(domain.DateFormat),
		Time:        m.draft.SelectedTime.String(),
		Description: m.draft.Form.Description,
	}

	m.submitting = true
	data, err := m.submitter.CreateBooking(ctx, req)
	m.submitting = false

	if err != nil {
		m.lastError = fmt.Sprintf(
			"Nie udało się utworzyć rezerwacji. Prosimy spróbować ponownie lub skontaktować się telefonicznie: %s",
			m.fallbackPhone)
		m.logger.Error("Submit: failed: %v", err)
		return fmt.Errorf("%w: %v", ErrSubmitFailed, err)
	}

	m.confirmed = data
	m.step = StepSuccess
	m.lastError = ""
	m.logger.Info("Submit: booking confirmed for %s %s", req.Date, req.Time)
	return nil
}

// BackToTime returns from the form step to the time step, discarding the
// chosen slot but keeping the contact fields.
func (m *Machine) BackToTime() error {
	if m.step != StepForm {
		return ErrWrongStep
	}
	m.draft.SelectedTime = nil
	m.step = StepTime
	return nil
}

// BackToDate returns to the date step from the time or form step,
// discarding the date and slot selection but keeping the contact fields.
func (m *Machine) BackToDate() error {
	if m.step != StepTime && m.step != StepForm {
		return ErrWrongStep
	}
	m.draft.SelectedDate = nil
	m.draft.SelectedTime = nil
	m.slotList = nil
	m.step = StepDate
	return nil
}

// Reset clears the whole draft and returns to the date step.
// Allowed from any state, including success.
func (m *Machine) Reset() {
	m.reset()
}

func (m *Machine) reset() {
	m.step = StepDate
	m.draft = Draft{Form: ContactForm{Service: m.defaultService}}
	m.slotList = nil
	m.submitting = false
	m.lastError = ""
	m.confirmed = nil
}

func (m *Machine) slotAvailable(t types.TimeString) bool {
	for _, s := range m.slotList {
		if s.Time == t.String() {
			return s.Available
		}
	}
	return false
}

func (m *Machine) validateForSubmit() error {
	if m.draft.SelectedDate == nil || m.draft.SelectedTime == nil {
		return fmt.Errorf("%w: date and time must be selected", ErrMissingFields)
	}
	if m.draft.Form.Name == "" {
		return fmt.Errorf("%w: name is required", ErrMissingFields)
	}
	if m.draft.Form.Phone == "" {
		return fmt.Errorf("%w: phone is required", ErrMissingFields)
	}
	return nil
}

func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
