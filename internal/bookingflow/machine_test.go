package bookingflow

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sanbud-pl/booking-service/internal/calendarexport"
	"github.com/sanbud-pl/booking-service/internal/domain"
	"github.com/sanbud-pl/booking-service/internal/integrations/bookingapi"
	"github.com/sanbud-pl/booking-service/pkg/types"
)

// Mock implementations

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type stubSlotProvider struct {
	slots []bookingapi.Slot
	err   error
	calls int
}

func (s *stubSlotProvider) GetAvailableSlots(ctx context.Context, date time.Time) ([]bookingapi.Slot, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.slots, nil
}

type stubSubmitter struct {
	data     *bookingapi.BookingData
	err      error
	received *bookingapi.BookingRequest
}

func (s *stubSubmitter) CreateBooking(ctx context.Context, req *bookingapi.BookingRequest) (*bookingapi.BookingData, error) {
	s.received = req
	if s.err != nil {
		return nil, s.err
	}
	return s.data, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

const fallbackPhone = "+48 503 691 808"

func testSchedule() domain.WeekSchedule {
	weekday := domain.DaySchedule{Open: true, OpenTime: "08:00", CloseTime: "18:00"}
	saturday := domain.DaySchedule{Open: true, OpenTime: "09:00", CloseTime: "14:00"}
	return domain.WeekSchedule{
		Monday:    weekday,
		Tuesday:   weekday,
		Wednesday: weekday,
		Thursday:  weekday,
		Friday:    weekday,
		Saturday:  saturday,
		Sunday:    domain.DaySchedule{Open: false},
	}
}

// now is a Monday so relative weekdays are easy to reason about.
var testNow = time.Date(2025, 10, 13, 9, 0, 0, 0, time.UTC)

func newTestMachine(slots *stubSlotProvider, submitter *stubSubmitter) *Machine {
	return NewMachine(testSchedule(), slots, submitter, fallbackPhone, nopLogger{}).
		WithTimeProvider(&fixedTimeProvider{now: testNow})
}

func mustTime(t *testing.T, s string) types.TimeString {
	t.Helper()
	ts, err := types.NewTimeStringFromString(s)
	require.NoError(t, err)
	return ts
}

func TestSelectDateRejectsPastDate(t *testing.T) {
	slots := &stubSlotProvider{}
	m := newTestMachine(slots, &stubSubmitter{})

	err := m.SelectDate(context.Background(), testNow.AddDate(0, 0, -1))

	assert.ErrorIs(t, err, ErrDateInPast)
	assert.Equal(t, StepDate, m.Step())
	assert.Nil(t, m.Draft().SelectedDate)
	assert.Zero(t, slots.calls, "no slots must be computed for a rejected date")
}

// Scenario C: selecting a Sunday is rejected, the state stays in the
// date step and no slots are computed.
func TestSelectDateRejectsSunday(t *testing.T) {
	slots := &stubSlotProvider{}
	m := newTestMachine(slots, &stubSubmitter{})

	sunday := time.Date(2025, 10, 19, 0, 0, 0, 0, time.UTC)
	require.Equal(t, time.Sunday, sunday.Weekday())

	err := m.SelectDate(context.Background(), sunday)

	assert.ErrorIs(t, err, ErrDateClosed)
	assert.Equal(t, StepDate, m.Step())
	assert.Zero(t, slots.calls)
}

func TestSelectDateAdvancesToTimeStep(t *testing.T) {
	slots := &stubSlotProvider{slots: []bookingapi.Slot{
		{Time: "10:00", Available: true},
		{Time: "10:30", Available: false},
	}}
	m := newTestMachine(slots, &stubSubmitter{})

	tuesday := time.Date(2025, 10, 14, 0, 0, 0, 0, time.UTC)
	require.NoError(t, m.SelectDate(context.Background(), tuesday))

	assert.Equal(t, StepTime, m.Step())
	require.NotNil(t, m.Draft().SelectedDate)
	assert.Len(t, m.Slots(), 2)
}

func TestSelectTimeRejectsUnavailableSlot(t *testing.T) {
	slots := &stubSlotProvider{slots: []bookingapi.Slot{
		{Time: "10:00", Available: true},
		{Time: "10:30", Available: false},
	}}
	m := newTestMachine(slots, &stubSubmitter{})
	require.NoError(t, m.SelectDate(context.Background(), time.Date(2025, 10, 14, 0, 0, 0, 0, time.UTC)))

	err := m.SelectTime(mustTime(t, "10:30"))
	assert.ErrorIs(t, err, ErrSlotUnavailable)
	assert.Equal(t, StepTime, m.Step(), "unavailable slot must never leave the time step")
	assert.Nil(t, m.Draft().SelectedTime)

	// a slot not in the list is rejected the same way
	err = m.SelectTime(mustTime(t, "23:00"))
	assert.ErrorIs(t, err, ErrSlotUnavailable)
	assert.Equal(t, StepTime, m.Step())
}

func TestFormStepImpliesDateAndTimeSet(t *testing.T) {
	slots := &stubSlotProvider{slots: []bookingapi.Slot{{Time: "10:00", Available: true}}}
	m := newTestMachine(slots, &stubSubmitter{})

	require.NoError(t, m.SelectDate(context.Background(), time.Date(2025, 10, 14, 0, 0, 0, 0, time.UTC)))
	require.NoError(t, m.SelectTime(mustTime(t, "10:00")))

	assert.Equal(t, StepForm, m.Step())
	assert.NotNil(t, m.Draft().SelectedDate)
	assert.NotNil(t, m.Draft().SelectedTime)
}

func TestBackNavigationPreservesContactFields(t *testing.T) {
	slots := &stubSlotProvider{slots: []bookingapi.Slot{{Time: "10:00", Available: true}}}
	m := newTestMachine(slots, &stubSubmitter{})

	require.NoError(t, m.SelectDate(context.Background(), time.Date(2025, 10, 14, 0, 0, 0, 0, time.UTC)))
	require.NoError(t, m.SelectTime(mustTime(t, "10:00")))
	require.NoError(t, m.UpdateForm(ContactForm{
		Name:    "Jan Kowalski",
		Phone:   "+48123456789",
		Service: domain.ServiceEmergency,
	}))

	require.NoError(t, m.BackToTime())
	assert.Equal(t, StepTime, m.Step())
	assert.Nil(t, m.Draft().SelectedTime)
	assert.Equal(t, "Jan Kowalski", m.Draft().Form.Name)

	require.NoError(t, m.BackToDate())
	assert.Equal(t, StepDate, m.Step())
	assert.Nil(t, m.Draft().SelectedDate)
	assert.Equal(t, "+48123456789", m.Draft().Form.Phone)
}

func TestResetClearsDraft(t *testing.T) {
	slots := &stubSlotProvider{slots: []bookingapi.Slot{{Time: "10:00", Available: true}}}
	m := newTestMachine(slots, &stubSubmitter{})

	require.NoError(t, m.SelectDate(context.Background(), time.Date(2025, 10, 14, 0, 0, 0, 0, time.UTC)))
	require.NoError(t, m.SelectTime(mustTime(t, "10:00")))
	require.NoError(t, m.UpdateForm(ContactForm{Name: "Jan", Phone: "123"}))

	m.Reset()

	assert.Equal(t, StepDate, m.Step())
	assert.Nil(t, m.Draft().SelectedDate)
	assert.Nil(t, m.Draft().SelectedTime)
	assert.Empty(t, m.Draft().Form.Name)
}

// Scenario A: next Tuesday, 10:00, Jan Kowalski. The mocked API confirms,
// the machine reaches the success step and the calendar export for the
// confirmed booking carries the selected instant in the Google URL.
func TestSubmitSuccessScenario(t *testing.T) {
	tuesday := time.Date(2025, 10, 14, 0, 0, 0, 0, time.UTC)
	submitter := &stubSubmitter{data: &bookingapi.BookingData{
		Ref:     "4f5e9d3c",
		Name:    "Jan Kowalski",
		Phone:   "+48123456789",
		Service: "Instalacje wodne",
		Date:    "2025-10-14",
		Time:    "10:00",
	}}
	slots := &stubSlotProvider{slots: []bookingapi.Slot{{Time: "10:00", Available: true}}}
	m := newTestMachine(slots, submitter)

	require.NoError(t, m.SelectDate(context.Background(), tuesday))
	require.NoError(t, m.SelectTime(mustTime(t, "10:00")))
	require.NoError(t, m.UpdateForm(ContactForm{
		Name:    "Jan Kowalski",
		Phone:   "+48123456789",
		Service: domain.ServiceWaterInstallations,
	}))
	require.NoError(t, m.Submit(context.Background()))

	assert.Equal(t, StepSuccess, m.Step())
	require.NotNil(t, m.Confirmed())
	assert.Equal(t, "Jan Kowalski", m.Confirmed().Name)

	require.NotNil(t, submitter.received)
	assert.Equal(t, "2025-10-14", submitter.received.Date)
	assert.Equal(t, "10:00", submitter.received.Time)

	event, err := calendarexport.NewEvent(calendarexport.BookingDetails{
		Date:         tuesday,
		StartTime:    mustTime(t, "10:00"),
		Service:      domain.ServiceWaterInstallations,
		CustomerName: m.Confirmed().Name,
		Phone:        m.Confirmed().Phone,
	}, calendarexport.CompanyInfo{
		Name: "SanBud", Phone: fallbackPhone,
		Email: "sanbud.biuro@gmail.com", Location: "Mazowsze, Polska",
	}, time.Hour, time.UTC)
	require.NoError(t, err)
	assert.Contains(t, event.GoogleURL(), "20251014T100000Z%2F20251014T110000Z")
}

// Scenario B: the API answers with a server error. The machine stays in
// the form step, the error message carries the fallback phone number and
// the entered fields are still present for retry.
func TestSubmitFailureKeepsDraft(t *testing.T) {
	submitter := &stubSubmitter{err: bookingapi.ErrUnavailable}
	slots := &stubSlotProvider{slots: []bookingapi.Slot{{Time: "10:00", Available: true}}}
	m := newTestMachine(slots, submitter)

	require.NoError(t, m.SelectDate(context.Background(), time.Date(2025, 10, 14, 0, 0, 0, 0, time.UTC)))
	require.NoError(t, m.SelectTime(mustTime(t, "10:00")))
	require.NoError(t, m.UpdateForm(ContactForm{
		Name:  "Jan Kowalski",
		Phone: "+48123456789",
		Email: "jan@example.com",
	}))

	err := m.Submit(context.Background())

	assert.ErrorIs(t, err, ErrSubmitFailed)
	assert.Equal(t, StepForm, m.Step())
	assert.Contains(t, m.LastError(), fallbackPhone)
	assert.Equal(t, "Jan Kowalski", m.Draft().Form.Name)
	assert.Equal(t, "+48123456789", m.Draft().Form.Phone)
	assert.Equal(t, "jan@example.com", m.Draft().Form.Email)

	// a retry against a recovered API succeeds without re-entering data
	submitter.err = nil
	submitter.data = &bookingapi.BookingData{Name: "Jan Kowalski", Date: "2025-10-14", Time: "10:00"}
	require.NoError(t, m.Submit(context.Background()))
	assert.Equal(t, StepSuccess, m.Step())
}

func TestSubmitRequiresNameAndPhone(t *testing.T) {
	slots := &stubSlotProvider{slots: []bookingapi.Slot{{Time: "10:00", Available: true}}}
	submitter := &stubSubmitter{}
	m := newTestMachine(slots, submitter)

	require.NoError(t, m.SelectDate(context.Background(), time.Date(2025, 10, 14, 0, 0, 0, 0, time.UTC)))
	require.NoError(t, m.SelectTime(mustTime(t, "10:00")))
	require.NoError(t, m.UpdateForm(ContactForm{Name: "", Phone: ""}))

	err := m.Submit(context.Background())

	assert.ErrorIs(t, err, ErrMissingFields)
	assert.Equal(t, StepForm, m.Step())
	assert.Nil(t, submitter.received, "no network call may happen on validation failure")
}

func TestSubmitRejectedOutsideFormStep(t *testing.T) {
	m := newTestMachine(&stubSlotProvider{}, &stubSubmitter{})

	assert.ErrorIs(t, m.Submit(context.Background()), ErrWrongStep)
	assert.Equal(t, StepDate, m.Step())
}
