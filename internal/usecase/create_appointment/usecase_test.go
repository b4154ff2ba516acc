package create_appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sanbud-pl/booking-service/internal/domain"
	customerRepo "github.com/sanbud-pl/booking-service/internal/infra/storage/customer"
	"github.com/sanbud-pl/booking-service/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeAppointmentRepo struct {
	existing []*domain.Appointment
	created  []*domain.Appointment
	nextID   int64
}

func (f *fakeAppointmentRepo) Create(_ context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	f.nextID++
	appt.ID = f.nextID
	appt.CreatedAt = time.Date(2025, 10, 13, 12, 0, 0, 0, time.UTC)
	f.created = append(f.created, appt)
	return appt, nil
}

func (f *fakeAppointmentRepo) GetWithFilter(_ context.Context, _ domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	return f.existing, nil
}

type fakeCustomerRepo struct {
	existing *domain.Customer
	created  []*domain.Customer
	updated  []*domain.Customer
}

func (f *fakeCustomerRepo) GetByEmailOrPhone(_ context.Context, _, _ string) (*domain.Customer, error) {
	if f.existing == nil {
		return nil, customerRepo.ErrCustomerNotFound
	}
	return f.existing, nil
}

func (f *fakeCustomerRepo) Create(_ context.Context, c *domain.Customer) (*domain.Customer, error) {
	c.ID = int64(len(f.created) + 1)
	f.created = append(f.created, c)
	return c, nil
}

func (f *fakeCustomerRepo) Update(_ context.Context, c *domain.Customer) error {
	f.updated = append(f.updated, c)
	return nil
}

func mustTime(t *testing.T, s string) types.TimeString {
	t.Helper()
	ts, err := types.NewTimeStringFromString(s)
	require.NoError(t, err)
	return ts
}

func testSchedule(t *testing.T) domain.WeekSchedule {
	t.Helper()
	weekday := domain.DaySchedule{
		Open:      true,
		OpenTime:  mustTime(t, "08:00"),
		CloseTime: mustTime(t, "18:00"),
	}
	return domain.WeekSchedule{
		Monday:    weekday,
		Tuesday:   weekday,
		Wednesday: weekday,
		Thursday:  weekday,
		Friday:    weekday,
		Saturday: domain.DaySchedule{
			Open:      true,
			OpenTime:  mustTime(t, "09:00"),
			CloseTime: mustTime(t, "14:00"),
		},
		Sunday: domain.DaySchedule{Open: false},
	}
}

func testPolicy() Policy {
	return Policy{
		SlotDurationMinutes:        30,
		AppointmentDurationMinutes: 60,
		MinNoticeMinutes:           60,
		AdvanceBookingDays:         0,
	}
}

// Monday 2025-10-13 09:00; Tuesday 2025-10-14 is a clean future weekday.
var testNow = time.Date(2025, 10, 13, 9, 0, 0, 0, time.UTC)

func testRequest(t *testing.T) *Request {
	t.Helper()
	return &Request{
		Name:      "Jan Kowalski",
		Phone:     "+48123456789",
		Service:   "Instalacje wodne",
		Date:      time.Date(2025, 10, 14, 0, 0, 0, 0, time.UTC),
		StartTime: mustTime(t, "10:00"),
	}
}

func newTestUseCase(t *testing.T, appts *fakeAppointmentRepo, customers *fakeCustomerRepo) *UseCase {
	t.Helper()
	return NewUseCase(appts, customers, fakeTxManager{}, testSchedule(t), testPolicy(), nopLogger{}).
		WithTimeProvider(fixedTime{now: testNow})
}

func TestCreateAppointmentSuccess(t *testing.T) {
	appts := &fakeAppointmentRepo{}
	customers := &fakeCustomerRepo{}
	uc := newTestUseCase(t, appts, customers)

	resp, err := uc.Execute(context.Background(), testRequest(t))

	require.NoError(t, err)
	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, "Instalacje wodne", resp.Service)
	assert.Equal(t, "10:00", resp.StartTime.String())
	assert.Equal(t, 60, resp.DurationMinutes)
	assert.NotEmpty(t, resp.PublicRef)

	require.Len(t, appts.created, 1)
	require.Len(t, customers.created, 1)
	assert.Equal(t, "Jan", customers.created[0].FirstName)
	assert.Equal(t, "Kowalski", customers.created[0].LastName)
}

func TestCreateAppointmentReusesCustomer(t *testing.T) {
	appts := &fakeAppointmentRepo{}
	customers := &fakeCustomerRepo{
		existing: &domain.Customer{ID: 42, FirstName: "Jan", Phone: "+48123456789"},
	}
	uc := newTestUseCase(t, appts, customers)

	_, err := uc.Execute(context.Background(), testRequest(t))

	require.NoError(t, err)
	assert.Empty(t, customers.created)
	require.Len(t, customers.updated, 1)
	require.Len(t, appts.created, 1)
	assert.Equal(t, int64(42), appts.created[0].CustomerID)
}

func TestCreateAppointmentSlotTaken(t *testing.T) {
	appts := &fakeAppointmentRepo{
		existing: []*domain.Appointment{
			{
				ScheduledTime:   mustTime(t, "09:30"),
				DurationMinutes: 60, // runs until 10:30, overlaps 10:00
				Status:          domain.StatusConfirmed,
			},
		},
	}
	uc := newTestUseCase(t, appts, &fakeCustomerRepo{})

	_, err := uc.Execute(context.Background(), testRequest(t))

	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.Empty(t, appts.created)
}

func TestCreateAppointmentTouchingSlotAllowed(t *testing.T) {
	appts := &fakeAppointmentRepo{
		existing: []*domain.Appointment{
			{
				ScheduledTime:   mustTime(t, "09:00"),
				DurationMinutes: 60, // ends exactly at 10:00
				Status:          domain.StatusConfirmed,
			},
		},
	}
	uc := newTestUseCase(t, appts, &fakeCustomerRepo{})

	_, err := uc.Execute(context.Background(), testRequest(t))

	require.NoError(t, err)
	require.Len(t, appts.created, 1)
}

func TestCreateAppointmentClosedDay(t *testing.T) {
	uc := newTestUseCase(t, &fakeAppointmentRepo{}, &fakeCustomerRepo{})

	req := testRequest(t)
	req.Date = time.Date(2025, 10, 19, 0, 0, 0, 0, time.UTC) // Sunday

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrClosed)
}

func TestCreateAppointmentUnknownService(t *testing.T) {
	uc := newTestUseCase(t, &fakeAppointmentRepo{}, &fakeCustomerRepo{})

	req := testRequest(t)
	req.Service = "Naprawa dachu"

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrUnknownService)
}

func TestCreateAppointmentMisalignedTime(t *testing.T) {
	uc := newTestUseCase(t, &fakeAppointmentRepo{}, &fakeCustomerRepo{})

	req := testRequest(t)
	req.StartTime = mustTime(t, "10:15")

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrInvalidTimeSlot)
}

func TestCreateAppointmentTooLateSameDay(t *testing.T) {
	uc := newTestUseCase(t, &fakeAppointmentRepo{}, &fakeCustomerRepo{})

	// Now is Monday 09:00 with a 60-minute notice; 09:30 today violates it.
	req := testRequest(t)
	req.Date = testNow
	req.StartTime = mustTime(t, "09:30")

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrTooLateToBook)
}

func TestCreateAppointmentMissingFields(t *testing.T) {
	uc := newTestUseCase(t, &fakeAppointmentRepo{}, &fakeCustomerRepo{})

	req := testRequest(t)
	req.Name = "  "

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrInvalidInput)
}
