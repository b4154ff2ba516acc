package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sanbud-pl/booking-service/internal/domain"
	"github.com/sanbud-pl/booking-service/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type fakeAppointmentRepo struct {
	appointments []*domain.Appointment
	err          error
	calls        int
}

func (f *fakeAppointmentRepo) GetWithFilter(_ context.Context, _ domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	f.calls++
	return f.appointments, f.err
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

// Monday 2025-10-13 09:00 local, so Tuesday 2025-10-14 is a clean future
// weekday.
var testNow = time.Date(2025, 10, 13, 9, 0, 0, 0, time.UTC)

func newTestUseCase(t *testing.T, repo *fakeAppointmentRepo) *UseCase {
	t.Helper()
	return NewUseCase(repo, testSchedule(t), testPolicy(), nopLogger{}).
		WithTimeProvider(fixedTime{now: testNow})
}

func TestWeekdaySlots(t *testing.T) {
	repo := &fakeAppointmentRepo{}
	uc := newTestUseCase(t, repo)

	resp, err := uc.Execute(context.Background(), &Request{
		Date: time.Date(2025, 10, 14, 0, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	require.Len(t, resp.Slots, 20) // 08:00 .. 17:30 in 30-minute steps
	assert.Equal(t, "08:00", resp.Slots[0].StartTime.String())
	assert.Equal(t, "17:30", resp.Slots[19].StartTime.String())
	for _, slot := range resp.Slots {
		assert.True(t, slot.Available)
		assert.Equal(t, 30, slot.DurationMinutes)
	}
}

func TestSaturdaySlots(t *testing.T) {
	repo := &fakeAppointmentRepo{}
	uc := newTestUseCase(t, repo)

	resp, err := uc.Execute(context.Background(), &Request{
		Date: time.Date(2025, 10, 18, 0, 0, 0, 0, time.UTC), // Saturday
	})

	require.NoError(t, err)
	require.Len(t, resp.Slots, 10) // 09:00 .. 13:30
	assert.Equal(t, "09:00", resp.Slots[0].StartTime.String())
	assert.Equal(t, "13:30", resp.Slots[9].StartTime.String())
}

func TestSundayClosed(t *testing.T) {
	repo := &fakeAppointmentRepo{}
	uc := newTestUseCase(t, repo)

	resp, err := uc.Execute(context.Background(), &Request{
		Date: time.Date(2025, 10, 19, 0, 0, 0, 0, time.UTC), // Sunday
	})

	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
	assert.Zero(t, repo.calls, "closed days should not hit storage")
}

func TestPastDateRejected(t *testing.T) {
	repo := &fakeAppointmentRepo{}
	uc := newTestUseCase(t, repo)

	_, err := uc.Execute(context.Background(), &Request{
		Date: time.Date(2025, 10, 10, 0, 0, 0, 0, time.UTC),
	})

	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestZeroDateRejected(t *testing.T) {
	repo := &fakeAppointmentRepo{}
	uc := newTestUseCase(t, repo)

	_, err := uc.Execute(context.Background(), &Request{})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestBookedSlotUnavailable(t *testing.T) {
	// A 60-minute appointment at 10:00 blocks both the 10:00 and the
	// 10:30 slots, but leaves 09:30 and 11:00 free.
	repo := &fakeAppointmentRepo{
		appointments: []*domain.Appointment{
			{
				ScheduledTime:   mustTime(t, "10:00"),
				DurationMinutes: 60,
				Status:          domain.StatusConfirmed,
			},
		},
	}
	uc := newTestUseCase(t, repo)

	resp, err := uc.Execute(context.Background(), &Request{
		Date: time.Date(2025, 10, 14, 0, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)

	byTime := make(map[string]bool, len(resp.Slots))
	for _, slot := range resp.Slots {
		byTime[slot.StartTime.String()] = slot.Available
	}

	assert.True(t, byTime["09:30"])
	assert.False(t, byTime["10:00"])
	assert.False(t, byTime["10:30"])
	assert.True(t, byTime["11:00"])
}

func TestCancelledAppointmentFreesSlot(t *testing.T) {
	repo := &fakeAppointmentRepo{
		appointments: []*domain.Appointment{
			{
				ScheduledTime:   mustTime(t, "10:00"),
				DurationMinutes: 60,
				Status:          domain.StatusCancelled,
			},
		},
	}
	uc := newTestUseCase(t, repo)

	resp, err := uc.Execute(context.Background(), &Request{
		Date: time.Date(2025, 10, 14, 0, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	for _, slot := range resp.Slots {
		assert.True(t, slot.Available)
	}
}

func TestSameDayMinNoticeFilter(t *testing.T) {
	// Now is Monday 09:00 with a 60-minute notice, so the first bookable
	// slot today is 10:00.
	repo := &fakeAppointmentRepo{}
	uc := newTestUseCase(t, repo)

	resp, err := uc.Execute(context.Background(), &Request{
		Date: testNow,
	})

	require.NoError(t, err)
	require.NotEmpty(t, resp.Slots)
	assert.Equal(t, "10:00", resp.Slots[0].StartTime.String())
	assert.Equal(t, "17:30", resp.Slots[len(resp.Slots)-1].StartTime.String())
}

func TestAdvanceBookingWindow(t *testing.T) {
	repo := &fakeAppointmentRepo{}
	policy := testPolicy()
	policy.AdvanceBookingDays = 7
	uc := NewUseCase(repo, testSchedule(t), policy, nopLogger{}).
		WithTimeProvider(fixedTime{now: testNow})

	_, err := uc.Execute(context.Background(), &Request{
		Date: testNow.AddDate(0, 0, 10),
	})

	assert.ErrorIs(t, err, ErrDateTooFarInFuture)
}
