package submit_contact

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sanbud-pl/booking-service/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeMessageRepo struct {
	created []*domain.Message
}

func (f *fakeMessageRepo) Create(_ context.Context, msg *domain.Message) (*domain.Message, error) {
	msg.ID = int64(len(f.created) + 1)
	msg.CreatedAt = time.Date(2025, 10, 13, 12, 0, 0, 0, time.UTC)
	f.created = append(f.created, msg)
	return msg, nil
}

func TestSubmitContactSuccess(t *testing.T) {
	repo := &fakeMessageRepo{}
	uc := NewUseCase(repo, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		Name:  "Anna Nowak",
		Email: "anna@example.com",
		Body:  "Proszę o wycenę remontu łazienki.",
	})

	require.NoError(t, err)
	assert.Equal(t, "normal", resp.Priority)
	require.Len(t, repo.created, 1)
	assert.Equal(t, domain.MessageTypeContact, repo.created[0].Type)
	assert.False(t, repo.created[0].IsRead)
}

func TestSubmitContactEmergencyPriority(t *testing.T) {
	repo := &fakeMessageRepo{}
	uc := NewUseCase(repo, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		Name:  "Anna Nowak",
		Email: "anna@example.com",
		Body:  "Awaria rury w kuchni, woda się leje!",
	})

	require.NoError(t, err)
	assert.Equal(t, "urgent", resp.Priority)
}

func TestSubmitContactValidation(t *testing.T) {
	uc := NewUseCase(&fakeMessageRepo{}, nopLogger{})

	cases := []struct {
		name string
		req  Request
	}{
		{"missing name", Request{Email: "a@b.pl", Body: "treść"}},
		{"missing email", Request{Name: "Anna", Body: "treść"}},
		{"bad email", Request{Name: "Anna", Email: "nope", Body: "treść"}},
		{"missing body", Request{Name: "Anna", Email: "a@b.pl"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), &tc.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
