package bookingapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testRequest() *BookingRequest {
	return &BookingRequest{
		Name:    "Jan Kowalski",
		Phone:   "+48123456789",
		Service: "Instalacje wodne",
		Date:    "2025-10-14",
		Time:    "10:00",
	}
}

func TestCreateBookingSuccess(t *testing.T) {
	var received BookingRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/v1/book-appointment", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(bookingResponse{
			Success: true,
			BookingData: &BookingData{
				Ref:     "4f5e9d3c",
				Name:    received.Name,
				Phone:   received.Phone,
				Service: received.Service,
				Date:    received.Date,
				Time:    received.Time,
			},
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second, nopLogger{})
	data, err := client.CreateBooking(context.Background(), testRequest())

	require.NoError(t, err)
	assert.Equal(t, "Jan Kowalski", data.Name)
	assert.Equal(t, "2025-10-14", data.Date)
	assert.Equal(t, "10:00", data.Time)
	assert.Equal(t, "Jan Kowalski", received.Name)
}

func TestCreateBookingRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(bookingResponse{
			Success: false,
			Error:   "brak wymaganych pól",
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second, nopLogger{})
	data, err := client.CreateBooking(context.Background(), testRequest())

	assert.ErrorIs(t, err, ErrRejected)
	assert.ErrorContains(t, err, "brak wymaganych pól")
	assert.Nil(t, data)
}

func TestCreateBookingSlotTaken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second, nopLogger{})
	_, err := client.CreateBooking(context.Background(), testRequest())

	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestCreateBookingServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second, nopLogger{})
	_, err := client.CreateBooking(context.Background(), testRequest())

	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestCreateBookingNetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse connections

	client := NewClient(srv.URL, time.Second, nopLogger{})
	_, err := client.CreateBooking(context.Background(), testRequest())

	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestGetAvailableSlots(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1/available-slots", r.URL.Path)
		require.Equal(t, "2025-10-14", r.URL.Query().Get("date"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(slotsResponse{
			Date: "2025-10-14",
			Slots: []Slot{
				{Time: "08:00", Available: true},
				{Time: "08:30", Available: false},
			},
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second, nopLogger{})
	slots, err := client.GetAvailableSlots(context.Background(), time.Date(2025, 10, 14, 0, 0, 0, 0, time.UTC))

	require.NoError(t, err)
	require.Len(t, slots, 2)
	assert.True(t, slots[0].Available)
	assert.False(t, slots[1].Available)
}
