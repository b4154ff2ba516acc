package bookingapi

// BookingRequest is the JSON payload the booking endpoint expects.
type BookingRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email,omitempty"`
	Phone       string `json:"phone"`
	Service     string `json:"service"`
	Date        string `json:"date"` // YYYY-MM-DD
	Time        string `json:"time"` // HH:MM
	Address     string `json:"address,omitempty"`
	Description string `json:"description,omitempty"`
}

// BookingData is the confirmed booking echoed back by the API.
type BookingData struct {
	Ref         string `json:"ref,omitempty"`
	Name        string `json:"name"`
	Email       string `json:"email,omitempty"`
	Phone       string `json:"phone"`
	Service     string `json:"service"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Address     string `json:"address,omitempty"`
	Description string `json:"description,omitempty"`
}

// bookingResponse is the raw envelope of the booking endpoint.
type bookingResponse struct {
	Success     bool         `json:"success"`
	BookingData *BookingData `json:"booking_data,omitempty"`
	Error       string       `json:"error,omitempty"`
}

// Slot is one candidate appointment time returned by the slots endpoint.
type Slot struct {
	Time      string `json:"time"` // HH:MM
	Available bool   `json:"available"`
}

// slotsResponse is the raw envelope of the slots endpoint.
type slotsResponse struct {
	Date  string `json:"date"`
	Slots []Slot `json:"slots"`
}

// Logger is the logging interface the client depends on.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
