package create_appointment

import (
	"time"

	"github.com/sanbud-pl/booking-service/internal/domain"
	createAppointment "github.com/sanbud-pl/booking-service/internal/usecase/create_appointment"
	"github.com/sanbud-pl/booking-service/pkg/types"
)

// BookAppointmentRequest is the booking form payload.
type BookAppointmentRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email,omitempty"`
	Phone       string `json:"phone"`
	Service     string `json:"service"`
	Date        string `json:"date"` // YYYY-MM-DD
	Time        string `json:"time"` // HH:MM
	Address     string `json:"address,omitempty"`
	Description string `json:"description,omitempty"`
}

// BookingData is the confirmed booking echoed back to the client.
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

// BookAppointmentResponse is the endpoint's envelope.
type BookAppointmentResponse struct {
	Success     bool         `json:"success"`
	BookingData *BookingData `json:"booking_data,omitempty"`
	Error       string       `json:"error,omitempty"`
}

// ToUseCaseRequest converts the wire payload into a use case request.
func (r *BookAppointmentRequest) ToUseCaseRequest() (*createAppointment.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.Time)
	if err != nil {
		return nil, err
	}

	req := &createAppointment.Request{
		Name:      r.Name,
		Phone:     r.Phone,
		Service:   r.Service,
		Date:      date,
		StartTime: startTime,
	}
	if r.Email != "" {
		req.Email = &r.Email
	}
	if r.Address != "" {
		req.Address = &r.Address
	}
	if r.Description != "" {
		req.Description = &r.Description
	}

	return req, nil
}

// FromUseCaseResponse converts the use case response to the wire format.
func FromUseCaseResponse(resp *createAppointment.Response) *BookAppointmentResponse {
	data := &BookingData{
		Ref:     resp.PublicRef,
		Name:    resp.CustomerName,
		Phone:   resp.CustomerPhone,
		Service: resp.Service,
		Date:    resp.Date.Format(domain.DateFormat),
		Time:    resp.StartTime.String(),
	}
	if resp.CustomerEmail != nil {
		data.Email = *resp.CustomerEmail
	}
	if resp.Address != nil {
		data.Address = *resp.Address
	}
	if resp.Description != nil {
		data.Description = *resp.Description
	}

	return &BookAppointmentResponse{
		Success:     true,
		BookingData: data,
	}
}
