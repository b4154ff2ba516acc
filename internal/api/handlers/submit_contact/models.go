package submit_contact

import (
	submitContact "github.com/sanbud-pl/booking-service/internal/usecase/submit_contact"
)

// ContactRequest is the contact form payload.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Subject string `json:"subject,omitempty"`
	Message string `json:"message"`
}

// ContactResponse acknowledges the stored message.
type ContactResponse struct {
	Success bool   `json:"success"`
	ID      int64  `json:"id,omitempty"`
	Error   string `json:"error,omitempty"`
}

// ToUseCaseRequest converts the wire payload into a use case request.
func (r *ContactRequest) ToUseCaseRequest() *submitContact.Request {
	req := &submitContact.Request{
		Name:  r.Name,
		Email: r.Email,
		Body:  r.Message,
	}
	if r.Phone != "" {
		req.Phone = &r.Phone
	}
	if r.Subject != "" {
		req.Subject = &r.Subject
	}
	return req
}
