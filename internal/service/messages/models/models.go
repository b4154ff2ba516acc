package models

import (
	"errors"
	"time"

	"github.com/sanbud-pl/booking-service/internal/domain"
)

var (
	// ErrInvalidType is returned for an unknown message type string.
	ErrInvalidType = errors.New("invalid message type")
)

// ListMessagesRequest narrows the admin message listing.
type ListMessagesRequest struct {
	UnreadOnly bool    `json:"unreadOnly,omitempty"`
	Type       *string `json:"type,omitempty"`
}

// ToDomainFilter converts the request into a domain filter.
func (r *ListMessagesRequest) ToDomainFilter() (domain.MessagesFilter, error) {
	filter := domain.MessagesFilter{
		UnreadOnly: r.UnreadOnly,
	}

	if r.Type != nil {
		switch t := domain.MessageType(*r.Type); t {
		case domain.MessageTypeContact, domain.MessageTypeBooking, domain.MessageTypeInquiry:
			filter.Type = &t
		default:
			return filter, ErrInvalidType
		}
	}

	return filter, nil
}

// MessageResponse is the admin-facing message DTO.
type MessageResponse struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Phone     *string `json:"phone,omitempty"`
	Subject   *string `json:"subject,omitempty"`
	Body      string  `json:"body"`
	Type      string  `json:"type"`
	Priority  string  `json:"priority"`
	IsRead    bool    `json:"isRead"`
	Notes     *string `json:"notes,omitempty"`
	CreatedAt string  `json:"createdAt"` // ISO 8601
	ReadAt    *string `json:"readAt,omitempty"`
}

// MessageListResponse wraps a list of messages.
type MessageListResponse struct {
	Messages    []MessageResponse `json:"messages"`
	UnreadCount int               `json:"unreadCount"`
}

// FromDomainMessage converts the domain model into a DTO.
func FromDomainMessage(m *domain.Message) *MessageResponse {
	if m == nil {
		return nil
	}

	resp := &MessageResponse{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Phone:     m.Phone,
		Subject:   m.Subject,
		Body:      m.Body,
		Type:      string(m.Type),
		Priority:  string(m.Priority),
		IsRead:    m.IsRead,
		Notes:     m.Notes,
		CreatedAt: m.CreatedAt.Format(time.RFC3339),
	}

	if m.ReadAt != nil {
		readStr := m.ReadAt.Format(time.RFC3339)
		resp.ReadAt = &readStr
	}

	return resp
}
