package domain

import "time"

// MessageType classifies incoming messages.
type MessageType string

const (
	MessageTypeContact MessageType = "contact"
	MessageTypeBooking MessageType = "booking"
	MessageTypeInquiry MessageType = "inquiry"
)

// MessagePriority is the admin triage priority of a message.
type MessagePriority string

const (
	PriorityLow    MessagePriority = "low"
	PriorityNormal MessagePriority = "normal"
	PriorityHigh   MessagePriority = "high"
	PriorityUrgent MessagePriority = "urgent"
)

// Message represents a contact form submission shown in the admin panel.
type Message struct {
	ID        int64
	Name      string
	Email     string
	Phone     *string
	Subject   *string
	Body      string
	Type      MessageType
	Priority  MessagePriority
	IsRead    bool
	Notes     *string
	CreatedAt time.Time
	ReadAt    *time.Time
}

// MessagesFilter narrows admin message listings.
type MessagesFilter struct {
	UnreadOnly bool
	Type       *MessageType
}
