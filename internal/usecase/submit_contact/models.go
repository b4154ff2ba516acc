package submit_contact

import "time"

// Request carries a contact form submission.
type Request struct {
	Name    string
	Email   string
	Phone   *string
	Subject *string
	Body    string
}

// Response mirrors the stored message.
type Response struct {
	ID        int64
	Priority  string
	CreatedAt time.Time
}
