package domain

import "time"

// Customer represents a person who booked an appointment or sent a message.
// Customers are created implicitly on first booking (get-or-create by
// email or phone) and reused afterwards.
type Customer struct {
	ID         int64
	FirstName  string
	LastName   string
	Email      string
	Phone      string
	Address    *string
	City       *string
	PostalCode *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// FullName joins first and last name for display and calendar exports.
func (c *Customer) FullName() string {
	if c.LastName == "" {
		return c.FirstName
	}
	return c.FirstName + " " + c.LastName
}
