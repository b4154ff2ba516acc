package get_stats

import "github.com/sanbud-pl/booking-service/internal/service/appointments/models"

// StatsResponse is the admin dashboard summary.
type StatsResponse struct {
	Appointments   models.StatsResponse `json:"appointments"`
	UnreadMessages int                  `json:"unreadMessages"`
}
