package bookingflow

import (
	"time"

	"github.com/sanbud-pl/booking-service/internal/domain"
	"github.com/sanbud-pl/booking-service/pkg/types"
)

// Step identifies the current position in the booking flow.
type Step string

const (
	StepDate    Step = "date"
	StepTime    Step = "time"
	StepForm    Step = "form"
	StepSuccess Step = "success"
)

// ContactForm holds the contact fields entered on the form step.
// The fields survive backwards navigation so the user never re-types them.
type ContactForm struct {
	Name        string
	Phone       string
	Email       string
	Service     domain.ServiceType
	Description string
}

// Draft is the in-progress, unsaved booking held by the machine.
// SelectedTime is only ever set while SelectedDate is set.
type Draft struct {
	SelectedDate *time.Time
	SelectedTime *types.TimeString
	Form         ContactForm
}
