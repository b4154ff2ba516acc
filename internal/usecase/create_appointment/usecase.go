package create_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/sanbud-pl/booking-service/internal/domain"
	customerRepo "github.com/sanbud-pl/booking-service/internal/infra/storage/customer"
	"github.com/sanbud-pl/booking-service/pkg/ptr"
	"github.com/sanbud-pl/booking-service/pkg/types"
)

// UseCase books an appointment. The availability check and the insert run
// in one serializable transaction so two clients cannot take the same
// slot.
type UseCase struct {
	appointmentRepo AppointmentRepository
	customerRepo    CustomerRepository
	txManager       TransactionManager
	schedule        domain.WeekSchedule
	policy          Policy
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase creates the use case.
func NewUseCase(
	appointmentRepo AppointmentRepository,
	customerRepo CustomerRepository,
	txManager TransactionManager,
	schedule domain.WeekSchedule,
	policy Policy,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		customerRepo:    customerRepo,
		txManager:       txManager,
		schedule:        schedule,
		policy:          policy,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// WithTimeProvider overrides the time source, used in tests.
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute runs the use case.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: service=%q, date=%s, time=%s",
		req.Service, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Validate input
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Service must be one of the offered types
	service, ok := domain.ParseServiceType(req.Service)
	if !ok {
		uc.logger.Warn("CreateAppointment: unknown service %q", req.Service)
		return nil, fmt.Errorf("%w: %q", ErrUnknownService, req.Service)
	}

	// 3. Current time
	now := uc.timeProvider.Now()

	// 4. Opening hours for the weekday
	day := uc.schedule.ForDate(req.Date)
	if !day.Open {
		uc.logger.Warn("CreateAppointment: closed on %s", req.Date.Format(domain.DateFormat))
		return nil, ErrClosed
	}

	// 5. Start time must sit on the slot grid inside opening hours
	if err := validateTimeSlot(req.StartTime, day, uc.policy.SlotDurationMinutes); err != nil {
		uc.logger.Warn("CreateAppointment: time slot validation failed: %v", err)
		return nil, err
	}

	var result *domain.Appointment

	// 6. Availability check, customer get-or-create and insert in one
	// serializable transaction
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 6.1. Date window
		if err := validateDate(req.Date, now, uc.policy.AdvanceBookingDays); err != nil {
			uc.logger.Warn("CreateAppointment: date validation failed: %v", err)
			return err
		}

		// 6.2. Minimum notice for same-day bookings
		if err := validateBookingTime(req.Date, req.StartTime, now, uc.policy.MinNoticeMinutes); err != nil {
			uc.logger.Warn("CreateAppointment: booking time validation failed: %v", err)
			return err
		}

		// 6.3. Load the day's active appointments; the repository locks
		// the rows with FOR UPDATE inside a transaction
		filter := domain.AppointmentsFilter{
			StartDate:       ptr.Ptr(req.Date),
			EndDate:         ptr.Ptr(req.Date),
			IncludeInactive: false,
		}

		appointments, err := uc.appointmentRepo.GetWithFilter(txCtx, filter)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to get appointments: %v", err)
			return fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
		}

		// 6.4. The requested appointment must not overlap an existing one
		if hasOverlap(req.StartTime, uc.policy.AppointmentDurationMinutes, appointments) {
			uc.logger.Warn("CreateAppointment: slot %s on %s already taken",
				req.StartTime, req.Date.Format(domain.DateFormat))
			return ErrSlotNotAvailable
		}

		// 6.5. Get or create the customer
		customer, err := uc.getOrCreateCustomer(txCtx, req)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to resolve customer: %v", err)
			return fmt.Errorf("%w: failed to resolve customer: %v", ErrInternal, err)
		}

		// 6.6. Insert the appointment with denormalized customer data
		appt := &domain.Appointment{
			PublicRef:       uuid.NewString(),
			CustomerID:      customer.ID,
			Service:         service,
			ScheduledDate:   req.Date,
			ScheduledTime:   req.StartTime,
			DurationMinutes: uc.policy.AppointmentDurationMinutes,
			Status:          domain.StatusPending,
			CustomerName:    req.Name,
			CustomerPhone:   req.Phone,
			CustomerEmail:   req.Email,
			Address:         req.Address,
			Description:     req.Description,
		}

		created, err := uc.appointmentRepo.Create(txCtx, appt)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateAppointment: created appointment id=%d ref=%s", result.ID, result.PublicRef)

	return &Response{
		ID:              result.ID,
		PublicRef:       result.PublicRef,
		Service:         result.Service.String(),
		Date:            result.ScheduledDate,
		StartTime:       result.ScheduledTime,
		DurationMinutes: result.DurationMinutes,
		Status:          string(result.Status),
		CustomerName:    result.CustomerName,
		CustomerPhone:   result.CustomerPhone,
		CustomerEmail:   result.CustomerEmail,
		Address:         result.Address,
		Description:     result.Description,
		CreatedAt:       result.CreatedAt,
	}, nil
}

// getOrCreateCustomer finds the customer by email or phone, creating a
// record on first contact. Name parts are refreshed on a match so the
// latest form data wins.
func (uc *UseCase) getOrCreateCustomer(ctx context.Context, req *Request) (*domain.Customer, error) {
	email := ""
	if req.Email != nil {
		email = *req.Email
	}

	first, last := splitName(req.Name)

	existing, err := uc.customerRepo.GetByEmailOrPhone(ctx, email, req.Phone)
	if err == nil {
		existing.FirstName = first
		existing.LastName = last
		existing.Phone = req.Phone
		if email != "" {
			existing.Email = email
		}
		if req.Address != nil {
			existing.Address = req.Address
		}
		if err := uc.customerRepo.Update(ctx, existing); err != nil {
			return nil, err
		}
		return existing, nil
	}
	if !errors.Is(err, customerRepo.ErrCustomerNotFound) {
		return nil, err
	}

	return uc.customerRepo.Create(ctx, &domain.Customer{
		FirstName: first,
		LastName:  last,
		Email:     email,
		Phone:     req.Phone,
		Address:   req.Address,
	})
}

// hasOverlap reports whether the requested appointment overlaps any
// active appointment. Touching boundaries do not overlap.
func hasOverlap(startTime types.TimeString, durationMinutes int, appointments []*domain.Appointment) bool {
	end, err := startTime.AddMinutes(durationMinutes)
	if err != nil {
		return true
	}

	for _, appt := range appointments {
		if !appt.IsActive() {
			continue
		}

		apptStart := appt.ScheduledTime
		apptEnd, err := appt.ScheduledTime.AddMinutes(appt.DurationMinutes)
		if err != nil {
			continue
		}

		if apptStart.IsBefore(end) && apptEnd.IsAfter(startTime) {
			return true
		}
	}

	return false
}

func splitName(full string) (first, last string) {
	first = full
	for i := len(full) - 1; i >= 0; i-- {
		if full[i] == ' ' {
			return full[:i], full[i+1:]
		}
	}
	return first, ""
}
