package submit_contact

import (
	"context"
	"fmt"
	"strings"

	"github.com/sanbud-pl/booking-service/internal/domain"
)

// UseCase stores a contact form message for the admin panel.
type UseCase struct {
	messageRepo MessageRepository
	logger      Logger
}

// NewUseCase creates the use case.
func NewUseCase(messageRepo MessageRepository, logger Logger) *UseCase {
	return &UseCase{
		messageRepo: messageRepo,
		logger:      logger,
	}
}

// Execute runs the use case.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SubmitContact: from=%q", req.Email)

	// 1. Validate input
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("SubmitContact: validation failed: %v", err)
		return nil, err
	}

	// 2. Store the message
	msg := &domain.Message{
		Name:     strings.TrimSpace(req.Name),
		Email:    strings.TrimSpace(req.Email),
		Phone:    req.Phone,
		Subject:  req.Subject,
		Body:     req.Body,
		Type:     domain.MessageTypeContact,
		Priority: classifyPriority(req),
	}

	created, err := uc.messageRepo.Create(ctx, msg)
	if err != nil {
		uc.logger.Error("SubmitContact: failed to create message: %v", err)
		return nil, fmt.Errorf("%w: failed to create message: %v", ErrInternal, err)
	}

	uc.logger.Info("SubmitContact: created message id=%d priority=%s", created.ID, created.Priority)

	return &Response{
		ID:        created.ID,
		Priority:  string(created.Priority),
		CreatedAt: created.CreatedAt,
	}, nil
}

// classifyPriority bumps messages mentioning an emergency so they surface
// first in the admin panel.
func classifyPriority(req *Request) domain.MessagePriority {
	text := strings.ToLower(req.Body)
	if req.Subject != nil {
		text += " " + strings.ToLower(*req.Subject)
	}

	if strings.Contains(text, "awaria") || strings.Contains(text, "pilne") {
		return domain.PriorityUrgent
	}
	return domain.PriorityNormal
}
