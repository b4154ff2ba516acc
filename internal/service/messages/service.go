package messages

import (
	"context"
	"errors"
	"fmt"

	messageRepo "github.com/sanbud-pl/booking-service/internal/infra/storage/message"
	"github.com/sanbud-pl/booking-service/internal/service/messages/models"
)

// Service is the admin-facing message service.
type Service struct {
	messageRepo MessageRepository
	logger      Logger
}

// NewService creates the message service.
func NewService(messageRepo MessageRepository, logger Logger) *Service {
	return &Service{
		messageRepo: messageRepo,
		logger:      logger,
	}
}

// List returns messages matching the admin filter, plus the unread count
// for the panel badge.
func (s *Service) List(ctx context.Context, req *models.ListMessagesRequest) (*models.MessageListResponse, error) {
	s.logger.Info("List: fetching messages, unreadOnly=%t", req.UnreadOnly)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	msgs, err := s.messageRepo.GetWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	unread, err := s.messageRepo.CountUnread(ctx)
	if err != nil {
		s.logger.Error("List: failed to count unread: %v", err)
		return nil, fmt.Errorf("%w: List - failed to count unread: %v", ErrInternal, err)
	}

	resp := &models.MessageListResponse{
		Messages:    make([]models.MessageResponse, 0, len(msgs)),
		UnreadCount: unread,
	}
	for _, m := range msgs {
		if dto := models.FromDomainMessage(m); dto != nil {
			resp.Messages = append(resp.Messages, *dto)
		}
	}

	s.logger.Info("List: fetched %d messages, %d unread", len(resp.Messages), unread)
	return resp, nil
}

// MarkRead flags a message as read.
func (s *Service) MarkRead(ctx context.Context, id int64) error {
	s.logger.Info("MarkRead: marking message id=%d as read", id)

	if err := s.messageRepo.MarkRead(ctx, id); err != nil {
		if errors.Is(err, messageRepo.ErrMessageNotFound) {
			s.logger.Warn("MarkRead: message id=%d not found", id)
			return ErrMessageNotFound
		}
		s.logger.Error("MarkRead: repository error for id=%d: %v", id, err)
		return fmt.Errorf("%w: MarkRead - repository error: %v", ErrInternal, err)
	}

	return nil
}

// CountUnread returns the number of unread messages.
func (s *Service) CountUnread(ctx context.Context) (int, error) {
	count, err := s.messageRepo.CountUnread(ctx)
	if err != nil {
		s.logger.Error("CountUnread: repository error: %v", err)
		return 0, fmt.Errorf("%w: CountUnread - repository error: %v", ErrInternal, err)
	}
	return count, nil
}
