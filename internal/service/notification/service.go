package notification

import (
	"context"

	"github.com/gcet-hr/hr-backend-go/internal/domain/notification"
	"github.com/gcet-hr/hr-backend-go/internal/pkg/validator"
)

type service struct {
	repo notification.Repository
}

// NewNotificationService creates the synchronous notification outbox service.
func NewNotificationService(repo notification.Repository) notification.Service {
	return &service{repo: repo}
}

// Create implements notification.Service.
func (s *service) Create(ctx context.Context, req notification.CreateNotificationRequest) (notification.NotificationResponse, error) {
	var errs validator.ValidationErrors
	if validator.IsEmpty(req.UserID) {
		errs = append(errs, validator.ValidationError{Field: "userId", Message: "recipient is required"})
	}
	if validator.IsEmpty(req.Title) {
		errs = append(errs, validator.ValidationError{Field: "title", Message: "title is required"})
	}
	if validator.IsEmpty(req.Message) {
		errs = append(errs, validator.ValidationError{Field: "message", Message: "message is required"})
	}
	if validator.IsEmpty(string(req.Type)) {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "type is required"})
	}
	if len(errs) > 0 {
		return notification.NotificationResponse{}, errs
	}

	n := &notification.Notification{
		UserID:  req.UserID,
		Title:   req.Title,
		Message: req.Message,
		Type:    req.Type,
		Payload: req.Payload,
		Link:    req.Link,
	}
	if err := s.repo.Create(ctx, n); err != nil {
		return notification.NotificationResponse{}, err
	}

	return n.ToResponse(), nil
}

// ListForUser implements notification.Service.
func (s *service) ListForUser(ctx context.Context, userID string) ([]notification.NotificationResponse, error) {
	notifications, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	responses := make([]notification.NotificationResponse, 0, len(notifications))
	for i := range notifications {
		responses = append(responses, notifications[i].ToResponse())
	}

	return responses, nil
}

// MarkRead implements notification.Service.
func (s *service) MarkRead(ctx context.Context, userID string, req notification.MarkReadRequest) (notification.MarkReadResponse, error) {
	if len(req.NotificationIDs) == 0 {
		return notification.MarkReadResponse{}, notification.ErrInvalidIDList
	}

	count, err := s.repo.MarkRead(ctx, userID, req.NotificationIDs)
	if err != nil {
		return notification.MarkReadResponse{}, err
	}

	return notification.MarkReadResponse{
		Message: validator.Itoa(count) + " notifications marked as read",
		Count:   count,
	}, nil
}

// UnreadCount implements notification.Service.
func (s *service) UnreadCount(ctx context.Context, userID string) (int, error) {
	return s.repo.UnreadCount(ctx, userID)
}
