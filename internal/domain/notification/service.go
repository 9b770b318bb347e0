package notification

import "context"

// Service is the notification outbox. Creation happens synchronously inside
// the request that triggers it; there is no background delivery.
type Service interface {
	Create(ctx context.Context, req CreateNotificationRequest) (NotificationResponse, error)
	ListForUser(ctx context.Context, userID string) ([]NotificationResponse, error)
	MarkRead(ctx context.Context, userID string, req MarkReadRequest) (MarkReadResponse, error)
	UnreadCount(ctx context.Context, userID string) (int, error)
}
