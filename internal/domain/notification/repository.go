package notification

import "context"

type Repository interface {
	Create(ctx context.Context, n *Notification) error
	// ListByUser returns the user's notifications, newest first.
	ListByUser(ctx context.Context, userID string) ([]Notification, error)
	// MarkRead updates only rows owned by userID and returns the count
	// actually updated; ids belonging to other users are silently skipped.
	MarkRead(ctx context.Context, userID string, ids []string) (int, error)
	UnreadCount(ctx context.Context, userID string) (int, error)
}
