package postgresql

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/gcet-hr/hr-backend-go/internal/domain/notification"
	"github.com/gcet-hr/hr-backend-go/internal/pkg/database"
	"github.com/google/uuid"
)

type notificationRepository struct {
	db *database.DB
}

// NewNotificationRepository creates a new notification repository
func NewNotificationRepository(db *database.DB) notification.Repository {
	return &notificationRepository{db: db}
}

// Create creates a new notification
func (r *notificationRepository) Create(ctx context.Context, n *notification.Notification) error {
	q := GetQuerier(ctx, r.db)

	if n.ID == "" {
		n.ID = uuid.New().String()
	}

	var payloadJSON []byte
	if n.Payload != nil {
		var err error
		payloadJSON, err = json.Marshal(n.Payload)
		if err != nil {
			return fmt.Errorf("failed to marshal notification payload: %w", err)
		}
	}

	query := `
		INSERT INTO notifications (id, user_id, title, message, type, payload, link, is_read)
		VALUES ($1, $2, $3, $4, $5, $6, $7, FALSE)
		RETURNING created_at
	`

	err := q.QueryRow(ctx, query,
		n.ID,
		n.UserID,
		n.Title,
		n.Message,
		string(n.Type),
		payloadJSON,
		n.Link,
	).Scan(&n.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}

	return nil
}

// ListByUser returns the user's notifications, newest first
func (r *notificationRepository) ListByUser(ctx context.Context, userID string) ([]notification.Notification, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, title, message, type, payload, link, is_read, created_at
		FROM notifications
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := q.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query notifications: %w", err)
	}
	defer rows.Close()

	var notifications []notification.Notification
	for rows.Next() {
		var n notification.Notification
		var notifType string
		var payloadJSON []byte

		err := rows.Scan(
			&n.ID, &n.UserID, &n.Title, &n.Message, &notifType,
			&payloadJSON, &n.Link, &n.IsRead, &n.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan notification: %w", err)
		}

		n.Type = notification.NotificationType(notifType)
		if len(payloadJSON) > 0 {
			if err := json.Unmarshal(payloadJSON, &n.Payload); err != nil {
				return nil, fmt.Errorf("failed to unmarshal notification payload: %w", err)
			}
		}

		notifications = append(notifications, n)
	}

	return notifications, rows.Err()
}

// MarkRead marks the given notifications as read, but only those owned by
// userID. The ownership filter is what prevents cross-user marking.
func (r *notificationRepository) MarkRead(ctx context.Context, userID string, ids []string) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE notifications
		SET is_read = TRUE
		WHERE user_id = $1 AND id = ANY($2)
	`

	tag, err := q.Exec(ctx, query, userID, ids)
	if err != nil {
		return 0, fmt.Errorf("failed to mark notifications read: %w", err)
	}

	return int(tag.RowsAffected()), nil
}

// UnreadCount returns the number of unread notifications for the user
func (r *notificationRepository) UnreadCount(ctx context.Context, userID string) (int, error) {
	q := GetQuerier(ctx, r.db)

	var count int
	err := q.QueryRow(ctx, `
		SELECT COUNT(*) FROM notifications WHERE user_id = $1 AND is_read = FALSE
	`, userID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count unread notifications: %w", err)
	}

	return count, nil
}
