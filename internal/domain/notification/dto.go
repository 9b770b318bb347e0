package notification

import "time"

// ============= Request DTOs =============

// CreateNotificationRequest creates an inbox row for a user.
type CreateNotificationRequest struct {
	UserID  string                 `json:"userId"`
	Title   string                 `json:"title"`
	Message string                 `json:"message"`
	Type    NotificationType       `json:"type"`
	Payload map[string]interface{} `json:"payload,omitempty"`
	Link    *string                `json:"link,omitempty"`
}

// MarkReadRequest names the notifications to mark as read.
type MarkReadRequest struct {
	NotificationIDs []string `json:"notificationIds"`
}

// ============= Response DTOs =============

type NotificationResponse struct {
	ID        string                 `json:"id"`
	Title     string                 `json:"title"`
	Message   string                 `json:"message"`
	Type      NotificationType       `json:"type"`
	Payload   map[string]interface{} `json:"payload,omitempty"`
	Link      *string                `json:"link,omitempty"`
	IsRead    bool                   `json:"isRead"`
	CreatedAt time.Time              `json:"createdAt"`
}

type MarkReadResponse struct {
	Message string `json:"message"`
	Count   int    `json:"count"`
}

type UnreadCountResponse struct {
	UnreadCount int `json:"unreadCount"`
}

// ToResponse converts a Notification entity to its API representation.
func (n *Notification) ToResponse() NotificationResponse {
	return NotificationResponse{
		ID:        n.ID,
		Title:     n.Title,
		Message:   n.Message,
		Type:      n.Type,
		Payload:   n.Payload,
		Link:      n.Link,
		IsRead:    n.IsRead,
		CreatedAt: n.CreatedAt,
	}
}
