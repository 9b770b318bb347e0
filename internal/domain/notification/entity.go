package notification

import "time"

// NotificationType labels what a notification is about.
type NotificationType string

const (
	TypeLeaveStatus      NotificationType = "leave_status"
	TypePayrollGenerated NotificationType = "payroll"
	TypeSuccess          NotificationType = "success"
	TypeInfo             NotificationType = "info"
)

// Notification is an inbox row. Only the read flag mutates after creation.
type Notification struct {
	ID        string
	UserID    string
	Title     string
	Message   string
	Type      NotificationType
	Payload   map[string]interface{}
	Link      *string
	IsRead    bool
	CreatedAt time.Time
}
