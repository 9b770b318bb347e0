package notification

import "errors"

var (
	ErrNotificationNotFound = errors.New("notification not found")
	ErrInvalidIDList        = errors.New("invalid notification IDs")
)
