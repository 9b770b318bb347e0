package notification

import (
	"context"
	"errors"
	"testing"

	"github.com/gcet-hr/hr-backend-go/internal/domain/notification"
	"github.com/gcet-hr/hr-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubNotificationRepo struct {
	created    *notification.Notification
	listResult []notification.Notification
	markedIDs  []string
	markCount  int
	unread     int
}

func (s *stubNotificationRepo) Create(ctx context.Context, n *notification.Notification) error {
	n.ID = "notif-1"
	s.created = n
	return nil
}

func (s *stubNotificationRepo) ListByUser(ctx context.Context, userID string) ([]notification.Notification, error) {
	return s.listResult, nil
}

func (s *stubNotificationRepo) MarkRead(ctx context.Context, userID string, ids []string) (int, error) {
	s.markedIDs = ids
	return s.markCount, nil
}

func (s *stubNotificationRepo) UnreadCount(ctx context.Context, userID string) (int, error) {
	return s.unread, nil
}

func TestCreateNotification(t *testing.T) {
	repo := &stubNotificationRepo{}
	svc := NewNotificationService(repo)

	link := "/leave"
	resp, err := svc.Create(context.Background(), notification.CreateNotificationRequest{
		UserID:  "user-1",
		Title:   "Leave Approved",
		Message: "Your leave request was approved",
		Type:    notification.TypeLeaveStatus,
		Payload: map[string]interface{}{"leaveId": "leave-1", "action": "approved"},
		Link:    &link,
	})
	require.NoError(t, err)
	assert.Equal(t, "notif-1", resp.ID)
	assert.Equal(t, notification.TypeLeaveStatus, resp.Type)
	assert.False(t, resp.IsRead)
	require.NotNil(t, repo.created)
	assert.Equal(t, "user-1", repo.created.UserID)
}

func TestCreateNotificationValidation(t *testing.T) {
	svc := NewNotificationService(&stubNotificationRepo{})

	_, err := svc.Create(context.Background(), notification.CreateNotificationRequest{})
	var errs validator.ValidationErrors
	require.True(t, errors.As(err, &errs))
	m := errs.ToMap()
	for _, field := range []string{"userId", "title", "message", "type"} {
		assert.Contains(t, m, field)
	}
}

func TestMarkReadEmptyList(t *testing.T) {
	repo := &stubNotificationRepo{}
	svc := NewNotificationService(repo)

	_, err := svc.MarkRead(context.Background(), "user-1", notification.MarkReadRequest{})
	assert.ErrorIs(t, err, notification.ErrInvalidIDList)
	assert.Nil(t, repo.markedIDs)
}

func TestMarkRead(t *testing.T) {
	repo := &stubNotificationRepo{markCount: 2}
	svc := NewNotificationService(repo)

	resp, err := svc.MarkRead(context.Background(), "user-1", notification.MarkReadRequest{
		NotificationIDs: []string{"n1", "n2", "n3"},
	})
	require.NoError(t, err)
	// count reflects rows actually owned by the caller, not ids submitted
	assert.Equal(t, 2, resp.Count)
	assert.Equal(t, "2 notifications marked as read", resp.Message)
	assert.Equal(t, []string{"n1", "n2", "n3"}, repo.markedIDs)
}

func TestUnreadCount(t *testing.T) {
	svc := NewNotificationService(&stubNotificationRepo{unread: 5})

	count, err := svc.UnreadCount(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, 5, count)
}
