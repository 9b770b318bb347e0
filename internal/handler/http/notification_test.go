package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gcet-hr/hr-backend-go/internal/domain/notification"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubNotificationService struct {
	listUserID string
	listResult []notification.NotificationResponse
	markUserID string
	markReq    notification.MarkReadRequest
	markResult notification.MarkReadResponse
	markErr    error
	unread     int
}

func (s *stubNotificationService) Create(ctx context.Context, req notification.CreateNotificationRequest) (notification.NotificationResponse, error) {
	return notification.NotificationResponse{}, nil
}

func (s *stubNotificationService) ListForUser(ctx context.Context, userID string) ([]notification.NotificationResponse, error) {
	s.listUserID = userID
	return s.listResult, nil
}

func (s *stubNotificationService) MarkRead(ctx context.Context, userID string, req notification.MarkReadRequest) (notification.MarkReadResponse, error) {
	s.markUserID = userID
	s.markReq = req
	return s.markResult, s.markErr
}

func (s *stubNotificationService) UnreadCount(ctx context.Context, userID string) (int, error) {
	return s.unread, nil
}

func authedRequest(t *testing.T, method, target string, body []byte) *http.Request {
	t.Helper()
	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := ja.Encode(map[string]interface{}{
		"user_id": "user-1",
		"email":   "test@example.com",
		"role":    "employee",
		"type":    "access",
	})
	require.NoError(t, err)

	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	return req.WithContext(jwtauth.NewContext(req.Context(), token, nil))
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   json.RawMessage `json:"error"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func TestNotificationListScopedToCaller(t *testing.T) {
	svc := &stubNotificationService{
		listResult: []notification.NotificationResponse{{ID: "n1", Title: "Payslip Generated"}},
	}
	handler := NewNotificationHandler(svc)

	rec := httptest.NewRecorder()
	handler.List(rec, authedRequest(t, http.MethodGet, "/api/v1/notifications", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "user-1", svc.listUserID)

	env := decodeEnvelope(t, rec)
	assert.True(t, env.Success)
}

func TestNotificationListRequiresPrincipal(t *testing.T) {
	handler := NewNotificationHandler(&stubNotificationService{})

	rec := httptest.NewRecorder()
	handler.List(rec, httptest.NewRequest(http.MethodGet, "/api/v1/notifications", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestNotificationMarkRead(t *testing.T) {
	svc := &stubNotificationService{
		markResult: notification.MarkReadResponse{Message: "2 notifications marked as read", Count: 2},
	}
	handler := NewNotificationHandler(svc)

	body, _ := json.Marshal(notification.MarkReadRequest{NotificationIDs: []string{"n1", "n2"}})
	rec := httptest.NewRecorder()
	handler.MarkRead(rec, authedRequest(t, http.MethodPost, "/api/v1/notifications/mark-read", body))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "user-1", svc.markUserID)
	assert.Equal(t, []string{"n1", "n2"}, svc.markReq.NotificationIDs)
}

func TestNotificationMarkReadEmptyList(t *testing.T) {
	svc := &stubNotificationService{markErr: notification.ErrInvalidIDList}
	handler := NewNotificationHandler(svc)

	body, _ := json.Marshal(notification.MarkReadRequest{})
	rec := httptest.NewRecorder()
	handler.MarkRead(rec, authedRequest(t, http.MethodPost, "/api/v1/notifications/mark-read", body))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.False(t, env.Success)
}

func TestNotificationMarkReadMalformedBody(t *testing.T) {
	handler := NewNotificationHandler(&stubNotificationService{})

	rec := httptest.NewRecorder()
	handler.MarkRead(rec, authedRequest(t, http.MethodPost, "/api/v1/notifications/mark-read", []byte("{not json")))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestNotificationCreate(t *testing.T) {
	handler := NewNotificationHandler(&stubNotificationService{})

	body, _ := json.Marshal(notification.CreateNotificationRequest{
		UserID:  "user-2",
		Title:   "Heads up",
		Message: "Policy update",
		Type:    notification.TypeInfo,
	})
	rec := httptest.NewRecorder()
	handler.Create(rec, authedRequest(t, http.MethodPost, "/api/v1/notifications", body))

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestNotificationUnreadCount(t *testing.T) {
	handler := NewNotificationHandler(&stubNotificationService{unread: 3})

	rec := httptest.NewRecorder()
	handler.UnreadCount(rec, authedRequest(t, http.MethodGet, "/api/v1/notifications/unread-count", nil))

	assert.Equal(t, http.StatusOK, rec.Code)

	env := decodeEnvelope(t, rec)
	var data notification.UnreadCountResponse
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, 3, data.UnreadCount)
}
