package handlers_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/bridgegen/backend/internal/models"
)

type notificationsResponse struct {
	Notifications []models.NotificationView `json:"notifications"`
	UnreadCount   int64                     `json:"unreadCount"`
}

func seedNotification(t *testing.T, db *gorm.DB, userID, message string, read bool, createdAt time.Time) uint {
	t.Helper()
	n := models.Notification{
		UserID:    userID,
		Type:      models.NotificationPostLike,
		ActorID:   "actor-1",
		ActorName: "Auntie Helen",
		Message:   message,
		Read:      read,
		CreatedAt: createdAt,
	}
	require.NoError(t, db.Create(&n).Error)
	return n.ID
}

func TestGetNotifications_RequiresViewer(t *testing.T) {
	e, _ := setupServer(t)

	rec := doRequest(t, e, http.MethodGet, "/api/notifications", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetNotifications_NewestFirstCappedAtTwenty(t *testing.T) {
	e, db := setupServer(t)
	now := time.Now()

	for i := 0; i < 25; i++ {
		seedNotification(t, db, "user-1", fmt.Sprintf("n-%d", i), i%2 == 0, now.Add(-time.Duration(i)*time.Minute))
	}
	// Another user's notifications never leak into the list.
	seedNotification(t, db, "user-2", "other", false, now)

	rec := doRequest(t, e, http.MethodGet, "/api/notifications?userId=user-1", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp notificationsResponse
	decodeBody(t, rec, &resp)

	require.Len(t, resp.Notifications, 20)
	assert.Equal(t, "n-0", resp.Notifications[0].Message)
	assert.Equal(t, "n-19", resp.Notifications[19].Message)
	assert.Equal(t, "Just now", resp.Notifications[0].Time)
	assert.Equal(t, "5m ago", resp.Notifications[5].Time)

	// The unread count covers all rows, not just the visible page.
	assert.EqualValues(t, 12, resp.UnreadCount)
}

func TestMarkAsRead_SingleNotification(t *testing.T) {
	e, db := setupServer(t)
	now := time.Now()

	id := seedNotification(t, db, "user-1", "first", false, now)
	seedNotification(t, db, "user-1", "second", false, now)

	rec := doRequest(t, e, http.MethodPost, fmt.Sprintf("/api/notifications/%d/read", id), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var n models.Notification
	require.NoError(t, db.First(&n, id).Error)
	assert.True(t, n.Read)

	var unread int64
	require.NoError(t, db.Model(&models.Notification{}).Where("read = ?", false).Count(&unread).Error)
	assert.EqualValues(t, 1, unread)
}

func TestMarkAsRead_BadID(t *testing.T) {
	e, _ := setupServer(t)

	rec := doRequest(t, e, http.MethodPost, "/api/notifications/abc/read", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMarkAllAsRead_ScopedToUser(t *testing.T) {
	e, db := setupServer(t)
	now := time.Now()

	seedNotification(t, db, "user-1", "a", false, now)
	seedNotification(t, db, "user-1", "b", false, now)
	seedNotification(t, db, "user-2", "c", false, now)

	rec := doRequest(t, e, http.MethodPost, "/api/notifications/read-all",
		map[string]string{"userId": "user-1"})
	require.Equal(t, http.StatusOK, rec.Code)

	var unreadMine, unreadOther int64
	require.NoError(t, db.Model(&models.Notification{}).
		Where("user_id = ? AND read = ?", "user-1", false).Count(&unreadMine).Error)
	require.NoError(t, db.Model(&models.Notification{}).
		Where("user_id = ? AND read = ?", "user-2", false).Count(&unreadOther).Error)
	assert.EqualValues(t, 0, unreadMine)
	assert.EqualValues(t, 1, unreadOther)
}

func TestClearAll_ScopedToUser(t *testing.T) {
	e, db := setupServer(t)
	now := time.Now()

	seedNotification(t, db, "user-1", "a", false, now)
	seedNotification(t, db, "user-1", "b", true, now)
	seedNotification(t, db, "user-2", "c", false, now)

	rec := doRequest(t, e, http.MethodPost, "/api/notifications/clear-all",
		map[string]string{"userId": "user-1"})
	require.Equal(t, http.StatusOK, rec.Code)

	assert.EqualValues(t, 0, notificationCount(t, db, "user-1"))
	assert.EqualValues(t, 1, notificationCount(t, db, "user-2"))
}

func TestMarkAllAsRead_MissingUser(t *testing.T) {
	e, _ := setupServer(t)

	rec := doRequest(t, e, http.MethodPost, "/api/notifications/read-all", map[string]string{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
