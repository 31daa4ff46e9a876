package notification

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	notificationRepo "islamicdashboard/database/repository/notification"
	"islamicdashboard/models"
	"islamicdashboard/services/listquery"
	"islamicdashboard/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockNotifier struct {
	mock.Mock
}

func (m *mockNotifier) Notify(ctx context.Context, n models.Notification) error {
	return m.Called(ctx, n).Error(0)
}

type staticSettings struct {
	push bool
}

func (s staticSettings) Settings() models.SystemSettings {
	return models.SystemSettings{PushNotifications: s.push}
}

func newService(t *testing.T, notifier Notifier, push bool) *DefaultNotificationService {
	t.Helper()
	return NewDefaultNotificationService(notificationRepo.NewMemoryNotificationRepo(false), notifier, staticSettings{push: push})
}

func statusOf(t *testing.T, err error) int {
	t.Helper()
	var appErr *utils.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %v", err)
	return appErr.Status
}

func TestSend_DefaultsAndNotifies(t *testing.T) {
	notifier := new(mockNotifier)
	notifier.On("Notify", mock.Anything, mock.AnythingOfType("models.Notification")).Return(nil).Once()
	svc := newService(t, notifier, true)

	n, err := svc.Send(context.Background(), models.SendRequest{Title: "Hello", Message: "World"})
	require.NoError(t, err)

	assert.Equal(t, 1, n.ID)
	assert.Equal(t, models.NotificationGeneral, n.Type)
	assert.Equal(t, models.PriorityNormal, n.Priority)
	assert.NotNil(t, n.ReadBy)
	assert.Empty(t, n.ReadBy)
	assert.NotNil(t, n.Data)
	assert.False(t, n.SentAt.IsZero())
	notifier.AssertExpectations(t)
}

func TestSend_ValidationError(t *testing.T) {
	notifier := new(mockNotifier)
	svc := newService(t, notifier, true)

	_, err := svc.Send(context.Background(), models.SendRequest{Title: "only title"})
	assert.Equal(t, http.StatusBadRequest, statusOf(t, err))
	assert.Equal(t, 0, svc.Repo.Count())
	notifier.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything)
}

func TestSend_NotifierFailureIsNotFatal(t *testing.T) {
	notifier := new(mockNotifier)
	notifier.On("Notify", mock.Anything, mock.Anything).Return(errors.New("fcm unavailable"))
	svc := newService(t, notifier, true)

	n, err := svc.Send(context.Background(), models.SendRequest{Title: "T", Message: "M"})
	require.NoError(t, err)
	assert.Equal(t, 1, svc.Repo.Count())
	assert.Equal(t, "T", n.Title)
}

func TestSend_SkipsNotifierWhenPushDisabled(t *testing.T) {
	notifier := new(mockNotifier)
	svc := newService(t, notifier, false)

	_, err := svc.Send(context.Background(), models.SendRequest{Title: "T", Message: "M"})
	require.NoError(t, err)
	notifier.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything)
}

func TestAnnounce(t *testing.T) {
	notifier := new(mockNotifier)
	notifier.On("Notify", mock.Anything, mock.Anything).Return(nil)
	svc := newService(t, notifier, true)

	expires := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	n, err := svc.Announce(context.Background(), models.AnnouncementRequest{Title: "Eid", Message: "Eid Mubarak", ExpiresAt: &expires})
	require.NoError(t, err)

	assert.Equal(t, models.NotificationAnnouncement, n.Type)
	assert.Equal(t, true, n.Data["isAnnouncement"])
	require.NotNil(t, n.ExpiresAt)
	assert.True(t, expires.Equal(*n.ExpiresAt))
}

func TestMarkRead_Idempotent(t *testing.T) {
	svc := newService(t, LogNotifier{Logger: utils.Named("test")}, true)
	n, err := svc.Send(context.Background(), models.SendRequest{Title: "T", Message: "M"})
	require.NoError(t, err)

	first, err := svc.MarkRead(n.ID, 42)
	require.NoError(t, err)
	second, err := svc.MarkRead(n.ID, 42)
	require.NoError(t, err)

	assert.Equal(t, []int{42}, first.ReadBy)
	assert.Equal(t, first.ReadBy, second.ReadBy)

	_, err = svc.MarkRead(n.ID, 0)
	assert.Equal(t, http.StatusBadRequest, statusOf(t, err))
	_, err = svc.MarkRead(999, 42)
	assert.Equal(t, http.StatusNotFound, statusOf(t, err))
}

func TestMarkRead_DoesNotAliasEarlierSnapshots(t *testing.T) {
	svc := newService(t, LogNotifier{Logger: utils.Named("test")}, true)
	n, err := svc.Send(context.Background(), models.SendRequest{Title: "T", Message: "M"})
	require.NoError(t, err)

	first, err := svc.MarkRead(n.ID, 1)
	require.NoError(t, err)
	_, err = svc.MarkRead(n.ID, 2)
	require.NoError(t, err)

	assert.Equal(t, []int{1}, first.ReadBy)
}

func TestDelete(t *testing.T) {
	svc := newService(t, LogNotifier{Logger: utils.Named("test")}, true)
	n, err := svc.Send(context.Background(), models.SendRequest{Title: "T", Message: "M"})
	require.NoError(t, err)

	deleted, err := svc.Delete(n.ID)
	require.NoError(t, err)
	assert.Equal(t, n.ID, deleted.ID)

	_, err = svc.Delete(n.ID)
	assert.Equal(t, http.StatusNotFound, statusOf(t, err))
}

func TestListAndStats(t *testing.T) {
	svc := newService(t, LogNotifier{Logger: utils.Named("test")}, true)
	ctx := context.Background()

	_, err := svc.Send(ctx, models.SendRequest{Title: "General", Message: "M"})
	require.NoError(t, err)

	stats := svc.Stats()
	assert.Equal(t, 1, stats.Total)
	assert.Equal(t, 1, stats.ByType[models.NotificationGeneral])
	assert.Equal(t, 0, stats.ByType[models.NotificationPrayerReminder])
	assert.Equal(t, 1, stats.ByPriority[models.PriorityNormal])
	assert.Equal(t, 1, stats.Recent)

	for i := 0; i < 4; i++ {
		_, err := svc.Send(ctx, models.SendRequest{Title: "Reminder", Message: "M", Type: models.NotificationPrayerReminder, Priority: models.PriorityHigh})
		require.NoError(t, err)
	}

	res := svc.List(models.NotificationPrayerReminder, listquery.Page{Limit: 2})
	assert.Equal(t, 4, res.Total)
	assert.Len(t, res.Items, 2)

	res = svc.List("", listquery.Page{Limit: DefaultListLimit})
	assert.Equal(t, 5, res.Total)
}

func TestStats_RecentWindow(t *testing.T) {
	svc := newService(t, LogNotifier{Logger: utils.Named("test")}, true)
	svc.Repo.Create(models.Notification{Title: "old", Type: models.NotificationGeneral, Priority: models.PriorityLow, SentAt: time.Now().Add(-8 * 24 * time.Hour)})
	svc.Repo.Create(models.Notification{Title: "new", Type: models.NotificationGeneral, Priority: models.PriorityLow})

	stats := svc.Stats()
	assert.Equal(t, 2, stats.Total)
	assert.Equal(t, 1, stats.Recent)
}
