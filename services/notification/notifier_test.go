package notification

import (
	"context"
	"errors"
	"testing"

	"islamicdashboard/models"
	"islamicdashboard/services/tasks"
	"islamicdashboard/utils"

	"firebase.google.com/go/v4/messaging"
	"github.com/hibiken/asynq"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSender struct {
	sent []*messaging.Message
	err  error
}

func (f *fakeSender) Send(_ context.Context, m *messaging.Message) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.sent = append(f.sent, m)
	return "projects/test/messages/1", nil
}

type fakeEnqueuer struct {
	tasks []*asynq.Task
	err   error
}

func (f *fakeEnqueuer) EnqueueContext(_ context.Context, task *asynq.Task, _ ...asynq.Option) (*asynq.TaskInfo, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.tasks = append(f.tasks, task)
	return &asynq.TaskInfo{ID: "task-1", Queue: tasks.PushQueue}, nil
}

func TestFCMNotifier_BuildsTopicMessage(t *testing.T) {
	sender := &fakeSender{}
	notifier, err := NewFCMNotifier(sender, "all_users", utils.Named("test"))
	require.NoError(t, err)

	n := models.Notification{ID: 3, Title: "New Dua", Message: "Check it out", Type: models.NotificationContentUpdate, Priority: models.PriorityNormal, Data: map[string]any{"contentId": 5}}
	require.NoError(t, notifier.Notify(context.Background(), n))

	require.Len(t, sender.sent, 1)
	msg := sender.sent[0]
	assert.Equal(t, "all_users", msg.Topic)
	assert.Equal(t, "New Dua", msg.Notification.Title)
	assert.Equal(t, "Check it out", msg.Notification.Body)
	assert.Equal(t, "5", msg.Data["contentId"])
	assert.Equal(t, "3", msg.Data["notificationId"])
	assert.Nil(t, msg.Android)
}

func TestFCMNotifier_UrgentUsesHighPriority(t *testing.T) {
	notifier, err := NewFCMNotifier(&fakeSender{}, "all_users", utils.Named("test"))
	require.NoError(t, err)

	msg := notifier.BuildMessage(models.Notification{Priority: models.PriorityUrgent})
	require.NotNil(t, msg.Android)
	assert.Equal(t, "high", msg.Android.Priority)
	assert.Equal(t, "10", msg.APNS.Headers["apns-priority"])
}

func TestFCMNotifier_Errors(t *testing.T) {
	_, err := NewFCMNotifier(nil, "all_users", utils.Named("test"))
	assert.Error(t, err)

	notifier, err := NewFCMNotifier(&fakeSender{err: errors.New("unavailable")}, "all_users", utils.Named("test"))
	require.NoError(t, err)
	assert.Error(t, notifier.Notify(context.Background(), models.Notification{ID: 1}))
}

func TestQueueNotifier_EnqueuesPushTask(t *testing.T) {
	enq := &fakeEnqueuer{}
	notifier := QueueNotifier{Client: enq, Logger: utils.Named("test")}

	require.NoError(t, notifier.Notify(context.Background(), models.Notification{ID: 9, Title: "Queued"}))
	require.Len(t, enq.tasks, 1)
	assert.Equal(t, tasks.TypePushNotification, enq.tasks[0].Type())

	n, err := tasks.ParsePushTask(enq.tasks[0])
	require.NoError(t, err)
	assert.Equal(t, 9, n.ID)

	failing := QueueNotifier{Client: &fakeEnqueuer{err: errors.New("redis down")}, Logger: utils.Named("test")}
	assert.Error(t, failing.Notify(context.Background(), models.Notification{ID: 1}))
}

func TestInstrumentedNotifier_CountsOutcomes(t *testing.T) {
	m := utils.NewMetrics()
	ok := InstrumentedNotifier{Next: LogNotifier{Logger: utils.Named("test")}, Counter: m.Notifications}
	failing := InstrumentedNotifier{Next: QueueNotifier{Client: &fakeEnqueuer{err: errors.New("down")}, Logger: utils.Named("test")}, Counter: m.Notifications}

	require.NoError(t, ok.Notify(context.Background(), models.Notification{Type: models.NotificationGeneral}))
	assert.Error(t, failing.Notify(context.Background(), models.Notification{Type: models.NotificationGeneral}))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.Notifications.WithLabelValues(models.NotificationGeneral, "sent")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Notifications.WithLabelValues(models.NotificationGeneral, "failed")))
}
