package tasks

import (
	"encoding/json"
	"fmt"

	"islamicdashboard/models"

	"github.com/hibiken/asynq"
)

const TypePushNotification = "notification:push"

// PushQueue is the asynq queue push deliveries are enqueued on.
const PushQueue = "notifications"

// NewPushTask wraps a stored notification for background delivery.
func NewPushTask(n models.Notification) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(n)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to encode push payload: %w", err)
	}
	task := asynq.NewTask(TypePushNotification, b)
	opts := []asynq.Option{asynq.Queue(PushQueue), asynq.MaxRetry(5)}

	return task, opts, nil
}

// ParsePushTask decodes the notification carried by a push task.
func ParsePushTask(task *asynq.Task) (models.Notification, error) {
	var n models.Notification
	if err := json.Unmarshal(task.Payload(), &n); err != nil {
		return n, fmt.Errorf("invalid push payload: %w", err)
	}
	return n, nil
}
