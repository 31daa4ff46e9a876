package notification

import (
	"context"
	"fmt"

	"islamicdashboard/models"
	"islamicdashboard/services/tasks"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// TaskEnqueuer is satisfied by *asynq.Client.
type TaskEnqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// QueueNotifier hands delivery to the background push worker.
type QueueNotifier struct {
	Client TaskEnqueuer
	Logger *zap.Logger
}

func (q QueueNotifier) Notify(ctx context.Context, n models.Notification) error {
	task, opts, err := tasks.NewPushTask(n)
	if err != nil {
		return err
	}
	info, err := q.Client.EnqueueContext(ctx, task, opts...)
	if err != nil {
		return fmt.Errorf("failed to enqueue push for notification %d: %w", n.ID, err)
	}
	q.Logger.Info("Push notification queued", zap.Int("id", n.ID), zap.String("taskId", info.ID), zap.String("queue", info.Queue))
	return nil
}
