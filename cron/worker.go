package cron

import (
	"context"
	"time"

	"islamicdashboard/services/notification"
	"islamicdashboard/services/tasks"
	"islamicdashboard/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// PushWorker drains the push queue and hands each notification to a notifier.
type PushWorker struct {
	srv    *asynq.Server
	mux    *asynq.ServeMux
	logger *zap.Logger
}

// NewPushWorker builds the asynq server for the push queue.
func NewPushWorker(opt asynq.RedisClientOpt, notifier notification.Notifier) *PushWorker {
	srv := asynq.NewServer(opt, asynq.Config{
		Concurrency: 10,
		Queues: map[string]int{
			tasks.PushQueue: 1,
		},
	})

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypePushNotification, handlePushTask(notifier))

	return &PushWorker{srv: srv, mux: mux, logger: utils.Named("pushworker")}
}

// Start runs the worker in the background, retrying startup with a growing delay.
func (w *PushWorker) Start() {
	go func() {
		w.logger.Info("Starting push worker")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			err := w.srv.Start(w.mux)
			if err == nil {
				return
			}
			w.logger.Warn("Push worker failed to start",
				zap.Int("attempt", attempts),
				zap.Int("maxAttempts", maxAttempts),
				zap.Error(err))
			if attempts == maxAttempts {
				w.logger.Error("Push worker gave up; queued pushes will wait for the next start")
				return
			}
			time.Sleep(time.Duration(attempts*2) * time.Second)
		}
	}()
}

// Shutdown stops fetching tasks and waits for in-flight deliveries.
func (w *PushWorker) Shutdown() {
	w.srv.Shutdown()
}

func handlePushTask(notifier notification.Notifier) asynq.HandlerFunc {
	logger := utils.Named("pushworker")
	return func(ctx context.Context, task *asynq.Task) error {
		n, err := tasks.ParsePushTask(task)
		if err != nil {
			logger.Error("Dropping push task", zap.Error(err))
			return asynq.SkipRetry
		}

		if err := notifier.Notify(ctx, n); err != nil {
			logger.Warn("Push delivery failed", zap.Int("id", n.ID), zap.Error(err))
			return err
		}
		return nil
	}
}
