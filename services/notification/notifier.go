package notification

import (
	"context"
	"fmt"

	"islamicdashboard/models"

	"go.uber.org/zap"
)

// Notifier delivers a stored notification to devices.
type Notifier interface {
	Notify(ctx context.Context, n models.Notification) error
}

// LogNotifier only records the push in the application log.
type LogNotifier struct {
	Logger *zap.Logger
}

func (l LogNotifier) Notify(_ context.Context, n models.Notification) error {
	l.Logger.Info("Push notification sent",
		zap.Int("id", n.ID),
		zap.String("title", n.Title),
		zap.String("type", n.Type),
		zap.String("priority", n.Priority))
	return nil
}

// stringData flattens notification data into the string map FCM expects.
func stringData(n models.Notification) map[string]string {
	data := make(map[string]string, len(n.Data)+3)
	for k, v := range n.Data {
		data[k] = fmt.Sprint(v)
	}
	data["notificationId"] = fmt.Sprint(n.ID)
	data["type"] = n.Type
	data["priority"] = n.Priority
	return data
}
