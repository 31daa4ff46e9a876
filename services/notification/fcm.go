package notification

import (
	"context"
	"fmt"

	"islamicdashboard/models"

	"firebase.google.com/go/v4/messaging"
	"go.uber.org/zap"
)

// MessageSender is the part of the FCM client the notifier needs.
type MessageSender interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

// FCMNotifier broadcasts notifications to an FCM topic.
type FCMNotifier struct {
	Client MessageSender
	Topic  string
	Logger *zap.Logger
}

func NewFCMNotifier(client MessageSender, topic string, logger *zap.Logger) (*FCMNotifier, error) {
	if client == nil {
		return nil, fmt.Errorf("fcm notifier initialization error: messaging client is nil")
	}
	if topic == "" {
		return nil, fmt.Errorf("fcm notifier initialization error: topic is empty")
	}
	return &FCMNotifier{Client: client, Topic: topic, Logger: logger}, nil
}

// BuildMessage maps a notification onto an FCM topic message.
func (f *FCMNotifier) BuildMessage(n models.Notification) *messaging.Message {
	msg := &messaging.Message{
		Topic: f.Topic,
		Notification: &messaging.Notification{
			Title: n.Title,
			Body:  n.Message,
		},
		Data: stringData(n),
	}
	if n.IsUrgent() {
		msg.Android = &messaging.AndroidConfig{Priority: "high"}
		msg.APNS = &messaging.APNSConfig{
			Headers: map[string]string{"apns-priority": "10"},
		}
	}
	return msg
}

func (f *FCMNotifier) Notify(ctx context.Context, n models.Notification) error {
	response, err := f.Client.Send(ctx, f.BuildMessage(n))
	if err != nil {
		return fmt.Errorf("failed to send FCM message for notification %d: %w", n.ID, err)
	}
	f.Logger.Info("FCM message sent", zap.Int("id", n.ID), zap.String("topic", f.Topic), zap.String("response", response))
	return nil
}
