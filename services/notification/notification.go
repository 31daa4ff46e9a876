package notification

import (
	"context"
	"errors"
	"fmt"
	"time"

	"islamicdashboard/database/repository"
	"islamicdashboard/models"
	"islamicdashboard/services/listquery"
	"islamicdashboard/utils"

	"go.uber.org/zap"
)

const recentWindow = 7 * 24 * time.Hour

func sentAt(n models.Notification) time.Time { return n.SentAt }

func (s *DefaultNotificationService) List(notificationType string, page listquery.Page) listquery.Result[models.Notification] {
	return listquery.Run(s.Repo.List(), listquery.Query[models.Notification]{
		Filters: []listquery.Filter[models.Notification]{
			listquery.FieldEquals(notificationType, func(n models.Notification) string { return n.Type }),
		},
		SortKey: sentAt,
		Page:    page,
	})
}

func (s *DefaultNotificationService) Send(ctx context.Context, req models.SendRequest) (models.Notification, error) {
	if req.Title == "" || req.Message == "" {
		return models.Notification{}, utils.ValidationError("Title and message are required")
	}
	n := models.Notification{
		Title:    req.Title,
		Message:  req.Message,
		Type:     orDefault(req.Type, models.NotificationGeneral),
		Priority: orDefault(req.Priority, models.PriorityNormal),
		Data:     req.Data,
	}
	stored := s.Repo.Create(n)
	s.deliver(ctx, stored)
	return stored, nil
}

func (s *DefaultNotificationService) Announce(ctx context.Context, req models.AnnouncementRequest) (models.Notification, error) {
	if req.Title == "" || req.Message == "" {
		return models.Notification{}, utils.ValidationError("Title and message are required")
	}
	stored := s.Repo.Create(models.Notification{
		Title:     req.Title,
		Message:   req.Message,
		Type:      models.NotificationAnnouncement,
		Priority:  orDefault(req.Priority, models.PriorityNormal),
		ExpiresAt: req.ExpiresAt,
		Data:      map[string]any{"isAnnouncement": true},
	})
	s.deliver(ctx, stored)
	return stored, nil
}

// deliver pushes a stored notification. Failures are logged and never returned.
func (s *DefaultNotificationService) deliver(ctx context.Context, n models.Notification) {
	if s.Settings != nil && !s.Settings.Settings().PushNotifications {
		s.logger.Info("Push notifications disabled, skipping delivery", zap.Int("id", n.ID))
		return
	}
	if err := s.Notifier.Notify(ctx, n); err != nil {
		s.logger.Error("Push delivery failed", zap.Int("id", n.ID), zap.Error(err))
	}
}

func (s *DefaultNotificationService) MarkRead(id, userID int) (models.Notification, error) {
	if userID <= 0 {
		return models.Notification{}, utils.ValidationError("User ID is required")
	}
	n, err := s.Repo.Update(id, func(n *models.Notification) { n.MarkReadBy(userID) })
	if err != nil {
		return models.Notification{}, lookupErr(id, err)
	}
	return n, nil
}

func (s *DefaultNotificationService) Delete(id int) (models.Notification, error) {
	n, err := s.Repo.Delete(id)
	if err != nil {
		return models.Notification{}, lookupErr(id, err)
	}
	s.logger.Info("Notification deleted", zap.Int("id", id))
	return n, nil
}

// Stats reports every known type and priority, including those with no notifications.
func (s *DefaultNotificationService) Stats() models.NotificationStats {
	all := s.Repo.List()
	byType := listquery.CountBy(all, func(n models.Notification) string { return n.Type })
	byPriority := listquery.CountBy(all, func(n models.Notification) string { return n.Priority })

	stats := models.NotificationStats{
		Total:      len(all),
		ByType:     make(map[string]int, len(models.NotificationTypes)),
		ByPriority: make(map[string]int, len(models.NotificationPriorities)),
		Recent:     listquery.CountSince(all, sentAt, s.now().Add(-recentWindow)),
	}
	for _, t := range models.NotificationTypes {
		stats.ByType[t] = byType[t]
	}
	for _, p := range models.NotificationPriorities {
		stats.ByPriority[p] = byPriority[p]
	}
	return stats
}

func lookupErr(id int, err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return utils.NotFoundError("Notification not found")
	}
	return utils.InternalError("Failed to access notification", fmt.Errorf("notification %d: %w", id, err))
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
