package notificationRepo

import (
	"time"

	"islamicdashboard/database/repository"
	"islamicdashboard/models"
)

type NotificationStore = repository.Collection[models.Notification, *models.Notification]

// NotificationRepository defines methods for notification data access.
type NotificationRepository interface {
	List() []models.Notification
	GetByID(id int) (models.Notification, error)
	Create(n models.Notification) models.Notification
	Update(id int, mutate func(*models.Notification)) (models.Notification, error)
	Delete(id int) (models.Notification, error)
	Count() int
}

// MemoryNotificationRepo implements NotificationRepository in process memory.
type MemoryNotificationRepo struct {
	store *NotificationStore
}

// NewMemoryNotificationRepo creates the store, optionally holding the sample notification.
func NewMemoryNotificationRepo(withSamples bool) NotificationRepository {
	var seed []models.Notification
	if withSamples {
		seed = append(seed, models.Notification{
			ID:       1,
			Title:    "New Ruqya Video Added",
			Message:  "A powerful ruqya for protection has been added to the app",
			Type:     models.NotificationContentUpdate,
			Priority: models.PriorityNormal,
			SentAt:   time.Now(),
			ReadBy:   []int{},
			Data:     map[string]any{"contentType": models.KindRuqya, "contentId": 1},
		})
	}
	return &MemoryNotificationRepo{store: repository.NewCollection(seed...)}
}

func (r *MemoryNotificationRepo) List() []models.Notification { return r.store.List() }
func (r *MemoryNotificationRepo) Count() int                  { return r.store.Len() }

func (r *MemoryNotificationRepo) GetByID(id int) (models.Notification, error) {
	return r.store.FindByID(id)
}

func (r *MemoryNotificationRepo) Create(n models.Notification) models.Notification {
	if n.ReadBy == nil {
		n.ReadBy = []int{}
	}
	if n.Data == nil {
		n.Data = map[string]any{}
	}
	return r.store.Create(n)
}

func (r *MemoryNotificationRepo) Update(id int, mutate func(*models.Notification)) (models.Notification, error) {
	return r.store.Update(id, mutate)
}

func (r *MemoryNotificationRepo) Delete(id int) (models.Notification, error) {
	return r.store.Delete(id)
}
