package database

import (
	"fmt"

	adminRepo "islamicdashboard/database/repository/admin"
	contentRepo "islamicdashboard/database/repository/content"
	notificationRepo "islamicdashboard/database/repository/notification"
	userRepo "islamicdashboard/database/repository/user"
	"islamicdashboard/utils"

	"go.uber.org/zap"
)

// Stores groups every in-memory collection the server works with.
type Stores struct {
	Content       contentRepo.ContentRepository
	Users         userRepo.UserRepository
	Admins        adminRepo.AdminRepository
	Notifications notificationRepo.NotificationRepository
}

// InitStores builds the process-lifetime stores loaded with the sample data.
func InitStores(adminPassword string) (*Stores, error) {
	admins, err := adminRepo.NewMemoryAdminRepo(adminRepo.Seed{AdminPassword: adminPassword, Samples: true})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize admin store: %w", err)
	}
	stores := &Stores{
		Content:       contentRepo.NewMemoryContentRepo(true),
		Users:         userRepo.NewMemoryUserRepo(true),
		Admins:        admins,
		Notifications: notificationRepo.NewMemoryNotificationRepo(true),
	}
	utils.GetLogger().Info("In-memory stores initialized",
		zap.Int("duas", stores.Content.Duas().Len()),
		zap.Int("users", stores.Users.Count()),
		zap.Int("notifications", stores.Notifications.Count()),
	)
	return stores, nil
}
