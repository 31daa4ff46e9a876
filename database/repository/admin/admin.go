package adminRepo

import (
	"fmt"
	"sync"
	"time"

	"islamicdashboard/database/repository"
	"islamicdashboard/models"

	"golang.org/x/crypto/bcrypt"
)

type (
	AccountStore = repository.Collection[models.AdminAccount, *models.AdminAccount]
	BackupStore  = repository.Collection[models.Backup, *models.Backup]
)

// AdminRepository holds admin accounts, backup history and the system switches.
type AdminRepository interface {
	GetByUsername(username string) (models.AdminAccount, error)
	// RecordLogin stamps lastLogin on the account.
	RecordLogin(id int, at time.Time) (models.AdminAccount, error)

	Backups() *BackupStore
	Settings() models.SystemSettings
	UpdateSettings(update models.SettingsUpdate, at time.Time) models.SystemSettings
	LastBackup() time.Time
	SetLastBackup(at time.Time)
}

// MemoryAdminRepo implements AdminRepository in process memory.
type MemoryAdminRepo struct {
	accounts *AccountStore
	backups  *BackupStore

	mu         sync.RWMutex
	settings   models.SystemSettings
	lastBackup time.Time
}

// Seed describes the initial contents of a MemoryAdminRepo.
type Seed struct {
	// AdminPassword, when set, creates the default super admin with this password hashed.
	AdminPassword string
	// Samples loads the example backup history.
	Samples bool
}

// NewMemoryAdminRepo builds the admin store. Push notifications start enabled,
// the other switches start off.
func NewMemoryAdminRepo(seed Seed) (AdminRepository, error) {
	now := time.Now()
	r := &MemoryAdminRepo{
		accounts:   repository.NewCollection[models.AdminAccount](),
		settings:   models.SystemSettings{PushNotifications: true, UpdatedAt: now},
		lastBackup: now.Add(-24 * time.Hour),
	}

	if seed.AdminPassword != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(seed.AdminPassword), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash default admin password: %w", err)
		}
		r.accounts.Create(models.AdminAccount{
			Username:     "admin",
			Email:        "admin@islamicdashboard.com",
			PasswordHash: string(hash),
			Role:         models.RoleSuperAdmin,
		})
	}

	var backups []models.Backup
	if seed.Samples {
		for i, size := range []string{"2.5MB", "2.3MB", "2.4MB"} {
			backups = append(backups, models.Backup{
				ID:        i + 1,
				Timestamp: now.Add(-time.Duration(i+1) * 24 * time.Hour),
				Size:      size,
				Status:    models.BackupCompleted,
				Type:      models.BackupFull,
			})
		}
	}
	r.backups = repository.NewCollection(backups...)
	return r, nil
}

func (r *MemoryAdminRepo) GetByUsername(username string) (models.AdminAccount, error) {
	for _, a := range r.accounts.List() {
		if a.Username == username {
			return a, nil
		}
	}
	return models.AdminAccount{}, fmt.Errorf("admin %q: %w", username, repository.ErrNotFound)
}

func (r *MemoryAdminRepo) RecordLogin(id int, at time.Time) (models.AdminAccount, error) {
	return r.accounts.Update(id, func(a *models.AdminAccount) { a.LastLogin = at })
}

func (r *MemoryAdminRepo) Backups() *BackupStore { return r.backups }

func (r *MemoryAdminRepo) Settings() models.SystemSettings {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.settings
}

// UpdateSettings applies only the flags present in update.
func (r *MemoryAdminRepo) UpdateSettings(update models.SettingsUpdate, at time.Time) models.SystemSettings {
	r.mu.Lock()
	defer r.mu.Unlock()

	if update.MaintenanceMode != nil {
		r.settings.MaintenanceMode = *update.MaintenanceMode
	}
	if update.PushNotifications != nil {
		r.settings.PushNotifications = *update.PushNotifications
	}
	if update.ContentApproval != nil {
		r.settings.ContentApproval = *update.ContentApproval
	}
	r.settings.UpdatedAt = at
	return r.settings
}

func (r *MemoryAdminRepo) LastBackup() time.Time {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.lastBackup
}

func (r *MemoryAdminRepo) SetLastBackup(at time.Time) {
	r.mu.Lock()
	r.lastBackup = at
	r.mu.Unlock()
}
