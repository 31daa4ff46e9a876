package auth

import (
	"time"

	adminRepo "islamicdashboard/database/repository/admin"
	userRepo "islamicdashboard/database/repository/user"
	"islamicdashboard/models"
	"islamicdashboard/services/listquery"
	"islamicdashboard/utils"

	"go.uber.org/zap"
)

// DefaultListLimit is the page size when a user list request omits limit.
const DefaultListLimit = 20

// AuthService covers admin login and app-user accounts.
type AuthService interface {
	// Admin authentication
	Login(username, password string) (models.LoginResult, error)
	Logout() error

	// Devices and profiles
	RegisterDevice(req models.DeviceRegistration) (models.DeviceRegistrationResult, error)
	GetProfile(userID int) (models.User, error)
	UpdateProfile(userID int, update models.ProfileUpdate) (models.ProfileView, error)

	// Admin / Utility
	ListUsers(search string, page listquery.Page) listquery.Result[models.User]
	UserStats() models.UserStats
}

// DefaultAuthService is the in-memory implementation.
type DefaultAuthService struct {
	Users    userRepo.UserRepository
	Admins   adminRepo.AdminRepository
	Verifier CredentialVerifier
	logger   *zap.Logger
	now      func() time.Time
}

func NewDefaultAuthService(users userRepo.UserRepository, admins adminRepo.AdminRepository, verifier CredentialVerifier) *DefaultAuthService {
	return &DefaultAuthService{
		Users:    users,
		Admins:   admins,
		Verifier: verifier,
		logger:   utils.Named("auth"),
		now:      time.Now,
	}
}
