package auth

import (
	"errors"
	"fmt"
	"time"

	"islamicdashboard/database/repository"
	"islamicdashboard/models"
	"islamicdashboard/services/listquery"
	"islamicdashboard/utils"

	"go.uber.org/zap"
)

const (
	activeWindow = 7 * 24 * time.Hour
	monthWindow  = 30 * 24 * time.Hour
)

// Login verifies admin credentials. Unknown usernames and wrong passwords
// produce the same error.
func (s *DefaultAuthService) Login(username, password string) (models.LoginResult, error) {
	if username == "" || password == "" {
		return models.LoginResult{}, utils.ValidationError("Username and password are required")
	}

	admin, err := s.Admins.GetByUsername(username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.logger.Warn("Login attempt for unknown admin", zap.String("username", username))
			_ = s.Verifier.Verify(decoyAccount(), password)
			return models.LoginResult{}, utils.InvalidCredentials()
		}
		return models.LoginResult{}, utils.InternalError("Login failed", err)
	}

	if err := s.Verifier.Verify(admin, password); err != nil {
		if errors.Is(err, ErrPasswordMismatch) {
			s.logger.Warn("Login attempt with wrong password", zap.String("username", username))
			return models.LoginResult{}, utils.InvalidCredentials()
		}
		return models.LoginResult{}, utils.InternalError("Login failed", err)
	}

	admin, err = s.Admins.RecordLogin(admin.ID, s.now())
	if err != nil {
		return models.LoginResult{}, utils.InternalError("Login failed", fmt.Errorf("record login: %w", err))
	}

	token, err := s.Verifier.IssueToken(admin)
	if err != nil {
		return models.LoginResult{}, utils.InternalError("Login failed", fmt.Errorf("issue token: %w", err))
	}

	s.logger.Info("Admin logged in", zap.Int("id", admin.ID), zap.String("username", admin.Username))
	return models.LoginResult{Token: token, User: admin.Summary()}, nil
}

// Logout has no server-side session to end.
func (s *DefaultAuthService) Logout() error {
	return nil
}

// RegisterDevice attaches a push token to a user, creating a placeholder user
// under the given id when none exists.
func (s *DefaultAuthService) RegisterDevice(req models.DeviceRegistration) (models.DeviceRegistrationResult, error) {
	userID := int(req.UserID)
	if userID <= 0 || req.DeviceToken == "" {
		return models.DeviceRegistrationResult{}, utils.ValidationError("User ID and device token are required")
	}
	deviceType := req.DeviceType
	if deviceType == "" {
		deviceType = models.DeviceAndroid
	}
	token := req.DeviceToken

	user, created := s.Users.Upsert(userID,
		func(u *models.User) {
			u.DeviceToken = &token
			u.DeviceType = deviceType
		},
		func() models.User {
			return models.User{
				Username:    fmt.Sprintf("user%d", userID),
				Email:       fmt.Sprintf("user%d@example.com", userID),
				DeviceToken: &token,
				DeviceType:  deviceType,
			}
		},
	)

	s.logger.Info("Device registered", zap.Int("userId", user.ID), zap.String("deviceType", deviceType), zap.Bool("newUser", created))
	return models.DeviceRegistrationResult{UserID: user.ID, DeviceToken: *user.DeviceToken}, nil
}

func (s *DefaultAuthService) GetProfile(userID int) (models.User, error) {
	user, err := s.Users.GetByID(userID)
	if err != nil {
		return models.User{}, userLookupErr(userID, err)
	}
	return user, nil
}

func (s *DefaultAuthService) UpdateProfile(userID int, update models.ProfileUpdate) (models.ProfileView, error) {
	user, err := s.Users.Update(userID, func(u *models.User) {
		if update.Username != "" {
			u.Username = update.Username
		}
		if update.Email != "" {
			u.Email = update.Email
		}
		if update.Preferences != nil {
			u.Preferences = update.Preferences
		}
	})
	if err != nil {
		return models.ProfileView{}, userLookupErr(userID, err)
	}
	return models.ProfileView{ID: user.ID, Username: user.Username, Email: user.Email, Preferences: user.Preferences}, nil
}

func (s *DefaultAuthService) ListUsers(search string, page listquery.Page) listquery.Result[models.User] {
	return listquery.Run(s.Users.List(), listquery.Query[models.User]{
		Search:       search,
		SearchFields: func(u models.User) []string { return []string{u.Username, u.Email} },
		SortKey:      func(u models.User) time.Time { return u.LastActive },
		Page:         page,
	})
}

func (s *DefaultAuthService) UserStats() models.UserStats {
	users := s.Users.List()
	now := s.now()
	created := func(u models.User) time.Time { return u.CreatedAt }
	devices := listquery.CountBy(users, func(u models.User) string { return u.DeviceType })

	return models.UserStats{
		Total:        len(users),
		Active:       listquery.CountSince(users, func(u models.User) time.Time { return u.LastActive }, now.Add(-activeWindow)),
		NewThisWeek:  listquery.CountSince(users, created, now.Add(-activeWindow)),
		NewThisMonth: listquery.CountSince(users, created, now.Add(-monthWindow)),
		DeviceTypes: map[string]int{
			models.DeviceAndroid: devices[models.DeviceAndroid],
			models.DeviceIOS:     devices[models.DeviceIOS],
		},
	}
}

func userLookupErr(id int, err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return utils.NotFoundError("User not found")
	}
	return utils.InternalError("Failed to access user", fmt.Errorf("user %d: %w", id, err))
}
