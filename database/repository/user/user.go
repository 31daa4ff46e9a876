package userRepo

import (
	"time"

	"islamicdashboard/database/repository"
	"islamicdashboard/models"
)

type UserStore = repository.Collection[models.User, *models.User]

// UserRepository defines methods for app-user data access.
type UserRepository interface {
	// GetByID retrieves a user by id.
	GetByID(id int) (models.User, error)
	// List returns every user in insertion order.
	List() []models.User
	// Create stores a new user with a freshly assigned id.
	Create(user models.User) models.User
	// Upsert applies mutate to the user with the given id, or inserts
	// fallback under that id when none exists. created reports which happened.
	Upsert(id int, mutate func(*models.User), fallback func() models.User) (user models.User, created bool)
	// Update applies mutate to an existing user and refreshes lastActive.
	Update(id int, mutate func(*models.User)) (models.User, error)
	Count() int
}

// MemoryUserRepo implements UserRepository over an in-memory collection.
type MemoryUserRepo struct {
	users *UserStore
}

// NewMemoryUserRepo creates the user store, optionally holding the sample user.
func NewMemoryUserRepo(withSamples bool) UserRepository {
	var seed []models.User
	if withSamples {
		now := time.Now()
		token := "fcm_token_here"
		seed = append(seed, models.User{
			ID:          1,
			Username:    "user1",
			Email:       "user1@example.com",
			DeviceToken: &token,
			CreatedAt:   now,
			LastActive:  now,
		})
	}
	return &MemoryUserRepo{
		users: repository.NewCollection(seed...),
	}
}

func (r *MemoryUserRepo) GetByID(id int) (models.User, error) { return r.users.FindByID(id) }
func (r *MemoryUserRepo) List() []models.User                  { return r.users.List() }
func (r *MemoryUserRepo) Create(user models.User) models.User  { return r.users.Create(user) }
func (r *MemoryUserRepo) Count() int                           { return r.users.Len() }

func (r *MemoryUserRepo) Update(id int, mutate func(*models.User)) (models.User, error) {
	return r.users.Update(id, mutate)
}

func (r *MemoryUserRepo) Upsert(id int, mutate func(*models.User), fallback func() models.User) (models.User, bool) {
	return r.users.Upsert(id, mutate, fallback)
}
