package store

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/diewo77/portfolio-app/internal/models"
)

// UserStore persists site accounts. There are no update or delete
// operations: accounts are immutable once created.
type UserStore struct {
	db *gorm.DB
}

func NewUserStore(db *gorm.DB) *UserStore { return &UserStore{db: db} }

// FindByEmail returns the unique user with that email, or (nil, nil) when
// no such user exists.
func (s *UserStore) FindByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return &user, nil
}

// FindByID resolves an active session back to its user.
func (s *UserStore) FindByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find user by id: %w", err)
	}
	return &user, nil
}

// Create inserts a new account. passwordHash must already be the bcrypt
// output; the store never sees a plaintext password. Returns
// ErrDuplicateEmail when the email unique index rejects the row.
func (s *UserStore) Create(username, email, passwordHash string) (*models.User, error) {
	user := models.User{Username: username, Email: email, Password: passwordHash}
	if err := s.db.Create(&user).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return &user, nil
}

// Exists reports whether the user id still refers to a row. Used by the
// session middleware to invalidate stale cookies.
func (s *UserStore) Exists(id uint) bool {
	var count int64
	if err := s.db.Model(&models.User{}).Where("id = ?", id).Limit(1).Count(&count).Error; err != nil {
		return false
	}
	return count > 0
}
