package store

import (
	"context"

	"github.com/quillhub/backend/internal/models"
	"gorm.io/gorm"
)

// UserStore provides access to user accounts.
type UserStore struct {
	db *gorm.DB
}

// Create inserts a new user.
func (s *UserStore) Create(ctx context.Context, user *models.User) error {
	return s.db.WithContext(ctx).Create(user).Error
}

// ByID fetches a user by primary key.
func (s *UserStore) ByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

// ByUsername fetches a user by their unique username.
func (s *UserStore) ByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "username = ?", username).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

// ByEmail fetches a user by their unique email.
func (s *UserStore) ByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "email = ?", email).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}
