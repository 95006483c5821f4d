package store

import (
	"context"

	"github.com/quillhub/backend/internal/models"
	"gorm.io/gorm"
)

// GroupStore provides access to groups.
type GroupStore struct {
	db *gorm.DB
}

// Create inserts a new group. The unique index on slug rejects duplicates.
func (s *GroupStore) Create(ctx context.Context, group *models.Group) error {
	return s.db.WithContext(ctx).Create(group).Error
}

// BySlug resolves a group by its URL slug.
func (s *GroupStore) BySlug(ctx context.Context, slug string) (*models.Group, error) {
	var group models.Group
	if err := s.db.WithContext(ctx).First(&group, "slug = ?", slug).Error; err != nil {
		return nil, translate(err)
	}
	return &group, nil
}

// ByID fetches a group by primary key.
func (s *GroupStore) ByID(ctx context.Context, id uint) (*models.Group, error) {
	var group models.Group
	if err := s.db.WithContext(ctx).First(&group, id).Error; err != nil {
		return nil, translate(err)
	}
	return &group, nil
}
