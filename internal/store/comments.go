package store

import (
	"context"

	"github.com/quillhub/backend/internal/models"
	"gorm.io/gorm"
)

// CommentStore provides access to comments.
type CommentStore struct {
	db *gorm.DB
}

// Create inserts a new comment.
func (s *CommentStore) Create(ctx context.Context, comment *models.Comment) error {
	return s.db.WithContext(ctx).Create(comment).Error
}

// ListByPost returns a post's comments newest first, authors preloaded.
func (s *CommentStore) ListByPost(ctx context.Context, postID uint) ([]models.Comment, error) {
	var comments []models.Comment
	err := s.db.WithContext(ctx).
		Preload("Author").
		Where("post_id = ?", postID).
		Order("created_at DESC, id DESC").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}
