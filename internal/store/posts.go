package store

import (
	"context"

	"github.com/quillhub/backend/internal/models"
	"gorm.io/gorm"
)

// feedOrder is the listing order shared by every feed scope. CreatedAt is
// the only ordering key in the data model; ID breaks timestamp ties in
// insertion order so pagination stays stable across pages.
const feedOrder = "created_at DESC, id DESC"

// PostStore provides access to posts.
type PostStore struct {
	db *gorm.DB
}

// Create inserts a new post.
func (s *PostStore) Create(ctx context.Context, post *models.Post) error {
	return s.db.WithContext(ctx).Create(post).Error
}

// ByID fetches a post with its author and group preloaded.
func (s *PostStore) ByID(ctx context.Context, id uint) (*models.Post, error) {
	var post models.Post
	err := s.db.WithContext(ctx).
		Preload("Author").
		Preload("Group").
		First(&post, id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &post, nil
}

// Save persists edits to a post's text, group and image. The update is
// scoped to the owning author; zero rows affected means the post does not
// exist for that author.
func (s *PostStore) Save(ctx context.Context, post *models.Post) error {
	res := s.db.WithContext(ctx).
		Model(&models.Post{}).
		Where("id = ? AND author_id = ?", post.ID, post.AuthorID).
		Select("text", "group_id", "image_url").
		Updates(map[string]interface{}{
			"text":      post.Text,
			"group_id":  post.GroupID,
			"image_url": post.ImageURL,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ListAll returns a window of the store-wide post listing, newest first.
func (s *PostStore) ListAll(ctx context.Context, limit, offset int) ([]models.Post, error) {
	return s.list(ctx, s.db.WithContext(ctx), limit, offset)
}

// CountAll returns the store-wide post count.
func (s *PostStore) CountAll(ctx context.Context) (int64, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(&models.Post{}).Count(&n).Error
	return n, err
}

// ListByGroup returns a window of a group's posts, newest first.
func (s *PostStore) ListByGroup(ctx context.Context, groupID uint, limit, offset int) ([]models.Post, error) {
	q := s.db.WithContext(ctx).Where("group_id = ?", groupID)
	return s.list(ctx, q, limit, offset)
}

// CountByGroup returns a group's post count.
func (s *PostStore) CountByGroup(ctx context.Context, groupID uint) (int64, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(&models.Post{}).Where("group_id = ?", groupID).Count(&n).Error
	return n, err
}

// ListByAuthor returns a window of an author's posts, newest first.
func (s *PostStore) ListByAuthor(ctx context.Context, authorID uint, limit, offset int) ([]models.Post, error) {
	q := s.db.WithContext(ctx).Where("author_id = ?", authorID)
	return s.list(ctx, q, limit, offset)
}

// CountByAuthor returns an author's post count.
func (s *PostStore) CountByAuthor(ctx context.Context, authorID uint) (int64, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(&models.Post{}).Where("author_id = ?", authorID).Count(&n).Error
	return n, err
}

// ListByAuthors returns a merged window of posts by any of the given
// authors, newest first. An empty author set yields an empty listing.
func (s *PostStore) ListByAuthors(ctx context.Context, authorIDs []uint, limit, offset int) ([]models.Post, error) {
	if len(authorIDs) == 0 {
		return []models.Post{}, nil
	}
	q := s.db.WithContext(ctx).Where("author_id IN ?", authorIDs)
	return s.list(ctx, q, limit, offset)
}

// CountByAuthors returns the combined post count for the given authors.
func (s *PostStore) CountByAuthors(ctx context.Context, authorIDs []uint) (int64, error) {
	if len(authorIDs) == 0 {
		return 0, nil
	}
	var n int64
	err := s.db.WithContext(ctx).Model(&models.Post{}).Where("author_id IN ?", authorIDs).Count(&n).Error
	return n, err
}

func (s *PostStore) list(ctx context.Context, q *gorm.DB, limit, offset int) ([]models.Post, error) {
	var posts []models.Post
	err := q.
		Preload("Author").
		Preload("Group").
		Order(feedOrder).
		Limit(limit).
		Offset(offset).
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}
