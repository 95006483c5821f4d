package follow

import (
	"context"

	"github.com/quillhub/backend/internal/models"
	"github.com/quillhub/backend/internal/store"
	"gorm.io/gorm"
)

// Graph maintains the directed follower -> author edges.
//
// The schema's composite unique index catches duplicate edges, but the
// self-follow and already-following guards are business rules enforced
// here at the mutation boundary, not by the schema.
type Graph struct {
	db *gorm.DB
}

// NewGraph creates a follow graph bound to the given database handle.
func NewGraph(db *gorm.DB) *Graph {
	return &Graph{db: db}
}

// Follow creates the follower -> author edge and reports whether a new edge
// was created. Following yourself or someone you already follow is a no-op,
// never an error; observable edge counts depend on this policy.
func (g *Graph) Follow(ctx context.Context, followerID, authorID uint) (bool, error) {
	if followerID == authorID {
		return false, nil
	}

	following, err := g.IsFollowing(ctx, followerID, authorID)
	if err != nil {
		return false, err
	}
	if following {
		return false, nil
	}

	edge := models.Follow{FollowerID: followerID, AuthorID: authorID}
	if err := g.db.WithContext(ctx).Create(&edge).Error; err != nil {
		return false, err
	}
	return true, nil
}

// Unfollow removes the follower -> author edge. A missing edge is
// store.ErrNotFound.
func (g *Graph) Unfollow(ctx context.Context, followerID, authorID uint) error {
	res := g.db.WithContext(ctx).
		Where("follower_id = ? AND author_id = ?", followerID, authorID).
		Delete(&models.Follow{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}

// IsFollowing reports whether the follower -> author edge exists.
func (g *Graph) IsFollowing(ctx context.Context, followerID, authorID uint) (bool, error) {
	var n int64
	err := g.db.WithContext(ctx).
		Model(&models.Follow{}).
		Where("follower_id = ? AND author_id = ?", followerID, authorID).
		Count(&n).Error
	return n > 0, err
}

// FollowedAuthors returns the IDs of every author the follower follows.
func (g *Graph) FollowedAuthors(ctx context.Context, followerID uint) ([]uint, error) {
	var ids []uint
	err := g.db.WithContext(ctx).
		Model(&models.Follow{}).
		Where("follower_id = ?", followerID).
		Pluck("author_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}
