package feed

import (
	"context"

	"github.com/quillhub/backend/internal/follow"
	"github.com/quillhub/backend/internal/models"
	"github.com/quillhub/backend/internal/store"
)

// Page is one bounded window of a post listing, 1-indexed.
type Page struct {
	Posts      []models.Post `json:"posts"`
	Number     int           `json:"page"`
	Size       int           `json:"page_size"`
	TotalItems int64         `json:"total_items"`
	TotalPages int           `json:"total_pages"`
	HasNext    bool          `json:"has_next"`
	HasPrev    bool          `json:"has_prev"`
}

// AuthorFeed is the author scope result: the resolved author, their page of
// posts, and whether the viewer follows them.
type AuthorFeed struct {
	Author    *models.User `json:"author"`
	Page      *Page        `json:"page"`
	Following bool         `json:"following"`
}

// Composer produces pages of posts for the four feed scopes. Page size is a
// process-wide setting fixed at construction, not re-derived per call.
type Composer struct {
	store    *store.Store
	graph    *follow.Graph
	pageSize int
}

// NewComposer creates a feed composer.
func NewComposer(st *store.Store, graph *follow.Graph, pageSize int) *Composer {
	return &Composer{store: st, graph: graph, pageSize: pageSize}
}

// PageSize returns the configured posts-per-page.
func (c *Composer) PageSize() int {
	return c.pageSize
}

// Global returns page n of the store-wide listing.
func (c *Composer) Global(ctx context.Context, page int) (*Page, error) {
	total, err := c.store.Posts.CountAll(ctx)
	if err != nil {
		return nil, err
	}
	return c.paginate(ctx, total, page, func(limit, offset int) ([]models.Post, error) {
		return c.store.Posts.ListAll(ctx, limit, offset)
	})
}

// Group resolves the slug and returns page n of that group's listing.
// Unknown slugs surface store.ErrNotFound.
func (c *Composer) Group(ctx context.Context, slug string, page int) (*models.Group, *Page, error) {
	group, err := c.store.Groups.BySlug(ctx, slug)
	if err != nil {
		return nil, nil, err
	}

	total, err := c.store.Posts.CountByGroup(ctx, group.ID)
	if err != nil {
		return nil, nil, err
	}
	p, err := c.paginate(ctx, total, page, func(limit, offset int) ([]models.Post, error) {
		return c.store.Posts.ListByGroup(ctx, group.ID, limit, offset)
	})
	if err != nil {
		return nil, nil, err
	}
	return group, p, nil
}

// Author resolves the username and returns page n of that author's listing.
// The following flag is true only for an authenticated viewer who is not the
// author and holds a follow edge to them; viewerID 0 means anonymous.
func (c *Composer) Author(ctx context.Context, username string, viewerID uint, page int) (*AuthorFeed, error) {
	author, err := c.store.Users.ByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	total, err := c.store.Posts.CountByAuthor(ctx, author.ID)
	if err != nil {
		return nil, err
	}
	p, err := c.paginate(ctx, total, page, func(limit, offset int) ([]models.Post, error) {
		return c.store.Posts.ListByAuthor(ctx, author.ID, limit, offset)
	})
	if err != nil {
		return nil, err
	}

	following := false
	if viewerID != 0 && viewerID != author.ID {
		following, err = c.graph.IsFollowing(ctx, viewerID, author.ID)
		if err != nil {
			return nil, err
		}
	}

	return &AuthorFeed{Author: author, Page: p, Following: following}, nil
}

// Following returns page n of the viewer's personalized feed: the union of
// listings over every author the viewer follows, merged newest first.
func (c *Composer) Following(ctx context.Context, viewerID uint, page int) (*Page, error) {
	authorIDs, err := c.graph.FollowedAuthors(ctx, viewerID)
	if err != nil {
		return nil, err
	}

	total, err := c.store.Posts.CountByAuthors(ctx, authorIDs)
	if err != nil {
		return nil, err
	}
	return c.paginate(ctx, total, page, func(limit, offset int) ([]models.Post, error) {
		return c.store.Posts.ListByAuthors(ctx, authorIDs, limit, offset)
	})
}

// paginate applies the shared pagination contract: pages are 1-indexed, a
// request past the end clamps to the last valid page rather than returning
// an empty page, and an empty source yields an empty page 1.
func (c *Composer) paginate(ctx context.Context, total int64, page int, list func(limit, offset int) ([]models.Post, error)) (*Page, error) {
	totalPages := int((total + int64(c.pageSize) - 1) / int64(c.pageSize))

	if page < 1 {
		page = 1
	}
	if totalPages > 0 && page > totalPages {
		page = totalPages
	}

	if total == 0 {
		return &Page{
			Posts:      []models.Post{},
			Number:     1,
			Size:       c.pageSize,
			TotalItems: 0,
			TotalPages: 0,
		}, nil
	}

	offset := (page - 1) * c.pageSize
	posts, err := list(c.pageSize, offset)
	if err != nil {
		return nil, err
	}

	return &Page{
		Posts:      posts,
		Number:     page,
		Size:       c.pageSize,
		TotalItems: total,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
		HasPrev:    page > 1,
	}, nil
}
