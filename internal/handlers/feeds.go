package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/quillhub/backend/internal/middleware"
	"github.com/quillhub/backend/internal/store"
	"github.com/quillhub/backend/internal/util"
)

// Index serves page N of the global feed.
// GET /?page=N
func (h *Handlers) Index(c *gin.Context) {
	page := util.ParsePage(c.Query("page"))

	p, err := h.feed.Global(c.Request.Context(), page)
	if err != nil {
		util.RespondInternalError(c, "failed to load feed")
		return
	}

	c.JSON(http.StatusOK, gin.H{"page": p})
}

// GroupFeed serves page N of a group's feed, resolved by slug.
// GET /group/:slug?page=N
func (h *Handlers) GroupFeed(c *gin.Context) {
	page := util.ParsePage(c.Query("page"))

	group, p, err := h.feed.Group(c.Request.Context(), c.Param("slug"), page)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			util.RespondNotFound(c, "group")
			return
		}
		util.RespondInternalError(c, "failed to load group feed")
		return
	}

	c.JSON(http.StatusOK, gin.H{"group": group, "page": p})
}

// Profile serves an author's feed plus the viewer's following flag. The flag
// is false for anonymous viewers and for authors viewing themselves.
// GET /profile/:username?page=N
func (h *Handlers) Profile(c *gin.Context) {
	page := util.ParsePage(c.Query("page"))
	viewerID := middleware.ViewerID(c)

	profile, err := h.feed.Author(c.Request.Context(), c.Param("username"), viewerID, page)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			util.RespondNotFound(c, "user")
			return
		}
		util.RespondInternalError(c, "failed to load profile")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"author":    profile.Author,
		"page":      profile.Page,
		"following": profile.Following,
	})
}

// FollowingFeed serves the viewer's personalized feed: posts by every author
// they follow, merged newest first.
// GET /follow?page=N
func (h *Handlers) FollowingFeed(c *gin.Context) {
	user := middleware.CurrentUser(c)
	page := util.ParsePage(c.Query("page"))

	p, err := h.feed.Following(c.Request.Context(), user.ID, page)
	if err != nil {
		util.RespondInternalError(c, "failed to load feed")
		return
	}

	c.JSON(http.StatusOK, gin.H{"page": p})
}
