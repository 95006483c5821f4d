package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/quillhub/backend/internal/logger"
	"github.com/quillhub/backend/internal/metrics"
	"github.com/quillhub/backend/internal/middleware"
	"github.com/quillhub/backend/internal/store"
	"github.com/quillhub/backend/internal/util"
	"go.uber.org/zap"
)

// FollowAuthor creates a follow edge toward the named author and redirects
// to their profile. Self-follows and duplicate follows are silent no-ops.
// POST /profile/:username/follow
func (h *Handlers) FollowAuthor(c *gin.Context) {
	user := middleware.CurrentUser(c)

	author, err := h.store.Users.ByUsername(c.Request.Context(), c.Param("username"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			util.RespondNotFound(c, "user")
			return
		}
		util.RespondInternalError(c, "failed to resolve user")
		return
	}

	created, err := h.graph.Follow(c.Request.Context(), user.ID, author.ID)
	if err != nil {
		util.RespondInternalError(c, "failed to follow")
		return
	}
	if created {
		metrics.Get().FollowEdgesTotal.Inc()
		logger.Log.Info("Follow edge created",
			zap.Uint("follower_id", user.ID),
			zap.Uint("author_id", author.ID),
		)
	}

	c.Redirect(http.StatusFound, "/profile/"+author.Username)
}

// UnfollowAuthor removes the follow edge toward the named author. A missing
// edge is a 404, matching the unfollow contract.
// POST /profile/:username/unfollow
func (h *Handlers) UnfollowAuthor(c *gin.Context) {
	user := middleware.CurrentUser(c)

	author, err := h.store.Users.ByUsername(c.Request.Context(), c.Param("username"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			util.RespondNotFound(c, "user")
			return
		}
		util.RespondInternalError(c, "failed to resolve user")
		return
	}

	if err := h.graph.Unfollow(c.Request.Context(), user.ID, author.ID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			util.RespondNotFound(c, "follow")
			return
		}
		util.RespondInternalError(c, "failed to unfollow")
		return
	}

	metrics.Get().FollowEdgesTotal.Dec()

	c.Redirect(http.StatusFound, "/profile/"+author.Username)
}
