package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/quillhub/backend/internal/logger"
	"github.com/quillhub/backend/internal/middleware"
	"github.com/quillhub/backend/internal/util"
)

// ClearFeedCache drops the cached global feed page immediately. This is the
// only way, short of waiting out the TTL, to make the index reflect recent
// writes.
// POST /admin/cache/clear
func (h *Handlers) ClearFeedCache(c *gin.Context) {
	if err := h.pages.Clear(c.Request.Context()); err != nil {
		util.RespondInternalError(c, "failed to clear cache")
		return
	}

	logger.Log.Info("Feed cache cleared",
		logger.WithUserID(middleware.ViewerID(c)),
	)

	c.JSON(http.StatusOK, gin.H{"message": "cache_cleared"})
}
