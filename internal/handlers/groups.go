package handlers

import (
	"net/http"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/quillhub/backend/internal/models"
	"github.com/quillhub/backend/internal/util"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// CreateGroup creates a named category with a unique URL slug.
// POST /groups
func (h *Handlers) CreateGroup(c *gin.Context) {
	var form struct {
		Title       string `form:"title" json:"title"`
		Slug        string `form:"slug" json:"slug"`
		Description string `form:"description" json:"description"`
	}
	if err := c.ShouldBind(&form); err != nil {
		util.RespondValidationError(c, "title", "invalid form submission")
		return
	}
	if strings.TrimSpace(form.Title) == "" {
		util.RespondValidationError(c, "title", "title is required")
		return
	}
	if !slugPattern.MatchString(form.Slug) {
		util.RespondValidationError(c, "slug", "slug must be lowercase letters, digits and hyphens")
		return
	}

	if _, err := h.store.Groups.BySlug(c.Request.Context(), form.Slug); err == nil {
		util.RespondConflict(c, "group")
		return
	}

	group := &models.Group{
		Title:       form.Title,
		Slug:        form.Slug,
		Description: form.Description,
	}
	if err := h.store.Groups.Create(c.Request.Context(), group); err != nil {
		util.RespondInternalError(c, "failed to create group")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"group": group})
}
