package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/quillhub/backend/internal/logger"
	"github.com/quillhub/backend/internal/metrics"
	"github.com/quillhub/backend/internal/middleware"
	"github.com/quillhub/backend/internal/models"
	"github.com/quillhub/backend/internal/store"
	"github.com/quillhub/backend/internal/util"
	"go.uber.org/zap"
)

// postForm is the create/edit submission: text is required, group and image
// are optional.
type postForm struct {
	Text    string `form:"text" json:"text"`
	GroupID *uint  `form:"group_id" json:"group_id"`
}

// PostDetail serves a post with its comments newest first and a blank
// comment form.
// GET /posts/:id
func (h *Handlers) PostDetail(c *gin.Context) {
	id, err := util.ParseUint(c.Param("id"))
	if err != nil {
		util.RespondNotFound(c, "post")
		return
	}

	post, err := h.store.Posts.ByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			util.RespondNotFound(c, "post")
			return
		}
		util.RespondInternalError(c, "failed to load post")
		return
	}

	comments, err := h.store.Comments.ListByPost(c.Request.Context(), post.ID)
	if err != nil {
		util.RespondInternalError(c, "failed to load comments")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"post":     post,
		"comments": comments,
		"form":     gin.H{"text": ""},
	})
}

// CreatePost creates a post for the authenticated author and redirects to
// their profile.
// POST /posts
func (h *Handlers) CreatePost(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var form postForm
	if err := c.ShouldBind(&form); err != nil {
		util.RespondValidationError(c, "text", "invalid form submission")
		return
	}
	if strings.TrimSpace(form.Text) == "" {
		util.RespondValidationError(c, "text", "text is required")
		return
	}
	if form.GroupID != nil {
		if _, err := h.store.Groups.ByID(c.Request.Context(), *form.GroupID); err != nil {
			util.RespondValidationError(c, "group_id", "unknown group")
			return
		}
	}

	imageURL, ok := h.saveImage(c)
	if !ok {
		return
	}

	post := &models.Post{
		Text:     form.Text,
		AuthorID: user.ID,
		GroupID:  form.GroupID,
		ImageURL: imageURL,
	}
	if err := h.store.Posts.Create(c.Request.Context(), post); err != nil {
		util.RespondInternalError(c, "failed to create post")
		return
	}

	metrics.Get().PostsCreatedTotal.Inc()
	logger.Log.Info("Post created",
		logger.WithPostID(post.ID),
		logger.WithUserID(user.ID),
	)

	c.Redirect(http.StatusFound, "/profile/"+user.Username)
}

// EditPost updates a post's text, group and image. Only the owning author
// may save; anyone else is bounced to the detail view with nothing written.
// POST /posts/:id/edit
func (h *Handlers) EditPost(c *gin.Context) {
	user := middleware.CurrentUser(c)

	id, err := util.ParseUint(c.Param("id"))
	if err != nil {
		util.RespondNotFound(c, "post")
		return
	}

	post, err := h.store.Posts.ByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			util.RespondNotFound(c, "post")
			return
		}
		util.RespondInternalError(c, "failed to load post")
		return
	}

	detailPath := fmt.Sprintf("/posts/%d", post.ID)

	// Deliberately non-committal: a non-author lands on the detail view
	// with no hint that the edit was refused.
	if post.AuthorID != user.ID {
		c.Redirect(http.StatusFound, detailPath)
		return
	}

	var form postForm
	if err := c.ShouldBind(&form); err != nil {
		util.RespondValidationError(c, "text", "invalid form submission")
		return
	}
	if strings.TrimSpace(form.Text) == "" {
		util.RespondValidationError(c, "text", "text is required")
		return
	}
	if form.GroupID != nil {
		if _, err := h.store.Groups.ByID(c.Request.Context(), *form.GroupID); err != nil {
			util.RespondValidationError(c, "group_id", "unknown group")
			return
		}
	}

	imageURL, ok := h.saveImage(c)
	if !ok {
		return
	}

	post.Text = form.Text
	post.GroupID = form.GroupID
	if imageURL != "" {
		post.ImageURL = imageURL
	}

	if err := h.store.Posts.Save(c.Request.Context(), post); err != nil {
		util.RespondInternalError(c, "failed to save post")
		return
	}

	c.Redirect(http.StatusFound, detailPath)
}

// CreateComment attaches a comment to a post and redirects to the detail
// view. An invalid submission still redirects, it just creates nothing.
// POST /posts/:id/comments
func (h *Handlers) CreateComment(c *gin.Context) {
	user := middleware.CurrentUser(c)

	id, err := util.ParseUint(c.Param("id"))
	if err != nil {
		util.RespondNotFound(c, "post")
		return
	}

	post, err := h.store.Posts.ByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			util.RespondNotFound(c, "post")
			return
		}
		util.RespondInternalError(c, "failed to load post")
		return
	}

	detailPath := fmt.Sprintf("/posts/%d", post.ID)

	var form struct {
		Text string `form:"text" json:"text"`
	}
	if err := c.ShouldBind(&form); err != nil || strings.TrimSpace(form.Text) == "" {
		c.Redirect(http.StatusFound, detailPath)
		return
	}

	comment := &models.Comment{
		Text:     form.Text,
		PostID:   &post.ID,
		AuthorID: &user.ID,
	}
	if err := h.store.Comments.Create(c.Request.Context(), comment); err != nil {
		util.RespondInternalError(c, "failed to create comment")
		return
	}

	c.Redirect(http.StatusFound, detailPath)
}

// saveImage stores an optional multipart image and returns its URL. The
// second return is false when a response has already been written.
func (h *Handlers) saveImage(c *gin.Context) (string, bool) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		// No image attached.
		return "", true
	}

	file, err := fileHeader.Open()
	if err != nil {
		util.RespondValidationError(c, "image", "could not read image")
		return "", false
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		util.RespondValidationError(c, "image", "could not read image")
		return "", false
	}

	result, err := h.uploads.UploadImage(c.Request.Context(), data, fileHeader.Filename)
	if err != nil {
		logger.Log.Error("Image upload failed", zap.Error(err))
		util.RespondInternalError(c, "failed to store image")
		return "", false
	}

	return result.URL, true
}
