package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/quillhub/backend/internal/auth"
	"github.com/quillhub/backend/internal/middleware"
	"github.com/quillhub/backend/internal/util"
)

// Signup registers a new account and issues a session.
// POST /auth/signup
func (h *Handlers) Signup(c *gin.Context) {
	var req auth.RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		util.RespondValidationError(c, "", err.Error())
		return
	}

	resp, err := h.auth.Register(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrEmailExists):
			util.RespondConflict(c, "email")
		case errors.Is(err, auth.ErrUsernameExists):
			util.RespondConflict(c, "username")
		default:
			util.RespondInternalError(c, "failed to register")
		}
		return
	}

	h.setSessionCookie(c, resp.Token)
	c.JSON(http.StatusCreated, resp)
}

// Login verifies credentials and issues a session.
// POST /auth/login
func (h *Handlers) Login(c *gin.Context) {
	var req auth.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		util.RespondValidationError(c, "", err.Error())
		return
	}

	resp, err := h.auth.Login(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			util.RespondUnauthorized(c, "invalid credentials")
			return
		}
		util.RespondInternalError(c, "failed to log in")
		return
	}

	h.setSessionCookie(c, resp.Token)
	c.JSON(http.StatusOK, resp)
}

// LoginForm is the target of redirect-to-login. It echoes the ?next= return
// path so a client can send the user back to their original destination
// after authenticating.
// GET /auth/login
func (h *Handlers) LoginForm(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "authentication required",
		"next":    c.Query("next"),
	})
}

// Me returns the authenticated viewer.
// GET /auth/me
func (h *Handlers) Me(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"user": middleware.CurrentUser(c)})
}

func (h *Handlers) setSessionCookie(c *gin.Context, token string) {
	// 7 days, matching the token lifetime.
	c.SetCookie(auth.SessionCookie, token, 7*24*3600, "/", "", false, true)
}
