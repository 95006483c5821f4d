package handlers

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/quillhub/backend/internal/auth"
	"github.com/quillhub/backend/internal/cache"
	"github.com/quillhub/backend/internal/middleware"
	"github.com/quillhub/backend/internal/util"
)

// NewRouter wires the full route table. It is shared by the server
// entrypoint and the handler tests so both exercise the same middleware
// chain.
func NewRouter(h *Handlers, authService *auth.Service, pages *cache.PageCache) *gin.Engine {
	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.GinLoggerMiddleware())
	r.Use(middleware.MetricsMiddleware())
	r.Use(gzip.Gzip(gzip.DefaultCompression))

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	r.Use(middleware.ResolveViewer(authService))

	// Operational endpoints
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"timestamp": time.Now().UTC(),
			"service":   "quillhub-backend",
		})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Public feed pages. Only the index goes through the page cache.
	r.GET("/", middleware.FeedCacheMiddleware(pages), h.Index)
	r.GET("/group/:slug", h.GroupFeed)
	r.GET("/profile/:username", h.Profile)
	r.GET("/posts/:id", h.PostDetail)

	// Auth
	r.POST("/auth/signup", h.Signup)
	r.POST("/auth/login", h.Login)
	r.GET("/auth/login", h.LoginForm)
	r.GET("/auth/me", middleware.RequireAuth(), h.Me)

	// Authenticated pages and mutations
	authed := r.Group("/")
	authed.Use(middleware.RequireAuth())
	{
		authed.GET("/follow", h.FollowingFeed)
		authed.POST("/posts", h.CreatePost)
		authed.POST("/posts/:id/edit", h.EditPost)
		authed.POST("/posts/:id/comments", h.CreateComment)
		authed.POST("/profile/:username/follow", h.FollowAuthor)
		authed.POST("/profile/:username/unfollow", h.UnfollowAuthor)
		authed.POST("/groups", h.CreateGroup)
		authed.POST("/admin/cache/clear", h.ClearFeedCache)
	}

	r.NoRoute(func(c *gin.Context) {
		util.RespondNotFound(c, "page")
	})

	return r
}
