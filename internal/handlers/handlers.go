package handlers

import (
	"github.com/quillhub/backend/internal/auth"
	"github.com/quillhub/backend/internal/cache"
	"github.com/quillhub/backend/internal/feed"
	"github.com/quillhub/backend/internal/follow"
	"github.com/quillhub/backend/internal/storage"
	"github.com/quillhub/backend/internal/store"
)

// Handlers contains all HTTP handlers for the application
type Handlers struct {
	store   *store.Store
	feed    *feed.Composer
	graph   *follow.Graph
	auth    *auth.Service
	uploads storage.ImageUploader
	pages   *cache.PageCache
}

// NewHandlers creates a new handlers instance
func NewHandlers(st *store.Store, composer *feed.Composer, graph *follow.Graph, authService *auth.Service, uploads storage.ImageUploader, pages *cache.PageCache) *Handlers {
	return &Handlers{
		store:   st,
		feed:    composer,
		graph:   graph,
		auth:    authService,
		uploads: uploads,
		pages:   pages,
	}
}
