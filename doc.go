// Package backend provides the QuillHub API server.

// The API is organized into subpackages:

// - internal/handlers: HTTP request handlers and the route table
// - internal/models: Data models and database schemas
// - internal/auth: Authentication and session tokens
// - internal/feed: Feed composition and pagination
// - internal/follow: The follower/author graph
// - internal/cache: The global index page cache (Redis or in-process)
// - internal/storage: Image storage (S3 or local disk)
// - internal/store: Data access on top of GORM
// - internal/database: Database connection and migrations
// - internal/middleware: HTTP middleware (auth, logging, metrics, caching)
// - internal/seed: Development data seeding

// See the individual package documentation for detailed API reference.
package backend
