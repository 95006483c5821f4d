package store

import (
	"errors"

	"gorm.io/gorm"
)

// ErrNotFound is returned when a referenced entity does not exist.
var ErrNotFound = errors.New("record not found")

// Store is the entity store: durable access to users, groups, posts,
// comments and follow edges. Each sub-store holds the same *gorm.DB; every
// mutation is a single atomic insert or update.
type Store struct {
	db *gorm.DB

	Users    *UserStore
	Groups   *GroupStore
	Posts    *PostStore
	Comments *CommentStore
}

// New creates a store bound to the given database handle.
func New(db *gorm.DB) *Store {
	return &Store{
		db:       db,
		Users:    &UserStore{db: db},
		Groups:   &GroupStore{db: db},
		Posts:    &PostStore{db: db},
		Comments: &CommentStore{db: db},
	}
}

// DB exposes the underlying handle for callers that compose their own
// queries (feed composer, follow graph).
func (s *Store) DB() *gorm.DB {
	return s.db
}

// translate maps gorm's record-not-found to the store's sentinel.
func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
