package models

import "time"

// User represents a Quillhub account.
type User struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Username     string `gorm:"uniqueIndex;size:150;not null" json:"username"`
	Email        string `gorm:"uniqueIndex;size:254;not null" json:"email"`
	DisplayName  string `json:"display_name"`
	PasswordHash string `gorm:"type:text;not null" json:"-"`

	// Deleting a user cascades their posts; their comments survive with the
	// author reference cleared. The asymmetry is deliberate, see DESIGN.md.
	Posts    []Post    `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"-"`
	Comments []Comment `gorm:"foreignKey:AuthorID;constraint:OnDelete:SET NULL" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Group is a named category posts can be filed under. Slug is the URL-safe
// unique identifier groups are resolved by.
type Group struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Title       string `gorm:"size:200;not null" json:"title"`
	Slug        string `gorm:"uniqueIndex;size:50;not null" json:"slug"`
	Description string `gorm:"type:text" json:"description"`

	// Deleting a group clears the group reference on its posts, it never
	// deletes them.
	Posts []Post `gorm:"foreignKey:GroupID;constraint:OnDelete:SET NULL" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Post is the central entity: a text body with an owning author, an optional
// group and an optional image. CreatedAt is assigned once and is the sole
// feed ordering key (descending), with ID as the insertion-order tiebreak.
type Post struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Text string `gorm:"type:text;not null" json:"text"`

	AuthorID uint `gorm:"not null;index:idx_posts_author_created,priority:1" json:"author_id"`
	Author   User `gorm:"foreignKey:AuthorID" json:"author"`

	GroupID *uint  `gorm:"index" json:"group_id,omitempty"`
	Group   *Group `gorm:"foreignKey:GroupID" json:"group,omitempty"`

	ImageURL string `json:"image_url,omitempty"`

	CreatedAt time.Time `gorm:"index;index:idx_posts_author_created,priority:2" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Comment is attached to exactly one post. The post and author references
// are nullable and cleared rather than cascaded when their target goes away,
// so orphaned comments remain in the table.
type Comment struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Text string `gorm:"type:text;not null" json:"text"`

	PostID *uint `gorm:"index" json:"post_id,omitempty"`
	Post   *Post `gorm:"foreignKey:PostID;constraint:OnDelete:SET NULL" json:"-"`

	AuthorID *uint `gorm:"index" json:"author_id,omitempty"`
	Author   *User `gorm:"foreignKey:AuthorID" json:"author,omitempty"`

	CreatedAt time.Time `gorm:"index" json:"created_at"`
}

// Follow is a directed edge from a follower to an author. The composite
// unique index enforces at most one edge per directed pair; the self-follow
// guard lives in the follow graph, not the schema.
type Follow struct {
	ID         uint `gorm:"primaryKey" json:"id"`
	FollowerID uint `gorm:"not null;index;uniqueIndex:idx_follows_follower_author" json:"follower_id"`
	Follower   User `gorm:"foreignKey:FollowerID;constraint:OnDelete:CASCADE" json:"-"`
	AuthorID   uint `gorm:"not null;index;uniqueIndex:idx_follows_follower_author" json:"author_id"`
	Author     User `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"-"`

	CreatedAt time.Time `json:"created_at"`
}
