package models

import "time"

// Post represents a blog post stored in PostgreSQL
type Post struct {
	ID            uint       `json:"id" gorm:"primaryKey"`
	AuthorID      uint       `json:"author" gorm:"index;not null"` // ID of the user who wrote the post
	Title         string     `json:"title" gorm:"size:200;not null"`
	Text          string     `json:"text" gorm:"type:text;not null"`
	CreatedDate   time.Time  `json:"created_date"`
	PublishedDate *time.Time `json:"published_date"` // nil while the post is unpublished
	Comments      []Comment  `json:"-" gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
}

// Publish stamps the post with the given publication time. Persisting the
// change is the repository's job; re-publishing just refreshes the timestamp.
func (p *Post) Publish(now time.Time) {
	p.PublishedDate = &now
}

// IsPublished reports whether the post has been published.
func (p *Post) IsPublished() bool {
	return p.PublishedDate != nil
}

func (p *Post) String() string {
	return p.Title
}

// CreatePostRequest defines the request body for creating a new post
type CreatePostRequest struct {
	Author uint   `json:"author" validate:"required"`
	Title  string `json:"title" validate:"required,max=200"`
	Text   string `json:"text" validate:"required"`
}

// UpdatePostRequest defines the request body for replacing an existing post.
// All fields are required: updates are full replacements, not patches.
type UpdatePostRequest struct {
	Author uint   `json:"author" validate:"required"`
	Title  string `json:"title" validate:"required,max=200"`
	Text   string `json:"text" validate:"required"`
}
