package models

import "time"

// Comment represents a reader comment attached to a post. Author is free
// text supplied by the commenter, not a reference to a registered user.
type Comment struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	PostID          uint      `json:"post" gorm:"index;not null"`
	Post            *Post     `json:"-"`
	Author          string    `json:"author" gorm:"size:200;not null"`
	Text            string    `json:"text" gorm:"type:text;not null"`
	CreatedDate     time.Time `json:"created_date"`
	ApprovedComment bool      `json:"approved_comment" gorm:"default:false"`
}

// Approve flips the approval flag. The transition is one-way: there is no
// unapprove operation. Persisting the change is the repository's job.
func (c *Comment) Approve() {
	c.ApprovedComment = true
}

// IsApproved reports whether the comment has been approved.
func (c *Comment) IsApproved() bool {
	return c.ApprovedComment
}

func (c *Comment) String() string {
	return c.Text
}

// CreateCommentRequest defines the request body for creating a new comment
type CreateCommentRequest struct {
	Post   uint   `json:"post" validate:"required"`
	Author string `json:"author" validate:"required,max=200"`
	Text   string `json:"text" validate:"required"`
}
