package models

// User is a registered account that can author posts and obtain API tokens.
type User struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	Username string `json:"username" gorm:"uniqueIndex;size:150;not null"`
	Email    string `json:"email"`
	Password string `json:"-"` // bcrypt hash, never serialized
}

// AuthTokenRequest defines the request body for obtaining an API token
type AuthTokenRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}
