package models

import "time"

// Token is an opaque bearer credential. Each user holds at most one token;
// repeated logins return the same key until the token is deleted.
type Token struct {
	Key     string    `json:"token" gorm:"primaryKey;size:64"`
	UserID  uint      `json:"user_id" gorm:"uniqueIndex;not null"`
	Created time.Time `json:"created"`
}
