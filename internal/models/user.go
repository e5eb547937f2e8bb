package models

import "time"

// User types
const (
	UserTypeYouth  = "youth"
	UserTypeSenior = "senior"
)

// User represents an app user. There is no registration flow: rows are
// created lazily the first time an unseen id writes a post or comment.
type User struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	Initials  string    `json:"initials" gorm:"not null"`
	Age       int       `json:"age" gorm:"not null;check:age >= 1 AND age <= 120"`
	Type      string    `json:"type" gorm:"type:varchar(10);not null;check:type IN ('youth','senior')"`
	CreatedAt time.Time `json:"created_at"`
}

// AuthorFields carries the caller-supplied identity attached to posts and
// comments, used to provision the user on first write.
type AuthorFields struct {
	UserID   string `json:"userId" validate:"required"`
	Author   string `json:"author" validate:"required,min=1,max=100"`
	Initials string `json:"initials" validate:"required,min=1,max=5"`
	Age      int    `json:"age" validate:"required,min=1,max=120"`
	Type     string `json:"type" validate:"required,oneof=youth senior"`
}
