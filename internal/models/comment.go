package models

import "time"

// Comment represents a comment on a post
type Comment struct {
	ID         string    `json:"id" gorm:"primaryKey"`
	PostID     string    `json:"post_id" gorm:"index;not null"`
	UserID     string    `json:"user_id" gorm:"index;not null"`
	Text       string    `json:"text" gorm:"not null"`
	LikesCount int       `json:"likes_count" gorm:"not null;default:0"`
	CreatedAt  time.Time `json:"created_at"`

	User User `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// CreateCommentRequest defines the request body for creating a new comment
type CreateCommentRequest struct {
	AuthorFields
	Text string `json:"text" validate:"required,min=1,max=1000"`
}

// UpdateCommentRequest defines the request body for updating an existing comment
type UpdateCommentRequest struct {
	Text string `json:"text" validate:"required,min=1,max=1000"`
}
