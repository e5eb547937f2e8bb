package models

import "time"

// CommentLike represents a like on a comment
type CommentLike struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CommentID string    `json:"comment_id" gorm:"index;uniqueIndex:idx_comment_user_like;not null"`
	UserID    string    `json:"user_id" gorm:"index;uniqueIndex:idx_comment_user_like;not null"`
	CreatedAt time.Time `json:"created_at"`
}
