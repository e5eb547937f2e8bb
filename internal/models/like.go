package models

import "time"

// Like represents a like on a post. A user can like a given post at most
// once, enforced by the composite unique index.
type Like struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	PostID    string    `json:"post_id" gorm:"index;uniqueIndex:idx_post_user_like;not null"`
	UserID    string    `json:"user_id" gorm:"index;uniqueIndex:idx_post_user_like;not null"`
	CreatedAt time.Time `json:"created_at"`
}
