package models

import "time"

// Notification kinds
const (
	NotificationPostLike    = "post_like"
	NotificationComment     = "comment"
	NotificationCommentLike = "comment_like"
	NotificationPollVote    = "poll_vote"
)

// Notification represents a user notification. ActorName is a snapshot taken
// at fan-out time and is never re-resolved on read. PostID deliberately has
// no foreign key so notifications outlive the content they point at.
type Notification struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    string    `json:"user_id" gorm:"index;not null"`
	Type      string    `json:"type" gorm:"type:varchar(30);not null"`
	ActorID   string    `json:"actor_id" gorm:"not null"`
	ActorName string    `json:"actor_name" gorm:"not null"`
	PostID    *string   `json:"post_id"`
	CommentID *string   `json:"comment_id"`
	Message   string    `json:"message" gorm:"not null"`
	Read      bool      `json:"read" gorm:"not null;default:false;index"`
	CreatedAt time.Time `json:"created_at" gorm:"index"`
}
