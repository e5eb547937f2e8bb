package models

import "time"

// Poll is an optional poll attached to a post. The unique index on PostID
// makes "at most one poll per post" a schema guarantee rather than an
// application convention.
type Poll struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	PostID    string    `json:"post_id" gorm:"uniqueIndex;not null"`
	Question  string    `json:"question" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`

	Options []PollOption `json:"-" gorm:"foreignKey:PollID;constraint:OnDelete:CASCADE"`
}

// PollOption holds a denormalized votes_count kept in sync with poll_votes
// inside every vote transaction.
type PollOption struct {
	ID         string `json:"id" gorm:"primaryKey"`
	PollID     string `json:"poll_id" gorm:"index;not null"`
	Text       string `json:"text" gorm:"not null"`
	VotesCount int    `json:"votes_count" gorm:"not null;default:0"`
}

// PollVote records a user's single vote in a poll. Voting again switches the
// option on this row; there is no unvote.
type PollVote struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	PollID    string    `json:"poll_id" gorm:"index;uniqueIndex:idx_poll_user_vote;not null"`
	OptionID  string    `json:"option_id" gorm:"index;not null"`
	UserID    string    `json:"user_id" gorm:"uniqueIndex:idx_poll_user_vote;not null"`
	CreatedAt time.Time `json:"created_at"`
}

// VoteRequest defines the request body for casting or switching a poll vote
type VoteRequest struct {
	UserID   string `json:"userId" validate:"required"`
	OptionID string `json:"optionId" validate:"required"`
}
