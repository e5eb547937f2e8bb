package models

import "time"

// Post represents a feed post. LikesCount is denormalized and kept in sync
// with the likes table inside the same transaction as every toggle.
type Post struct {
	ID         string    `json:"id" gorm:"primaryKey"`
	UserID     string    `json:"user_id" gorm:"index;not null"`
	WordID     *uint     `json:"word_id" gorm:"index"`
	Text       string    `json:"text"`
	LikesCount int       `json:"likes_count" gorm:"not null;default:0"`
	CreatedAt  time.Time `json:"created_at"`

	User     User      `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Media    []Media   `json:"-" gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
	Comments []Comment `json:"-" gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
	Poll     *Poll     `json:"-" gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
}

// MediaInput is a single media attachment in a create/update request.
type MediaInput struct {
	Type string `json:"type" validate:"required,oneof=image video"`
	URL  string `json:"url" validate:"required"`
}

// PollInput is the optional poll attached at post creation.
type PollInput struct {
	Question string   `json:"question" validate:"required,min=1,max=300"`
	Options  []string `json:"options" validate:"required,min=2,dive,required,max=100"`
}

// CreatePostRequest defines the request body for creating a new post
type CreatePostRequest struct {
	AuthorFields
	WordID *uint        `json:"wordId"`
	Text   string       `json:"text" validate:"max=2000"`
	Media  []MediaInput `json:"media" validate:"omitempty,dive"`
	Poll   *PollInput   `json:"poll"`
}

// UpdatePostRequest defines the request body for editing a post. The media
// list replaces all existing attachments; poll and comments are untouched.
type UpdatePostRequest struct {
	Text  string       `json:"text" validate:"max=2000"`
	Media []MediaInput `json:"media" validate:"omitempty,dive"`
}
