package models

// Media kinds
const (
	MediaTypeImage = "image"
	MediaTypeVideo = "video"
)

// Media is a post attachment. Post edits delete and re-insert the whole set
// rather than patching individual rows.
type Media struct {
	ID     uint   `json:"id" gorm:"primaryKey"`
	PostID string `json:"post_id" gorm:"index;not null"`
	Type   string `json:"type" gorm:"column:media_type;type:varchar(10);not null;check:media_type IN ('image','video')"`
	URL    string `json:"url" gorm:"not null"`
}

func (Media) TableName() string {
	return "post_media"
}
