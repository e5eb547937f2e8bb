package models

// Word is the daily vocabulary prompt posts are organized around.
// Immutable after seeding; one word per calendar date.
type Word struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Word        string `json:"word" gorm:"not null"`
	Phonetic    string `json:"phonetic"`
	Description string `json:"description"`
	Challenge   string `json:"challenge"`
	Date        string `json:"date" gorm:"type:date;uniqueIndex;not null"`
}

func (Word) TableName() string {
	return "word_of_day"
}
