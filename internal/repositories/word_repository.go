package repositories

import (
	"github.com/bridgegen/backend/internal/models"
	"gorm.io/gorm"
)

// WordRepository defines the interface for word-of-day reads. Words are
// immutable after seeding.
type WordRepository interface {
	GetWords() ([]models.Word, error)
	GetLatestWord() (*models.Word, error)
	GetWordByID(id uint) (*models.Word, error)
}

// PostgresWordRepository implements WordRepository for PostgreSQL
type PostgresWordRepository struct {
	db *gorm.DB
}

// NewPostgresWordRepository creates a new PostgresWordRepository
func NewPostgresWordRepository(db *gorm.DB) *PostgresWordRepository {
	return &PostgresWordRepository{db: db}
}

// GetWords retrieves all word prompts, newest date first
func (r *PostgresWordRepository) GetWords() ([]models.Word, error) {
	var words []models.Word
	if err := r.db.Order("date DESC").Find(&words).Error; err != nil {
		return nil, err
	}
	return words, nil
}

// GetLatestWord retrieves the most recent word prompt
func (r *PostgresWordRepository) GetLatestWord() (*models.Word, error) {
	var word models.Word
	if err := r.db.Order("date DESC").First(&word).Error; err != nil {
		return nil, err
	}
	return &word, nil
}

// GetWordByID retrieves a single word prompt
func (r *PostgresWordRepository) GetWordByID(id uint) (*models.Word, error) {
	var word models.Word
	if err := r.db.First(&word, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &word, nil
}
