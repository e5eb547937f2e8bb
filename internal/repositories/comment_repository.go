package repositories

import (
	"github.com/bridgegen/backend/internal/models"
	"gorm.io/gorm"
)

// CommentRepository defines the interface for comment data operations
type CommentRepository interface {
	CreateComment(comment *models.Comment) error
	GetCommentByID(id string) (*models.Comment, error)
	UpdateComment(postID, commentID, text string) error
	DeleteComment(postID, commentID string) error
}

// PostgresCommentRepository implements CommentRepository for PostgreSQL
type PostgresCommentRepository struct {
	db *gorm.DB
}

// NewPostgresCommentRepository creates a new PostgresCommentRepository
func NewPostgresCommentRepository(db *gorm.DB) *PostgresCommentRepository {
	return &PostgresCommentRepository{db: db}
}

// CreateComment creates a new comment in PostgreSQL
func (r *PostgresCommentRepository) CreateComment(comment *models.Comment) error {
	return r.db.Omit("User").Create(comment).Error
}

// GetCommentByID retrieves a comment with its author from PostgreSQL
func (r *PostgresCommentRepository) GetCommentByID(id string) (*models.Comment, error) {
	var comment models.Comment
	if err := r.db.Preload("User").First(&comment, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

// UpdateComment replaces a comment's text. Scoped to the post so a mismatched
// post/comment pair is a silent no-op, matching the delete semantics.
func (r *PostgresCommentRepository) UpdateComment(postID, commentID, text string) error {
	return r.db.Model(&models.Comment{}).
		Where("id = ? AND post_id = ?", commentID, postID).
		UpdateColumn("text", text).Error
}

// DeleteComment removes a comment and its likes. No-op when absent.
func (r *PostgresCommentRepository) DeleteComment(postID, commentID string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ? AND post_id = ?", commentID, postID).
			Delete(&models.Comment{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		return tx.Where("comment_id = ?", commentID).Delete(&models.CommentLike{}).Error
	})
}
