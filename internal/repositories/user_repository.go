package repositories

import (
	"github.com/bridgegen/backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UserRepository defines the interface for user data operations
type UserRepository interface {
	EnsureUser(user *models.User) error
	GetUserByID(id string) (*models.User, error)
	DeleteUser(id string) error
}

// PostgresUserRepository implements UserRepository for PostgreSQL
type PostgresUserRepository struct {
	db *gorm.DB
}

// NewPostgresUserRepository creates a new PostgresUserRepository
func NewPostgresUserRepository(db *gorm.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

// EnsureUser provisions the user row if the id is unseen. Idempotent: an
// existing row is left untouched, so repeated writes never clobber a profile.
func (r *PostgresUserRepository) EnsureUser(user *models.User) error {
	return r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(user).Error
}

// GetUserByID retrieves a user by ID from PostgreSQL
func (r *PostgresUserRepository) GetUserByID(id string) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// DeleteUser removes a user and everything they authored: their posts with
// all attached content, their comments and reactions elsewhere (adjusting
// the denormalized counters), and notifications naming them as target or
// actor.
func (r *PostgresUserRepository) DeleteUser(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		// Likes the user placed on other posts, with counter adjustments.
		var likes []models.Like
		if err := tx.Where("user_id = ?", id).Find(&likes).Error; err != nil {
			return err
		}
		for _, like := range likes {
			if err := tx.Model(&models.Post{}).Where("id = ?", like.PostID).
				UpdateColumn("likes_count", gorm.Expr("likes_count - 1")).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("user_id = ?", id).Delete(&models.Like{}).Error; err != nil {
			return err
		}

		var commentLikes []models.CommentLike
		if err := tx.Where("user_id = ?", id).Find(&commentLikes).Error; err != nil {
			return err
		}
		for _, like := range commentLikes {
			if err := tx.Model(&models.Comment{}).Where("id = ?", like.CommentID).
				UpdateColumn("likes_count", gorm.Expr("likes_count - 1")).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("user_id = ?", id).Delete(&models.CommentLike{}).Error; err != nil {
			return err
		}

		var votes []models.PollVote
		if err := tx.Where("user_id = ?", id).Find(&votes).Error; err != nil {
			return err
		}
		for _, vote := range votes {
			if err := tx.Model(&models.PollOption{}).Where("id = ?", vote.OptionID).
				UpdateColumn("votes_count", gorm.Expr("votes_count - 1")).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("user_id = ?", id).Delete(&models.PollVote{}).Error; err != nil {
			return err
		}

		// Comments authored elsewhere, taking their likes with them.
		var commentIDs []string
		if err := tx.Model(&models.Comment{}).Where("user_id = ?", id).
			Pluck("id", &commentIDs).Error; err != nil {
			return err
		}
		if len(commentIDs) > 0 {
			if err := tx.Where("comment_id IN ?", commentIDs).Delete(&models.CommentLike{}).Error; err != nil {
				return err
			}
			if err := tx.Where("id IN ?", commentIDs).Delete(&models.Comment{}).Error; err != nil {
				return err
			}
		}

		// Authored posts cascade like an explicit post delete.
		var postIDs []string
		if err := tx.Model(&models.Post{}).Where("user_id = ?", id).
			Pluck("id", &postIDs).Error; err != nil {
			return err
		}
		for _, postID := range postIDs {
			if err := deletePostCascade(tx, postID); err != nil {
				return err
			}
		}

		if err := tx.Where("user_id = ? OR actor_id = ?", id, id).
			Delete(&models.Notification{}).Error; err != nil {
			return err
		}

		return tx.Delete(&models.User{}, "id = ?", id).Error
	})
}
