package repositories

import (
	"database/sql"
	"errors"

	"github.com/bridgegen/backend/internal/models"
	"gorm.io/gorm"
)

const postOrder = "likes_count DESC, created_at DESC"
const commentOrder = "likes_count DESC, created_at DESC"
const optionOrder = "votes_count DESC"

// PostRepository defines the interface for post data operations
type PostRepository interface {
	CreatePost(post *models.Post, media []models.Media, poll *models.Poll) error
	GetPostByID(id string) (*models.Post, error)
	GetPosts(wordID *uint) ([]models.Post, error)
	SearchPosts(query string, wordID *uint) ([]models.Post, error)
	UpdatePost(id, text string, media []models.Media) error
	DeletePost(id string) error
	PostOwner(id string) (string, error)
	ReadSnapshot(fn func(tx *gorm.DB) error) error
	WithTx(tx *gorm.DB) PostRepository
}

// PostgresPostRepository implements PostRepository for PostgreSQL
type PostgresPostRepository struct {
	db *gorm.DB
}

// NewPostgresPostRepository creates a new PostgresPostRepository
func NewPostgresPostRepository(db *gorm.DB) *PostgresPostRepository {
	return &PostgresPostRepository{db: db}
}

// ReadSnapshot runs fn inside one read transaction so every query in a feed
// assembly sees the same logical point in time: counters never disagree with
// the membership rows resolved alongside them. Postgres needs the explicit
// REPEATABLE READ level; SQLite transactions are always serializable.
func (r *PostgresPostRepository) ReadSnapshot(fn func(tx *gorm.DB) error) error {
	opts := &sql.TxOptions{}
	if r.db.Dialector.Name() == "postgres" {
		opts.Isolation = sql.LevelRepeatableRead
		opts.ReadOnly = true
	}
	return r.db.Transaction(fn, opts)
}

// WithTx returns the repository bound to an open transaction
func (r *PostgresPostRepository) WithTx(tx *gorm.DB) PostRepository {
	return &PostgresPostRepository{db: tx}
}

// CreatePost inserts the post with its media and optional poll in one
// transaction, so a mid-way failure never leaves a half-written post.
func (r *PostgresPostRepository) CreatePost(post *models.Post, media []models.Media, poll *models.Poll) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Media", "Comments", "Poll", "User").Create(post).Error; err != nil {
			return err
		}
		for i := range media {
			media[i].PostID = post.ID
			if err := tx.Create(&media[i]).Error; err != nil {
				return err
			}
		}
		if poll != nil {
			poll.PostID = post.ID
			if err := tx.Omit("Options").Create(poll).Error; err != nil {
				return err
			}
			for i := range poll.Options {
				poll.Options[i].PollID = poll.ID
				if err := tx.Create(&poll.Options[i]).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
}

// GetPostByID retrieves a single post with all its associations
func (r *PostgresPostRepository) GetPostByID(id string) (*models.Post, error) {
	var post models.Post
	if err := r.withAssociations(r.db).First(&post, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// GetPosts retrieves all posts, optionally scoped to one word prompt,
// ordered by likes then recency. Associations come preloaded in the same
// order the feed renders them.
func (r *PostgresPostRepository) GetPosts(wordID *uint) ([]models.Post, error) {
	query := r.withAssociations(r.db)
	if wordID != nil {
		query = query.Where("word_id = ?", *wordID)
	}
	var posts []models.Post
	if err := query.Order(postOrder).Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// SearchPosts retrieves posts whose text contains the query substring,
// optionally scoped to one word prompt.
func (r *PostgresPostRepository) SearchPosts(query string, wordID *uint) ([]models.Post, error) {
	q := r.withAssociations(r.db).Where("text LIKE ?", "%"+query+"%")
	if wordID != nil {
		q = q.Where("word_id = ?", *wordID)
	}
	var posts []models.Post
	if err := q.Order(postOrder).Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *PostgresPostRepository) withAssociations(db *gorm.DB) *gorm.DB {
	return db.
		Preload("User").
		Preload("Media").
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order(commentOrder)
		}).
		Preload("Comments.User").
		Preload("Poll").
		Preload("Poll.Options", func(db *gorm.DB) *gorm.DB {
			return db.Order(optionOrder)
		})
}

// UpdatePost replaces the post text and wholesale-replaces its media list.
// Poll and comments are untouched.
func (r *PostgresPostRepository) UpdatePost(id, text string, media []models.Media) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Post{}).Where("id = ?", id).
			UpdateColumn("text", text).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", id).Delete(&models.Media{}).Error; err != nil {
			return err
		}
		for i := range media {
			media[i].ID = 0
			media[i].PostID = id
			if err := tx.Create(&media[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// DeletePost removes a post and everything hanging off it. Deleting an
// absent id is a no-op.
func (r *PostgresPostRepository) DeletePost(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return deletePostCascade(tx, id)
	})
}

// PostOwner returns the owning user id for a post
func (r *PostgresPostRepository) PostOwner(id string) (string, error) {
	var post models.Post
	if err := r.db.Select("user_id").First(&post, "id = ?", id).Error; err != nil {
		return "", err
	}
	return post.UserID, nil
}

// deletePostCascade removes a post's comments (with their likes), likes,
// media and poll (with options and votes) before the post row itself.
// Shared with the user-deletion cascade.
func deletePostCascade(tx *gorm.DB, postID string) error {
	var commentIDs []string
	if err := tx.Model(&models.Comment{}).Where("post_id = ?", postID).
		Pluck("id", &commentIDs).Error; err != nil {
		return err
	}
	if len(commentIDs) > 0 {
		if err := tx.Where("comment_id IN ?", commentIDs).Delete(&models.CommentLike{}).Error; err != nil {
			return err
		}
	}
	if err := tx.Where("post_id = ?", postID).Delete(&models.Comment{}).Error; err != nil {
		return err
	}
	if err := tx.Where("post_id = ?", postID).Delete(&models.Like{}).Error; err != nil {
		return err
	}
	if err := tx.Where("post_id = ?", postID).Delete(&models.Media{}).Error; err != nil {
		return err
	}

	var poll models.Poll
	err := tx.Where("post_id = ?", postID).First(&poll).Error
	if err == nil {
		if err := tx.Where("poll_id = ?", poll.ID).Delete(&models.PollVote{}).Error; err != nil {
			return err
		}
		if err := tx.Where("poll_id = ?", poll.ID).Delete(&models.PollOption{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(&poll).Error; err != nil {
			return err
		}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	return tx.Where("id = ?", postID).Delete(&models.Post{}).Error
}
