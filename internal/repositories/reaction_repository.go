package repositories

import (
	"fmt"

	"github.com/bridgegen/backend/internal/models"
	"gorm.io/gorm"
)

// ContentKind selects which likeable content a reaction operation targets.
type ContentKind string

const (
	ContentPost    ContentKind = "post"
	ContentComment ContentKind = "comment"
)

// CounterMismatch reports a denormalized likes_count that disagrees with the
// membership table. Returned by the reconciliation audit; an empty slice
// means counters and membership rows are in sync.
type CounterMismatch struct {
	Kind      ContentKind
	ContentID string
	Stored    int
	Counted   int64
}

// ReactionRepository is the single membership-flag capability for posts and
// comments: like toggles, per-viewer liked checks, and the counter audit.
type ReactionRepository interface {
	Toggle(kind ContentKind, contentID, userID string) (*models.LikeResult, string, error)
	LikedSet(kind ContentKind, contentIDs []string, userID string) (map[string]bool, error)
	CounterMismatches() ([]CounterMismatch, error)
	WithTx(tx *gorm.DB) ReactionRepository
}

// PostgresReactionRepository implements ReactionRepository for PostgreSQL
type PostgresReactionRepository struct {
	db *gorm.DB
}

// NewPostgresReactionRepository creates a new PostgresReactionRepository
func NewPostgresReactionRepository(db *gorm.DB) *PostgresReactionRepository {
	return &PostgresReactionRepository{db: db}
}

// WithTx returns the repository bound to an open transaction
func (r *PostgresReactionRepository) WithTx(tx *gorm.DB) ReactionRepository {
	return &PostgresReactionRepository{db: tx}
}

// reactionTarget maps a content kind onto its content table and membership
// rows.
type reactionTarget struct {
	contentTable  string
	membershipFK  string
	newMembership func(contentID, userID string) interface{}
	membership    func() interface{}
}

func targetFor(kind ContentKind) (reactionTarget, error) {
	switch kind {
	case ContentPost:
		return reactionTarget{
			contentTable: "posts",
			membershipFK: "post_id",
			newMembership: func(contentID, userID string) interface{} {
				return &models.Like{PostID: contentID, UserID: userID}
			},
			membership: func() interface{} { return &models.Like{} },
		}, nil
	case ContentComment:
		return reactionTarget{
			contentTable: "comments",
			membershipFK: "comment_id",
			newMembership: func(contentID, userID string) interface{} {
				return &models.CommentLike{CommentID: contentID, UserID: userID}
			},
			membership: func() interface{} { return &models.CommentLike{} },
		}, nil
	default:
		return reactionTarget{}, fmt.Errorf("unknown content kind %q", kind)
	}
}

// Toggle flips the (content, user) like state and adjusts the denormalized
// counter by ±1 in the same transaction. Returns the new counter and state
// plus the content owner's id for notification fan-out. A missing content id
// surfaces gorm.ErrRecordNotFound.
func (r *PostgresReactionRepository) Toggle(kind ContentKind, contentID, userID string) (*models.LikeResult, string, error) {
	target, err := targetFor(kind)
	if err != nil {
		return nil, "", err
	}

	var result models.LikeResult
	var ownerID string
	err = r.db.Transaction(func(tx *gorm.DB) error {
		var content struct {
			UserID     string
			LikesCount int
		}
		if err := tx.Table(target.contentTable).Select("user_id", "likes_count").
			Where("id = ?", contentID).Take(&content).Error; err != nil {
			return err
		}
		ownerID = content.UserID

		var count int64
		if err := tx.Model(target.membership()).
			Where(target.membershipFK+" = ? AND user_id = ?", contentID, userID).
			Count(&count).Error; err != nil {
			return err
		}

		if count > 0 {
			if err := tx.Where(target.membershipFK+" = ? AND user_id = ?", contentID, userID).
				Delete(target.membership()).Error; err != nil {
				return err
			}
			if err := tx.Table(target.contentTable).Where("id = ?", contentID).
				UpdateColumn("likes_count", gorm.Expr("likes_count - 1")).Error; err != nil {
				return err
			}
			result.Liked = false
		} else {
			if err := tx.Create(target.newMembership(contentID, userID)).Error; err != nil {
				return err
			}
			if err := tx.Table(target.contentTable).Where("id = ?", contentID).
				UpdateColumn("likes_count", gorm.Expr("likes_count + 1")).Error; err != nil {
				return err
			}
			result.Liked = true
		}

		return tx.Table(target.contentTable).Select("likes_count").
			Where("id = ?", contentID).Scan(&result.Likes).Error
	})
	if err != nil {
		return nil, "", err
	}
	return &result, ownerID, nil
}

// LikedSet resolves the liked flag for a batch of content ids in one query
func (r *PostgresReactionRepository) LikedSet(kind ContentKind, contentIDs []string, userID string) (map[string]bool, error) {
	liked := make(map[string]bool, len(contentIDs))
	if len(contentIDs) == 0 {
		return liked, nil
	}
	target, err := targetFor(kind)
	if err != nil {
		return nil, err
	}
	var ids []string
	if err := r.db.Model(target.membership()).
		Where(target.membershipFK+" IN ? AND user_id = ?", contentIDs, userID).
		Pluck(target.membershipFK, &ids).Error; err != nil {
		return nil, err
	}
	for _, id := range ids {
		liked[id] = true
	}
	return liked, nil
}

// CounterMismatches recomputes likes_count for every post and comment from
// the membership tables and reports any divergence.
func (r *PostgresReactionRepository) CounterMismatches() ([]CounterMismatch, error) {
	var mismatches []CounterMismatch

	var posts []models.Post
	if err := r.db.Select("id", "likes_count").Find(&posts).Error; err != nil {
		return nil, err
	}
	for _, post := range posts {
		var count int64
		if err := r.db.Model(&models.Like{}).Where("post_id = ?", post.ID).
			Count(&count).Error; err != nil {
			return nil, err
		}
		if int64(post.LikesCount) != count {
			mismatches = append(mismatches, CounterMismatch{
				Kind: ContentPost, ContentID: post.ID,
				Stored: post.LikesCount, Counted: count,
			})
		}
	}

	var comments []models.Comment
	if err := r.db.Select("id", "likes_count").Find(&comments).Error; err != nil {
		return nil, err
	}
	for _, comment := range comments {
		var count int64
		if err := r.db.Model(&models.CommentLike{}).Where("comment_id = ?", comment.ID).
			Count(&count).Error; err != nil {
			return nil, err
		}
		if int64(comment.LikesCount) != count {
			mismatches = append(mismatches, CounterMismatch{
				Kind: ContentComment, ContentID: comment.ID,
				Stored: comment.LikesCount, Counted: count,
			})
		}
	}

	return mismatches, nil
}
