package repositories

import (
	"errors"

	"github.com/bridgegen/backend/internal/models"
	"gorm.io/gorm"
)

// ErrAlreadyVoted is returned when a user re-votes for the option they
// already hold in a poll.
var ErrAlreadyVoted = errors.New("already voted for this option")

// TallyMismatch reports a poll option whose votes_count disagrees with the
// poll_votes table.
type TallyMismatch struct {
	OptionID string
	Stored   int
	Counted  int64
}

// PollRepository defines the interface for poll data operations
type PollRepository interface {
	GetPollWithOptions(id string) (*models.Poll, error)
	UserVote(pollID, userID string) (*string, error)
	Vote(pollID, optionID, userID string) (firstVote bool, err error)
	OwnerInfo(pollID string) (ownerID, postID string, err error)
	TallyMismatches() ([]TallyMismatch, error)
	WithTx(tx *gorm.DB) PollRepository
}

// PostgresPollRepository implements PollRepository for PostgreSQL
type PostgresPollRepository struct {
	db *gorm.DB
}

// NewPostgresPollRepository creates a new PostgresPollRepository
func NewPostgresPollRepository(db *gorm.DB) *PostgresPollRepository {
	return &PostgresPollRepository{db: db}
}

// WithTx returns the repository bound to an open transaction
func (r *PostgresPollRepository) WithTx(tx *gorm.DB) PollRepository {
	return &PostgresPollRepository{db: tx}
}

// GetPollWithOptions retrieves a poll and its options ordered by votes
func (r *PostgresPollRepository) GetPollWithOptions(id string) (*models.Poll, error) {
	var poll models.Poll
	err := r.db.
		Preload("Options", func(db *gorm.DB) *gorm.DB {
			return db.Order(optionOrder)
		}).
		First(&poll, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &poll, nil
}

// UserVote returns the option id the user currently holds in the poll, or
// nil when they have not voted.
func (r *PostgresPollRepository) UserVote(pollID, userID string) (*string, error) {
	var vote models.PollVote
	err := r.db.Where("poll_id = ? AND user_id = ?", pollID, userID).First(&vote).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &vote.OptionID, nil
}

// Vote casts or switches the user's vote. A first vote inserts the membership
// row and increments the option; a switch decrements the old option and
// increments the new one in the same transaction. Re-voting the held option
// returns ErrAlreadyVoted; an option id outside the poll surfaces
// gorm.ErrRecordNotFound.
func (r *PostgresPollRepository) Vote(pollID, optionID, userID string) (bool, error) {
	firstVote := false
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var option models.PollOption
		if err := tx.Select("id").Where("id = ? AND poll_id = ?", optionID, pollID).
			Take(&option).Error; err != nil {
			return err
		}

		var existing models.PollVote
		err := tx.Where("poll_id = ? AND user_id = ?", pollID, userID).First(&existing).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			firstVote = true
			if err := tx.Create(&models.PollVote{
				PollID:   pollID,
				OptionID: optionID,
				UserID:   userID,
			}).Error; err != nil {
				return err
			}
		case err != nil:
			return err
		case existing.OptionID == optionID:
			return ErrAlreadyVoted
		default:
			if err := tx.Model(&models.PollOption{}).Where("id = ?", existing.OptionID).
				UpdateColumn("votes_count", gorm.Expr("votes_count - 1")).Error; err != nil {
				return err
			}
			if err := tx.Model(&models.PollVote{}).Where("id = ?", existing.ID).
				UpdateColumn("option_id", optionID).Error; err != nil {
				return err
			}
		}

		return tx.Model(&models.PollOption{}).Where("id = ?", optionID).
			UpdateColumn("votes_count", gorm.Expr("votes_count + 1")).Error
	})
	return firstVote, err
}

// OwnerInfo resolves the owning post and its author for notification fan-out
func (r *PostgresPollRepository) OwnerInfo(pollID string) (string, string, error) {
	var poll models.Poll
	if err := r.db.Select("post_id").First(&poll, "id = ?", pollID).Error; err != nil {
		return "", "", err
	}
	var post models.Post
	if err := r.db.Select("user_id").First(&post, "id = ?", poll.PostID).Error; err != nil {
		return "", "", err
	}
	return post.UserID, poll.PostID, nil
}

// TallyMismatches recomputes votes_count for every option from poll_votes
// and reports any divergence.
func (r *PostgresPollRepository) TallyMismatches() ([]TallyMismatch, error) {
	var options []models.PollOption
	if err := r.db.Select("id", "votes_count").Find(&options).Error; err != nil {
		return nil, err
	}
	var mismatches []TallyMismatch
	for _, option := range options {
		var count int64
		if err := r.db.Model(&models.PollVote{}).Where("option_id = ?", option.ID).
			Count(&count).Error; err != nil {
			return nil, err
		}
		if int64(option.VotesCount) != count {
			mismatches = append(mismatches, TallyMismatch{
				OptionID: option.ID,
				Stored:   option.VotesCount,
				Counted:  count,
			})
		}
	}
	return mismatches, nil
}
