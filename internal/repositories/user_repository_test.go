package repositories_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bridgegen/backend/internal/models"
	"github.com/bridgegen/backend/internal/repositories"
)

func TestEnsureUser_Idempotent(t *testing.T) {
	db := setupDB(t)
	repo := repositories.NewPostgresUserRepository(db)

	require.NoError(t, repo.EnsureUser(&models.User{
		ID: "user-1", Name: "Joel Lim", Initials: "JL", Age: 19, Type: models.UserTypeYouth,
	}))

	// Second write with a different profile must not clobber the first.
	require.NoError(t, repo.EnsureUser(&models.User{
		ID: "user-1", Name: "Impostor", Initials: "IM", Age: 99, Type: models.UserTypeSenior,
	}))

	user, err := repo.GetUserByID("user-1")
	require.NoError(t, err)
	assert.Equal(t, "Joel Lim", user.Name)
	assert.Equal(t, 19, user.Age)
	assert.Equal(t, models.UserTypeYouth, user.Type)
	assert.EqualValues(t, 1, count(t, db, &models.User{}, ""))
}

func TestDeleteUser_CascadesAndAdjustsCounters(t *testing.T) {
	db := setupDB(t)
	repo := repositories.NewPostgresUserRepository(db)
	now := time.Now()

	mustCreate(t, db, &models.User{ID: "user-1", Name: "Joel Lim", Initials: "JL", Age: 19, Type: models.UserTypeYouth})
	mustCreate(t, db, &models.User{ID: "user-2", Name: "Auntie Helen", Initials: "AH", Age: 68, Type: models.UserTypeSenior})

	// user-1's own post with attachments, plus a comment from user-2 on it.
	mustCreate(t, db, &models.Post{ID: "post-1", UserID: "user-1", Text: "mine", CreatedAt: now})
	mustCreate(t, db, &models.Media{PostID: "post-1", Type: models.MediaTypeImage, URL: "u"})
	mustCreate(t, db, &models.Comment{ID: "c-other", PostID: "post-1", UserID: "user-2", Text: "nice", CreatedAt: now})

	// user-2's post that user-1 interacted with.
	mustCreate(t, db, &models.Post{ID: "post-2", UserID: "user-2", Text: "theirs", LikesCount: 1, CreatedAt: now})
	mustCreate(t, db, &models.Like{PostID: "post-2", UserID: "user-1"})
	mustCreate(t, db, &models.Comment{ID: "c-mine", PostID: "post-2", UserID: "user-1", Text: "hello", LikesCount: 1, CreatedAt: now})
	mustCreate(t, db, &models.CommentLike{CommentID: "c-mine", UserID: "user-2"})

	// user-2's comment that user-1 liked.
	mustCreate(t, db, &models.Comment{ID: "c-liked", PostID: "post-2", UserID: "user-2", Text: "hi", LikesCount: 1, CreatedAt: now})
	mustCreate(t, db, &models.CommentLike{CommentID: "c-liked", UserID: "user-1"})

	// A poll on user-2's post that user-1 voted in.
	mustCreate(t, db, &models.Poll{ID: "poll-1", PostID: "post-2", Question: "q"})
	mustCreate(t, db, &models.PollOption{ID: "opt-a", PollID: "poll-1", Text: "a", VotesCount: 1})
	mustCreate(t, db, &models.PollVote{PollID: "poll-1", OptionID: "opt-a", UserID: "user-1"})

	// Notifications in both directions.
	mustCreate(t, db, &models.Notification{UserID: "user-1", Type: models.NotificationComment, ActorID: "user-2", ActorName: "Auntie Helen", Message: "m"})
	mustCreate(t, db, &models.Notification{UserID: "user-2", Type: models.NotificationPostLike, ActorID: "user-1", ActorName: "Joel Lim", Message: "m"})
	mustCreate(t, db, &models.Notification{UserID: "user-2", Type: models.NotificationComment, ActorID: "user-2", ActorName: "Auntie Helen", Message: "kept"})

	require.NoError(t, repo.DeleteUser("user-1"))

	// The user and everything they authored is gone, including the comment
	// another user left on their post.
	assert.EqualValues(t, 0, count(t, db, &models.User{}, "id = ?", "user-1"))
	assert.EqualValues(t, 0, count(t, db, &models.Post{}, "user_id = ?", "user-1"))
	assert.EqualValues(t, 0, count(t, db, &models.Comment{}, "id IN ?", []string{"c-other", "c-mine"}))
	assert.EqualValues(t, 0, count(t, db, &models.Media{}, ""))
	assert.EqualValues(t, 0, count(t, db, &models.Like{}, ""))
	assert.EqualValues(t, 0, count(t, db, &models.CommentLike{}, ""))
	assert.EqualValues(t, 0, count(t, db, &models.PollVote{}, ""))

	// Counters on surviving content were decremented.
	var post models.Post
	require.NoError(t, db.First(&post, "id = ?", "post-2").Error)
	assert.Equal(t, 0, post.LikesCount)

	var comment models.Comment
	require.NoError(t, db.First(&comment, "id = ?", "c-liked").Error)
	assert.Equal(t, 0, comment.LikesCount)

	var option models.PollOption
	require.NoError(t, db.First(&option, "id = ?", "opt-a").Error)
	assert.Equal(t, 0, option.VotesCount)

	// Only the notification neither naming user-1 as target nor actor survives.
	assert.EqualValues(t, 1, count(t, db, &models.Notification{}, ""))
	var n models.Notification
	require.NoError(t, db.First(&n).Error)
	assert.Equal(t, "kept", n.Message)

	// No drift left behind.
	reactions := repositories.NewPostgresReactionRepository(db)
	mismatches, err := reactions.CounterMismatches()
	require.NoError(t, err)
	assert.Empty(t, mismatches)

	polls := repositories.NewPostgresPollRepository(db)
	tallies, err := polls.TallyMismatches()
	require.NoError(t, err)
	assert.Empty(t, tallies)
}
