package handlers

import (
	"math"
	"net/http"
	"time"

	"github.com/bridgegen/backend/internal/models"
	"github.com/labstack/echo/v4"
)

// requireViewer extracts the caller-supplied viewer identity. Absent viewer
// is a validation failure, not a silent default.
func requireViewer(c echo.Context) (string, error) {
	userID := c.QueryParam("userId")
	if userID == "" {
		return "", echo.NewHTTPError(http.StatusBadRequest, "userId is required")
	}
	return userID, nil
}

func buildMediaViews(media []models.Media) []models.MediaView {
	views := make([]models.MediaView, len(media))
	for i, m := range media {
		views[i] = models.MediaView{Type: m.Type, URL: m.URL}
	}
	return views
}

func buildCommentView(comment models.Comment, liked bool, now time.Time) models.CommentView {
	return models.CommentView{
		ID:       comment.ID,
		UserID:   comment.UserID,
		Author:   comment.User.Name,
		Initials: comment.User.Initials,
		Type:     comment.User.Type,
		Text:     comment.Text,
		Likes:    comment.LikesCount,
		Liked:    liked,
		Time:     timeAgo(comment.CreatedAt, now),
	}
}

// buildPollView computes each option's share of the total, round-half-up,
// or 0 when nobody has voted yet.
func buildPollView(poll *models.Poll, userVote *string) *models.PollView {
	if poll == nil {
		return nil
	}
	totalVotes := 0
	for _, option := range poll.Options {
		totalVotes += option.VotesCount
	}
	options := make([]models.PollOptionView, len(poll.Options))
	for i, option := range poll.Options {
		percentage := 0
		if totalVotes > 0 {
			percentage = int(math.Round(float64(option.VotesCount) / float64(totalVotes) * 100))
		}
		options[i] = models.PollOptionView{
			ID:         option.ID,
			Text:       option.Text,
			Votes:      option.VotesCount,
			Percentage: percentage,
		}
	}
	return &models.PollView{
		ID:         poll.ID,
		Question:   poll.Question,
		Options:    options,
		TotalVotes: totalVotes,
		UserVote:   userVote,
	}
}

func buildPostView(post models.Post, liked bool, commentLiked map[string]bool, userVote *string, now time.Time) models.PostView {
	comments := make([]models.CommentView, len(post.Comments))
	for i, comment := range post.Comments {
		comments[i] = buildCommentView(comment, commentLiked[comment.ID], now)
	}
	return models.PostView{
		ID:       post.ID,
		UserID:   post.UserID,
		Author:   post.User.Name,
		Initials: post.User.Initials,
		Age:      post.User.Age,
		Type:     post.User.Type,
		Text:     post.Text,
		Media:    buildMediaViews(post.Media),
		Likes:    post.LikesCount,
		Liked:    liked,
		Time:     timeAgo(post.CreatedAt, now),
		Comments: comments,
		Poll:     buildPollView(post.Poll, userVote),
	}
}
