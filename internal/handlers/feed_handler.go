package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/bridgegen/backend/internal/models"
	"github.com/bridgegen/backend/internal/repositories"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// FeedHandler assembles viewer-specific post views for the feed and search
type FeedHandler struct {
	postRepository     repositories.PostRepository
	reactionRepository repositories.ReactionRepository
	pollRepository     repositories.PollRepository
}

// NewFeedHandler creates a new FeedHandler
func NewFeedHandler(
	postRepo repositories.PostRepository,
	reactionRepo repositories.ReactionRepository,
	pollRepo repositories.PollRepository,
) *FeedHandler {
	return &FeedHandler{
		postRepository:     postRepo,
		reactionRepository: reactionRepo,
		pollRepository:     pollRepo,
	}
}

// RegisterFeedRoutes registers feed-related routes
func (h *FeedHandler) RegisterFeedRoutes(g *echo.Group) {
	g.GET("/posts", h.GetPosts)
	g.GET("/posts/search", h.SearchPosts)
}

// GetPosts returns assembled post views, optionally scoped to a word prompt,
// ordered by likes then recency.
func (h *FeedHandler) GetPosts(c echo.Context) error {
	viewerID, err := requireViewer(c)
	if err != nil {
		return err
	}
	wordID, err := optionalWordID(c)
	if err != nil {
		return err
	}

	views, err := h.assembleFeed(viewerID, "", wordID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, views)
}

// SearchPosts returns post views whose text contains the query substring.
// Queries shorter than 2 characters yield an empty result without touching
// storage.
func (h *FeedHandler) SearchPosts(c echo.Context) error {
	viewerID, err := requireViewer(c)
	if err != nil {
		return err
	}
	query := strings.TrimSpace(c.QueryParam("q"))
	if len(query) < 2 {
		return c.JSON(http.StatusOK, []models.PostView{})
	}
	wordID, err := optionalWordID(c)
	if err != nil {
		return err
	}

	views, err := h.assembleFeed(viewerID, query, wordID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, views)
}

// assembleFeed loads posts (all of them, or a substring match when query is
// non-empty) and resolves the viewer's liked flags and poll votes. The whole
// read runs in one snapshot transaction so a concurrent toggle can never
// land between the counter read and the membership check behind `liked`.
func (h *FeedHandler) assembleFeed(viewerID, query string, wordID *uint) ([]models.PostView, error) {
	var views []models.PostView
	err := h.postRepository.ReadSnapshot(func(tx *gorm.DB) error {
		postRepo := h.postRepository.WithTx(tx)

		var posts []models.Post
		var err error
		if query == "" {
			posts, err = postRepo.GetPosts(wordID)
		} else {
			posts, err = postRepo.SearchPosts(query, wordID)
		}
		if err != nil {
			return err
		}

		views, err = h.assemblePostViews(tx, posts, viewerID)
		return err
	})
	return views, err
}

// assemblePostViews resolves the viewer's liked flags for every post and
// comment in one query each, then builds the views. Runs on the caller's
// snapshot transaction.
func (h *FeedHandler) assemblePostViews(tx *gorm.DB, posts []models.Post, viewerID string) ([]models.PostView, error) {
	now := time.Now()
	reactions := h.reactionRepository.WithTx(tx)
	polls := h.pollRepository.WithTx(tx)

	postIDs := make([]string, len(posts))
	var commentIDs []string
	for i, post := range posts {
		postIDs[i] = post.ID
		for _, comment := range post.Comments {
			commentIDs = append(commentIDs, comment.ID)
		}
	}

	likedPosts, err := reactions.LikedSet(repositories.ContentPost, postIDs, viewerID)
	if err != nil {
		return nil, err
	}
	likedComments, err := reactions.LikedSet(repositories.ContentComment, commentIDs, viewerID)
	if err != nil {
		return nil, err
	}

	views := make([]models.PostView, len(posts))
	for i, post := range posts {
		var userVote *string
		if post.Poll != nil {
			userVote, err = polls.UserVote(post.Poll.ID, viewerID)
			if err != nil {
				return nil, err
			}
		}
		views[i] = buildPostView(post, likedPosts[post.ID], likedComments, userVote, now)
	}
	return views, nil
}

func optionalWordID(c echo.Context) (*uint, error) {
	raw := c.QueryParam("wordId")
	if raw == "" {
		return nil, nil
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "Invalid wordId")
	}
	wordID := uint(id)
	return &wordID, nil
}
