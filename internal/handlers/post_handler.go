package handlers

import (
	"net/http"
	"time"

	"github.com/bridgegen/backend/internal/models"
	"github.com/bridgegen/backend/internal/repositories"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// PostHandler handles HTTP requests for creating, editing and deleting posts
type PostHandler struct {
	postRepository repositories.PostRepository
	userRepository repositories.UserRepository
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(postRepo repositories.PostRepository, userRepo repositories.UserRepository) *PostHandler {
	return &PostHandler{
		postRepository: postRepo,
		userRepository: userRepo,
	}
}

// RegisterPostRoutes registers post-related routes
func (h *PostHandler) RegisterPostRoutes(g *echo.Group) {
	g.POST("/posts", h.CreatePost)
	g.PUT("/posts/:post_id", h.UpdatePost)
	g.DELETE("/posts/:post_id", h.DeletePost)
}

// CreatePost creates a post with optional media and poll, provisioning the
// author's user row on first write.
func (h *PostHandler) CreatePost(c echo.Context) error {
	var req models.CreatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.userRepository.EnsureUser(&models.User{
		ID:       req.UserID,
		Name:     req.Author,
		Initials: req.Initials,
		Age:      req.Age,
		Type:     req.Type,
	}); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	post := &models.Post{
		ID:     "post-" + uuid.NewString(),
		UserID: req.UserID,
		WordID: req.WordID,
		Text:   req.Text,
	}

	media := make([]models.Media, len(req.Media))
	for i, m := range req.Media {
		media[i] = models.Media{Type: m.Type, URL: m.URL}
	}

	var poll *models.Poll
	if req.Poll != nil {
		poll = &models.Poll{
			ID:       "poll-" + uuid.NewString(),
			Question: req.Poll.Question,
		}
		for _, text := range req.Poll.Options {
			poll.Options = append(poll.Options, models.PollOption{
				ID:   "opt-" + uuid.NewString(),
				Text: text,
			})
		}
	}

	if err := h.postRepository.CreatePost(post, media, poll); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	// Respond with the persisted row so the view reflects exactly what was
	// stored, author and timestamps included.
	created, err := h.postRepository.GetPostByID(post.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusCreated, buildPostView(*created, false, nil, nil, time.Now()))
}

// UpdatePost replaces a post's text and media list. Poll and comments are
// untouched; an absent id is a silent no-op.
func (h *PostHandler) UpdatePost(c echo.Context) error {
	postID := c.Param("post_id")

	var req models.UpdatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	media := make([]models.Media, len(req.Media))
	for i, m := range req.Media {
		media[i] = models.Media{Type: m.Type, URL: m.URL}
	}

	if err := h.postRepository.UpdatePost(postID, req.Text, media); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

// DeletePost removes a post and everything attached to it
func (h *PostHandler) DeletePost(c echo.Context) error {
	postID := c.Param("post_id")
	if err := h.postRepository.DeletePost(postID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}
