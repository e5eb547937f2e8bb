package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/bridgegen/backend/internal/models"
	"github.com/bridgegen/backend/internal/repositories"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// CommentHandler handles HTTP requests related to comments
type CommentHandler struct {
	commentRepository      repositories.CommentRepository
	postRepository         repositories.PostRepository
	userRepository         repositories.UserRepository
	notificationRepository repositories.NotificationRepository
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(
	commentRepo repositories.CommentRepository,
	postRepo repositories.PostRepository,
	userRepo repositories.UserRepository,
	notificationRepo repositories.NotificationRepository,
) *CommentHandler {
	return &CommentHandler{
		commentRepository:      commentRepo,
		postRepository:         postRepo,
		userRepository:         userRepo,
		notificationRepository: notificationRepo,
	}
}

// RegisterCommentRoutes registers comment-related routes
func (h *CommentHandler) RegisterCommentRoutes(g *echo.Group) {
	g.POST("/posts/:post_id/comments", h.CreateComment)
	g.PUT("/posts/:post_id/comments/:comment_id", h.UpdateComment)
	g.DELETE("/posts/:post_id/comments/:comment_id", h.DeleteComment)
}

// CreateComment creates a new comment on a post, provisioning the author's
// user row on first write and notifying the post owner.
func (h *CommentHandler) CreateComment(c echo.Context) error {
	postID := c.Param("post_id")

	var req models.CreateCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	ownerID, err := h.postRepository.PostOwner(postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Post not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
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

	comment := &models.Comment{
		ID:     "c-" + uuid.NewString(),
		PostID: postID,
		UserID: req.UserID,
		Text:   req.Text,
	}
	if err := h.commentRepository.CreateComment(comment); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if ownerID != req.UserID {
		notifyOwner(h.notificationRepository, &models.Notification{
			UserID:    ownerID,
			Type:      models.NotificationComment,
			ActorID:   req.UserID,
			ActorName: req.Author,
			PostID:    &postID,
			CommentID: &comment.ID,
			Message:   req.Author + " commented on your post",
		})
	}

	// Respond with the persisted row so the view reflects exactly what was
	// stored, author and timestamps included.
	created, err := h.commentRepository.GetCommentByID(comment.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusCreated, buildCommentView(*created, false, time.Now()))
}

// UpdateComment replaces a comment's text
func (h *CommentHandler) UpdateComment(c echo.Context) error {
	postID := c.Param("post_id")
	commentID := c.Param("comment_id")

	var req models.UpdateCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.commentRepository.UpdateComment(postID, commentID, req.Text); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

// DeleteComment removes a comment and its likes
func (h *CommentHandler) DeleteComment(c echo.Context) error {
	postID := c.Param("post_id")
	commentID := c.Param("comment_id")

	if err := h.commentRepository.DeleteComment(postID, commentID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}
