package handlers

import (
	"errors"
	"net/http"

	"github.com/bridgegen/backend/internal/models"
	"github.com/bridgegen/backend/internal/repositories"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// ToggleLikeRequest defines the request body for like toggles
type ToggleLikeRequest struct {
	UserID string `json:"userId" validate:"required"`
}

// LikeHandler handles like toggles on posts and comments
type LikeHandler struct {
	reactionRepository     repositories.ReactionRepository
	userRepository         repositories.UserRepository
	notificationRepository repositories.NotificationRepository
}

// NewLikeHandler creates a new LikeHandler
func NewLikeHandler(
	reactionRepo repositories.ReactionRepository,
	userRepo repositories.UserRepository,
	notificationRepo repositories.NotificationRepository,
) *LikeHandler {
	return &LikeHandler{
		reactionRepository:     reactionRepo,
		userRepository:         userRepo,
		notificationRepository: notificationRepo,
	}
}

// RegisterLikeRoutes registers like-related routes
func (h *LikeHandler) RegisterLikeRoutes(g *echo.Group) {
	g.POST("/posts/:post_id/like", h.TogglePostLike)
	g.POST("/posts/:post_id/comments/:comment_id/like", h.ToggleCommentLike)
}

// TogglePostLike flips the viewer's like on a post and returns the new
// counter and state.
func (h *LikeHandler) TogglePostLike(c echo.Context) error {
	postID := c.Param("post_id")
	return h.toggle(c, repositories.ContentPost, postID, func(userID, actorName string) *models.Notification {
		return &models.Notification{
			Type:      models.NotificationPostLike,
			ActorID:   userID,
			ActorName: actorName,
			PostID:    &postID,
			Message:   actorName + " liked your post",
		}
	})
}

// ToggleCommentLike flips the viewer's like on a comment
func (h *LikeHandler) ToggleCommentLike(c echo.Context) error {
	postID := c.Param("post_id")
	commentID := c.Param("comment_id")
	return h.toggle(c, repositories.ContentComment, commentID, func(userID, actorName string) *models.Notification {
		return &models.Notification{
			Type:      models.NotificationCommentLike,
			ActorID:   userID,
			ActorName: actorName,
			PostID:    &postID,
			CommentID: &commentID,
			Message:   actorName + " liked your comment",
		}
	})
}

func (h *LikeHandler) toggle(c echo.Context, kind repositories.ContentKind, contentID string, notification func(userID, actorName string) *models.Notification) error {
	var req ToggleLikeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	result, ownerID, err := h.reactionRepository.Toggle(kind, contentID, req.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, string(kind)+" not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	// Only the liked transition fans out, and never for self-likes.
	if result.Liked && ownerID != req.UserID {
		n := notification(req.UserID, h.actorName(req.UserID))
		n.UserID = ownerID
		notifyOwner(h.notificationRepository, n)
	}

	return c.JSON(http.StatusOK, result)
}

func (h *LikeHandler) actorName(userID string) string {
	user, err := h.userRepository.GetUserByID(userID)
	if err != nil {
		return "Someone"
	}
	return user.Name
}
