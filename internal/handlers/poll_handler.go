package handlers

import (
	"errors"
	"net/http"

	"github.com/bridgegen/backend/internal/models"
	"github.com/bridgegen/backend/internal/repositories"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// PollHandler handles poll voting
type PollHandler struct {
	pollRepository         repositories.PollRepository
	userRepository         repositories.UserRepository
	notificationRepository repositories.NotificationRepository
}

// NewPollHandler creates a new PollHandler
func NewPollHandler(
	pollRepo repositories.PollRepository,
	userRepo repositories.UserRepository,
	notificationRepo repositories.NotificationRepository,
) *PollHandler {
	return &PollHandler{
		pollRepository:         pollRepo,
		userRepository:         userRepo,
		notificationRepository: notificationRepo,
	}
}

// RegisterPollRoutes registers poll-related routes
func (h *PollHandler) RegisterPollRoutes(g *echo.Group) {
	g.POST("/polls/:poll_id/vote", h.Vote)
}

// Vote casts or switches the viewer's vote and returns the updated tallies.
// Re-voting the currently held option is a conflict.
func (h *PollHandler) Vote(c echo.Context) error {
	pollID := c.Param("poll_id")

	var req models.VoteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	firstVote, err := h.pollRepository.Vote(pollID, req.OptionID, req.UserID)
	if err != nil {
		if errors.Is(err, repositories.ErrAlreadyVoted) {
			return echo.NewHTTPError(http.StatusConflict, "Already voted for this option")
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Poll option not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	// Switching an existing vote does not re-notify the poll owner.
	if firstVote {
		ownerID, postID, err := h.pollRepository.OwnerInfo(pollID)
		if err == nil && ownerID != req.UserID {
			actorName := h.actorName(req.UserID)
			notifyOwner(h.notificationRepository, &models.Notification{
				UserID:    ownerID,
				Type:      models.NotificationPollVote,
				ActorID:   req.UserID,
				ActorName: actorName,
				PostID:    &postID,
				Message:   actorName + " voted on your poll",
			})
		}
	}

	poll, err := h.pollRepository.GetPollWithOptions(pollID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Poll not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, buildPollView(poll, &req.OptionID))
}

func (h *PollHandler) actorName(userID string) string {
	user, err := h.userRepository.GetUserByID(userID)
	if err != nil {
		return "Someone"
	}
	return user.Name
}
