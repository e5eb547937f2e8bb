package handlers

import (
	"log"

	"github.com/bridgegen/backend/internal/models"
	"github.com/bridgegen/backend/internal/repositories"
)

// notifyOwner appends one notification row. Callers have already applied the
// actor != owner guard; a failed write is logged and never fails the
// interaction that triggered it.
func notifyOwner(repo repositories.NotificationRepository, n *models.Notification) {
	if err := repo.CreateNotification(n); err != nil {
		log.Printf("Error recording %s notification: %v\n", n.Type, err)
	}
}
