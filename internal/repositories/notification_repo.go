package repositories

import "bookstore/internal/models"

// NotificationRepository defines the interface for the notification feed.
type NotificationRepository interface {
	Create(notification *models.Notification) error
	// VisibleTo returns notifications a user may see: broadcasts plus
	// entries targeted at them, newest first, at most limit rows.
	VisibleTo(userID string, limit int) ([]models.NotificationView, error)
}
