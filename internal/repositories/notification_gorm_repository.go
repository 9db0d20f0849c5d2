package repositories

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"bookstore/internal/models"
)

// GORMNotificationRepository is a GORM implementation of NotificationRepository.
type GORMNotificationRepository struct {
	db *gorm.DB
}

// NewGORMNotificationRepository creates a new instance of GORMNotificationRepository.
func NewGORMNotificationRepository(db *gorm.DB) *GORMNotificationRepository {
	return &GORMNotificationRepository{
		db: db,
	}
}

// Create creates a new notification in the database.
func (r *GORMNotificationRepository) Create(notification *models.Notification) error {
	if notification.ID == "" {
		notification.ID = uuid.New().String()
	}
	if err := r.db.Create(notification).Error; err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}
	return nil
}

// VisibleTo returns broadcasts and entries targeted at the user, newest
// first. The actor join is a LEFT JOIN so system entries survive it.
func (r *GORMNotificationRepository) VisibleTo(userID string, limit int) ([]models.NotificationView, error) {
	var notes []models.NotificationView
	err := r.db.Table("notifications").
		Select(`notifications.id, notifications.actor_id, users.username AS actor_username,
			notifications.message, notifications.is_broadcast, notifications.target_user_id,
			notifications.created_at`).
		Joins("LEFT JOIN users ON users.id = notifications.actor_id").
		Where("notifications.is_broadcast = ? OR notifications.target_user_id = ?", true, userID).
		Order("notifications.created_at DESC").
		Limit(limit).
		Scan(&notes).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get notifications for user %s: %w", userID, err)
	}
	return notes, nil
}
