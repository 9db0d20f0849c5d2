package services

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"bookstore/internal/models"
	"bookstore/internal/repositories"
)

// DefaultNotificationLimit caps a feed read when the caller passes no limit.
const DefaultNotificationLimit = 100

// EventPublisher pushes store events to a message broker. The notification
// bus treats it as best-effort; a nil publisher disables it.
type EventPublisher interface {
	Publish(exchange, routingKey string, body []byte) error
}

// NotificationService owns the notification feed: broadcast messages every
// user sees and targeted messages visible to a single user.
type NotificationService struct {
	notificationRepo repositories.NotificationRepository
	events           EventPublisher
}

// NewNotificationService creates a new NotificationService.
func NewNotificationService(notificationRepo repositories.NotificationRepository, events EventPublisher) *NotificationService {
	return &NotificationService{
		notificationRepo: notificationRepo,
		events:           events,
	}
}

// Publish records a notification. A notification is either broadcast or
// targeted, never both: a non-broadcast publish requires a target user.
// After the row is stored, the event is also pushed to the broker
// best-effort; broker failures are logged and never surfaced.
func (s *NotificationService) Publish(actorID *string, message string, broadcast bool, targetUserID *string) error {
	if strings.TrimSpace(message) == "" {
		return fmt.Errorf("%w: message is required", ErrValidation)
	}
	if !broadcast && (targetUserID == nil || *targetUserID == "") {
		return fmt.Errorf("%w: targeted notification requires a target user", ErrValidation)
	}
	if broadcast {
		targetUserID = nil
	}

	notification := &models.Notification{
		ActorID:      actorID,
		Message:      message,
		IsBroadcast:  broadcast,
		TargetUserID: targetUserID,
	}
	if err := s.notificationRepo.Create(notification); err != nil {
		return fmt.Errorf("failed to publish notification: %w", err)
	}

	s.publishEvent(notification)
	return nil
}

// VisibleTo returns the notifications a user may see, newest first.
func (s *NotificationService) VisibleTo(userID string, limit int) ([]models.NotificationView, error) {
	if limit <= 0 {
		limit = DefaultNotificationLimit
	}
	return s.notificationRepo.VisibleTo(userID, limit)
}

// NotifyBestEffort publishes on behalf of another business operation.
// Failures are logged, never returned: a broken feed must not roll back
// the ban, discount change, or catalog change that triggered it.
func (s *NotificationService) NotifyBestEffort(actorID *string, message string, broadcast bool, targetUserID *string) {
	if err := s.Publish(actorID, message, broadcast, targetUserID); err != nil {
		log.Printf("Warning: failed to publish notification %q: %v", message, err)
	}
}

func (s *NotificationService) publishEvent(n *models.Notification) {
	if s.events == nil {
		return
	}
	body, err := json.Marshal(map[string]interface{}{
		"id":             n.ID,
		"actor_id":       n.ActorID,
		"message":        n.Message,
		"is_broadcast":   n.IsBroadcast,
		"target_user_id": n.TargetUserID,
	})
	if err != nil {
		log.Printf("Failed to marshal notification event: %v", err)
		return
	}
	if err := s.events.Publish("store", "notification.created", body); err != nil {
		log.Printf("Warning: failed to publish notification event %s: %v", n.ID, err)
	}
}
