package models

import "time"

// Notification is a feed entry. Either broadcast (visible to everyone) or
// targeted (visible only to TargetUserID). ActorID is nil for
// system-initiated messages.
type Notification struct {
	ID           string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	ActorID      *string   `json:"actor_id,omitempty" gorm:"type:varchar(36)"`
	Message      string    `json:"message" gorm:"type:text;not null" validate:"required"`
	IsBroadcast  bool      `json:"is_broadcast" gorm:"not null"`
	TargetUserID *string   `json:"target_user_id,omitempty" gorm:"type:varchar(36);index"`
	CreatedAt    time.Time `json:"created_at"`
}

// NotificationView is a notification joined with the actor's username,
// empty for system-initiated entries.
type NotificationView struct {
	ID            string    `json:"id"`
	ActorID       *string   `json:"actor_id,omitempty"`
	ActorUsername string    `json:"actor_username,omitempty"`
	Message       string    `json:"message"`
	IsBroadcast   bool      `json:"is_broadcast"`
	TargetUserID  *string   `json:"target_user_id,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}
