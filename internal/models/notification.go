package models

import "time"

const (
	NotificationTypeLike    = "like"
	NotificationTypeComment = "comment"
)

// Notification tells a post author that someone engaged with their post (PostgreSQL)
type Notification struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Type        string    `json:"type" gorm:"size:30;index"` // like, comment
	ActorID     string    `json:"actor_id" gorm:"size:32;index"`
	RecipientID string    `json:"recipient_id" gorm:"size:32;index"`
	TargetID    string    `json:"target_id"` // post ID
	Message     string    `json:"message"`
	IsRead      bool      `json:"is_read" gorm:"default:false;index"`
	CreatedAt   time.Time `json:"created_at" gorm:"index"`
}
