package model

import (
	"time"

	"github.com/google/uuid"
)

// Notification types produced by ticket and task side effects.
const (
	NotificationTicketAssigned    = "TICKET_ASSIGNED"
	NotificationTicketTransferred = "TICKET_TRANSFERRED"
	NotificationTaskAssigned      = "TASK_ASSIGNED"
)

// Notification is an in-app message owned by a single user.
// Only the read flag is ever mutated after creation.
type Notification struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uuid.UUID `json:"user_id" gorm:"type:char(36);not null;index"`
	Type      string    `json:"type" gorm:"size:50;not null"`
	Message   string    `json:"message" gorm:"type:text;not null"`
	Read      bool      `json:"read" gorm:"default:false;index"`
	CreatedAt time.Time `json:"created_at"`
}
