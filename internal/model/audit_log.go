package model

import (
	"time"

	"github.com/google/uuid"
)

// Audit actions derived from the HTTP method of the logged request.
const (
	AuditActionCreate = "CREATE"
	AuditActionUpdate = "UPDATE"
	AuditActionDelete = "DELETE"
	AuditActionView   = "VIEW"
)

// AuditLog records who did what. Rows are append-only: they are written by
// the audit middleware after successful authenticated requests and never
// mutated afterwards.
type AuditLog struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uuid.UUID `json:"user_id" gorm:"type:char(36);not null;index"`
	Action    string    `json:"action" gorm:"size:20;not null;index"`
	Entity    string    `json:"entity" gorm:"size:50;not null;index"`
	EntityID  string    `json:"entity_id,omitempty" gorm:"size:36"`
	Details   string    `json:"details,omitempty" gorm:"type:text"`
	IP        string    `json:"ip" gorm:"size:45"`
	UserAgent string    `json:"user_agent" gorm:"size:255"`
	CreatedAt time.Time `json:"created_at" gorm:"index"`
}
