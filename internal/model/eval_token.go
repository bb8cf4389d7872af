package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EvalTokenTTL is how long an evaluation token stays valid after issuance.
const EvalTokenTTL = 24 * time.Hour

// EvalToken is a single-use, time-limited credential handed to a customer so
// they can submit a post-service survey without authenticating.
type EvalToken struct {
	ID          uuid.UUID  `json:"id" gorm:"type:char(36);primaryKey"`
	Token       string     `json:"token" gorm:"uniqueIndex;size:32;not null"`
	Phone       string     `json:"phone" gorm:"size:20"`
	Attendant   string     `json:"attendant" gorm:"size:255;not null"`
	ScheduledAt time.Time  `json:"scheduled_at"`
	ExpiresAt   time.Time  `json:"expires_at" gorm:"not null;index"`
	Used        bool       `json:"usado" gorm:"column:usado;default:false;index"`
	TicketID    *uuid.UUID `json:"ticket_id,omitempty" gorm:"type:char(36);index"`
	CreatedAt   time.Time  `json:"created_at"`

	// Relations
	Ticket *Ticket `json:"ticket,omitempty" gorm:"foreignKey:TicketID"`
}

// BeforeCreate sets UUID before creating the record.
func (t *EvalToken) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// Expired reports whether the token is past its expiry at the given instant.
// A token is valid strictly before ExpiresAt, matching the consumption
// predicate expires_at > now, so both paths agree at the boundary.
func (t *EvalToken) Expired(now time.Time) bool {
	return !t.ExpiresAt.After(now)
}
