package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Evaluation is a customer survey response, created at most once per token.
// Both scores range from 0 to 10.
type Evaluation struct {
	ID               uuid.UUID  `json:"id" gorm:"type:char(36);primaryKey"`
	ScoreSistema     int        `json:"sistema" gorm:"column:sistema;not null"`
	ScoreAtendimento int        `json:"atendimento" gorm:"column:atendimento;not null"`
	Comment          string     `json:"comentario,omitempty" gorm:"column:comentario;type:text"`
	TicketID         *uuid.UUID `json:"ticket_id,omitempty" gorm:"type:char(36);index"`
	CreatedAt        time.Time  `json:"created_at"`

	// Relations
	Ticket *Ticket `json:"ticket,omitempty" gorm:"foreignKey:TicketID"`
}

// BeforeCreate sets UUID before creating the record.
func (e *Evaluation) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
