package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TaskStatus is the lifecycle state of an internal work item.
type TaskStatus string

const (
	TaskPendente    TaskStatus = "PENDENTE"
	TaskEmAndamento TaskStatus = "EM_ANDAMENTO"
	TaskConcluida   TaskStatus = "CONCLUIDA"
	TaskCancelada   TaskStatus = "CANCELADA"
)

// Task represents an internal work item, optionally linked to a ticket.
type Task struct {
	ID          uuid.UUID      `json:"id" gorm:"type:char(36);primaryKey"`
	Description string         `json:"description" gorm:"type:text;not null"`
	Duration    int            `json:"duration" gorm:"not null"` // minutes
	Tag         string         `json:"tag" gorm:"size:100;index"`
	Status      TaskStatus     `json:"status" gorm:"type:varchar(20);default:'PENDENTE';index"`
	Priority    string         `json:"priority" gorm:"type:varchar(10);default:'MEDIA';index"`
	CreatedByID uuid.UUID      `json:"created_by_id" gorm:"type:char(36);not null;index"`
	AssigneeID  *uuid.UUID     `json:"assignee_id,omitempty" gorm:"type:char(36);index"`
	TicketID    *uuid.UUID     `json:"ticket_id,omitempty" gorm:"type:char(36);index"`
	System      string         `json:"system,omitempty" gorm:"size:100"`
	VideoURL    string         `json:"video_url,omitempty" gorm:"size:500"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`

	// Relations
	CreatedBy *User   `json:"created_by,omitempty" gorm:"foreignKey:CreatedByID"`
	Assignee  *User   `json:"assignee,omitempty" gorm:"foreignKey:AssigneeID"`
	Ticket    *Ticket `json:"ticket,omitempty" gorm:"foreignKey:TicketID"`
}

// BeforeCreate sets UUID before creating the record.
func (t *Task) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
