package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TicketStatus is the lifecycle state of a support ticket.
type TicketStatus string

const (
	TicketAberto              TicketStatus = "ABERTO"
	TicketEmAndamento         TicketStatus = "EM_ANDAMENTO"
	TicketAguardandoCliente   TicketStatus = "AGUARDANDO_CLIENTE"
	TicketAguardandoTerceiros TicketStatus = "AGUARDANDO_TERCEIROS"
	TicketFinalizado          TicketStatus = "FINALIZADO"
	TicketCancelado           TicketStatus = "CANCELADO"
)

// Urgency levels shared by tickets and tasks.
const (
	UrgencyBaixa = "BAIXA"
	UrgencyMedia = "MEDIA"
	UrgencyAlta  = "ALTA"
)

// Ticket represents a customer support request tracked through its status lifecycle.
type Ticket struct {
	ID          uuid.UUID      `json:"id" gorm:"type:char(36);primaryKey"`
	Title       string         `json:"title" gorm:"size:255;not null"`
	Description string         `json:"description" gorm:"type:text;not null"`
	Category    string         `json:"category" gorm:"size:100;not null;index"`
	Urgency     string         `json:"urgency" gorm:"type:varchar(10);default:'MEDIA';index"`
	Status      TicketStatus   `json:"status" gorm:"type:varchar(25);default:'ABERTO';index"`
	CreatedByID uuid.UUID      `json:"created_by_id" gorm:"type:char(36);not null;index"`
	AssigneeID  *uuid.UUID     `json:"assignee_id,omitempty" gorm:"type:char(36);index"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`

	// Relations
	CreatedBy   *User        `json:"created_by,omitempty" gorm:"foreignKey:CreatedByID"`
	Assignee    *User        `json:"assignee,omitempty" gorm:"foreignKey:AssigneeID"`
	Attachments []Attachment `json:"attachments,omitempty" gorm:"foreignKey:TicketID"`
}

// BeforeCreate sets UUID before creating the record.
func (t *Ticket) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// Attachment is a file uploaded for a ticket, stored on local disk.
type Attachment struct {
	ID         uint       `json:"id" gorm:"primaryKey"`
	TicketID   *uuid.UUID `json:"ticket_id,omitempty" gorm:"type:char(36);index"`
	FileName   string     `json:"file_name" gorm:"size:255;not null"`
	StoredName string     `json:"stored_name" gorm:"size:255;not null"`
	Size       int64      `json:"size"`
	UploadedBy uuid.UUID  `json:"uploaded_by" gorm:"type:char(36);not null"`
	CreatedAt  time.Time  `json:"created_at"`
}
