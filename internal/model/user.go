package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Role identifies what a user is allowed to do.
type Role string

const (
	RoleAdmin     Role = "ADMIN"
	RoleGestor    Role = "GESTOR"
	RoleAtendente Role = "ATENDENTE"
	RoleCliente   Role = "CLIENTE"
)

// User represents an authenticated user of the support desk.
type User struct {
	ID           uuid.UUID      `json:"id" gorm:"type:char(36);primaryKey"`
	Name         string         `json:"name" gorm:"size:255;not null"`
	Email        string         `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string         `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	Role         Role           `json:"role" gorm:"type:varchar(20);default:'CLIENTE';index"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `json:"-" gorm:"index"`

	// Relations
	Settings *UserSettings `json:"settings,omitempty" gorm:"foreignKey:UserID"`
}

// BeforeCreate sets UUID before creating the record.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// UserSettings holds per-user preferences, one row per user.
type UserSettings struct {
	ID                 uint      `json:"id" gorm:"primaryKey"`
	UserID             uuid.UUID `json:"user_id" gorm:"type:char(36);uniqueIndex;not null"`
	EmailNotifications bool      `json:"email_notifications" gorm:"default:true"`
	DarkMode           bool      `json:"dark_mode" gorm:"default:false"`
	Language           string    `json:"language" gorm:"size:10;default:'pt-BR'"`
	UpdatedAt          time.Time `json:"updated_at"`
}
