package main

import (
	"context"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"helpdesk/internal/config"
	"helpdesk/internal/db"
	"helpdesk/internal/model"
	"helpdesk/internal/repository"
)

// Seeds an initial admin plus a sample attendant so a fresh install is usable.
func main() {
	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}
	defer db.Close(gormDB)

	if err := gormDB.AutoMigrate(&model.User{}, &model.UserSettings{}); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	userRepo := repository.NewUserRepository(gormDB)
	ctx := context.Background()

	seedUsers := []struct {
		name     string
		email    string
		password string
		role     model.Role
	}{
		{"Administrador", "admin@helpdesk.local", "admin123", model.RoleAdmin},
		{"Atendente", "atendente@helpdesk.local", "atende123", model.RoleAtendente},
	}

	for _, su := range seedUsers {
		if _, err := userRepo.FindByEmail(ctx, su.email); err == nil {
			log.Printf("user %s already exists, skipping", su.email)
			continue
		} else if err != gorm.ErrRecordNotFound {
			log.Fatalf("check user %s: %v", su.email, err)
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(su.password), 10)
		if err != nil {
			log.Fatalf("hash password: %v", err)
		}
		user := &model.User{
			Name:         su.name,
			Email:        su.email,
			PasswordHash: string(hash),
			Role:         su.role,
		}
		if err := userRepo.Create(ctx, user); err != nil {
			log.Fatalf("create user %s: %v", su.email, err)
		}
		log.Printf("seeded %s (%s)", su.email, su.role)
	}
}
