package main

import (
	"flag"
	"fmt"
	"log"

	"ticket-tracker/internal/config"
	"ticket-tracker/internal/database"
	"ticket-tracker/internal/models"
	"ticket-tracker/internal/repositories"
	"ticket-tracker/internal/utils"
)

func main() {
	name := flag.String("name", "Admin", "admin display name")
	email := flag.String("email", "admin@example.com", "admin email")
	password := flag.String("password", "", "admin password (required)")
	flag.Parse()

	if *password == "" {
		log.Fatal("-password is required")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	db, err := database.NewConnection(database.Config{
		URL:      cfg.Database.URL,
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		DBName:   cfg.Database.DBName,
		SSLMode:  cfg.Database.SSLMode,
	})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	userRepo := repositories.NewUserRepository(db.DB)

	if existing, err := userRepo.GetByEmail(*email); err == nil {
		fmt.Printf("Admin user already exists with ID %d\n", existing.ID)
		return
	}

	passwordHash, err := utils.HashPassword(*password)
	if err != nil {
		log.Fatal("Failed to hash password:", err)
	}

	user, err := userRepo.Create(&models.UserCreateRequest{
		Name:  *name,
		Email: *email,
		Type:  models.UserTypeAdmin,
	}, passwordHash)
	if err != nil {
		log.Fatal("Failed to create admin user:", err)
	}

	fmt.Printf("Created admin user %s with ID %d\n", user.Email, user.ID)
}
