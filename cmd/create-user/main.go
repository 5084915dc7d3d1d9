package main

import (
	"flag"
	"log"

	"go-inventory-api/internal/model"
	"go-inventory-api/pkg/database"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

// Provisions an API user, or resets the password if the email already
// exists. Intended for bootstrapping a fresh deployment.
func main() {
	username := flag.String("username", "admin", "username for the new user")
	email := flag.String("email", "admin@example.com", "email for the new user")
	password := flag.String("password", "", "password for the new user (required)")
	flag.Parse()

	if *password == "" {
		log.Fatal("-password is required")
	}

	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, relying on system env")
	}

	// 2. Setup Database
	db := database.ConnectDB()
	db.AutoMigrate(&model.User{})

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	var user model.User
	if err := db.Where("email = ?", *email).First(&user).Error; err == nil {
		// User exists: reset the password
		if err := db.Model(&user).Update("password", string(hashedPassword)).Error; err != nil {
			log.Fatalf("Failed to update password: %v", err)
		}
		log.Printf("Password for %s has been reset", *email)
		return
	}

	user = model.User{
		Username: *username,
		Email:    *email,
		Password: string(hashedPassword),
	}
	if err := db.Create(&user).Error; err != nil {
		log.Fatalf("Failed to create user: %v", err)
	}
	log.Printf("User created: %s (%s)", *username, *email)
}
