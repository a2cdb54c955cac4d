package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"github.com/thedcode/backend/internal/config"
	"github.com/thedcode/backend/internal/db"
	"github.com/thedcode/backend/internal/models"
	"github.com/thedcode/backend/internal/utils"
)

func main() {
	if len(os.Args) < 4 {
		fmt.Println("Usage: go run ./cmd/create_admin <email> <password> <name> [role]")
		fmt.Println("Example: go run ./cmd/create_admin admin@thedcode.in 'S3cure!pass' 'Studio Admin'")
		fmt.Println("Role can be: admin, super_admin (default: admin)")
		os.Exit(1)
	}

	email := os.Args[1]
	password := os.Args[2]
	name := os.Args[3]
	role := "admin"
	if len(os.Args) > 4 {
		role = os.Args[4]
	}

	if role != "admin" && role != "super_admin" {
		fmt.Printf("Invalid role: %s. Must be 'admin' or 'super_admin'\n", role)
		os.Exit(1)
	}

	if !utils.ValidateEmail(email) {
		fmt.Printf("Invalid email address: %s\n", email)
		os.Exit(1)
	}
	if valid, msg := utils.ValidateName(name); !valid {
		fmt.Println(msg)
		os.Exit(1)
	}
	if valid, msg := utils.ValidatePassword(password); !valid {
		fmt.Println(msg)
		os.Exit(1)
	}

	_ = godotenv.Load()
	cfg := config.Load()

	gormDB, err := db.Open(db.Config{
		DatabaseURL:     cfg.DatabaseURL,
		PoolSize:        cfg.PoolSize,
		PoolRecycle:     cfg.PoolRecycle,
		PoolPrePing:     cfg.PoolPrePing,
		ConnectTimeout:  cfg.ConnectTimeout,
		ApplicationName: cfg.ApplicationName,
	})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := gormDB.AutoMigrate(&models.User{}); err != nil {
		log.Fatalf("Failed to migrate schema: %v", err)
	}

	var existingUser models.User
	result := gormDB.Where("email = ?", email).First(&existingUser)
	if result.Error == nil {
		fmt.Printf("User with email %s already exists\n", email)
		os.Exit(1)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), 12)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	adminUser := models.User{
		Email:      email,
		Name:       name,
		Password:   string(hashedPassword),
		Role:       role,
		IsVerified: true,
	}

	if result := gormDB.Create(&adminUser); result.Error != nil {
		log.Fatalf("Failed to create admin user: %v", result.Error)
	}

	fmt.Printf("Admin user created successfully!\n")
	fmt.Printf("Email: %s\n", email)
	fmt.Printf("Name: %s\n", name)
	fmt.Printf("Role: %s\n", role)
	fmt.Printf("ID: %d\n", adminUser.ID)
}
