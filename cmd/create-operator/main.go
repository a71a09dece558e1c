// Command create-operator seeds an admin console account. Intended for
// first-time setup, since the console's user management itself sits behind a
// login.
package main

import (
	"flag"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/carelinkhealthineers/Carelink-Healthineers-sub000/internal/auth"
	"github.com/carelinkhealthineers/Carelink-Healthineers-sub000/internal/config"
	"github.com/carelinkhealthineers/Carelink-Healthineers-sub000/internal/database"
	"github.com/carelinkhealthineers/Carelink-Healthineers-sub000/internal/model"
)

func main() {
	username := flag.String("username", "", "operator username")
	email := flag.String("email", "", "operator email")
	password := flag.String("password", "", "operator password")
	role := flag.String("role", model.RoleAdmin, "operator role (admin or staff)")
	flag.Parse()

	if *username == "" || *email == "" || *password == "" {
		flag.Usage()
		os.Exit(2)
	}
	if *role != model.RoleAdmin && *role != model.RoleStaff {
		logrus.Fatalf("Unknown role: %s", *role)
	}

	godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Init(cfg.Database)
	if err != nil {
		logrus.Fatalf("Failed to initialize database: %v", err)
	}

	hash, err := auth.HashPassword(*password)
	if err != nil {
		logrus.Fatalf("Failed to hash password: %v", err)
	}

	user := model.User{
		Username:     *username,
		Email:        *email,
		PasswordHash: hash,
		Role:         *role,
	}
	if err := db.Create(&user).Error; err != nil {
		logrus.Fatalf("Failed to create operator: %v", err)
	}

	logrus.Infof("Created %s operator %s", user.Role, user.Username)
}
