package main

import (
	"flag"
	"os"

	"go-erp-backoffice/internal/model"
	"go-erp-backoffice/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// Emergency password reset for locked-out accounts. Bypasses the API and
// writes straight to the database, then bumps the token version so any
// open sessions die.
func main() {
	username := flag.String("username", "admin", "account to reset")
	password := flag.String("password", "", "new password (required)")
	flag.Parse()

	if *password == "" {
		logrus.Error("usage: reset-password -username admin -password <new-password>")
		os.Exit(1)
	}

	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		logrus.Warn(".env file not found, relying on environment")
	}

	// 2. Setup Database
	db := database.ConnectDB()

	// 3. Find the account
	var user model.User
	if err := db.Where("username = ?", *username).First(&user).Error; err != nil {
		logrus.WithError(err).Fatalf("User %s not found", *username)
	}

	// 4. Hash new password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to hash password")
	}

	// 5. Update password and revoke sessions
	updates := map[string]interface{}{
		"password":      string(hashedPassword),
		"token_version": uuid.New().String(),
	}
	if err := db.Model(&user).Updates(updates).Error; err != nil {
		logrus.WithError(err).Fatal("Failed to update password in DB")
	}

	logrus.Infof("Password for %s has been reset; all sessions revoked", *username)
}
