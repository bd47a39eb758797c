package service

import (
	"testing"

	"go-erp-backoffice/internal/model"
	"go-erp-backoffice/internal/ws"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an in-memory database with the full schema migrated
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}

	if err := db.AutoMigrate(
		&model.Permission{},
		&model.Role{},
		&model.Department{},
		&model.User{},
		&model.Menu{},
		&model.Customer{},
		&model.Supplier{},
		&model.MaterialCategory{},
		&model.Material{},
		&model.Warehouse{},
	); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	return db
}

func boolPtr(v bool) *bool { return &v }

// newTestHub returns a running hub so broadcasts drain instead of blocking
func newTestHub(t *testing.T) *ws.Hub {
	t.Helper()
	hub := ws.NewHub()
	go hub.Run()
	return hub
}
