// Package testutil provides an in-memory database for tests.
package testutil

import (
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/chirathr/ecommerce/models"
)

// NewTestDB opens an isolated in-memory database holding the full
// schema. The pool is pinned to one connection so every query sees the
// same :memory: database.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get database handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&models.User{},
		&models.ProductCategory{},
		&models.Product{},
		&models.Image{},
		&models.Cart{},
		&models.Order{},
		&models.OrderList{},
	); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}

	return db
}
