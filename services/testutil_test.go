package services

import (
	"fmt"
	"strings"
	"testing"

	"github.com/Surya-k-bot/food-management-system/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Each test gets its own named in-memory database; cache=shared keeps it
// alive across the pooled connections gorm opens.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.FoodItem{}, &models.Feedback{}); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

func mustCreate(t *testing.T, db *gorm.DB, value any) {
	t.Helper()
	if err := db.Create(value).Error; err != nil {
		t.Fatalf("create %T: %v", value, err)
	}
}
