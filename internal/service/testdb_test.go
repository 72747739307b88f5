package service

import (
	"testing"

	"Connect_Life/internal/model"
	"Connect_Life/internal/policy"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB 每个测试一个独立的内存库
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&model.User{},
		&model.Chat{},
		&model.ChatMember{},
		&model.Message{},
		&model.Venue{},
		&model.Event{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedUser(t *testing.T, db *gorm.DB, name, role string) policy.Identity {
	t.Helper()
	user := &model.User{
		Name:     name,
		Email:    name + "@example.com",
		Password: "x",
		Role:     role,
		Active:   true,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("seed user %s: %v", name, err)
	}
	return policy.Identity{ID: user.ID, Role: user.Role}
}

func seedVenue(t *testing.T, db *gorm.DB, name string) *model.Venue {
	t.Helper()
	venue := &model.Venue{Name: name, Address: "Rua A, 123", CreatedBy: 1}
	if err := db.Create(venue).Error; err != nil {
		t.Fatalf("seed venue %s: %v", name, err)
	}
	return venue
}
