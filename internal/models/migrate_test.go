package models

import (
	"errors"
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openMigrateTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	return db
}

func TestMigrateIsIdempotent(t *testing.T) {
	db := openMigrateTestDB(t)
	if err := Migrate(db); err != nil {
		t.Fatalf("first migrate failed: %v", err)
	}
	if err := Migrate(db); err != nil {
		t.Fatalf("second migrate failed: %v", err)
	}
	applied, err := AppliedVersions(db)
	if err != nil {
		t.Fatalf("applied versions failed: %v", err)
	}
	if len(applied) != len(Migrations()) {
		t.Fatalf("applied versions want %d got %d", len(Migrations()), len(applied))
	}
}

func TestFeaturedActivePositionUniqueIndex(t *testing.T) {
	db := openMigrateTestDB(t)
	if err := Migrate(db); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	category := Category{Slug: "c", Name: "c", IsActive: true}
	if err := db.Create(&category).Error; err != nil {
		t.Fatalf("create category failed: %v", err)
	}
	product := Product{CategoryID: category.ID, Slug: "p", Name: "p", Price: mustMoney(t, "9.90")}
	if err := db.Create(&product).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}

	if err := db.Create(&FeaturedProduct{ProductID: product.ID, Position: 1, IsActive: true}).Error; err != nil {
		t.Fatalf("create first slot failed: %v", err)
	}
	err := db.Create(&FeaturedProduct{ProductID: product.ID, Position: 1, IsActive: true}).Error
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		t.Fatalf("duplicate active slot want ErrDuplicatedKey got %v", err)
	}
	if err := db.Create(&FeaturedProduct{ProductID: product.ID, Position: 1, IsActive: false}).Error; err != nil {
		t.Fatalf("inactive slot at occupied position failed: %v", err)
	}
}

func TestInitDefaultAdminCreatesSuperuserOnce(t *testing.T) {
	db := openMigrateTestDB(t)
	if err := Migrate(db); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	if err := InitDefaultAdmin(db, "root", "Secret123", "root@example.com"); err != nil {
		t.Fatalf("init default admin failed: %v", err)
	}
	if err := InitDefaultAdmin(db, "other", "Secret123", ""); err != nil {
		t.Fatalf("second init failed: %v", err)
	}
	var admins []Admin
	if err := db.Find(&admins).Error; err != nil {
		t.Fatalf("list admins failed: %v", err)
	}
	if len(admins) != 1 {
		t.Fatalf("admin count want 1 got %d", len(admins))
	}
	if !admins[0].IsSuperuser || !admins[0].IsActive || admins[0].Username != "root" {
		t.Fatalf("unexpected default admin: %+v", admins[0])
	}
}

func mustMoney(t *testing.T, raw string) Money {
	t.Helper()
	m, err := NewMoneyFromString(raw)
	if err != nil {
		t.Fatalf("parse money failed: %v", err)
	}
	return m
}
