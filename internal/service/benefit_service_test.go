package service

import (
	"errors"
	"testing"

	"github.com/suncoopng/internal/db"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupBenefitServiceTestDB(t *testing.T) func() {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := gdb.AutoMigrate(&db.Benefit{}); err != nil {
		t.Fatalf("failed to migrate benefits: %v", err)
	}

	db.DB = gdb

	return func() {
		sqlDB, err := db.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}
}

func TestBenefitServiceCreateAndList(t *testing.T) {
	cleanup := setupBenefitServiceTestDB(t)
	defer cleanup()

	svc := NewBenefitService(db.DB)
	if _, err := svc.Create(BenefitInput{Title: "No fuel costs", Icon: "fuel"}); err != nil {
		t.Fatalf("create benefit failed: %v", err)
	}
	second, err := svc.Create(BenefitInput{Title: "Quiet power", Subtitle: "No generator noise"})
	if err != nil {
		t.Fatalf("create benefit failed: %v", err)
	}
	if second.Sort != 1 {
		t.Fatalf("expected appended sort 1, got %d", second.Sort)
	}

	items, err := svc.List("")
	if err != nil {
		t.Fatalf("list benefits failed: %v", err)
	}
	if len(items) != 2 || items[0].Title != "No fuel costs" || items[1].Title != "Quiet power" {
		t.Fatalf("unexpected benefit ordering: %#v", items)
	}
}

func TestBenefitServicePageTagIsolation(t *testing.T) {
	cleanup := setupBenefitServiceTestDB(t)
	defer cleanup()

	svc := NewBenefitService(db.DB)
	if _, err := svc.Create(BenefitInput{Title: "default card"}); err != nil {
		t.Fatalf("create benefit failed: %v", err)
	}
	if _, err := svc.Create(BenefitInput{Title: "flexpay card", PageTag: "flexpay"}); err != nil {
		t.Fatalf("create benefit failed: %v", err)
	}

	flexItems, err := svc.List("flexpay")
	if err != nil {
		t.Fatalf("list flexpay failed: %v", err)
	}
	if len(flexItems) != 1 || flexItems[0].Title != "flexpay card" {
		t.Fatalf("expected only the flexpay card, got %#v", flexItems)
	}
}

func TestBenefitServiceUpdateAndDelete(t *testing.T) {
	cleanup := setupBenefitServiceTestDB(t)
	defer cleanup()

	svc := NewBenefitService(db.DB)
	created, err := svc.Create(BenefitInput{Title: "Old"})
	if err != nil {
		t.Fatalf("create benefit failed: %v", err)
	}

	updated, err := svc.Update(created.ID, BenefitInput{Title: "New", Subtitle: "Updated", Icon: "sun", Sort: intPtr(3)})
	if err != nil {
		t.Fatalf("update benefit failed: %v", err)
	}
	if updated.Title != "New" || updated.Subtitle != "Updated" || updated.Sort != 3 {
		t.Fatalf("update did not persist fields: %#v", updated)
	}

	if err := svc.Delete(created.ID); err != nil {
		t.Fatalf("delete benefit failed: %v", err)
	}
	if err := svc.Delete(created.ID); !errors.Is(err, ErrBenefitNotFound) {
		t.Fatalf("expected ErrBenefitNotFound, got %v", err)
	}
}

func TestBenefitServiceValidation(t *testing.T) {
	cleanup := setupBenefitServiceTestDB(t)
	defer cleanup()

	svc := NewBenefitService(db.DB)
	if _, err := svc.Create(BenefitInput{Subtitle: "no title"}); !errors.Is(err, ErrBenefitInvalidInput) {
		t.Fatalf("expected ErrBenefitInvalidInput, got %v", err)
	}
}
