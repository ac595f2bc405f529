package service

import (
	"errors"
	"testing"

	"github.com/suncoopng/internal/db"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type fakeMailer struct {
	sent []string
	err  error
}

func (m *fakeMailer) Send(subject, htmlBody string) error {
	m.sent = append(m.sent, subject)
	return m.err
}

func setupInquiryServiceTestDB(t *testing.T) func() {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := gdb.AutoMigrate(&db.Inquiry{}); err != nil {
		t.Fatalf("failed to migrate inquiries: %v", err)
	}

	db.DB = gdb

	return func() {
		sqlDB, err := db.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}
}

func TestInquiryServiceSubmitAndNotify(t *testing.T) {
	cleanup := setupInquiryServiceTestDB(t)
	defer cleanup()

	mailer := &fakeMailer{}
	svc := NewInquiryService(db.DB, mailer)

	inquiry, err := svc.Submit(InquiryInput{Name: "Ada", Phone: "+2348000000000", Plan: "Family"})
	if err != nil {
		t.Fatalf("submit inquiry failed: %v", err)
	}
	if inquiry.ID == 0 {
		t.Fatal("expected inquiry to be assigned an id")
	}
	if len(mailer.sent) != 1 {
		t.Fatalf("expected one notification mail, got %d", len(mailer.sent))
	}
}

func TestInquiryServiceMailFailureIsSwallowed(t *testing.T) {
	cleanup := setupInquiryServiceTestDB(t)
	defer cleanup()

	mailer := &fakeMailer{err: errors.New("smtp down")}
	svc := NewInquiryService(db.DB, mailer)

	if _, err := svc.Submit(InquiryInput{Name: "Ada", Email: "ada@example.com"}); err != nil {
		t.Fatalf("expected submit to succeed despite mail failure, got %v", err)
	}

	items, err := svc.List()
	if err != nil {
		t.Fatalf("list inquiries failed: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected inquiry to be persisted, got %d", len(items))
	}
}

func TestInquiryServiceNilMailer(t *testing.T) {
	cleanup := setupInquiryServiceTestDB(t)
	defer cleanup()

	svc := NewInquiryService(db.DB, nil)
	if _, err := svc.Submit(InquiryInput{Name: "Ada", Email: "ada@example.com"}); err != nil {
		t.Fatalf("expected submit to succeed without a mailer, got %v", err)
	}
}

func TestInquiryServiceValidation(t *testing.T) {
	cleanup := setupInquiryServiceTestDB(t)
	defer cleanup()

	svc := NewInquiryService(db.DB, nil)
	if _, err := svc.Submit(InquiryInput{Email: "no-name@example.com"}); !errors.Is(err, ErrInquiryInvalidInput) {
		t.Fatalf("expected ErrInquiryInvalidInput, got %v", err)
	}
	if _, err := svc.Submit(InquiryInput{Name: "Ada"}); !errors.Is(err, ErrInquiryInvalidInput) {
		t.Fatalf("expected ErrInquiryInvalidInput without contact details, got %v", err)
	}
}
