package service

import (
	"crypto/tls"
	"errors"
	"fmt"
	"html"
	"log"
	"strings"

	mail "github.com/go-mail/mail/v2"
	"github.com/suncoopng/internal/db"
	"gorm.io/gorm"
)

// ErrInquiryInvalidInput is returned when a quote request is missing the
// name or a way to reach the customer back.
var ErrInquiryInvalidInput = errors.New("invalid inquiry input")

// Mailer sends notification mail. The SMTP implementation is swapped for a
// fake in tests.
type Mailer interface {
	Send(subject, htmlBody string) error
}

// SMTPConfig carries the dialer settings for the notification mailer.
type SMTPConfig struct {
	Host          string
	Port          int
	User          string
	Pass          string
	From          string
	To            string
	SkipTLSVerify bool
}

// SMTPMailer sends mail through a configured SMTP relay with mandatory
// STARTTLS. An unconfigured host disables sending.
type SMTPMailer struct {
	cfg SMTPConfig
}

// NewSMTPMailer returns an SMTPMailer for the given settings.
func NewSMTPMailer(cfg SMTPConfig) *SMTPMailer {
	return &SMTPMailer{cfg: cfg}
}

// Send delivers one HTML mail to the configured inquiry recipient.
func (m *SMTPMailer) Send(subject, htmlBody string) error {
	if m.cfg.Host == "" || m.cfg.From == "" || m.cfg.To == "" {
		return fmt.Errorf("smtp not configured (SMTP_HOST/SMTP_FROM/INQUIRY_TO)")
	}

	msg := mail.NewMessage()
	msg.SetHeader("From", m.cfg.From)
	msg.SetHeader("To", m.cfg.To)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	d := mail.NewDialer(m.cfg.Host, m.cfg.Port, m.cfg.User, m.cfg.Pass)
	d.StartTLSPolicy = mail.MandatoryStartTLS
	d.TLSConfig = &tls.Config{
		ServerName:         m.cfg.Host,
		InsecureSkipVerify: m.cfg.SkipTLSVerify,
	}

	return d.DialAndSend(msg)
}

// InquiryService stores quote requests and notifies the sales inbox.
type InquiryService struct {
	db     *gorm.DB
	mailer Mailer
}

// NewInquiryService returns a new InquiryService instance. mailer may be nil
// when notifications are disabled.
func NewInquiryService(gdb *gorm.DB, mailer Mailer) *InquiryService {
	return &InquiryService{db: gdb, mailer: mailer}
}

// InquiryInput describes a submitted quote request.
type InquiryInput struct {
	Name    string
	Email   string
	Phone   string
	Message string
	Plan    string
}

// Submit persists the inquiry, then sends the notification mail best-effort.
// A mail failure is logged and never surfaces to the visitor.
func (s *InquiryService) Submit(input InquiryInput) (*db.Inquiry, error) {
	name := strings.TrimSpace(input.Name)
	email := strings.TrimSpace(input.Email)
	phone := strings.TrimSpace(input.Phone)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInquiryInvalidInput)
	}
	if email == "" && phone == "" {
		return nil, fmt.Errorf("%w: email or phone is required", ErrInquiryInvalidInput)
	}

	inquiry := db.Inquiry{
		Name:    name,
		Email:   email,
		Phone:   phone,
		Message: strings.TrimSpace(input.Message),
		Plan:    strings.TrimSpace(input.Plan),
	}

	if err := s.db.Create(&inquiry).Error; err != nil {
		return nil, fmt.Errorf("create inquiry: %w", err)
	}

	if s.mailer != nil {
		if err := s.mailer.Send(inquirySubject(inquiry), inquiryBody(inquiry)); err != nil {
			log.Printf("inquiry mail failed: %v", err)
		}
	}

	return &inquiry, nil
}

// List returns stored inquiries, newest first, for the admin panel.
func (s *InquiryService) List() ([]db.Inquiry, error) {
	var items []db.Inquiry
	if err := s.db.Order("created_at DESC, id DESC").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list inquiries: %w", err)
	}
	return items, nil
}

func inquirySubject(inquiry db.Inquiry) string {
	if inquiry.Plan != "" {
		return fmt.Sprintf("New quote request: %s (%s)", inquiry.Name, inquiry.Plan)
	}
	return fmt.Sprintf("New quote request: %s", inquiry.Name)
}

func inquiryBody(inquiry db.Inquiry) string {
	var b strings.Builder
	b.WriteString("<h3>New quote request</h3><ul>")
	fmt.Fprintf(&b, "<li><strong>Name:</strong> %s</li>", html.EscapeString(inquiry.Name))
	if inquiry.Email != "" {
		fmt.Fprintf(&b, "<li><strong>Email:</strong> %s</li>", html.EscapeString(inquiry.Email))
	}
	if inquiry.Phone != "" {
		fmt.Fprintf(&b, "<li><strong>Phone:</strong> %s</li>", html.EscapeString(inquiry.Phone))
	}
	if inquiry.Plan != "" {
		fmt.Fprintf(&b, "<li><strong>Plan:</strong> %s</li>", html.EscapeString(inquiry.Plan))
	}
	b.WriteString("</ul>")
	if inquiry.Message != "" {
		fmt.Fprintf(&b, "<p>%s</p>", html.EscapeString(inquiry.Message))
	}
	return b.String()
}
