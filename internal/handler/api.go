package handler

import (
	"github.com/suncoopng/internal/cache"
	"github.com/suncoopng/internal/service"
	"gorm.io/gorm"
)

// API bundles shared dependencies for HTTP handlers.
type API struct {
	db        *gorm.DB
	content   *service.ContentService
	faqs      *service.FAQService
	benefits  *service.BenefitService
	sections  *service.SectionService
	inquiries *service.InquiryService
	pages     cache.PageCache
	adminUser string
	uploadDir string
	uploadURL string
}

// NewAPI constructs a handler set with shared services. pages may be nil when
// render caching is disabled; mailer may be nil when notifications are off.
func NewAPI(gdb *gorm.DB, pages cache.PageCache, mailer service.Mailer, adminUser, uploadDir, uploadURL string) *API {
	return &API{
		db:        gdb,
		content:   service.NewContentService(gdb),
		faqs:      service.NewFAQService(gdb),
		benefits:  service.NewBenefitService(gdb),
		sections:  service.NewSectionService(gdb),
		inquiries: service.NewInquiryService(gdb, mailer),
		pages:     pages,
		adminUser: adminUser,
		uploadDir: uploadDir,
		uploadURL: uploadURL,
	}
}

// DB exposes the underlying gorm instance.
func (a *API) DB() *gorm.DB {
	return a.db
}
