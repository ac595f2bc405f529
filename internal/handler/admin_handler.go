package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/suncoopng/internal/db"
	"github.com/suncoopng/internal/service"
)

// sectionTitles maps section keys to the label shown in the admin editor.
var sectionTitles = map[string]string{
	db.SectionKeyHero:           "Hero Banner",
	db.SectionKeyGlow:           "Glow Strip",
	db.SectionKeyJourney:        "Journey Steps",
	db.SectionKeyPricing:        "Pricing Plans",
	db.SectionKeyFlexpayHero:    "FlexPay Hero",
	db.SectionKeyFlexpayPricing: "FlexPay Pricing",
	db.SectionKeyCTABanner:      "CTA Banner",
	db.SectionKeyFooter:         "Footer",
	db.SectionKeyNavigation:     "Navigation",
}

// publicPathForSection tells the editor which public path to revalidate
// after a save.
func publicPathForSection(key string) string {
	if strings.HasPrefix(key, "flexpay") {
		return "/flexpay"
	}
	return "/"
}

// ShowDashboard renders the admin landing page with content counts.
func (a *API) ShowDashboard(c *gin.Context) {
	session := sessions.Default(c)
	username := session.Get("username")

	var faqCount, benefitCount, sectionCount, inquiryCount int64
	a.db.Model(&db.FAQItem{}).Count(&faqCount)
	a.db.Model(&db.Benefit{}).Count(&benefitCount)
	a.db.Model(&db.CustomSection{}).Count(&sectionCount)
	a.db.Model(&db.Inquiry{}).Count(&inquiryCount)

	c.HTML(http.StatusOK, "dashboard.html", gin.H{
		"title":        "Dashboard",
		"username":     username,
		"sectionKeys":  service.SectionKeys(),
		"faqCount":     faqCount,
		"benefitCount": benefitCount,
		"sectionCount": sectionCount,
		"inquiryCount": inquiryCount,
	})
}

// ShowContentEditor renders the generic editor for a singleton section. The
// current payload (or the built-in default when nothing is saved yet) is
// embedded as JSON for the form script.
func (a *API) ShowContentEditor(c *gin.Context) {
	key := strings.TrimSpace(c.Param("section"))
	title, known := sectionTitles[key]
	if !known {
		c.HTML(http.StatusNotFound, "admin_error.html", gin.H{
			"title": "Unknown Section",
			"error": "No editor exists for this section key.",
		})
		return
	}

	payload, err := a.content.GetSection(key)
	if err != nil {
		if !errors.Is(err, service.ErrSectionNotFound) {
			c.HTML(http.StatusInternalServerError, "admin_error.html", gin.H{
				"title": title,
				"error": "Failed to load section content.",
			})
			return
		}
		payload = service.DefaultSection(key)
	}

	encoded, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		encoded = []byte("{}")
	}

	c.HTML(http.StatusOK, "content_edit.html", gin.H{
		"title":          title,
		"sectionKey":     key,
		"contentJSON":    string(encoded),
		"revalidatePath": publicPathForSection(key),
	})
}

// ShowFAQEditor renders the FAQ management page.
func (a *API) ShowFAQEditor(c *gin.Context) {
	c.HTML(http.StatusOK, "faq_edit.html", gin.H{
		"title": "FAQ",
	})
}

// ShowBenefitsEditor renders the benefits management page.
func (a *API) ShowBenefitsEditor(c *gin.Context) {
	c.HTML(http.StatusOK, "benefits_edit.html", gin.H{
		"title": "Benefits",
	})
}

// ShowSectionsEditor renders the custom sections management page.
func (a *API) ShowSectionsEditor(c *gin.Context) {
	c.HTML(http.StatusOK, "sections_edit.html", gin.H{
		"title": "Custom Sections",
	})
}

// ShowInquiries renders the stored quote requests, newest first.
func (a *API) ShowInquiries(c *gin.Context) {
	items, err := a.inquiries.List()
	if err != nil {
		c.HTML(http.StatusInternalServerError, "admin_error.html", gin.H{
			"title": "Inquiries",
			"error": "Failed to load inquiries.",
		})
		return
	}

	c.HTML(http.StatusOK, "inquiries.html", gin.H{
		"title":     "Inquiries",
		"inquiries": items,
	})
}
