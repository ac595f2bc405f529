package handler

import (
	"bytes"
	"html/template"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/microcosm-cc/bluemonday"
	"github.com/suncoopng/internal/db"
	"github.com/suncoopng/internal/service"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

var (
	markdownEngine = goldmark.New(
		goldmark.WithExtensions(extension.GFM, extension.Linkify, extension.Table),
		goldmark.WithRendererOptions(html.WithHardWraps(), html.WithXHTML()),
	)
	sanitizer = bluemonday.UGCPolicy()
)

// customSectionView is a custom section prepared for the public template.
type customSectionView struct {
	Title           string
	HTML            template.HTML
	ImageURL        string
	Layout          string
	BackgroundColor string
	TextColor       string
}

// sectionOrDefault loads a section payload and falls back to the built-in
// default on any error. Public pages never surface content failures.
func (a *API) sectionOrDefault(key string) map[string]any {
	payload, err := a.content.GetSection(key)
	if err != nil || len(payload) == 0 {
		return service.DefaultSection(key)
	}
	return payload
}

// ShowHome renders the public landing page.
func (a *API) ShowHome(c *gin.Context) {
	faqItems, err := a.faqs.List("")
	if err != nil {
		faqItems = nil
	}
	benefitItems, err := a.benefits.List("")
	if err != nil {
		benefitItems = nil
	}

	c.HTML(http.StatusOK, "home.html", gin.H{
		"title":      "Suncoopng — Solar Power Solutions",
		"navigation": a.sectionOrDefault(db.SectionKeyNavigation),
		"hero":       a.sectionOrDefault(db.SectionKeyHero),
		"glow":       a.sectionOrDefault(db.SectionKeyGlow),
		"journey":    a.sectionOrDefault(db.SectionKeyJourney),
		"pricing":    a.sectionOrDefault(db.SectionKeyPricing),
		"ctaBanner":  a.sectionOrDefault(db.SectionKeyCTABanner),
		"footer":     a.sectionOrDefault(db.SectionKeyFooter),
		"benefits":   benefitItems,
		"faqGroups":  groupFAQItems(faqItems),
		"sections":   a.customSectionViews(),
		"year":       time.Now().Year(),
	})
}

// ShowFlexpay renders the flexpay financing page.
func (a *API) ShowFlexpay(c *gin.Context) {
	faqItems, err := a.faqs.List("flexpay")
	if err != nil {
		faqItems = nil
	}
	benefitItems, err := a.benefits.List("flexpay")
	if err != nil {
		benefitItems = nil
	}

	c.HTML(http.StatusOK, "flexpay.html", gin.H{
		"title":      "Suncoopng FlexPay",
		"navigation": a.sectionOrDefault(db.SectionKeyNavigation),
		"hero":       a.sectionOrDefault(db.SectionKeyFlexpayHero),
		"pricing":    a.sectionOrDefault(db.SectionKeyFlexpayPricing),
		"ctaBanner":  a.sectionOrDefault(db.SectionKeyCTABanner),
		"footer":     a.sectionOrDefault(db.SectionKeyFooter),
		"benefits":   benefitItems,
		"faqGroups":  groupFAQItems(faqItems),
		"year":       time.Now().Year(),
	})
}

// customSectionViews renders the visible custom sections through the
// markdown pipeline. Failures degrade to no custom sections.
func (a *API) customSectionViews() []customSectionView {
	items, err := a.sections.List(false)
	if err != nil {
		return nil
	}

	views := make([]customSectionView, 0, len(items))
	for _, item := range items {
		views = append(views, customSectionView{
			Title:           item.Title,
			HTML:            renderMarkdown(item.Content),
			ImageURL:        item.ImageURL,
			Layout:          item.Layout,
			BackgroundColor: item.BackgroundColor,
			TextColor:       item.TextColor,
		})
	}
	return views
}

// faqGroup is one accordion group for the public template.
type faqGroup struct {
	Label string
	Items []db.FAQItem
}

// groupFAQItems splits an ordered FAQ list into its groups, preserving the
// (group, order) ordering the service returns.
func groupFAQItems(items []db.FAQItem) []faqGroup {
	var groups []faqGroup
	for _, item := range items {
		if len(groups) == 0 || groups[len(groups)-1].Label != item.GroupLabel {
			groups = append(groups, faqGroup{Label: item.GroupLabel})
		}
		last := len(groups) - 1
		groups[last].Items = append(groups[last].Items, item)
	}
	return groups
}

func renderMarkdown(content string) template.HTML {
	var buf bytes.Buffer
	if err := markdownEngine.Convert([]byte(content), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(content))
	}
	return template.HTML(sanitizer.SanitizeBytes(buf.Bytes()))
}
