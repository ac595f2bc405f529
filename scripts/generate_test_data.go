package main

import (
	"fmt"
	"log"

	"github.com/suncoopng/internal/config"
	"github.com/suncoopng/internal/db"
	"github.com/suncoopng/internal/service"
)

// Seeds a local database with enough content to click through the site and
// the admin pages. Safe to run more than once: singleton sections are
// overwritten, collection items are only inserted into an empty table.
func main() {
	config.LoadEnv()
	cfg := config.Load()

	if err := db.Init(cfg.DatabasePath); err != nil {
		log.Fatal("failed to initialise database:", err)
	}

	if err := db.EnsureAdmin(cfg.AdminUserName, "admin123"); err != nil {
		log.Fatal("failed to create admin user:", err)
	}

	seedSections()
	seedFAQ()
	seedBenefits()
	seedCustomSections()

	fmt.Println("test data ready")
	fmt.Printf("admin login: %s / admin123\n", cfg.AdminUserName)
}

func seedSections() {
	content := service.NewContentService(db.DB)
	for _, key := range service.SectionKeys() {
		if _, err := content.SaveSection(key, service.DefaultSection(key)); err != nil {
			log.Fatalf("failed to seed section %s: %v", key, err)
		}
	}
	fmt.Printf("sections: %d seeded\n", len(service.SectionKeys()))
}

func seedFAQ() {
	var count int64
	db.DB.Model(&db.FAQItem{}).Count(&count)
	if count > 0 {
		fmt.Println("faq: already populated, skipping")
		return
	}

	faqs := service.NewFAQService(db.DB)
	items := []service.FAQItemInput{
		{GroupLabel: "Getting Started", Question: "How long does installation take?", Answer: "Most home systems are installed in a single day."},
		{GroupLabel: "Getting Started", Question: "Do I need a technical survey first?", Answer: "Yes, we run a free load assessment before quoting."},
		{GroupLabel: "Billing", Question: "What payment methods do you accept?", Answer: "Bank transfer and all major cards."},
		{GroupLabel: "Billing", Question: "Is there a warranty?", Answer: "Panels carry a 25 year warranty, batteries 10 years.", PageTag: "default"},
		{GroupLabel: "FlexPay", Question: "How much is the down payment?", Answer: "30 percent of the system price.", PageTag: "flexpay"},
		{GroupLabel: "FlexPay", Question: "Can I pay off early?", Answer: "Yes, with no penalty.", PageTag: "flexpay"},
	}
	for _, item := range items {
		if _, err := faqs.Create(item); err != nil {
			log.Fatalf("failed to seed faq item: %v", err)
		}
	}
	fmt.Printf("faq: %d items seeded\n", len(items))
}

func seedBenefits() {
	var count int64
	db.DB.Model(&db.Benefit{}).Count(&count)
	if count > 0 {
		fmt.Println("benefits: already populated, skipping")
		return
	}

	benefits := service.NewBenefitService(db.DB)
	items := []service.BenefitInput{
		{Title: "No more blackouts", Subtitle: "Power through every outage", Icon: "bolt"},
		{Title: "Lower energy bills", Subtitle: "Cut fuel spend by up to 60%", Icon: "wallet"},
		{Title: "Silent and clean", Subtitle: "No generator noise or fumes", Icon: "leaf"},
		{Title: "Flexible payments", Subtitle: "Own it outright or spread the cost", Icon: "calendar", PageTag: "flexpay"},
	}
	for _, item := range items {
		if _, err := benefits.Create(item); err != nil {
			log.Fatalf("failed to seed benefit: %v", err)
		}
	}
	fmt.Printf("benefits: %d items seeded\n", len(items))
}

func seedCustomSections() {
	var count int64
	db.DB.Model(&db.CustomSection{}).Count(&count)
	if count > 0 {
		fmt.Println("custom sections: already populated, skipping")
		return
	}

	sections := service.NewSectionService(db.DB)
	items := []service.SectionInput{
		{
			Title:   "Why homes are switching to solar",
			Content: "Fuel prices keep climbing while panel prices keep falling.\n\n- Generate your own power during the day\n- Store the surplus for the night\n- Sized to your actual load, not a guess",
			Layout:  "text",
		},
		{
			Title:    "Built for Nigerian conditions",
			Content:  "Every system is rated for high ambient temperatures and unstable grid input. Surge protection comes standard.",
			ImageURL: "/static/uploads/sample-install.jpg",
			Layout:   "image-right",
		},
	}
	for _, item := range items {
		if _, err := sections.Create(item); err != nil {
			log.Fatalf("failed to seed custom section: %v", err)
		}
	}
	fmt.Printf("custom sections: %d items seeded\n", len(items))
}
