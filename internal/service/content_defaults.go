package service

import "github.com/suncoopng/internal/db"

// sectionDefaults holds the built-in content the public pages fall back to
// when nothing has been saved for a section yet. The admin panel uses the
// same payloads to pre-fill empty editor forms, so the site never renders an
// empty section.
var sectionDefaults = map[string]map[string]any{
	db.SectionKeyHero: {
		"headline":    "Reliable Solar Power for Your Home & Business",
		"subheadline": "Say goodbye to blackouts and generator noise. Own a solar system that pays for itself.",
		"ctaText":     "Get a Free Quote",
		"ctaLink":     "/#quote",
		"imageUrl":    "/static/img/hero-panels.jpg",
		"benefits": []any{
			"24/7 uninterrupted power",
			"Zero fuel costs",
			"Installed in under a week",
		},
	},
	db.SectionKeyGlow: {
		"title":       "Why thousands of homes are switching to solar",
		"subtitle":    "Clean energy, predictable bills and a quieter neighbourhood.",
		"accentColor": "#f59e0b",
	},
	db.SectionKeyJourney: {
		"title": "Your journey to steady power",
		"steps": []any{
			map[string]any{"title": "Request a quote", "description": "Tell us about your home or business load."},
			map[string]any{"title": "Site survey", "description": "Our engineers size the right system for you."},
			map[string]any{"title": "Installation", "description": "Certified installers set everything up."},
			map[string]any{"title": "Enjoy the sun", "description": "Monitor your system and forget about outages."},
		},
	},
	db.SectionKeyPricing: {
		"title":    "Simple, transparent pricing",
		"subtitle": "Pick a system that matches your load.",
		"plans": []any{
			map[string]any{
				"name":     "Starter",
				"category": "residential",
				"price":    "₦1,250,000",
				"popular":  false,
				"ctaText":  "Request Starter",
				"ctaLink":  "/#quote",
				"specs": []any{
					map[string]any{"label": "Inverter", "value": "1.5 kVA"},
					map[string]any{"label": "Battery", "value": "2.4 kWh LiFePO4"},
					map[string]any{"label": "Panels", "value": "4 x 450W"},
				},
				"features": []any{"Lights, fans and TV", "Phone and laptop charging"},
			},
			map[string]any{
				"name":     "Family",
				"category": "residential",
				"price":    "₦2,900,000",
				"popular":  true,
				"ctaText":  "Request Family",
				"ctaLink":  "/#quote",
				"specs": []any{
					map[string]any{"label": "Inverter", "value": "3.5 kVA"},
					map[string]any{"label": "Battery", "value": "5 kWh LiFePO4"},
					map[string]any{"label": "Panels", "value": "8 x 450W"},
				},
				"features": []any{"Fridge and freezer", "Pumping machine", "Everything in Starter"},
			},
		},
	},
	db.SectionKeyFlexpayHero: {
		"headline":    "Solar on FlexPay",
		"subheadline": "Spread the cost over 12 to 24 months with a small down payment.",
		"ctaText":     "See FlexPay Plans",
		"ctaLink":     "/flexpay#pricing",
	},
	db.SectionKeyFlexpayPricing: {
		"title":    "FlexPay plans",
		"subtitle": "Start with a down payment, settle the rest monthly.",
		"plans": []any{
			map[string]any{
				"name":     "Starter FlexPay",
				"category": "flexpay",
				"price":    "₦115,000/mo",
				"popular":  false,
				"ctaText":  "Apply for FlexPay",
				"ctaLink":  "/#quote",
				"flexpay": map[string]any{
					"downPayment": "₦375,000",
					"installment": "₦115,000",
					"duration":    "12 months",
				},
				"specs": []any{
					map[string]any{"label": "Inverter", "value": "1.5 kVA"},
					map[string]any{"label": "Battery", "value": "2.4 kWh LiFePO4"},
				},
				"features": []any{"Same hardware as Starter", "Ownership after final payment"},
			},
		},
	},
	db.SectionKeyCTABanner: {
		"headline":        "Ready to stop paying for fuel?",
		"subheadline":     "Get a free assessment from our solar engineers.",
		"ctaText":         "Talk to an Engineer",
		"ctaLink":         "/#quote",
		"backgroundColor": "#065f46",
		"textColor":       "#ffffff",
	},
	db.SectionKeyFooter: {
		"about":     "Suncoopng designs, installs and finances solar power systems across Nigeria.",
		"phone":     "+234 800 000 0000",
		"email":     "hello@suncoopng.com",
		"address":   "Lagos, Nigeria",
		"copyright": "© Suncoopng. All rights reserved.",
		"social": []any{
			map[string]any{"platform": "twitter", "link": "https://twitter.com/suncoopng"},
			map[string]any{"platform": "instagram", "link": "https://instagram.com/suncoopng"},
		},
	},
	db.SectionKeyNavigation: {
		"logoText": "Suncoopng",
		"items": []any{
			map[string]any{"label": "Home", "link": "/"},
			map[string]any{"label": "Pricing", "link": "/#pricing"},
			map[string]any{"label": "FlexPay", "link": "/flexpay"},
			map[string]any{"label": "FAQ", "link": "/#faq"},
		},
	},
}

// DefaultSection returns a copy of the built-in payload for a section key,
// or nil when the key has no default. The copy keeps callers from mutating
// the shared map.
func DefaultSection(key string) map[string]any {
	defaults, ok := sectionDefaults[key]
	if !ok {
		return nil
	}

	payload := make(map[string]any, len(defaults))
	for k, v := range defaults {
		payload[k] = v
	}
	return payload
}

// SectionKeys lists every section key the admin panel knows how to edit.
func SectionKeys() []string {
	return []string{
		db.SectionKeyHero,
		db.SectionKeyGlow,
		db.SectionKeyJourney,
		db.SectionKeyPricing,
		db.SectionKeyFlexpayHero,
		db.SectionKeyFlexpayPricing,
		db.SectionKeyCTABanner,
		db.SectionKeyFooter,
		db.SectionKeyNavigation,
	}
}
