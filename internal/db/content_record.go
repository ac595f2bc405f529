package db

import "gorm.io/gorm"

// ContentRecord stores one editable site section as a JSON document keyed by
// a fixed section key. The payload shape is open-ended; the admin panel owns
// it and the public pages only read it.
type ContentRecord struct {
	gorm.Model
	Key  string `gorm:"size:100;uniqueIndex;not null"`
	Data string `gorm:"type:text"`
}

// TableName keeps the table name explicit.
func (ContentRecord) TableName() string {
	return "content_records"
}

const (
	// SectionKeyHero is the landing hero banner.
	SectionKeyHero = "hero"
	// SectionKeyGlow is the highlight strip under the hero.
	SectionKeyGlow = "glow"
	// SectionKeyPricing holds the default pricing plans.
	SectionKeyPricing = "pricing"
	// SectionKeyFlexpayPricing holds the flexpay pricing plans.
	SectionKeyFlexpayPricing = "flexpay-pricing"
	// SectionKeyFlexpayHero is the flexpay page hero.
	SectionKeyFlexpayHero = "flexpay-hero"
	// SectionKeyCTABanner is the call-to-action banner.
	SectionKeyCTABanner = "cta-banner"
	// SectionKeyFooter is the site footer.
	SectionKeyFooter = "footer"
	// SectionKeyNavigation is the top navigation bar.
	SectionKeyNavigation = "navigation"
	// SectionKeyJourney is the customer journey steps block.
	SectionKeyJourney = "journey"
)
