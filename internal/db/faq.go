package db

import "gorm.io/gorm"

// FAQItem is one question/answer pair shown in an accordion group.
// Items are displayed ordered by (GroupLabel, Sort). PageTag separates the
// default page FAQ from the flexpay page FAQ.
type FAQItem struct {
	gorm.Model
	GroupLabel string `gorm:"size:100;not null"`
	Question   string `gorm:"size:255;not null"`
	Answer     string `gorm:"type:text;not null"`
	Sort       int    `gorm:"default:0"`
	PageTag    string `gorm:"size:50;default:default;index"`
}

// TableName returns the custom table name.
func (FAQItem) TableName() string {
	return "faq_items"
}
