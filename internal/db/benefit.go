package db

import "gorm.io/gorm"

// Benefit is one selling-point card on a public page.
// Icon matches an icon name built into the templates. PageTag distinguishes
// the default page from the flexpay page; lower Sort renders first.
type Benefit struct {
	gorm.Model
	Title    string `gorm:"size:150;not null"`
	Subtitle string `gorm:"size:255"`
	Icon     string `gorm:"size:50"`
	Sort     int    `gorm:"default:0"`
	PageTag  string `gorm:"size:50;default:default;index"`
}

// TableName returns the custom table name.
func (Benefit) TableName() string {
	return "benefits"
}
