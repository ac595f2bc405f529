package db

import "gorm.io/gorm"

// CustomSection is an admin-authored page block rendered between the fixed
// sections of the home page. Content is markdown; Layout picks one of the
// built-in arrangements (text, image-left, image-right, banner).
type CustomSection struct {
	gorm.Model
	Title           string `gorm:"size:150;not null"`
	Content         string `gorm:"type:text"`
	ImageURL        string `gorm:"size:255"`
	Layout          string `gorm:"size:50;default:text"`
	BackgroundColor string `gorm:"size:20"`
	TextColor       string `gorm:"size:20"`
	Sort            int    `gorm:"default:0"`
	// No default tag: GORM would skip a false value on insert and let the
	// column default flip a hidden section visible. The service always writes
	// an explicit value.
	Visible bool
}

// TableName returns the custom table name.
func (CustomSection) TableName() string {
	return "custom_sections"
}
