package db

import "gorm.io/gorm"

// Inquiry is a quote request submitted from the public site.
type Inquiry struct {
	gorm.Model
	Name    string `gorm:"size:100;not null"`
	Email   string `gorm:"size:150"`
	Phone   string `gorm:"size:50"`
	Message string `gorm:"type:text"`
	Plan    string `gorm:"size:100"`
}

// TableName returns the custom table name.
func (Inquiry) TableName() string {
	return "inquiries"
}
