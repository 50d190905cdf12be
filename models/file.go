package models

import "gorm.io/gorm"

// File records a user upload. Only the metadata lives here; the bytes
// live wherever URL points.
type File struct {
	gorm.Model
	PublicID string `gorm:"size:100;uniqueIndex" json:"public_id"`
	Name     string `gorm:"not null;size:255" json:"name"`
	URL      string `gorm:"not null;size:1000" json:"url"`
	Size     int64  `gorm:"default:0" json:"size"`
	UserID   uint   `gorm:"not null;index" json:"user_id"`
}
