package models

import (
	"time"

	"gorm.io/gorm"
)

// Planner is a dated study plan entry
type Planner struct {
	gorm.Model
	Title  string     `gorm:"not null;size:200" json:"title"`
	Date   *time.Time `gorm:"default:null" json:"date"`
	UserID uint       `gorm:"not null;index" json:"user_id"`
}
