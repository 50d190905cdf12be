package models

import "gorm.io/gorm"

// Deck is a collection of flashcards. New decks are unfiled; folder
// linkage is a later mutation, so FolderID stays NULL at creation.
type Deck struct {
	gorm.Model
	Name     string `gorm:"not null;size:200" json:"name"`
	Type     string `gorm:"not null;size:50" json:"type"`
	UserID   uint   `gorm:"not null;index" json:"user_id"`
	FolderID *uint  `gorm:"default:null" json:"folder_id"`
}
