package models

import "gorm.io/gorm"

const (
	FolderTypeFlashcards = "flashcards"
	FolderTypeQuestions  = "questions"
)

// Folder groups decks or question sets for a single user
type Folder struct {
	gorm.Model
	Name   string `gorm:"not null;size:200" json:"name"`
	Type   string `gorm:"not null;default:flashcards" json:"type"`
	UserID uint   `gorm:"not null;index" json:"user_id"`
}

// NormalizeFolderType maps anything outside the two recognized kinds
// back to the flashcards default.
func NormalizeFolderType(raw string) string {
	if raw != FolderTypeFlashcards && raw != FolderTypeQuestions {
		return FolderTypeFlashcards
	}
	return raw
}
