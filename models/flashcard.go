package models

import (
	"bytes"
	"encoding/json"
	"time"

	"gorm.io/gorm"
)

// DeckRef is a flashcard's reference to its deck. The column is text
// (a legacy schema carryover) and clients send it as either a JSON
// number or a JSON string, so both decode into the same value.
type DeckRef string

func (d *DeckRef) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*d = DeckRef(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*d = DeckRef(n.String())
	return nil
}

// Flashcard represents an individual flashcard. Unlike folders and
// decks, flashcards are hard-deleted: the containers are expensive to
// rebuild and stay recoverable, individual cards are not.
type Flashcard struct {
	gorm.Model
	UserID         uint       `gorm:"not null;index" json:"user_id"`
	DeckID         DeckRef    `gorm:"not null;size:64;index" json:"deck_id"`
	Front          string     `gorm:"not null;size:2000" json:"front"`
	Back           string     `gorm:"not null;size:2000" json:"back"`
	Commentary     string     `gorm:"size:2000" json:"commentary"`
	Type           string     `gorm:"size:50;default:text" json:"type"`
	Options        string     `gorm:"type:text" json:"options"`
	SrsLevel       int        `gorm:"default:0" json:"srs_level"`
	NextReviewDate *time.Time `gorm:"default:null" json:"next_review_date"`
	ImageURL       *string    `gorm:"default:null" json:"image_url"`
	AnswerImageURL *string    `gorm:"default:null" json:"answer_image_url"`
}
