package models

import (
	"encoding/json"
	"time"
)

// Persisted flashcard fields are loosely typed: options is JSON text
// that may be empty, the literal "null", or garbage; type and srs_level
// may be unset. Everything here is fail-soft and resolves bad input to
// a default instead of an error.

// ParseOptions decodes the persisted options column into a slice.
// Absent, empty, "null", and malformed input all yield an empty slice.
func ParseOptions(raw string) []any {
	if raw == "" || raw == "null" {
		return []any{}
	}
	var out []any
	if err := json.Unmarshal([]byte(raw), &out); err != nil || out == nil {
		return []any{}
	}
	return out
}

// EncodeOptions is the write-side counterpart: anything that is not
// list-shaped persists as an encoded empty array.
func EncodeOptions(raw any) string {
	list, ok := raw.([]any)
	if !ok {
		return "[]"
	}
	encoded, err := json.Marshal(list)
	if err != nil {
		return "[]"
	}
	return string(encoded)
}

// NormalizeCardType defaults empty card kinds to "text".
func NormalizeCardType(raw string) string {
	if raw == "" {
		return "text"
	}
	return raw
}

// NormalizeSrsLevel clamps the SRS level to a non-negative integer.
func NormalizeSrsLevel(raw int) int {
	if raw < 0 {
		return 0
	}
	return raw
}

// NormalizeCommentary resolves absent commentary to the empty string.
func NormalizeCommentary(raw string) string {
	return raw
}

// CardView is the display-oriented projection of a flashcard used
// inside the initial-data snapshot. Review history is not persisted, so
// it is always present and always empty.
type CardView struct {
	ID             uint       `json:"id"`
	Question       string     `json:"question"`
	Answer         string     `json:"answer"`
	Commentary     string     `json:"commentary"`
	Type           string     `json:"type"`
	Options        []any      `json:"options"`
	SrsLevel       int        `json:"srsLevel"`
	NextReviewDate *time.Time `json:"nextReviewDate"`
	ReviewHistory  []any      `json:"reviewHistory"`
}

// ProjectCard maps a persisted flashcard onto its CardView, applying
// the normalizers above.
func ProjectCard(card Flashcard) CardView {
	return CardView{
		ID:             card.ID,
		Question:       card.Front,
		Answer:         card.Back,
		Commentary:     NormalizeCommentary(card.Commentary),
		Type:           NormalizeCardType(card.Type),
		Options:        ParseOptions(card.Options),
		SrsLevel:       NormalizeSrsLevel(card.SrsLevel),
		NextReviewDate: card.NextReviewDate,
		ReviewHistory:  []any{},
	}
}
