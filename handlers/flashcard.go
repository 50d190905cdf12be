package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/medrecall/medrecall-api/middleware"
	"github.com/medrecall/medrecall-api/models"
	"gorm.io/gorm"
)

type DBHandler struct {
	*gorm.DB
	JWTSecret []byte
	TokenTTL  time.Duration
}

func (db *DBHandler) CreateFlashcard(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r)
	if !ok {
		respondError(w, http.StatusUnauthorized, "missing credentials")
		return
	}

	type flashcardRequest struct {
		DeckID         models.DeckRef `json:"deck_id"`
		Front          string         `json:"front"`
		Back           string         `json:"back"`
		Commentary     string         `json:"commentary"`
		SrsLevel       int            `json:"srs_level"`
		Type           string         `json:"type"`
		Options        any            `json:"options"`
		NextReviewDate *time.Time     `json:"next_review_date"`
	}

	var req flashcardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "could not decode request")
		return
	}

	if req.DeckID == "" || req.Front == "" || req.Back == "" {
		respondError(w, http.StatusBadRequest, "deck_id, front and back are required")
		return
	}

	flashcard := models.Flashcard{
		UserID:         userID,
		DeckID:         req.DeckID,
		Front:          req.Front,
		Back:           req.Back,
		Commentary:     models.NormalizeCommentary(req.Commentary),
		SrsLevel:       models.NormalizeSrsLevel(req.SrsLevel),
		Type:           models.NormalizeCardType(req.Type),
		Options:        models.EncodeOptions(req.Options),
		NextReviewDate: req.NextReviewDate,
	}

	if err := db.Create(&flashcard).Error; err != nil {
		log.Println("create flashcard:", err)
		respondError(w, http.StatusInternalServerError, "failed to create flashcard")
		return
	}

	respondJSON(w, http.StatusCreated, flashcard)
}

// UpdateFlashcard has full-replace semantics: every updatable field is
// rewritten, and a field omitted from the request resets to its default
// rather than keeping its previous value. An update carrying neither
// front nor back is rejected.
func (db *DBHandler) UpdateFlashcard(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r)
	if !ok {
		respondError(w, http.StatusUnauthorized, "missing credentials")
		return
	}

	flashcardID := r.PathValue("id")
	if flashcardID == "" {
		respondError(w, http.StatusBadRequest, "flashcard id is required")
		return
	}

	type flashcardUpdateRequest struct {
		Front          string     `json:"front"`
		Back           string     `json:"back"`
		Commentary     string     `json:"commentary"`
		SrsLevel       int        `json:"srs_level"`
		NextReviewDate *time.Time `json:"next_review_date"`
		Type           string     `json:"type"`
		Options        any        `json:"options"`
		ImageURL       *string    `json:"image_url"`
		AnswerImageURL *string    `json:"answer_image_url"`
	}

	var req flashcardUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "could not decode request")
		return
	}

	if req.Front == "" && req.Back == "" {
		respondError(w, http.StatusBadRequest, "front or back is required")
		return
	}

	var flashcard models.Flashcard
	if err := db.Where("id = ? AND user_id = ?", flashcardID, userID).First(&flashcard).Error; err != nil {
		respondError(w, http.StatusNotFound, "flashcard not found")
		return
	}

	flashcard.Front = req.Front
	flashcard.Back = req.Back
	flashcard.Commentary = models.NormalizeCommentary(req.Commentary)
	flashcard.SrsLevel = models.NormalizeSrsLevel(req.SrsLevel)
	flashcard.NextReviewDate = req.NextReviewDate
	flashcard.Type = models.NormalizeCardType(req.Type)
	flashcard.Options = models.EncodeOptions(req.Options)
	flashcard.ImageURL = req.ImageURL
	flashcard.AnswerImageURL = req.AnswerImageURL

	if err := db.Save(&flashcard).Error; err != nil {
		log.Println("update flashcard:", err)
		respondError(w, http.StatusInternalServerError, "failed to update flashcard")
		return
	}

	respondJSON(w, http.StatusOK, flashcard)
}

// DeleteFlashcard removes the row outright. Folders and decks soft
// delete; flashcards are the deliberate exception (see models.Flashcard).
func (db *DBHandler) DeleteFlashcard(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r)
	if !ok {
		respondError(w, http.StatusUnauthorized, "missing credentials")
		return
	}

	flashcardID := r.PathValue("id")
	if flashcardID == "" {
		respondError(w, http.StatusBadRequest, "flashcard id is required")
		return
	}

	result := db.Unscoped().Where("id = ? AND user_id = ?", flashcardID, userID).Delete(&models.Flashcard{})
	if result.Error != nil {
		log.Println("delete flashcard:", result.Error)
		respondError(w, http.StatusInternalServerError, "failed to delete flashcard")
		return
	}
	if result.RowsAffected == 0 {
		respondError(w, http.StatusNotFound, "flashcard not found")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{
		"message": "flashcard deleted",
		"id":      flashcardID,
	})
}
