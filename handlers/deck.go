package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/medrecall/medrecall-api/middleware"
	"github.com/medrecall/medrecall-api/models"
)

func (db *DBHandler) CreateDeck(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r)
	if !ok {
		respondError(w, http.StatusUnauthorized, "missing credentials")
		return
	}

	var req struct {
		Name string `json:"name"`
		Type string `json:"type"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "could not decode request")
		return
	}

	if req.Name == "" || req.Type == "" {
		respondError(w, http.StatusBadRequest, "name and type are required")
		return
	}

	// FolderID stays NULL; filing a deck into a folder is a separate
	// mutation.
	deck := models.Deck{
		Name:   req.Name,
		Type:   req.Type,
		UserID: userID,
	}

	if err := db.Create(&deck).Error; err != nil {
		log.Println("create deck:", err)
		respondError(w, http.StatusInternalServerError, "failed to create deck")
		return
	}

	respondJSON(w, http.StatusCreated, deck)
}

func (db *DBHandler) GetDecks(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r)
	if !ok {
		respondError(w, http.StatusUnauthorized, "missing credentials")
		return
	}

	decks := []models.Deck{}
	if err := db.Where("user_id = ?", userID).Order("created_at DESC").Find(&decks).Error; err != nil {
		log.Println("list decks:", err)
		respondError(w, http.StatusInternalServerError, "failed to fetch decks")
		return
	}

	respondJSON(w, http.StatusOK, decks)
}
