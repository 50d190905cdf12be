package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/medrecall/medrecall-api/middleware"
	"github.com/medrecall/medrecall-api/models"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

func (db *DBHandler) CreateFile(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r)
	if !ok {
		respondError(w, http.StatusUnauthorized, "missing credentials")
		return
	}

	var req struct {
		Name string `json:"name"`
		URL  string `json:"url"`
		Size int64  `json:"size"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "could not decode request")
		return
	}

	if req.Name == "" || req.URL == "" {
		respondError(w, http.StatusBadRequest, "file name and url are required")
		return
	}

	publicID, err := gonanoid.New()
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to generate ID")
		return
	}

	file := models.File{
		PublicID: publicID,
		Name:     req.Name,
		URL:      req.URL,
		Size:     req.Size,
		UserID:   userID,
	}

	if err := db.Create(&file).Error; err != nil {
		log.Println("create file:", err)
		respondError(w, http.StatusInternalServerError, "failed to create file record")
		return
	}

	respondJSON(w, http.StatusCreated, file)
}

func (db *DBHandler) GetFiles(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r)
	if !ok {
		respondError(w, http.StatusUnauthorized, "missing credentials")
		return
	}

	files := []models.File{}
	if err := db.Where("user_id = ?", userID).Order("created_at DESC").Find(&files).Error; err != nil {
		log.Println("list files:", err)
		respondError(w, http.StatusInternalServerError, "failed to fetch files")
		return
	}

	respondJSON(w, http.StatusOK, files)
}
