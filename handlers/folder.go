package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/medrecall/medrecall-api/middleware"
	"github.com/medrecall/medrecall-api/models"
)

func (db *DBHandler) CreateFolder(w http.ResponseWriter, r *http.Request) {
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

	if req.Name == "" {
		respondError(w, http.StatusBadRequest, "folder name is required")
		return
	}

	folder := models.Folder{
		Name:   req.Name,
		Type:   models.NormalizeFolderType(req.Type),
		UserID: userID,
	}

	if err := db.Create(&folder).Error; err != nil {
		log.Println("create folder:", err)
		respondError(w, http.StatusInternalServerError, "failed to create folder")
		return
	}

	respondJSON(w, http.StatusCreated, folder)
}

func (db *DBHandler) GetFolders(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r)
	if !ok {
		respondError(w, http.StatusUnauthorized, "missing credentials")
		return
	}

	folders := []models.Folder{}
	if err := db.Where("user_id = ?", userID).Order("created_at DESC").Find(&folders).Error; err != nil {
		log.Println("list folders:", err)
		respondError(w, http.StatusInternalServerError, "failed to fetch folders")
		return
	}

	respondJSON(w, http.StatusOK, folders)
}
