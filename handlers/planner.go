package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/medrecall/medrecall-api/middleware"
	"github.com/medrecall/medrecall-api/models"
)

func (db *DBHandler) CreatePlanner(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r)
	if !ok {
		respondError(w, http.StatusUnauthorized, "missing credentials")
		return
	}

	var req struct {
		Title string     `json:"title"`
		Date  *time.Time `json:"date"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "could not decode request")
		return
	}

	if req.Title == "" {
		respondError(w, http.StatusBadRequest, "planner title is required")
		return
	}

	planner := models.Planner{
		Title:  req.Title,
		Date:   req.Date,
		UserID: userID,
	}

	if err := db.Create(&planner).Error; err != nil {
		log.Println("create planner:", err)
		respondError(w, http.StatusInternalServerError, "failed to create planner")
		return
	}

	respondJSON(w, http.StatusCreated, planner)
}

func (db *DBHandler) GetPlanners(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r)
	if !ok {
		respondError(w, http.StatusUnauthorized, "missing credentials")
		return
	}

	planners := []models.Planner{}
	if err := db.Where("user_id = ?", userID).Order("created_at DESC").Find(&planners).Error; err != nil {
		log.Println("list planners:", err)
		respondError(w, http.StatusInternalServerError, "failed to fetch planners")
		return
	}

	respondJSON(w, http.StatusOK, planners)
}
