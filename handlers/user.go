package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/medrecall/medrecall-api/auth"
	"github.com/medrecall/medrecall-api/models"
)

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (db *DBHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "could not decode request")
		return
	}

	if req.Email == "" || req.Password == "" {
		respondError(w, http.StatusBadRequest, "email and password are required")
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		log.Println("hash password:", err)
		respondError(w, http.StatusInternalServerError, "failed to register user")
		return
	}

	user := models.User{
		Email:              req.Email,
		PasswordHash:       hash,
		SubscriptionStatus: "inactive",
	}

	if err := db.Create(&user).Error; err != nil {
		log.Println("create user:", err)
		respondError(w, http.StatusInternalServerError, "failed to register user")
		return
	}

	respondJSON(w, http.StatusCreated, map[string]any{
		"id":    user.ID,
		"email": user.Email,
	})
}

func (db *DBHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "could not decode request")
		return
	}

	var user models.User
	if err := db.Where("email = ?", req.Email).First(&user).Error; err != nil {
		respondError(w, http.StatusBadRequest, "user not found")
		return
	}

	if !auth.CheckPassword(req.Password, user.PasswordHash) {
		respondError(w, http.StatusUnauthorized, "incorrect password")
		return
	}

	token, err := auth.CreateToken(user.ID, db.JWTSecret, db.TokenTTL)
	if err != nil {
		log.Println("create token:", err)
		respondError(w, http.StatusInternalServerError, "failed to log in")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"token": token,
		"user": map[string]any{
			"id":                  user.ID,
			"email":               user.Email,
			"subscription_status": user.SubscriptionStatus,
		},
	})
}
