package main

import (
	"log"
	"net/http"
	"os"

	"github.com/medrecall/medrecall-api/config"
	"github.com/medrecall/medrecall-api/handlers"
	"github.com/medrecall/medrecall-api/middleware"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func init() {
	// Load .env file if not in production environment
	if os.Getenv("APP_ENV") != "production" {
		err := godotenv.Load()
		if err != nil {
			log.Printf("Warning: .env file not found, environment variables might not be loaded: %v", err)
		}
	}
}

func main() {
	cfg := config.Load()
	config.Connect(cfg.DatabaseURL)

	requireAuth := middleware.RequireAuth([]byte(cfg.JWTSecret))
	DBHandler := &handlers.DBHandler{
		DB:        config.Database,
		JWTSecret: []byte(cfg.JWTSecret),
		TokenTTL:  cfg.TokenTTL,
	}
	mux := http.NewServeMux()

	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("MedRecall API running"))
	})

	// Accounts
	mux.HandleFunc("POST /api/register", DBHandler.Register)
	mux.HandleFunc("POST /api/login", DBHandler.Login)

	// Aggregated snapshot
	mux.HandleFunc("GET /api/initial-data", requireAuth(DBHandler.GetInitialData))

	// Folder
	mux.HandleFunc("GET /api/folders", requireAuth(DBHandler.GetFolders))
	mux.HandleFunc("POST /api/folders", requireAuth(DBHandler.CreateFolder))

	// Deck
	mux.HandleFunc("GET /api/decks", requireAuth(DBHandler.GetDecks))
	mux.HandleFunc("POST /api/decks", requireAuth(DBHandler.CreateDeck))

	// Flashcard
	mux.HandleFunc("POST /api/flashcards", requireAuth(DBHandler.CreateFlashcard))
	mux.HandleFunc("PUT /api/flashcards/{id}", requireAuth(DBHandler.UpdateFlashcard))
	mux.HandleFunc("DELETE /api/flashcards/{id}", requireAuth(DBHandler.DeleteFlashcard))

	// Planner
	mux.HandleFunc("GET /api/planners", requireAuth(DBHandler.GetPlanners))
	mux.HandleFunc("POST /api/planners", requireAuth(DBHandler.CreatePlanner))

	// File
	mux.HandleFunc("GET /api/files", requireAuth(DBHandler.GetFiles))
	mux.HandleFunc("POST /api/files", requireAuth(DBHandler.CreateFile))

	// Configure CORS with specific options
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000", "https://app.medrecall.io"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization", "X-Requested-With", "Accept", "Origin"},
		AllowCredentials: true,
		MaxAge:           86400,
	}).Handler(mux)

	serverAddr := "0.0.0.0:" + cfg.Port
	log.Printf("listening on %s", serverAddr)
	http.ListenAndServe(serverAddr, corsHandler)
}
