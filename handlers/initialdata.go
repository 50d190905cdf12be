package handlers

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/medrecall/medrecall-api/middleware"
	"github.com/medrecall/medrecall-api/models"
	"golang.org/x/sync/errgroup"
)

// deckView is a deck with its cards embedded for the initial-data
// response. A deck with no cards carries an empty slice, never null.
type deckView struct {
	models.Deck
	Cards []models.CardView `json:"cards"`
}

type initialData struct {
	Folders    []models.Folder    `json:"folders"`
	Decks      []deckView         `json:"decks"`
	Flashcards []models.Flashcard `json:"flashcards"`
	Planners   []models.Planner   `json:"planners"`
	Files      []models.File      `json:"files"`
}

// GetInitialData assembles the caller's entire visible working set in
// one response: folders, decks with their flashcards embedded, the flat
// flashcard list, planners and files. The five fetches run concurrently
// and the join happens in memory after all of them complete. The five
// reads are not wrapped in a transaction, so a snapshot taken while
// another request is writing can observe a torn state across
// collections. If any fetch fails the whole request fails; a partial
// snapshot is never returned.
func (db *DBHandler) GetInitialData(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r)
	if !ok {
		respondError(w, http.StatusUnauthorized, "missing credentials")
		return
	}

	folders := []models.Folder{}
	decks := []models.Deck{}
	flashcards := []models.Flashcard{}
	planners := []models.Planner{}
	files := []models.File{}

	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		return db.WithContext(ctx).Where("user_id = ?", userID).Find(&folders).Error
	})
	g.Go(func() error {
		return db.WithContext(ctx).Where("user_id = ?", userID).Find(&decks).Error
	})
	g.Go(func() error {
		return db.WithContext(ctx).Where("user_id = ?", userID).Find(&flashcards).Error
	})
	g.Go(func() error {
		return db.WithContext(ctx).Where("user_id = ?", userID).Find(&planners).Error
	})
	g.Go(func() error {
		return db.WithContext(ctx).Where("user_id = ?", userID).Find(&files).Error
	})

	if err := g.Wait(); err != nil {
		log.Println("load initial data:", err)
		respondError(w, http.StatusInternalServerError, "failed to load user data")
		return
	}

	deckViews := make([]deckView, 0, len(decks))
	for _, deck := range decks {
		cards := []models.CardView{}
		for _, card := range flashcards {
			if matchesDeck(card.DeckID, deck.ID) {
				cards = append(cards, models.ProjectCard(card))
			}
		}
		deckViews = append(deckViews, deckView{Deck: deck, Cards: cards})
	}

	respondJSON(w, http.StatusOK, initialData{
		Folders:    folders,
		Decks:      deckViews,
		Flashcards: flashcards,
		Planners:   planners,
		Files:      files,
	})
}

// matchesDeck compares a flashcard's text deck reference against a deck
// id numerically, so a reference stored as "5" still matches deck 5.
// Unparseable references match nothing.
func matchesDeck(ref models.DeckRef, deckID uint) bool {
	n, err := strconv.ParseFloat(strings.TrimSpace(string(ref)), 64)
	if err != nil {
		return false
	}
	return n == float64(deckID)
}
