package handlers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/medrecall/medrecall-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedDeck(t *testing.T, db *DBHandler, userID uint, name string) models.Deck {
	t.Helper()
	deck := models.Deck{Name: name, Type: "flashcards", UserID: userID}
	require.NoError(t, db.Create(&deck).Error)
	return deck
}

func seedFlashcard(t *testing.T, db *DBHandler, userID uint, deckID uint, front, back string) models.Flashcard {
	t.Helper()
	card := models.Flashcard{
		UserID:  userID,
		DeckID:  models.DeckRef(fmt.Sprint(deckID)),
		Front:   front,
		Back:    back,
		Type:    "text",
		Options: "[]",
	}
	require.NoError(t, db.Create(&card).Error)
	return card
}

func TestCreateFlashcard(t *testing.T) {
	db := newTestHandler(t)
	user := seedUser(t, db, "a@example.com")
	deck := seedDeck(t, db, user.ID, "Cardiology")

	body := map[string]any{
		"deck_id": deck.ID,
		"front":   "What does ECG stand for?",
		"back":    "Electrocardiogram",
	}
	rec := httptest.NewRecorder()
	db.CreateFlashcard(rec, authedRequest(t, http.MethodPost, "/api/flashcards", body, user.ID))

	require.Equal(t, http.StatusCreated, rec.Code)

	var created models.Flashcard
	decodeJSON(t, rec, &created)
	assert.NotZero(t, created.ID)
	assert.Equal(t, user.ID, created.UserID)
	assert.Equal(t, models.DeckRef(fmt.Sprint(deck.ID)), created.DeckID)
	assert.Equal(t, "text", created.Type)
	assert.Equal(t, "[]", created.Options)
	assert.Equal(t, 0, created.SrsLevel)
	assert.Nil(t, created.NextReviewDate)
}

func TestCreateFlashcardStringDeckID(t *testing.T) {
	db := newTestHandler(t)
	user := seedUser(t, db, "a@example.com")
	deck := seedDeck(t, db, user.ID, "Cardiology")

	body := map[string]any{
		"deck_id": fmt.Sprint(deck.ID),
		"front":   "front",
		"back":    "back",
	}
	rec := httptest.NewRecorder()
	db.CreateFlashcard(rec, authedRequest(t, http.MethodPost, "/api/flashcards", body, user.ID))

	require.Equal(t, http.StatusCreated, rec.Code)
}

func TestCreateFlashcardMissingFront(t *testing.T) {
	db := newTestHandler(t)
	user := seedUser(t, db, "a@example.com")
	deck := seedDeck(t, db, user.ID, "Cardiology")

	body := map[string]any{"deck_id": deck.ID, "back": "Electrocardiogram"}
	rec := httptest.NewRecorder()
	db.CreateFlashcard(rec, authedRequest(t, http.MethodPost, "/api/flashcards", body, user.ID))

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var count int64
	require.NoError(t, db.Model(&models.Flashcard{}).Count(&count).Error)
	assert.Zero(t, count, "no row should be persisted on validation failure")
}

func TestCreateFlashcardEncodesOptions(t *testing.T) {
	db := newTestHandler(t)
	user := seedUser(t, db, "a@example.com")
	deck := seedDeck(t, db, user.ID, "Cardiology")

	body := map[string]any{
		"deck_id": deck.ID,
		"front":   "Pick one",
		"back":    "b",
		"type":    "multiple_choice",
		"options": []string{"a", "b", "c"},
	}
	rec := httptest.NewRecorder()
	db.CreateFlashcard(rec, authedRequest(t, http.MethodPost, "/api/flashcards", body, user.ID))

	require.Equal(t, http.StatusCreated, rec.Code)

	var created models.Flashcard
	decodeJSON(t, rec, &created)
	assert.Equal(t, `["a","b","c"]`, created.Options)
	assert.Equal(t, "multiple_choice", created.Type)
}

func TestUpdateFlashcardFullReplace(t *testing.T) {
	db := newTestHandler(t)
	user := seedUser(t, db, "a@example.com")
	deck := seedDeck(t, db, user.ID, "Cardiology")
	card := models.Flashcard{
		UserID:     user.ID,
		DeckID:     models.DeckRef(fmt.Sprint(deck.ID)),
		Front:      "old front",
		Back:       "old back",
		Commentary: "old commentary",
		Type:       "multiple_choice",
		Options:    `["a","b"]`,
		SrsLevel:   3,
	}
	require.NoError(t, db.Create(&card).Error)

	// Only back is supplied: every other updatable field resets to its
	// default, it is not preserved.
	body := map[string]any{"back": "new answer"}
	req := authedRequest(t, http.MethodPut, fmt.Sprintf("/api/flashcards/%d", card.ID), body, user.ID)
	req.SetPathValue("id", fmt.Sprint(card.ID))
	rec := httptest.NewRecorder()
	db.UpdateFlashcard(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var updated models.Flashcard
	require.NoError(t, db.First(&updated, card.ID).Error)
	assert.Equal(t, "", updated.Front)
	assert.Equal(t, "new answer", updated.Back)
	assert.Equal(t, "", updated.Commentary)
	assert.Equal(t, "text", updated.Type)
	assert.Equal(t, "[]", updated.Options)
	assert.Equal(t, 0, updated.SrsLevel)
	assert.Nil(t, updated.NextReviewDate)
}

func TestUpdateFlashcardRequiresFrontOrBack(t *testing.T) {
	db := newTestHandler(t)
	user := seedUser(t, db, "a@example.com")
	deck := seedDeck(t, db, user.ID, "Cardiology")
	card := seedFlashcard(t, db, user.ID, deck.ID, "front", "back")

	body := map[string]any{"commentary": "only commentary changes"}
	req := authedRequest(t, http.MethodPut, fmt.Sprintf("/api/flashcards/%d", card.ID), body, user.ID)
	req.SetPathValue("id", fmt.Sprint(card.ID))
	rec := httptest.NewRecorder()
	db.UpdateFlashcard(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateFlashcardNotOwned(t *testing.T) {
	db := newTestHandler(t)
	owner := seedUser(t, db, "owner@example.com")
	other := seedUser(t, db, "other@example.com")
	deck := seedDeck(t, db, owner.ID, "Cardiology")
	card := seedFlashcard(t, db, owner.ID, deck.ID, "front", "back")

	body := map[string]any{"front": "hijacked"}
	req := authedRequest(t, http.MethodPut, fmt.Sprintf("/api/flashcards/%d", card.ID), body, other.ID)
	req.SetPathValue("id", fmt.Sprint(card.ID))
	rec := httptest.NewRecorder()
	db.UpdateFlashcard(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)

	var unchanged models.Flashcard
	require.NoError(t, db.First(&unchanged, card.ID).Error)
	assert.Equal(t, "front", unchanged.Front)
}

func TestDeleteFlashcard(t *testing.T) {
	db := newTestHandler(t)
	user := seedUser(t, db, "a@example.com")
	deck := seedDeck(t, db, user.ID, "Cardiology")
	card := seedFlashcard(t, db, user.ID, deck.ID, "front", "back")

	req := authedRequest(t, http.MethodDelete, fmt.Sprintf("/api/flashcards/%d", card.ID), nil, user.ID)
	req.SetPathValue("id", fmt.Sprint(card.ID))
	rec := httptest.NewRecorder()
	db.DeleteFlashcard(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	// Hard delete: the row is gone even from unscoped reads.
	var count int64
	require.NoError(t, db.Unscoped().Model(&models.Flashcard{}).Where("id = ?", card.ID).Count(&count).Error)
	assert.Zero(t, count)
}

func TestDeleteFlashcardNotOwned(t *testing.T) {
	db := newTestHandler(t)
	owner := seedUser(t, db, "owner@example.com")
	other := seedUser(t, db, "other@example.com")
	deck := seedDeck(t, db, owner.ID, "Cardiology")
	card := seedFlashcard(t, db, owner.ID, deck.ID, "front", "back")

	req := authedRequest(t, http.MethodDelete, fmt.Sprintf("/api/flashcards/%d", card.ID), nil, other.ID)
	req.SetPathValue("id", fmt.Sprint(card.ID))
	rec := httptest.NewRecorder()
	db.DeleteFlashcard(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)

	var count int64
	require.NoError(t, db.Model(&models.Flashcard{}).Where("id = ?", card.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count, "row must remain in store")
}
