package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/medrecall/medrecall-api/middleware"
	"github.com/medrecall/medrecall-api/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestHandler opens a per-test in-memory database. cache=shared keeps
// every pooled connection on the same database; the test name keeps
// databases from leaking between tests.
func newTestHandler(t *testing.T) *DBHandler {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Folder{},
		&models.Deck{},
		&models.Flashcard{},
		&models.Planner{},
		&models.File{},
	)
	require.NoError(t, err)

	return &DBHandler{DB: db, JWTSecret: []byte("test-secret"), TokenTTL: time.Hour}
}

func seedUser(t *testing.T, db *DBHandler, email string) models.User {
	t.Helper()
	user := models.User{Email: email, PasswordHash: "x", SubscriptionStatus: "inactive"}
	require.NoError(t, db.Create(&user).Error)
	return user
}

// authedRequest builds a request already carrying a verified user id,
// bypassing the token round trip exercised in the middleware tests.
func authedRequest(t *testing.T, method, target string, body any, userID uint) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	return middleware.WithUserID(req, userID)
}

func decodeJSON(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
}
