package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/bridgegen/backend/internal/models"
	"github.com/bridgegen/backend/internal/router"
	"github.com/bridgegen/backend/validators"
)

// setupServer wires the full route table against a fresh in-memory database.
func setupServer(t *testing.T) (*echo.Echo, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// A single connection keeps every query on the same in-memory database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	e := echo.New()
	e.Validator = validators.NewValidator()
	router.SetupRoutes(e, db)
	return e, db
}

func doRequest(t *testing.T, e *echo.Echo, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, dest interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), dest))
}

func seedUser(t *testing.T, db *gorm.DB, id, name string, age int, userType string) {
	t.Helper()
	require.NoError(t, db.Create(&models.User{
		ID:       id,
		Name:     name,
		Initials: name[:1],
		Age:      age,
		Type:     userType,
	}).Error)
}

func seedPost(t *testing.T, db *gorm.DB, id, userID string, wordID *uint, text string, likes int, createdAt time.Time) {
	t.Helper()
	require.NoError(t, db.Create(&models.Post{
		ID:         id,
		UserID:     userID,
		WordID:     wordID,
		Text:       text,
		LikesCount: likes,
		CreatedAt:  createdAt,
	}).Error)
}

func seedComment(t *testing.T, db *gorm.DB, id, postID, userID, text string, likes int, createdAt time.Time) {
	t.Helper()
	require.NoError(t, db.Create(&models.Comment{
		ID:         id,
		PostID:     postID,
		UserID:     userID,
		Text:       text,
		LikesCount: likes,
		CreatedAt:  createdAt,
	}).Error)
}

func seedPoll(t *testing.T, db *gorm.DB, pollID, postID, question string, options map[string]int) {
	t.Helper()
	require.NoError(t, db.Create(&models.Poll{
		ID:       pollID,
		PostID:   postID,
		Question: question,
	}).Error)
	for optionID, votes := range options {
		require.NoError(t, db.Create(&models.PollOption{
			ID:         optionID,
			PollID:     pollID,
			Text:       optionID,
			VotesCount: votes,
		}).Error)
	}
}

// backfillVotes inserts membership rows matching an option's seeded
// votes_count so the tally audit holds.
func backfillVotes(t *testing.T, db *gorm.DB, pollID, optionID string, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		require.NoError(t, db.Create(&models.PollVote{
			PollID:   pollID,
			OptionID: optionID,
			UserID:   fmt.Sprintf("voter-%s-%d", optionID, i),
		}).Error)
	}
}

func notificationCount(t *testing.T, db *gorm.DB, userID string) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Model(&models.Notification{}).Where("user_id = ?", userID).Count(&count).Error)
	return count
}
