package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/bridgegen/backend/internal/repositories"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// WordHandler serves the word-of-day prompts
type WordHandler struct {
	wordRepository repositories.WordRepository
}

// NewWordHandler creates a new WordHandler
func NewWordHandler(wordRepo repositories.WordRepository) *WordHandler {
	return &WordHandler{wordRepository: wordRepo}
}

// RegisterWordRoutes registers word-of-day routes
func (h *WordHandler) RegisterWordRoutes(g *echo.Group) {
	g.GET("/words", h.GetWords)
	g.GET("/words/latest", h.GetLatestWord)
	g.GET("/words/:id", h.GetWordByID)
}

// GetWords returns all word prompts, newest first
func (h *WordHandler) GetWords(c echo.Context) error {
	words, err := h.wordRepository.GetWords()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, words)
}

// GetLatestWord returns the current word prompt
func (h *WordHandler) GetLatestWord(c echo.Context) error {
	word, err := h.wordRepository.GetLatestWord()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "No word of the day")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, word)
}

// GetWordByID returns a single word prompt
func (h *WordHandler) GetWordByID(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid word ID")
	}
	word, err := h.wordRepository.GetWordByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Word not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, word)
}
