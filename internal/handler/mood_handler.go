package handler

import (
	"context"
	"errors"
	"log/slog"
	"moodmate/internal/model"
	"moodmate/pkg/llm"
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	indexMessage       = "Homepage of Backend Moodmate"
	invalidBodyMessage = "Invalid request body."
)

type MoodSummaryService interface {
	Summarize(ctx context.Context, entries []model.MoodEntry) (string, error)
	Provider() string
	Model() string
}

type MoodHandler struct {
	summarizer MoodSummaryService
}

func NewMoodHandler(summarizer MoodSummaryService) *MoodHandler {
	return &MoodHandler{summarizer: summarizer}
}

func (h *MoodHandler) GetIndex(c *gin.Context) {
	c.String(http.StatusOK, indexMessage)
}

func (h *MoodHandler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:   "healthy",
		Provider: h.summarizer.Provider(),
		Model:    h.summarizer.Model(),
	})
}

func (h *MoodHandler) AnalyzeMoods(c *gin.Context) {
	var req AnalyzeMoodsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("invalid analyze moods request", "error", err)
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: invalidBodyMessage})
		return
	}

	if len(req.Moods) == 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: llm.NoMoodsMessage})
		return
	}

	summary, err := h.summarizer.Summarize(c.Request.Context(), req.Moods)
	if err != nil {
		c.JSON(statusFor(err), ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, AnalyzeMoodsResponse{Summary: summary})
}

func statusFor(err error) int {
	var validationErr *llm.ValidationError
	if errors.As(err, &validationErr) {
		return http.StatusBadRequest
	}

	var externalErr *llm.ExternalServiceError
	if errors.As(err, &externalErr) {
		return http.StatusInternalServerError
	}

	slog.Error("unclassified summarize error", "error", err)
	return http.StatusInternalServerError
}
