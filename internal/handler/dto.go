package handler

import "moodmate/internal/model"

type AnalyzeMoodsRequest struct {
	Moods []model.MoodEntry `json:"moods"`
}

type AnalyzeMoodsResponse struct {
	Summary string `json:"summary"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type HealthResponse struct {
	Status   string `json:"status"`
	Provider string `json:"provider"`
	Model    string `json:"model"`
}
