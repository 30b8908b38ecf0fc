package main

import (
	"log"
	"log/slog"
	"moodmate/internal/config"
	"moodmate/internal/handler"
	"moodmate/pkg/llm"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("error loading config: %v", err)
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()})))

	client, err := llm.NewFromConfig(cfg.ClientConfig())
	if err != nil {
		log.Fatalf("error creating llm client: %v", err)
	}

	summarizer := llm.NewMoodSummarizer(client)
	moodHandler := handler.NewMoodHandler(summarizer)

	r := gin.Default()

	corsConfig := cfg.CORS()
	slog.Info("cors configured", "allow_all", corsConfig.AllowAllOrigins, "origins", corsConfig.AllowOrigins)
	r.Use(cors.New(corsConfig))

	r.GET("/", moodHandler.GetIndex)
	r.GET("/health", moodHandler.GetHealth)
	r.POST("/api/analyze-moods", moodHandler.AnalyzeMoods)

	slog.Info("starting api", "port", cfg.Port, "provider", client.Name(), "model", client.Model())

	err = r.Run(":" + cfg.Port)
	if err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}
