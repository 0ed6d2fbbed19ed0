package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Backend selects which itinerary generator the engine uses.
type Backend string

const (
	BackendRemote Backend = "remote"
	BackendGemini Backend = "gemini"
)

// Config holds the configuration for the application.
type Config struct {
	PlannerAPIURL string
	Backend       Backend
	GeminiAPIKey  string
	HTTPTimeout   time.Duration

	// Telegram Config
	TelegramBotToken    string
	TelegramWebhookURL  string
	TelegramAllowUserID int64
	Port                string
}

// NewFromEnv creates a new Config object from environment variables.
func NewFromEnv() (*Config, error) {
	apiURL := os.Getenv("TRIP_PLANNER_API_URL")
	if apiURL == "" {
		apiURL = "http://localhost:8000"
	}

	backend := Backend(os.Getenv("TRIP_PLANNER_BACKEND"))
	if backend == "" {
		backend = BackendRemote
	}
	if backend != BackendRemote && backend != BackendGemini {
		return nil, fmt.Errorf("TRIP_PLANNER_BACKEND must be %q or %q, got %q", BackendRemote, BackendGemini, backend)
	}

	geminiAPIKey := os.Getenv("GEMINI_API_KEY")
	if backend == BackendGemini && geminiAPIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY environment variable not set")
	}

	timeout := 30 * time.Second
	if raw := os.Getenv("TRIP_PLANNER_HTTP_TIMEOUT"); raw != "" {
		seconds, err := strconv.Atoi(raw)
		if err != nil || seconds <= 0 {
			return nil, fmt.Errorf("TRIP_PLANNER_HTTP_TIMEOUT must be a positive number of seconds, got %q", raw)
		}
		timeout = time.Duration(seconds) * time.Second
	}

	// Telegram Config (Optional for CLI, required for Bot)
	telegramBotToken := os.Getenv("TELEGRAM_BOT_TOKEN")
	telegramWebhookURL := os.Getenv("TELEGRAM_WEBHOOK_URL")
	telegramAllowUserIDStr := os.Getenv("TELEGRAM_ALLOW_USER_ID")
	var telegramAllowUserID int64
	if telegramAllowUserIDStr != "" {
		fmt.Sscanf(telegramAllowUserIDStr, "%d", &telegramAllowUserID)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	return &Config{
		PlannerAPIURL:       apiURL,
		Backend:             backend,
		GeminiAPIKey:        geminiAPIKey,
		HTTPTimeout:         timeout,
		TelegramBotToken:    telegramBotToken,
		TelegramWebhookURL:  telegramWebhookURL,
		TelegramAllowUserID: telegramAllowUserID,
		Port:                port,
	}, nil
}
