package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	Environment string

	// Storage medium: "redis" or "memory"
	StoreBackend string
	RedisURL     string

	Events EventConfig

	Assistant AssistantConfig
}

// AssistantConfig points the chat relay at a generative text endpoint.
type AssistantConfig struct {
	APIURL  string
	APIKey  string
	Model   string
	Timeout time.Duration
}

func LoadConfig() (*Config, error) {
	// A missing .env file is fine; the environment may carry everything.
	_ = godotenv.Load()

	return &Config{
		Port:         getEnv("PORT", "8080"),
		Environment:  getEnv("ENVIRONMENT", "development"),
		StoreBackend: getEnv("STORE_BACKEND", "redis"),
		RedisURL:     getEnv("REDIS_URL", "redis://localhost:6379"),
		Events: EventConfig{
			Enabled:           getEnv("EVENTS_ENABLED", "true") == "true",
			Publisher:         getEnv("EVENTS_PUBLISHER", "gochannel"),
			KafkaBrokers:      getEnv("KAFKA_BROKERS", "localhost:9092"),
			AnnouncementTopic: getEnv("ANNOUNCEMENT_TOPIC", "classroom-events"),
		},
		Assistant: AssistantConfig{
			APIURL:  getEnv("ASSISTANT_API_URL", "https://generativelanguage.googleapis.com/v1beta/models"),
			APIKey:  getEnv("ASSISTANT_API_KEY", ""),
			Model:   getEnv("ASSISTANT_MODEL", "gemini-2.0-flash"),
			Timeout: 30 * time.Second,
		},
	}, nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
