package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	Keys      APIKeys
	Rag       RagConfig
	RateLimit RateLimitConfig
}

type AppConfig struct {
	Port               string
	BaseURL            string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
}

type DatabaseConfig struct {
	Connection string
}

type APIKeys struct {
	OpenAI        string
	OpenAIBaseURL string
}

type RagConfig struct {
	Collection          string
	EmbeddingModel      string
	EmbeddingDimensions int
	CompletionModel     string
	MaxTokens           int
	Temperature         float64
	TopK                int
	IndexTopicName      string
}

// RateLimitConfig mirrors the upstream quota. Loaded but not enforced locally;
// rate limiting belongs to the edge.
type RateLimitConfig struct {
	PerMinute int
	PerMonth  int
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, using system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "8000"),
			BaseURL:            getEnv("APP_BASE_URL", "http://localhost:8000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Keys: APIKeys{
			OpenAI:        getEnv("OPENAI_API_KEY", ""),
			OpenAIBaseURL: getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
		},
		Rag: RagConfig{
			Collection:          getEnv("ROBOTICS_CONTENT_COLLECTION", "robotics_content"),
			EmbeddingModel:      getEnv("ROBOTICS_EMBEDDING_MODEL", "text-embedding-3-small"),
			EmbeddingDimensions: getEnvAsInt("ROBOTICS_EMBEDDING_DIMENSIONS", 1536),
			CompletionModel:     getEnv("ROBOTICS_COMPLETION_MODEL", "gpt-3.5-turbo"),
			MaxTokens:           getEnvAsInt("ROBOTICS_MAX_TOKENS", 500),
			Temperature:         getEnvAsFloat("ROBOTICS_TEMPERATURE", 0.3),
			TopK:                getEnvAsInt("ROBOTICS_TOP_K", 5),
			IndexTopicName:      getEnv("INDEX_PASSAGE_TOPIC_NAME", "INDEX_PASSAGE"),
		},
		RateLimit: RateLimitConfig{
			PerMinute: getEnvAsInt("RATE_LIMIT_PER_MINUTE", 10),
			PerMonth:  getEnvAsInt("RATE_LIMIT_PER_MONTH", 1000),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsFloat(key string, fallback float64) float64 {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseFloat(strValue, 64); err == nil {
		return value
	}
	return fallback
}
