package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Server  ServerConfig
	Model   ModelConfig
	Static  StaticConfig
	Storage StorageConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

type ModelConfig struct {
	// Path to the pre-trained resume match classifier artifact. The artifact
	// is a load-time dependency only; nothing on the evaluate path invokes it.
	Path        string
	ArtifactURL string
}

type StaticConfig struct {
	Dir string
}

type StorageConfig struct {
	MaxFileSize int64
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Using default values.")
	}

	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "5000"),
			Env:  getEnv("ENV", "development"),
		},
		Model: ModelConfig{
			Path:        getEnv("MODEL_PATH", "./models/resume_match_classifier.pkl"),
			ArtifactURL: getEnv("MODEL_ARTIFACT_URL", ""),
		},
		Static: StaticConfig{
			Dir: getEnv("STATIC_DIR", "./web/dist"),
		},
		Storage: StorageConfig{
			MaxFileSize: getEnvAsInt64("MAX_FILE_SIZE", 10485760),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseInt(valueStr, 10, 64); err == nil {
		return value
	}
	return defaultValue
}
