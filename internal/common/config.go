package common

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Storage StorageConfig
	Raster  RasterConfig
	Vision  VisionConfig
}

// StorageConfig holds filesystem and database configuration
type StorageConfig struct {
	DataDir  string // root for patterns/, thumbnails/ and the catalog db
	WatchDir string // optional drop directory to auto-ingest from
}

// RasterConfig holds page-rendering configuration
type RasterConfig struct {
	Pdftoppm string // binary name or absolute path; if empty -> "pdftoppm"
	DPI      int    // rasterization DPI, default 150
}

// VisionConfig holds vision-model configuration
type VisionConfig struct {
	BaseURL  string
	Model    string
	Timeout  time.Duration
	MaxPages int // pages sent per enrichment call
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Storage: StorageConfig{
			DataDir:  getEnv("DATA_DIR", "./data"),
			WatchDir: getEnv("WATCH_DIR", ""),
		},
		Raster: RasterConfig{
			Pdftoppm: getEnv("PDFTOPPM_BIN", "pdftoppm"),
			DPI:      getEnvAsInt("RASTER_DPI", 150),
		},
		Vision: VisionConfig{
			BaseURL:  getEnv("OLLAMA_URL", "http://localhost:11434"),
			Model:    getEnv("VISION_MODEL", "llava:7b"),
			Timeout:  getEnvAsDuration("VISION_TIMEOUT", 2*time.Minute),
			MaxPages: getEnvAsInt("VISION_MAX_PAGES", 10),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// ValidateConfig validates the loaded configuration
func (c *Config) Validate() error {
	if c.Storage.DataDir == "" {
		return NewAppError("CONFIG_ERROR", "DATA_DIR is required", ErrInvalidInput)
	}
	if c.Vision.BaseURL == "" {
		return NewAppError("CONFIG_ERROR", "OLLAMA_URL is required", ErrInvalidInput)
	}
	return nil
}
