package common

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/si-akram/invoice-docai/constants"
)

// Config holds all application configuration
type Config struct {
	Database   DatabaseConfig
	Server     ServerConfig
	GCP        GCPConfig
	Storage    StorageConfig
	Validation ValidationConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	DSN              string
	MaxConns         int32
	MinConns         int32
	MaxConnLifetime  time.Duration
	MaxConnIdleTime  time.Duration
	DialTimeout      time.Duration
	StatementTimeout time.Duration
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	GRPCAddr string
}

// GCPConfig identifies the project and the Document AI processor
type GCPConfig struct {
	ProjectID   string
	Location    string
	ProcessorID string
}

// StorageConfig names the invoice bucket and its lifecycle folders
type StorageConfig struct {
	Bucket          string
	InputFolder     string
	ProcessedFolder string
	FailedFolder    string
}

// ValidationConfig tunes the entity validation step
type ValidationConfig struct {
	RequiredEntities    []string
	ConfidenceThreshold float64
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			DSN:              getEnv("DB_URL", ""),
			MaxConns:         getEnvAsInt32("DB_MAX_CONNS", 20),
			MinConns:         getEnvAsInt32("DB_MIN_CONNS", 5),
			MaxConnLifetime:  getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
			MaxConnIdleTime:  getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
			DialTimeout:      getEnvAsDuration("DB_DIAL_TIMEOUT", 3*time.Second),
			StatementTimeout: getEnvAsDuration("DB_STATEMENT_TIMEOUT", 0),
		},
		Server: ServerConfig{
			GRPCAddr: getEnv("GRPC_ADDR", ":8080"),
		},
		GCP: GCPConfig{
			ProjectID:   getEnv("GCP_PROJECT_ID", ""),
			Location:    getEnv("DOCAI_LOCATION", "us"),
			ProcessorID: getEnv("DOCAI_PROCESSOR_ID", ""),
		},
		Storage: StorageConfig{
			Bucket:          getEnv("GCS_BUCKET", ""),
			InputFolder:     getEnv("GCS_INPUT_FOLDER", "input"),
			ProcessedFolder: getEnv("GCS_PROCESSED_FOLDER", "processed"),
			FailedFolder:    getEnv("GCS_FAILED_FOLDER", "failed"),
		},
		Validation: ValidationConfig{
			RequiredEntities:    getEnvAsList("REQUIRED_ENTITIES", constants.RequiredEntities),
			ConfidenceThreshold: getEnvAsFloat64("CONFIDENCE_THRESHOLD", constants.MinConfidenceThreshold),
		},
	}
}

// Validate reports the first missing setting a run cannot proceed without.
func (c *Config) Validate() error {
	switch {
	case c.GCP.ProjectID == "":
		return fmt.Errorf("GCP_PROJECT_ID is required")
	case c.GCP.ProcessorID == "":
		return fmt.Errorf("DOCAI_PROCESSOR_ID is required")
	case c.Storage.Bucket == "":
		return fmt.Errorf("GCS_BUCKET is required")
	case c.Validation.ConfidenceThreshold < 0 || c.Validation.ConfidenceThreshold > 1:
		return fmt.Errorf("CONFIDENCE_THRESHOLD must be within [0, 1], got %v", c.Validation.ConfidenceThreshold)
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt32(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intVal)
		}
	}
	return defaultValue
}

func getEnvAsFloat64(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
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

func getEnvAsList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
