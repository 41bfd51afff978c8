package config

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Backend selects where image bytes are stored.
type Backend string

const (
	BackendLocal Backend = "local"
	BackendCloud Backend = "cloud"
)

// Config holds every process-level setting. It is built once in main and
// passed to the components that need it; nothing mutates it afterwards.
type Config struct {
	ListenAddr  string
	DatabaseDSN string

	ArtifactBackend Backend
	BlobRoot        string

	S3Endpoint  string
	S3AccessKey string
	S3SecretKey string
	S3Bucket    string
	S3UseSSL    bool

	RedisURL string

	CORSOrigins []string

	// TestMode exposes the bulk reset endpoint. Never enable in production.
	TestMode bool
}

// Load reads the environment into a Config. A .env file is loaded first when
// present, matching how the server is run in development.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file loaded:", err)
	}

	cfg := Config{
		ListenAddr:      getEnv("LISTEN_ADDR", ":8000"),
		DatabaseDSN:     os.Getenv("DB_CONNECTION_STRING"),
		ArtifactBackend: Backend(getEnv("DEV_ENVIRONMENT", string(BackendLocal))),
		BlobRoot:        getEnv("BLOB_ROOT", "blob"),
		S3Endpoint:      os.Getenv("S3_ENDPOINT"),
		S3AccessKey:     os.Getenv("S3_ACCESS_KEY"),
		S3SecretKey:     os.Getenv("S3_SECRET_KEY"),
		S3Bucket:        getEnv("S3_BUCKET", "images"),
		S3UseSSL:        os.Getenv("S3_USE_SSL") == "true",
		RedisURL:        os.Getenv("REDIS_URL"),
		TestMode:        os.Getenv("TEST_MODE") == "true",
	}

	if origins := os.Getenv("BACKEND_CORS_ORIGINS"); origins != "" {
		for _, o := range strings.Split(origins, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.CORSOrigins = append(cfg.CORSOrigins, o)
			}
		}
	}

	if cfg.DatabaseDSN == "" {
		return Config{}, fmt.Errorf("DB_CONNECTION_STRING environment variable is required")
	}
	switch cfg.ArtifactBackend {
	case BackendLocal, BackendCloud:
	default:
		return Config{}, fmt.Errorf("DEV_ENVIRONMENT must be %q or %q, got %q",
			BackendLocal, BackendCloud, cfg.ArtifactBackend)
	}
	if cfg.ArtifactBackend == BackendCloud && cfg.S3Endpoint == "" {
		return Config{}, fmt.Errorf("S3_ENDPOINT is required when DEV_ENVIRONMENT=cloud")
	}

	return cfg, nil
}

// AllowsOrigin reports whether CORS requests from origin are accepted.
func (c Config) AllowsOrigin(origin string) bool {
	for _, o := range c.CORSOrigins {
		if o == "*" || o == origin {
			return true
		}
	}
	return false
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
