package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DatabaseURL string

	// Queue driver: "postgres" (shared between server and worker) or
	// "memory" (single process; the server runs an embedded executor).
	QueueDriver string

	// Executor knobs.
	WorkerCount     int
	JobTimeout      time.Duration
	ResultTTL       time.Duration
	PollInterval    time.Duration
	RenderOutputDir string

	// OpenRouter (AI improvement).
	OpenRouterAPIKey   string
	OpenRouterBase     string
	OpenRouterModel    string
	OpenRouterAppTitle string
	OpenRouterReferer  string

	JWTSecret     string
	JWTIssuer     string
	JWTTTLMinutes int
}

// Load reads environment variables, optionally from a .env file if present.
func Load() Config {
	// Try to load .env if it exists; ignore error if file not found
	_ = godotenv.Load()

	cfg := Config{
		Port:        getEnv("PORT", "8080"),
		DatabaseURL: os.Getenv("DATABASE_URL"),

		QueueDriver: getEnv("QUEUE_DRIVER", "postgres"),

		WorkerCount:     getEnvInt("WORKER_COUNT", 4),
		JobTimeout:      getEnvDuration("JOB_TIMEOUT", 5*time.Minute),
		ResultTTL:       getEnvDuration("RESULT_TTL", time.Hour),
		PollInterval:    getEnvDuration("POLL_INTERVAL", 500*time.Millisecond),
		RenderOutputDir: getEnv("RENDER_OUTPUT_DIR", "generated"),

		OpenRouterAPIKey:   os.Getenv("OPENROUTER_API_KEY"),
		OpenRouterBase:     os.Getenv("OPENROUTER_BASE_URL"),
		OpenRouterModel:    getEnv("OPENROUTER_MODEL", "qwen/qwen2.5-32b-instruct"),
		OpenRouterAppTitle: getEnv("OPENROUTER_APP_TITLE", "resumeq"),
		OpenRouterReferer:  os.Getenv("OPENROUTER_REFERER"),

		JWTSecret:     getEnv("JWT_SECRET", "dev-secret-change"),
		JWTIssuer:     getEnv("JWT_ISSUER", "resumeq"),
		JWTTTLMinutes: getEnvInt("JWT_TTL_MINUTES", 60),
	}
	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
