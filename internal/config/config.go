package config

import (
	"errors"
	"flag"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	APIKey    string
	Model     string
	DBPath    string
	RPS       float64
	Burst     int
	CacheSize int
}

// Load reads .env (when present), the environment and flags, in that
// order of increasing precedence.
func Load() (*Config, error) {
	_ = godotenv.Load()

	dbPath := flag.String("db", "", "path to the garden database file")
	model := flag.String("model", "", "Gemini model name")
	flag.Parse()

	cfg := &Config{
		APIKey:    firstNonEmpty(os.Getenv("GEMINI_API_KEY"), os.Getenv("GOOGLE_API_KEY")),
		Model:     firstNonEmpty(*model, strings.TrimSpace(os.Getenv("GREENTHUMB_MODEL")), "gemini-2.5-flash"),
		DBPath:    firstNonEmpty(*dbPath, strings.TrimSpace(os.Getenv("GREENTHUMB_DB")), defaultDBPath()),
		RPS:       envFloat("LLM_RPS"),
		Burst:     envInt("LLM_BURST"),
		CacheSize: 64,
	}
	if v := envInt("IDENTIFY_CACHE_SIZE"); v != 0 {
		cfg.CacheSize = v
	}
	if cfg.APIKey == "" {
		return nil, errors.New("config: GEMINI_API_KEY is not set")
	}
	return cfg, nil
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "greenthumb.db"
	}
	return home + "/.greenthumb/garden.db"
}

func envFloat(key string) float64 {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return 0
}

func envInt(key string) int {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return 0
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}
