package config

import (
	"flag"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

const (
	// StorageBolt selects the BoltDB card store.
	StorageBolt = "bolt"
	// StorageSQLite selects the SQLite card store.
	StorageSQLite = "sqlite"
)

// Config carries everything the CLI needs. Values come from .env, then the
// environment, then flags; flags win only when the env left them empty.
type Config struct {
	// GeminiAPIKey is the credential for the extraction service. Its
	// absence is not checked here: it is a hard error at the point of
	// first extraction use, never at startup.
	GeminiAPIKey string `env:"GEMINI_API_KEY"`
	GeminiModel  string `env:"GEMINI_MODEL"`
	DBPath       string `env:"CARDWALLET_DB"`
	Storage      string `env:"CARDWALLET_STORAGE"`
	Version      bool   `env:"-"` // show version and exit (flag only)
}

// NewConfig loads configuration and parses command-line flags.
func NewConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{}
	_ = env.Parse(cfg)

	flag.StringVar(&cfg.GeminiModel, "model", cfg.GeminiModel, "Gemini model for card extraction")
	flag.StringVar(&cfg.DBPath, "db", cfg.DBPath, "path to the local card database")
	flag.StringVar(&cfg.Storage, "storage", cfg.Storage, "storage backend: bolt or sqlite")
	flag.BoolVar(&cfg.Version, "version", cfg.Version, "show version information and exit")

	flag.Parse()

	if cfg.Storage == "" {
		cfg.Storage = StorageBolt
	}
	if cfg.DBPath == "" {
		home, _ := os.UserHomeDir()
		cfg.DBPath = filepath.Join(home, ".cardwallet", "cards.db")
	}

	return cfg
}
