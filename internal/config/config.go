package config

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	"sustainalens/internal/scoring"
)

type Config struct {
	Env           string
	ListenAddr    string
	DatabaseURL   string
	AssessWorkers int
	PolicyFile    string
	LogFormat     string // json|console
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// Load reads configuration from the environment. A missing DATABASE_URL is
// reported as an error alongside a usable config so callers can decide
// whether to fall back to in-memory storage.
func Load() (Config, error) {
	cfg := Config{
		Env:           getenv("APP_ENV", "development"),
		ListenAddr:    getenv("LISTEN_ADDR", ":8080"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		AssessWorkers: getenvInt("ASSESS_WORKERS", 2),
		PolicyFile:    os.Getenv("POLICY_FILE"),
		LogFormat:     getenv("LOG_FORMAT", ""),
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "console"
		if cfg.Env == "production" {
			cfg.LogFormat = "json"
		}
	}
	if cfg.DatabaseURL == "" {
		return cfg, errors.New("DATABASE_URL not set")
	}
	return cfg, nil
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		var out int
		if _, err := fmt.Sscanf(v, "%d", &out); err == nil {
			return out
		}
	}
	return def
}

// LoadPolicy builds the scoring policy. An empty path selects the default
// policy. A file only needs to list the settings it changes; everything
// else keeps its default value. Unknown keys are rejected.
func LoadPolicy(path string) (*scoring.Policy, error) {
	if path == "" {
		return scoring.DefaultPolicy(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read policy file")
	}
	return ParsePolicy(data)
}

func ParsePolicy(data []byte) (*scoring.Policy, error) {
	spec := scoring.DefaultPolicySpec()
	defaults := spec.Ratings
	// yaml merges into existing maps; a ratings table must replace the default.
	spec.Ratings = nil
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&spec); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Mark(errors.Wrap(err, "parse policy"), scoring.ErrInvalidConfiguration)
	}
	if spec.Ratings == nil {
		spec.Ratings = defaults
	}
	return scoring.NewPolicy(spec)
}
