package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Config represents the global ~/.martbot/config.toml.
type Config struct {
	DefaultSession string `toml:"default_session"`

	// Timezone is the IANA zone used for all "today" comparisons
	// (daily rate window, global send counter, quiet hours). Empty
	// means the process-local zone.
	Timezone string `toml:"timezone"`

	Store     Store     `toml:"store"`
	Generator Generator `toml:"generator"`
}

// Store identifies the shop the bot answers for. Used in the contact
// card nudge and exposed to the response generator as store details.
type Store struct {
	Name    string `toml:"name"`
	Phone   string `toml:"phone"`
	URL     string `toml:"url"`
	Address string `toml:"address"`
}

// Generator configures the chat-completions backend.
type Generator struct {
	BaseURL string `toml:"base_url"`
	Model   string `toml:"model"`
	// APIKeyEnv names the environment variable holding the API key.
	// The variable may be set in the shell or in ~/.martbot/.env.
	APIKeyEnv string `toml:"api_key_env"`
	// TimeoutSeconds bounds a single generation call, tool turns included.
	TimeoutSeconds int `toml:"timeout_seconds"`
}

// Defaults applied when fields are absent from the file.
const (
	DefaultGeneratorBaseURL = "https://api.openai.com/v1"
	DefaultGeneratorModel   = "gpt-4o-mini"
	DefaultAPIKeyEnv        = "MARTBOT_API_KEY"
	DefaultTimeoutSeconds   = 60
)

// Load reads config from the given path. Returns zero config and error if file missing.
func Load(path string) (*Config, error) {
	var cfg Config
	_, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	return &cfg, nil
}

// Default returns the config used when no config file exists yet.
func Default() *Config {
	var cfg Config
	cfg.applyDefaults()
	return &cfg
}

// LoadEnv loads a dotenv file into the process environment if it exists.
// Variables already set in the environment win.
func LoadEnv(path string) error {
	if _, err := os.Stat(path); err != nil {
		return nil
	}
	return godotenv.Load(path)
}

// Save writes config to the given path, creating parent dirs as needed.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}
	encErr := toml.NewEncoder(f).Encode(cfg)
	if closeErr := f.Close(); closeErr != nil && encErr == nil {
		return closeErr
	}
	return encErr
}

// Location resolves the configured timezone, falling back to the
// process-local zone when unset or unknown.
func (c *Config) Location() *time.Location {
	if c == nil || c.Timezone == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

// APIKey returns the generator API key from the configured env var.
func (g Generator) APIKey() string {
	return os.Getenv(g.APIKeyEnv)
}

// Timeout returns the generation timeout as a duration.
func (g Generator) Timeout() time.Duration {
	return time.Duration(g.TimeoutSeconds) * time.Second
}

func (c *Config) applyDefaults() {
	if c.Generator.BaseURL == "" {
		c.Generator.BaseURL = DefaultGeneratorBaseURL
	}
	if c.Generator.Model == "" {
		c.Generator.Model = DefaultGeneratorModel
	}
	if c.Generator.APIKeyEnv == "" {
		c.Generator.APIKeyEnv = DefaultAPIKeyEnv
	}
	if c.Generator.TimeoutSeconds <= 0 {
		c.Generator.TimeoutSeconds = DefaultTimeoutSeconds
	}
}
