package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/bububa/probe-go"
)

// EnvConfigPath names an optional YAML or TOML file read before the
// environment overrides.
const EnvConfigPath = "PROBE_CONFIG"

const (
	DefaultImagePath = "sample.jpg"
	DefaultPrompt    = "What is in this image? Describe it briefly."
)

type Config struct {
	Provider        string  `yaml:"provider" toml:"provider" validate:"required"`
	Model           string  `yaml:"model" toml:"model" validate:"required"`
	ImagePath       string  `yaml:"imagePath" toml:"imagePath" validate:"required"`
	MediaType       string  `yaml:"mediaType" toml:"mediaType"`
	Prompt          string  `yaml:"prompt" toml:"prompt" validate:"required"`
	MaxOutputTokens int     `yaml:"maxOutputTokens" toml:"maxOutputTokens" validate:"gt=0"`
	Temperature     float32 `yaml:"temperature" toml:"temperature" validate:"gte=0,lte=2"`
	Mode            string  `yaml:"mode" toml:"mode"`
	MaxRetries      int     `yaml:"maxRetries" toml:"maxRetries" validate:"gte=0"`
	BaseURL         string  `yaml:"baseURL" toml:"baseURL" validate:"omitempty,url"`
	// TimeoutSeconds bounds each HTTP call; zero means no timeout.
	TimeoutSeconds int    `yaml:"timeoutSeconds" toml:"timeoutSeconds" validate:"gte=0"`
	PreferIPv4     bool   `yaml:"preferIPv4" toml:"preferIPv4"`
	Verbose        bool   `yaml:"verbose" toml:"verbose"`
	LogLevel       string `yaml:"logLevel" toml:"logLevel" validate:"omitempty,oneof=debug info warn error"`

	// APIKey is only ever read from the environment.
	APIKey string `yaml:"-" toml:"-"`
}

func Default() Config {
	return Config{
		Provider:        probe.ProviderOpenAI,
		ImagePath:       DefaultImagePath,
		MediaType:       probe.DefaultMediaType,
		Prompt:          DefaultPrompt,
		MaxOutputTokens: probe.DefaultMaxOutputTokens,
		Temperature:     probe.DefaultTemperature,
		Mode:            probe.ModeDefault,
		MaxRetries:      probe.DefaultMaxRetries,
		LogLevel:        "info",
	}
}

// Load builds the configuration from defaults, the optional file at path and
// PROBE_* environment variables, in that order of precedence (last wins).
func Load(path string) (*Config, error) {
	cfg := Default()
	if path = strings.TrimSpace(path); path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return nil, err
		}
	}
	applyEnv(&cfg)

	provider, err := probe.ParseProvider(cfg.Provider)
	if err != nil {
		return nil, err
	}
	cfg.Provider = provider
	mode, err := probe.ParseMode(cfg.Mode)
	if err != nil {
		return nil, err
	}
	cfg.Mode = mode
	if cfg.Model == "" {
		cfg.Model = probe.DefaultModel(cfg.Provider)
	}
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	cfg.APIKey = apiKey(cfg.Provider)

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func loadFile(path string, cfg *Config) error {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return fmt.Errorf("config %s: %w", path, err)
		}
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("config %s: %w", path, err)
		}
	default:
		return fmt.Errorf("config %s: unsupported extension %q", path, ext)
	}
	return nil
}

func applyEnv(cfg *Config) {
	cfg.Provider = getEnv("PROBE_PROVIDER", cfg.Provider)
	cfg.Model = getEnv("PROBE_MODEL", cfg.Model)
	cfg.ImagePath = getEnv("PROBE_IMAGE_PATH", cfg.ImagePath)
	cfg.MediaType = getEnv("PROBE_MEDIA_TYPE", cfg.MediaType)
	cfg.Prompt = getEnv("PROBE_PROMPT", cfg.Prompt)
	cfg.MaxOutputTokens = getEnvInt("PROBE_MAX_OUTPUT_TOKENS", cfg.MaxOutputTokens)
	cfg.Temperature = getEnvFloat("PROBE_TEMPERATURE", cfg.Temperature)
	cfg.Mode = getEnv("PROBE_MODE", cfg.Mode)
	cfg.MaxRetries = getEnvInt("PROBE_MAX_RETRIES", cfg.MaxRetries)
	cfg.BaseURL = getEnv("PROBE_BASE_URL", cfg.BaseURL)
	cfg.TimeoutSeconds = getEnvInt("PROBE_TIMEOUT_SECONDS", cfg.TimeoutSeconds)
	cfg.PreferIPv4 = getEnvBool("PROBE_PREFER_IPV4", cfg.PreferIPv4)
	cfg.Verbose = getEnvBool("PROBE_VERBOSE", cfg.Verbose)
	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)
}

func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

func (c *Config) Params() probe.Params {
	return probe.Params{
		ImagePath:       c.ImagePath,
		MediaType:       c.MediaType,
		Prompt:          c.Prompt,
		Model:           c.Model,
		MaxOutputTokens: c.MaxOutputTokens,
		Temperature:     c.Temperature,
	}
}

func (c *Config) Options() []probe.Option {
	opts := []probe.Option{
		probe.WithMode(c.Mode),
		probe.WithMaxRetries(c.MaxRetries),
		probe.WithValidation(),
	}
	if c.Verbose {
		opts = append(opts, probe.WithVerbose())
	}
	return opts
}

func getEnv(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvFloat(key string, fallback float32) float32 {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseFloat(value, 32)
	if err != nil {
		return fallback
	}
	return float32(parsed)
}

func getEnvBool(key string, fallback bool) bool {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}
