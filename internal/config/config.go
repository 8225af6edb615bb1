package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"time"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/ytget/media-browser/internal/api"
	"github.com/ytget/media-browser/internal/model"
)

// ErrInvalidConfig is returned when a loaded or edited configuration fails validation
var ErrInvalidConfig = errors.New("invalid config")

// Thumbnail worker bounds
const (
	DefaultThumbnailWorkers = 4
	MinThumbnailWorkers     = 1
	MaxThumbnailWorkers     = 16
)

// Default values
const (
	DefaultLanguage   = "system"
	DefaultLogLevel   = "info"
	DefaultConfigFile = "media-browser.yaml"
)

// SupportedLanguages lists the accepted ui.language values
var SupportedLanguages = []string{"system", "en", "ru", "pt"}

// Config is the file configuration of the application
type Config struct {
	API     APIConfig     `yaml:"api"`
	UI      UIConfig      `yaml:"ui"`
	Logging LoggingConfig `yaml:"logging"`
}

// APIConfig describes the remote endpoints
type APIConfig struct {
	CategoriesURL string        `yaml:"categories_url"`
	MediaURL      string        `yaml:"media_url"`
	Timeout       time.Duration `yaml:"timeout"`
	UserAgent     string        `yaml:"user_agent"`
}

// UIConfig holds front-end options
type UIConfig struct {
	DefaultCategory  string `yaml:"default_category"`
	ThumbnailWorkers int    `yaml:"thumbnail_workers"`
	Language         string `yaml:"language"`
}

// LoggingConfig controls the zap logger
type LoggingConfig struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		API: APIConfig{
			CategoriesURL: api.DefaultCategoriesURL,
			MediaURL:      api.DefaultMediaURL,
			Timeout:       api.DefaultTimeout,
			UserAgent:     api.DefaultUserAgent,
		},
		UI: UIConfig{
			DefaultCategory:  model.AllCategoryID,
			ThumbnailWorkers: DefaultThumbnailWorkers,
			Language:         DefaultLanguage,
		},
		Logging: LoggingConfig{
			Level: DefaultLogLevel,
		},
	}
}

// Load reads a YAML file on top of the defaults. An empty path or a missing
// file yields the defaults. Unknown keys are rejected.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := decodeKnownFields(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func decodeKnownFields(data []byte, out any) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil {
		// an empty document leaves the defaults untouched
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}
	return nil
}

// Validate checks every field and reports all problems at once
func (c Config) Validate() error {
	var problems []error

	if err := api.ValidateURL(c.API.CategoriesURL); err != nil {
		problems = append(problems, fmt.Errorf("api.categories_url: %w", err))
	}
	if err := api.ValidateURL(c.API.MediaURL); err != nil {
		problems = append(problems, fmt.Errorf("api.media_url: %w", err))
	}
	if c.API.Timeout <= 0 {
		problems = append(problems, fmt.Errorf("api.timeout must be positive, got %s", c.API.Timeout))
	}
	if c.UI.DefaultCategory == "" {
		problems = append(problems, errors.New("ui.default_category must not be empty"))
	}
	if c.UI.ThumbnailWorkers < MinThumbnailWorkers || c.UI.ThumbnailWorkers > MaxThumbnailWorkers {
		problems = append(problems, fmt.Errorf("ui.thumbnail_workers must be between %d and %d, got %d",
			MinThumbnailWorkers, MaxThumbnailWorkers, c.UI.ThumbnailWorkers))
	}
	if !slices.Contains(SupportedLanguages, c.UI.Language) {
		problems = append(problems, fmt.Errorf("ui.language %q is not one of %v", c.UI.Language, SupportedLanguages))
	}
	if _, err := zapcore.ParseLevel(c.Logging.Level); err != nil {
		problems = append(problems, fmt.Errorf("logging.level: %w", err))
	}

	if len(problems) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(problems...))
}

// Marshal renders the configuration as YAML
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
