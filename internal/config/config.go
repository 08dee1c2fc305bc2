// Package config loads service settings from defaults, an optional YAML
// file, a .env file and the process environment, in that order.
package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/aidan-labs/UST-Dining-Hall-Menus/internal/menu"
	"github.com/aidan-labs/UST-Dining-Hall-Menus/internal/schedule"
	"github.com/aidan-labs/UST-Dining-Hall-Menus/internal/storage"
)

const (
	SourceFile = "file"
	SourceR2   = "r2"
)

type Config struct {
	Env         string     `yaml:"env"`
	Port        int        `yaml:"port"`
	LogLevel    string     `yaml:"log_level"`
	CORSOrigins []string   `yaml:"cors_origins"`
	Menus       MenuConfig `yaml:"menus"`
	R2          R2Config   `yaml:"r2"`
}

type MenuConfig struct {
	Source    string            `yaml:"source"`
	Dir       string            `yaml:"dir"`
	Refresh   time.Duration     `yaml:"refresh"`
	Watch     bool              `yaml:"watch"`
	Documents map[string]string `yaml:"documents"`
}

type R2Config struct {
	Endpoint  string `yaml:"endpoint"`
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`
	Bucket    string `yaml:"bucket"`
	Prefix    string `yaml:"prefix"`
}

func DefaultConfig() *Config {
	return &Config{
		Env:         "development",
		Port:        8000,
		LogLevel:    "info",
		CORSOrigins: []string{"http://localhost:3000", "http://localhost:5173"},
		Menus: MenuConfig{
			Source: SourceFile,
			Dir:    "src/data",
			Documents: map[string]string{
				string(schedule.HallView):        "current-view-menu.json",
				string(schedule.HallNorthsider):  "current-northsider-menu.json",
				string(schedule.HallCornerstone): "current-cornerstone-menu.json",
			},
		},
	}
}

// LoadEnv reads .env outside production. A missing file is not an error.
func LoadEnv() {
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}
}

// Load reads the YAML file at path over the defaults and then applies
// environment overrides. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("failed to read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv("APP_ENV"); v != "" {
		c.Env = v
	}
	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid PORT %q: %w", v, err)
		}
		c.Port = port
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv("CORS_ORIGINS"); v != "" {
		c.CORSOrigins = splitList(v)
	}

	if v := os.Getenv("MENU_SOURCE"); v != "" {
		c.Menus.Source = strings.ToLower(v)
	}
	if v := os.Getenv("MENU_DIR"); v != "" {
		c.Menus.Dir = v
	}
	if v := os.Getenv("MENU_REFRESH"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid MENU_REFRESH %q: %w", v, err)
		}
		c.Menus.Refresh = d
	}
	if v := os.Getenv("MENU_WATCH"); v != "" {
		watch, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid MENU_WATCH %q: %w", v, err)
		}
		c.Menus.Watch = watch
	}

	// R2
	if v := os.Getenv("R2_ENDPOINT"); v != "" {
		c.R2.Endpoint = v
	}
	if v := os.Getenv("R2_ACCESS_KEY"); v != "" {
		c.R2.AccessKey = v
	}
	if v := os.Getenv("R2_SECRET_KEY"); v != "" {
		c.R2.SecretKey = v
	}
	if v := os.Getenv("R2_BUCKET_NAME"); v != "" {
		c.R2.Bucket = v
	}
	if v := os.Getenv("R2_PREFIX"); v != "" {
		c.R2.Prefix = v
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Validate fails fast on settings that would only break at first load.
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("port %d out of range", c.Port)
	}

	switch c.Menus.Source {
	case SourceFile:
		if c.Menus.Dir == "" {
			return errors.New("menus.dir is required for the file source")
		}
	case SourceR2:
		missing := []string{}
		for name, v := range map[string]string{
			"R2_ENDPOINT":    c.R2.Endpoint,
			"R2_ACCESS_KEY":  c.R2.AccessKey,
			"R2_SECRET_KEY":  c.R2.SecretKey,
			"R2_BUCKET_NAME": c.R2.Bucket,
		} {
			if v == "" {
				missing = append(missing, name)
			}
		}
		if len(missing) > 0 {
			slices.Sort(missing)
			return fmt.Errorf("missing r2 settings: %s", strings.Join(missing, ", "))
		}
	default:
		return fmt.Errorf("unknown menu source %q", c.Menus.Source)
	}

	if c.Menus.Watch && c.Menus.Source != SourceFile {
		return errors.New("menus.watch needs the file source")
	}
	if c.Menus.Refresh < 0 {
		return errors.New("menus.refresh must not be negative")
	}

	for hall, name := range c.Menus.Documents {
		h, ok := schedule.ParseHall(hall)
		if !ok || h.IsWildcard() {
			return fmt.Errorf("unknown hall %q in menus.documents", hall)
		}
		if err := menu.ValidateDocumentName(name); err != nil {
			return fmt.Errorf("menus.documents.%s: %w", hall, err)
		}
	}
	return nil
}

// Documents returns the document name configured for each hall.
func (c *Config) Documents() map[schedule.Hall]string {
	out := make(map[schedule.Hall]string, len(c.Menus.Documents))
	for hall, name := range c.Menus.Documents {
		if h, ok := schedule.ParseHall(hall); ok && !h.IsWildcard() {
			out[h] = name
		}
	}
	return out
}

func (c *Config) R2Options() storage.R2Options {
	return storage.R2Options{
		Endpoint:  c.R2.Endpoint,
		AccessKey: c.R2.AccessKey,
		SecretKey: c.R2.SecretKey,
		Bucket:    c.R2.Bucket,
		Prefix:    c.R2.Prefix,
	}
}

// OpenStore returns the document store selected by menus.source.
func (c *Config) OpenStore(ctx context.Context) (storage.Store, error) {
	if c.Menus.Source == SourceR2 {
		client, err := storage.NewR2Client(ctx, c.R2Options())
		if err != nil {
			return nil, fmt.Errorf("r2 init failed: %w", err)
		}
		return client, nil
	}
	return storage.NewFileStore(c.Menus.Dir), nil
}

func (c *Config) Addr() string {
	return ":" + strconv.Itoa(c.Port)
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
