package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aidan-labs/UST-Dining-Hall-Menus/internal/schedule"
)

// clearEnv blanks every variable the loader reads so the host environment
// cannot leak into a test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"APP_ENV", "PORT", "LOG_LEVEL", "CORS_ORIGINS",
		"MENU_SOURCE", "MENU_DIR", "MENU_REFRESH", "MENU_WATCH",
		"R2_ENDPOINT", "R2_ACCESS_KEY", "R2_SECRET_KEY", "R2_BUCKET_NAME", "R2_PREFIX",
	} {
		t.Setenv(k, "")
	}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, DefaultConfig().Port, cfg.Port)
	assert.Equal(t, SourceFile, cfg.Menus.Source)
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, "current-view-menu.json", cfg.Documents()[schedule.HallView])
}

func TestLoad_YAML(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
port: 9090
log_level: debug
menus:
  dir: /srv/menus
  refresh: 15m
  documents:
    view: view.json
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "/srv/menus", cfg.Menus.Dir)
	assert.Equal(t, 15*time.Minute, cfg.Menus.Refresh)
	assert.Equal(t, "view.json", cfg.Documents()[schedule.HallView])
	assert.Equal(t, ":9090", cfg.Addr())
}

func TestLoad_BadYAML(t *testing.T) {
	path := writeConfig(t, "port: [not a number")

	_, err := Load(path)
	assert.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	clearEnv(t)

	t.Run("env wins over file", func(t *testing.T) {
		t.Setenv("PORT", "7070")
		t.Setenv("MENU_SOURCE", "R2")
		t.Setenv("MENU_REFRESH", "1h")
		t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example,")
		t.Setenv("R2_BUCKET_NAME", "menus")
		t.Setenv("MENU_WATCH", "true")

		cfg, err := Load(writeConfig(t, "port: 9090\n"))
		require.NoError(t, err)

		assert.Equal(t, 7070, cfg.Port)
		assert.Equal(t, SourceR2, cfg.Menus.Source)
		assert.Equal(t, time.Hour, cfg.Menus.Refresh)
		assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
		assert.Equal(t, "menus", cfg.R2.Bucket)
		assert.True(t, cfg.Menus.Watch)
	})

	t.Run("bad port", func(t *testing.T) {
		t.Setenv("PORT", "eighty")

		_, err := Load("")
		assert.Error(t, err)
	})

	t.Run("bad watch flag", func(t *testing.T) {
		t.Setenv("MENU_WATCH", "sometimes")

		_, err := Load("")
		assert.Error(t, err)
	})

	t.Run("bad refresh", func(t *testing.T) {
		t.Setenv("MENU_REFRESH", "soon")

		_, err := Load("")
		assert.Error(t, err)
	})
}

func TestValidate(t *testing.T) {
	t.Run("r2 needs credentials", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Menus.Source = SourceR2
		cfg.R2.Endpoint = "https://example.r2.cloudflarestorage.com"

		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "R2_ACCESS_KEY, R2_BUCKET_NAME, R2_SECRET_KEY")
	})

	t.Run("r2 complete", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Menus.Source = SourceR2
		cfg.R2 = R2Config{Endpoint: "e", AccessKey: "a", SecretKey: "s", Bucket: "b"}

		assert.NoError(t, cfg.Validate())
		assert.Equal(t, "b", cfg.R2Options().Bucket)
	})

	t.Run("watch needs file source", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Menus.Source = SourceR2
		cfg.R2 = R2Config{Endpoint: "e", AccessKey: "a", SecretKey: "s", Bucket: "b"}
		cfg.Menus.Watch = true
		assert.Error(t, cfg.Validate())
	})

	t.Run("unknown source", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Menus.Source = "ftp"
		assert.Error(t, cfg.Validate())
	})

	t.Run("unknown hall", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Menus.Documents["library"] = "library.json"
		assert.Error(t, cfg.Validate())
	})

	t.Run("bad document name", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Menus.Documents["view"] = "view.html"
		assert.Error(t, cfg.Validate())
	})

	t.Run("bad port", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Port = 0
		assert.Error(t, cfg.Validate())
	})
}

func TestOpenStore_File(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Menus.Dir = t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(cfg.Menus.Dir, "view.json"), []byte(`{}`), 0o644))

	store, err := cfg.OpenStore(context.Background())
	require.NoError(t, err)

	data, err := store.Fetch(context.Background(), "view.json")
	require.NoError(t, err)
	assert.Equal(t, "{}", string(data))
}
