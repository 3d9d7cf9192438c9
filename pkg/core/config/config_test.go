package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
	_ "time/tzdata"

	mdwerror "github.com/msto63/sparrow/foundation/core/error"
)

func TestDuration_UnmarshalText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Duration
		wantErr  bool
	}{
		{"seconds", "30s", 30 * time.Second, false},
		{"minutes", "5m", 5 * time.Minute, false},
		{"complex", "1h30m", 90 * time.Minute, false},
		{"milliseconds", "100ms", 100 * time.Millisecond, false},
		{"invalid", "invalid", 0, true},
		{"empty", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := d.UnmarshalText([]byte(tt.input))

			if (err != nil) != tt.wantErr {
				t.Errorf("UnmarshalText() error = %v, wantErr %v", err, tt.wantErr)
				return
			}

			if !tt.wantErr && d.Duration != tt.expected {
				t.Errorf("UnmarshalText() = %v, want %v", d.Duration, tt.expected)
			}
		})
	}
}

func TestDuration_MarshalText(t *testing.T) {
	d := Duration{5 * time.Minute}
	result, err := d.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText() error = %v", err)
	}
	if string(result) != "5m0s" {
		t.Errorf("MarshalText() = %v, want 5m0s", string(result))
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.General.LogLevel != "info" {
		t.Errorf("General.LogLevel = %v, want info", cfg.General.LogLevel)
	}
	if cfg.General.LogFormat != "text" {
		t.Errorf("General.LogFormat = %v, want text", cfg.General.LogFormat)
	}
	if cfg.Locale.Context != ContextDevice {
		t.Errorf("Locale.Context = %v, want device", cfg.Locale.Context)
	}
	if cfg.Regex.Engine != "icu" {
		t.Errorf("Regex.Engine = %v, want icu", cfg.Regex.Engine)
	}
	if cfg.Regex.MatchTimeout.Duration != 2*time.Second {
		t.Errorf("Regex.MatchTimeout = %v, want 2s", cfg.Regex.MatchTimeout.Duration)
	}
	if cfg.Regex.CacheSize == nil || *cfg.Regex.CacheSize != 128 {
		t.Errorf("Regex.CacheSize = %v, want 128", cfg.Regex.CacheSize)
	}
	if cfg.Resources.Dir != "./Resources" {
		t.Errorf("Resources.Dir = %v, want ./Resources", cfg.Resources.Dir)
	}
	if cfg.Playground.InputLimit != 256 {
		t.Errorf("Playground.InputLimit = %v, want 256", cfg.Playground.InputLimit)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default().Validate() error = %v", err)
	}
	if cfg.Path() != "" {
		t.Errorf("Path() = %q, want empty", cfg.Path())
	}
}

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}
	return path
}

func TestLoad_TOML(t *testing.T) {
	path := writeConfig(t, "sparrow.toml", `
[general]
log_level = "debug"
log_format = "logfmt"

[locale]
context = "device"
identifier = "ja_JP"
timezone = "Asia/Tokyo"

[regex]
engine = "re2"
match_timeout = "500ms"
cache_size = 0
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.General.LogLevel != "debug" {
		t.Errorf("General.LogLevel = %v, want debug", cfg.General.LogLevel)
	}
	if cfg.Regex.MatchTimeout.Duration != 500*time.Millisecond {
		t.Errorf("Regex.MatchTimeout = %v, want 500ms", cfg.Regex.MatchTimeout.Duration)
	}
	if cfg.Regex.CacheSize == nil || *cfg.Regex.CacheSize != 0 {
		t.Errorf("Regex.CacheSize = %v, want explicit 0", cfg.Regex.CacheSize)
	}
	if cfg.Playground.InputLimit != 256 {
		t.Errorf("Playground.InputLimit = %v, want 256 (default)", cfg.Playground.InputLimit)
	}
	if cfg.Path() != path {
		t.Errorf("Path() = %v, want %v", cfg.Path(), path)
	}

	ctx, err := cfg.Context()
	if err != nil {
		t.Fatalf("Context() error = %v", err)
	}
	if ctx.Identifier() != "ja_JP" {
		t.Errorf("Context().Identifier() = %v, want ja_JP", ctx.Identifier())
	}
	if ctx.Location().String() != "Asia/Tokyo" {
		t.Errorf("Context().Location() = %v, want Asia/Tokyo", ctx.Location())
	}

	engine, err := cfg.Engine()
	if err != nil {
		t.Fatalf("Engine() error = %v", err)
	}
	if engine.Name() != "re2" {
		t.Errorf("Engine().Name() = %v, want re2", engine.Name())
	}
}

func TestLoad_YAML(t *testing.T) {
	path := writeConfig(t, "sparrow.yaml", `
locale:
  context: gmt
regex:
  match_timeout: 3s
playground:
  input_limit: 64
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Playground.InputLimit != 64 {
		t.Errorf("Playground.InputLimit = %v, want 64", cfg.Playground.InputLimit)
	}
	if cfg.Regex.MatchTimeout.Duration != 3*time.Second {
		t.Errorf("Regex.MatchTimeout = %v, want 3s", cfg.Regex.MatchTimeout.Duration)
	}

	ctx, err := cfg.Context()
	if err != nil {
		t.Fatalf("Context() error = %v", err)
	}
	if !ctx.IsPOSIX() {
		t.Errorf("Context() = %v, want the GMT context", ctx)
	}
}

func TestLoad_EmptyYAML(t *testing.T) {
	cfg, err := Load(writeConfig(t, "sparrow.yml", ""))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Regex.Engine != "icu" {
		t.Errorf("Regex.Engine = %v, want icu", cfg.Regex.Engine)
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		code    mdwerror.Code
	}{
		{"unknown toml key", "a.toml", "[general]\ncolour = \"red\"\n", mdwerror.CodeInvalidConfig},
		{"unknown yaml key", "a.yaml", "general:\n  colour: red\n", mdwerror.CodeInvalidConfig},
		{"malformed toml", "a.toml", "[general\n", mdwerror.CodeInvalidConfig},
		{"bad duration", "a.toml", "[regex]\nmatch_timeout = \"soon\"\n", mdwerror.CodeInvalidConfig},
		{"bad level", "a.toml", "[general]\nlog_level = \"loud\"\n", mdwerror.CodeInvalidConfig},
		{"bad engine", "a.toml", "[regex]\nengine = \"pcre\"\n", mdwerror.CodeInvalidConfig},
		{"bad context", "a.toml", "[locale]\ncontext = \"moon\"\n", mdwerror.CodeInvalidConfig},
		{"bad zone", "a.toml", "[locale]\ntimezone = \"Mars/Olympus\"\n", mdwerror.CodeInvalidConfig},
		{"bad cache size", "a.toml", "[regex]\ncache_size = -1\n", mdwerror.CodeInvalidConfig},
		{"bad limit", "a.toml", "[playground]\ninput_limit = -1\n", mdwerror.CodeInvalidConfig},
		{"unsupported extension", "a.ini", "x=1", mdwerror.CodeConfigError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.file, tt.content))
			if err == nil {
				t.Fatal("Load() expected error")
			}
			if !mdwerror.HasCode(err, tt.code) {
				t.Errorf("Load() code = %v, want %v (%v)", mdwerror.GetCode(err), tt.code, err)
			}
		})
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := Load("/nonexistent/path/sparrow.toml")
	if !mdwerror.HasCode(err, mdwerror.CodeNotFound) {
		t.Errorf("Load() error = %v, want NOT_FOUND", err)
	}
}

func TestLoad_ExpandsEnv(t *testing.T) {
	t.Setenv("SPARROW_TEST_RES", "/opt/res")
	path := writeConfig(t, "sparrow.toml", "[resources]\ndir = \"$SPARROW_TEST_RES/bundle\"\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Resources.Dir != "/opt/res/bundle" {
		t.Errorf("Resources.Dir = %v, want /opt/res/bundle", cfg.Resources.Dir)
	}
}

func TestLoadFromEnv(t *testing.T) {
	// Change to a temp directory without config files
	originalWd, _ := os.Getwd()
	tmpDir := t.TempDir()
	if err := os.Chdir(tmpDir); err != nil {
		t.Fatalf("Chdir() error = %v", err)
	}
	defer os.Chdir(originalWd)
	t.Setenv("HOME", tmpDir)

	t.Run("defaults without file", func(t *testing.T) {
		t.Setenv(EnvConfig, "")
		cfg, err := LoadFromEnv()
		if err != nil {
			t.Fatalf("LoadFromEnv() error = %v", err)
		}
		if cfg.Path() != "" {
			t.Errorf("Path() = %q, want defaults", cfg.Path())
		}
	})

	t.Run("default location", func(t *testing.T) {
		t.Setenv(EnvConfig, "")
		if err := os.MkdirAll("configs", 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile("configs/sparrow.toml", []byte("[playground]\ninput_limit = 9\n"), 0644); err != nil {
			t.Fatal(err)
		}
		defer os.RemoveAll("configs")

		cfg, err := LoadFromEnv()
		if err != nil {
			t.Fatalf("LoadFromEnv() error = %v", err)
		}
		if cfg.Playground.InputLimit != 9 {
			t.Errorf("Playground.InputLimit = %v, want 9", cfg.Playground.InputLimit)
		}
	})

	t.Run("explicit missing file", func(t *testing.T) {
		t.Setenv(EnvConfig, filepath.Join(tmpDir, "missing.toml"))
		if _, err := LoadFromEnv(); err == nil {
			t.Error("LoadFromEnv() expected error for missing explicit file")
		}
	})
}
