package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap/zapcore"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoad_ParsesFile(t *testing.T) {
	path := writeConfig(t, `
api:
  base_url: "https://example.test/api"
  contact: "ops@example.com"
  timeout: 3s
  country: " BY "
  pre_holiday: true
  six_day_week: true
log:
  file: "/tmp/isdayoff.log"
  level: debug
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.API.BaseURL != "https://example.test/api" {
		t.Errorf("BaseURL = %q", cfg.API.BaseURL)
	}
	if cfg.API.Contact != "ops@example.com" {
		t.Errorf("Contact = %q", cfg.API.Contact)
	}
	if cfg.API.Country != "by" {
		t.Errorf("Country = %q, want by", cfg.API.Country)
	}
	if !cfg.API.PreHoliday || !cfg.API.SixDayWeek {
		t.Errorf("PreHoliday/SixDayWeek = %v/%v, want true/true", cfg.API.PreHoliday, cfg.API.SixDayWeek)
	}
	if cfg.API.GetTimeout() != 3*time.Second {
		t.Errorf("GetTimeout() = %v, want 3s", cfg.API.GetTimeout())
	}
	if cfg.Log.File != "/tmp/isdayoff.log" {
		t.Errorf("Log.File = %q", cfg.Log.File)
	}
	if cfg.Log.GetLevel() != zapcore.DebugLevel {
		t.Errorf("GetLevel() = %v, want debug", cfg.Log.GetLevel())
	}
}

func TestLoad_DefaultsWithoutConfigFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)

	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.API.BaseURL != defaultBaseURL {
		t.Errorf("BaseURL = %q, want %q", cfg.API.BaseURL, defaultBaseURL)
	}
	if cfg.API.Contact != defaultContact {
		t.Errorf("Contact = %q, want %q", cfg.API.Contact, defaultContact)
	}
	if cfg.API.GetTimeout() != defaultTimeout {
		t.Errorf("GetTimeout() = %v, want %v", cfg.API.GetTimeout(), defaultTimeout)
	}
	if cfg.API.Country != "" || cfg.API.PreHoliday {
		t.Errorf("Country/PreHoliday = %q/%v, want empty/false", cfg.API.Country, cfg.API.PreHoliday)
	}
	if cfg.Log.GetLevel() != zapcore.InfoLevel {
		t.Errorf("GetLevel() = %v, want info", cfg.Log.GetLevel())
	}
}

func TestLoad_MissingExplicitFileFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	if err == nil {
		t.Fatal("Load() returned nil error, want read error")
	}
	if !strings.Contains(err.Error(), "failed to read config") {
		t.Errorf("Load() error = %q, want it to mention failed to read config", err.Error())
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `
api:
  country: ru
`)
	t.Setenv("ISDAYOFF_API_COUNTRY", "kz")
	t.Setenv("ISDAYOFF_API_PRE_HOLIDAY", "true")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.API.Country != "kz" {
		t.Errorf("Country = %q, want kz", cfg.API.Country)
	}
	if !cfg.API.PreHoliday {
		t.Error("PreHoliday = false, want true")
	}
}

func TestLoad_InvalidConfig(t *testing.T) {
	path := writeConfig(t, `
api:
  country: russia
`)

	_, err := Load(path)
	if err == nil {
		t.Fatal("Load() returned nil error, want validation error")
	}
	if !strings.Contains(err.Error(), "invalid config") {
		t.Errorf("Load() error = %q, want it to mention invalid config", err.Error())
	}
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			API: APIConfig{BaseURL: defaultBaseURL, Timeout: "10s"},
			Log: LogConfig{Level: "info"},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"Valid", func(c *Config) {}, false},
		{"Empty base URL", func(c *Config) { c.API.BaseURL = "" }, true},
		{"Relative base URL", func(c *Config) { c.API.BaseURL = "/api" }, true},
		{"FTP base URL", func(c *Config) { c.API.BaseURL = "ftp://isdayoff.ru/api" }, true},
		{"Valid country", func(c *Config) { c.API.Country = "uz" }, false},
		{"Bad country", func(c *Config) { c.API.Country = "u1" }, true},
		{"Bad timeout", func(c *Config) { c.API.Timeout = "soon" }, true},
		{"Bad log level", func(c *Config) { c.Log.Level = "loud" }, true},
		{"Empty log level", func(c *Config) { c.Log.Level = "" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestGetTimeout_FallsBackOnGarbage(t *testing.T) {
	c := APIConfig{Timeout: "garbage"}
	if c.GetTimeout() != defaultTimeout {
		t.Errorf("GetTimeout() = %v, want %v", c.GetTimeout(), defaultTimeout)
	}
}
