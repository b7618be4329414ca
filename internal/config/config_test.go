package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/spf13/viper"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := LoadWithViper(viper.New())
	if err != nil {
		t.Fatalf("LoadWithViper() error = %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Server.ReadTimeout != 10*time.Second {
		t.Errorf("Server.ReadTimeout = %v, want 10s", cfg.Server.ReadTimeout)
	}
	if cfg.App.DefaultLanguage != "de" {
		t.Errorf("App.DefaultLanguage = %q, want %q", cfg.App.DefaultLanguage, "de")
	}
	if cfg.App.ForecastDays != 3 {
		t.Errorf("App.ForecastDays = %d, want 3", cfg.App.ForecastDays)
	}
	if cfg.Providers.Timeout != 10*time.Second {
		t.Errorf("Providers.Timeout = %v, want 10s", cfg.Providers.Timeout)
	}
	if cfg.Mail.APIKey != "" {
		t.Errorf("Mail.APIKey = %q, want empty", cfg.Mail.APIKey)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("FACILITY_SERVER_PORT", "9090")
	t.Setenv("FACILITY_LOG_LEVEL", "debug")
	t.Setenv("FACILITY_MAIL_APIKEY", "re_test")
	t.Setenv("FACILITY_PROVIDERS_TIMEOUT", "3s")

	cfg, err := LoadWithViper(viper.New())
	if err != nil {
		t.Fatalf("LoadWithViper() error = %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want %q", cfg.Log.Level, "debug")
	}
	if cfg.Mail.APIKey != "re_test" {
		t.Errorf("Mail.APIKey = %q, want %q", cfg.Mail.APIKey, "re_test")
	}
	if cfg.Providers.Timeout != 3*time.Second {
		t.Errorf("Providers.Timeout = %v, want 3s", cfg.Providers.Timeout)
	}
	if got := cfg.GetServerAddr(); got != ":9090" {
		t.Errorf("GetServerAddr() = %q, want %q", got, ":9090")
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseLevel(tt.input); got != tt.expected {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}
