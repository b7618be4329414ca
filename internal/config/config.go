package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Log       LogConfig
	App       AppConfig
	Mail      MailConfig
	Providers ProvidersConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port         int
	GinMode      string // debug, release, test
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, text
}

// AppConfig holds application-specific configuration
type AppConfig struct {
	ForecastDays    int    // Number of days to request from the forecast provider
	DefaultLanguage string // Language used when the client sends no preference
}

// MailConfig holds the e-mail delivery settings used by the contact form
type MailConfig struct {
	BaseURL string
	APIKey  string
	From    string
	To      string
}

// ProvidersConfig holds settings shared by the outbound API clients
type ProvidersConfig struct {
	OpenMeteoURL   string
	ElevationURL   string
	NominatimURL   string
	UserAgent      string
	Timeout        time.Duration
	BreakerTimeout time.Duration
}

// Load reads configuration from an optional .env file, a config file and environment variables
func Load() (*Config, error) {
	return LoadWithViper(viper.New())
}

// LoadWithViper is Load on a caller-supplied viper instance
func LoadWithViper(v *viper.Viper) (*Config, error) {
	// A missing .env is fine, a broken one is not
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("$HOME/.facility-services")

	setDefaults(v)

	// FACILITY_SERVER_PORT overrides server.port
	v.SetEnvPrefix("FACILITY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.ginmode", "release")
	v.SetDefault("server.readtimeout", 10*time.Second)
	v.SetDefault("server.writetimeout", 30*time.Second)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("app.forecastdays", 3)
	v.SetDefault("app.defaultlanguage", "de")

	v.SetDefault("mail.baseurl", "https://api.resend.com")
	v.SetDefault("mail.apikey", "")
	v.SetDefault("mail.from", "Website <website@example.de>")
	v.SetDefault("mail.to", "anfragen@example.de")

	v.SetDefault("providers.openmeteourl", "https://api.open-meteo.com/v1/forecast")
	v.SetDefault("providers.elevationurl", "https://api.open-meteo.com/v1/elevation")
	v.SetDefault("providers.nominatimurl", "https://nominatim.openstreetmap.org")
	v.SetDefault("providers.useragent", "facility-services/1.0")
	v.SetDefault("providers.timeout", 10*time.Second)
	v.SetDefault("providers.breakertimeout", 30*time.Second)
}

// GetServerAddr returns the server address in the format ":port"
func (c *Config) GetServerAddr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}

// NewLogger creates a new slog.Logger based on the configuration
func (c *Config) NewLogger() *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: ParseLevel(c.Log.Level),
	}

	var handler slog.Handler
	switch strings.ToLower(c.Log.Format) {
	case "json":
		handler = slog.NewJSONHandler(os.Stdout, opts)
	default: // "text" or anything else
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}

// ParseLevel maps a level name to a slog.Level, defaulting to info
func ParseLevel(name string) slog.Level {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
