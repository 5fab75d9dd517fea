package config

import (
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server ServerConfig
	Log    LogConfig
	CORS   CORSConfig
	Loader LoaderConfig
	Upload UploadConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// LoaderConfig holds document loader settings.
type LoaderConfig struct {
	Extensions []string `mapstructure:"extensions"`
}

// UploadConfig holds limits for the extract-and-validate upload endpoint.
type UploadConfig struct {
	MaxFileSizeMB int64 `mapstructure:"max_file_size_mb"`
	MaxFiles      int   `mapstructure:"max_files"`
}

// Load reads configuration from environment variables with the INVOICEQC_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("INVOICEQC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.environment", "development")

	// Log defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// Loader defaults
	v.SetDefault("loader.extensions", "txt")

	// Upload defaults
	v.SetDefault("upload.max_file_size_mb", 10)
	v.SetDefault("upload.max_files", 100)

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":             "INVOICEQC_SERVER_PORT",
		"server.read_timeout":     "INVOICEQC_SERVER_READ_TIMEOUT",
		"server.write_timeout":    "INVOICEQC_SERVER_WRITE_TIMEOUT",
		"server.environment":      "INVOICEQC_SERVER_ENVIRONMENT",
		"log.level":               "INVOICEQC_LOG_LEVEL",
		"log.format":              "INVOICEQC_LOG_FORMAT",
		"cors.allowed_origins":    "INVOICEQC_CORS_ALLOWED_ORIGINS",
		"loader.extensions":       "INVOICEQC_LOADER_EXTENSIONS",
		"upload.max_file_size_mb": "INVOICEQC_UPLOAD_MAX_FILE_SIZE_MB",
		"upload.max_files":        "INVOICEQC_UPLOAD_MAX_FILES",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if INVOICEQC_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("INVOICEQC_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: splitList(v.GetString("cors.allowed_origins")),
	}
	cfg.Loader = LoaderConfig{
		Extensions: splitList(v.GetString("loader.extensions")),
	}
	cfg.Upload = UploadConfig{
		MaxFileSizeMB: v.GetInt64("upload.max_file_size_mb"),
		MaxFiles:      v.GetInt("upload.max_files"),
	}

	return cfg, nil
}

func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
