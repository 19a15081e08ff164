package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all gateway configuration loaded from environment variables.
type Config struct {
	ListenAddr      string        // HTTP listen address
	GRPCAddr        string        // gRPC listen address, empty disables the gRPC server
	Debug           bool          // Development logging
	AllowedOrigins  []string      // CORS allowed origins
	ShutdownTimeout time.Duration // Graceful shutdown budget
}

// Load reads configuration from environment variables, falling back to defaults.
// A .env file in the working directory is applied first if present; variables
// already set in the environment win.
func Load() *Config {
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv builds a Config from the current environment only.
func FromEnv() *Config {
	return &Config{
		ListenAddr:      envOrDefault("LISTEN_ADDR", ":8000"),
		GRPCAddr:        envOrEmpty("GRPC_ADDR", ":50051"),
		Debug:           envOrDefaultBool("DEBUG", true),
		AllowedOrigins:  envOrDefaultList("CORS_ALLOWED_ORIGINS", []string{"*"}),
		ShutdownTimeout: envOrDefaultDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
	}
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// envOrEmpty is like envOrDefault but an explicitly empty variable is kept.
func envOrEmpty(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return strings.TrimSpace(v)
	}
	return fallback
}

func envOrDefaultBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

func envOrDefaultDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

func envOrDefaultList(key string, fallback []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
