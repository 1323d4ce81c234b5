// Package config provides runtime configuration for the service, sourced
// from environment variables (loaded from .env for local runs).
package config

import (
	"github.com/kelseyhightower/envconfig"
)

// Config holds every configurable knob of the server.
type Config struct {
	Environment string   `envconfig:"APP_ENV" default:"development"`
	HTTPAddr    string   `envconfig:"HTTP_ADDR" default:":8080"`
	CORSOrigins []string `envconfig:"CORS_ORIGINS" default:"http://localhost:5173"`

	// Persistence
	DBPath string `envconfig:"DB_PATH" default:"almacen.db"`

	// LLM provider
	GeminiAPIKey string `envconfig:"GEMINI_API_KEY"`
	GeminiModel  string `envconfig:"GEMINI_MODEL" default:"gemini-2.0-flash-001"`

	// Alert tuning
	LowMarginThreshold float64 `envconfig:"LOW_MARGIN_THRESHOLD" default:"0.15"`
}

// Load processes the environment into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
