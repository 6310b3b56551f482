package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds all configuration for the lineshape tool
type Config struct {
	Env    string
	Log    LogConfig
	Domain DomainConfig
	Render RenderConfig
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level string
}

// DomainConfig holds the sampled interval of generated curves
type DomainConfig struct {
	Samples int
	Min     float64
	Max     float64
}

// RenderConfig holds plot output configuration
type RenderConfig struct {
	Renderer string
	Output   string
	Width    int
	Height   int
}

const (
	RendererWindow = "window"
	RendererFile   = "file"
)

var keys = []string{
	"LINESHAPE_ENV",
	"LINESHAPE_LOG_LEVEL",
	"LINESHAPE_SAMPLES",
	"LINESHAPE_DOMAIN_MIN",
	"LINESHAPE_DOMAIN_MAX",
	"LINESHAPE_RENDERER",
	"LINESHAPE_OUTPUT",
	"LINESHAPE_WIDTH",
	"LINESHAPE_HEIGHT",
}

// Load loads configuration from environment variables and .env files
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("LINESHAPE_ENV", "dev")
	v.SetDefault("LINESHAPE_LOG_LEVEL", "info")
	v.SetDefault("LINESHAPE_SAMPLES", 5000)
	v.SetDefault("LINESHAPE_DOMAIN_MIN", -1.5)
	v.SetDefault("LINESHAPE_DOMAIN_MAX", 1.5)
	v.SetDefault("LINESHAPE_RENDERER", RendererWindow)
	v.SetDefault("LINESHAPE_OUTPUT", "lineshape.png")
	v.SetDefault("LINESHAPE_WIDTH", 1200)
	v.SetDefault("LINESHAPE_HEIGHT", 800)

	for _, key := range keys {
		_ = v.BindEnv(key)
	}

	env := v.GetString("LINESHAPE_ENV")
	if env == "" {
		env = "dev"
	}

	// Read .env file (ignore error if file doesn't exist)
	v.SetConfigName(".env." + env)
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig()

	// Environment variables override .env file values
	v.AutomaticEnv()

	var cfg Config
	cfg.Env = env
	cfg.Log.Level = v.GetString("LINESHAPE_LOG_LEVEL")
	cfg.Domain.Samples = v.GetInt("LINESHAPE_SAMPLES")
	cfg.Domain.Min = v.GetFloat64("LINESHAPE_DOMAIN_MIN")
	cfg.Domain.Max = v.GetFloat64("LINESHAPE_DOMAIN_MAX")
	cfg.Render.Renderer = v.GetString("LINESHAPE_RENDERER")
	cfg.Render.Output = v.GetString("LINESHAPE_OUTPUT")
	cfg.Render.Width = v.GetInt("LINESHAPE_WIDTH")
	cfg.Render.Height = v.GetInt("LINESHAPE_HEIGHT")

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate reports the first invalid setting
func (c *Config) Validate() error {
	if c.Domain.Samples <= 0 {
		return fmt.Errorf("config: LINESHAPE_SAMPLES must be > 0: %d", c.Domain.Samples)
	}
	if c.Domain.Min >= c.Domain.Max {
		return fmt.Errorf("config: LINESHAPE_DOMAIN_MIN (%v) must be below LINESHAPE_DOMAIN_MAX (%v)",
			c.Domain.Min, c.Domain.Max)
	}
	switch c.Render.Renderer {
	case RendererWindow, RendererFile:
	default:
		return fmt.Errorf("config: unknown LINESHAPE_RENDERER %q", c.Render.Renderer)
	}
	if c.Render.Width <= 0 || c.Render.Height <= 0 {
		return fmt.Errorf("config: plot size must be positive: %dx%d", c.Render.Width, c.Render.Height)
	}
	return nil
}
