package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for a generation run.
// Mapstructure tags map config file keys; environment names are bound in LoadConfig.
type Config struct {
	// Model Configuration
	Provider       string        `mapstructure:"provider"`        // anthropic, openai or gemini
	APIKey         string        `mapstructure:"api_key"`         // provider credential
	Model          string        `mapstructure:"model"`           // e.g. "claude-3-opus-20240229"
	BaseURL        string        `mapstructure:"base_url"`        // optional endpoint override
	MaxTokens      int           `mapstructure:"max_tokens"`      // reply cap per request
	RequestTimeout time.Duration `mapstructure:"request_timeout"` // per request, 0 disables

	// Files
	DescriptionFile string `mapstructure:"description_file"` // input description
	OutputDir       string `mapstructure:"output_dir"`       // wiped and regenerated every run

	// Logging
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"` // console or json

	// ConfigFile is the config file that was read, empty when none was found.
	ConfigFile string `mapstructure:"-"`
}

// envBindings lists the environment variables read for each key, first match wins.
// The lowercase names keep older .env files working.
var envBindings = map[string][]string{
	"provider":         {"LLM_PROVIDER"},
	"api_key":          {"CLAUDE_API_KEY", "claude_api_key", "LLM_API_KEY"},
	"model":            {"MODEL", "model"},
	"base_url":         {"LLM_BASE_URL"},
	"max_tokens":       {"MAX_TOKENS"},
	"request_timeout":  {"REQUEST_TIMEOUT"},
	"description_file": {"PROJECT_DESCRIPTION_FILE"},
	"output_dir":       {"OUTPUT_DIR"},
	"log_level":        {"LOG_LEVEL"},
	"log_format":       {"LOG_FORMAT"},
}

// SetDefaults registers the default value of every key.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("provider", "anthropic")
	v.SetDefault("api_key", "")
	v.SetDefault("model", "")
	v.SetDefault("base_url", "")
	v.SetDefault("max_tokens", 2000)
	v.SetDefault("request_timeout", "0s")
	v.SetDefault("description_file", "project_description.txt")
	v.SetDefault("output_dir", "generated_code")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "console")
}

// LoadConfig reads config.yaml from path (optional) and the environment into a Config.
// Flags bound to v beforehand take precedence over both.
func LoadConfig(v *viper.Viper, path string) (Config, error) {
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	SetDefaults(v)
	for key, names := range envBindings {
		if err := v.BindEnv(append([]string{key}, names...)...); err != nil {
			return Config{}, fmt.Errorf("failed to bind env for %s: %w", key, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unable to decode config into struct: %w", err)
	}
	cfg.ConfigFile = v.ConfigFileUsed()
	return cfg, nil
}
