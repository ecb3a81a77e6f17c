package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// OpenAIConfig holds classification service settings. The API key is only
// ever read from the environment, never from the config file, so stored
// config cannot leak credentials.
type OpenAIConfig struct {
	BaseURL    string        `mapstructure:"base_url"`
	Model      string        `mapstructure:"model"`
	MaxRetries int           `mapstructure:"max_retries"`
	RetryDelay time.Duration `mapstructure:"retry_delay"`
}

// ThemeConfig holds output color overrides.
type ThemeConfig struct {
	Preset        string `mapstructure:"preset"`
	MarkdownStyle string `mapstructure:"markdown_style"`
}

// Config holds the application configuration.
type Config struct {
	Storage string       `mapstructure:"storage"`
	DataDir string       `mapstructure:"data_dir"`
	Editor  string       `mapstructure:"editor"`
	OpenAI  OpenAIConfig `mapstructure:"openai"`
	Theme   ThemeConfig  `mapstructure:"theme"`
}

// APIKey returns the classification API key from the environment.
func APIKey() string {
	if key := os.Getenv("MONGLECTL_OPENAI_API_KEY"); key != "" {
		return key
	}
	return os.Getenv("OPENAI_API_KEY")
}

// DefaultDataDir returns the default data directory (~/.monglectl/).
func DefaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".monglectl")
	}
	return filepath.Join(home, ".monglectl")
}

// Load reads configuration from file, environment variables, and defaults.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("storage", "json")
	v.SetDefault("data_dir", DefaultDataDir())
	v.SetDefault("editor", "")
	v.SetDefault("openai.base_url", "https://api.openai.com/v1")
	v.SetDefault("openai.model", "gpt-3.5-turbo")
	v.SetDefault("openai.max_retries", 3)
	v.SetDefault("openai.retry_delay", time.Second)
	v.SetDefault("theme.preset", "default-dark")
	v.SetDefault("theme.markdown_style", "")

	// Config file
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		// XDG support
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			v.AddConfigPath(filepath.Join(xdg, "monglectl"))
		}
		v.AddConfigPath(DefaultDataDir())
		v.SetConfigName("config")
		v.SetConfigType("toml")
	}

	// Environment variables: MONGLECTL_STORAGE, MONGLECTL_DATA_DIR, etc.
	v.SetEnvPrefix("MONGLECTL")
	v.AutomaticEnv()

	// Read config file (ignore not found)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Only return error if it's not a "file not found" error
			if configPath != "" {
				return nil, err
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
