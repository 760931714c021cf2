package config

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/viper"
)

type Config struct {
	Storage StorageConfig `mapstructure:"storage"`
	Gemini  GeminiConfig  `mapstructure:"gemini"`
	Admin   AdminConfig   `mapstructure:"admin"`
	Outputs OutputsConfig `mapstructure:"outputs"`
}

type StorageConfig struct {
	DataDirectory string `mapstructure:"data_directory" validate:"required"`
	QuotaBytes    int64  `mapstructure:"quota_bytes" validate:"gt=0"`
}

type GeminiConfig struct {
	APIKey string `mapstructure:"api_key"`
	Model  string `mapstructure:"model" validate:"required"`
}

type AdminConfig struct {
	Password string `mapstructure:"password"`
}

type OutputsConfig struct {
	NotesDirectory string `mapstructure:"notes_directory" validate:"required"`
}

func Load(configFile string) (*Config, error) {
	v := viper.New()

	v.SetConfigType("yaml")

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/edumate")
	}

	v.SetDefault("storage.data_directory", filepath.Join("data", "records"))
	// Mirrors the browser localStorage quota most engines ship with.
	v.SetDefault("storage.quota_bytes", int64(5*1024*1024))
	v.SetDefault("gemini.model", "gemini-2.5-flash")
	v.SetDefault("outputs.notes_directory", filepath.Join("outputs", "notes"))

	// Bind secrets to environment variables only (not from config file)
	if err := v.BindEnv("gemini.api_key", "GEMINI_API_KEY"); err != nil {
		return nil, fmt.Errorf("failed to bind GEMINI_API_KEY environment variable: %w", err)
	}
	if err := v.BindEnv("gemini.model", "GEMINI_MODEL"); err != nil {
		return nil, fmt.Errorf("failed to bind GEMINI_MODEL environment variable: %w", err)
	}
	if err := v.BindEnv("admin.password", "EDUMATE_ADMIN_PASSWORD"); err != nil {
		return nil, fmt.Errorf("failed to bind EDUMATE_ADMIN_PASSWORD environment variable: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
