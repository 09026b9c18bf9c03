package server

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds server configuration.
type Config struct {
	Port            string `mapstructure:"port"`
	DefaultPageSize int    `mapstructure:"default_page_size"`
	DatasetPath     string `mapstructure:"dataset_path"`
	LogLevel        string `mapstructure:"log_level"`
}

// LoadConfig reads configuration from file and env. Env var overrides use
// prefix GOTABVIEW_ (e.g. GOTABVIEW_PORT, GOTABVIEW_DEFAULT_PAGE_SIZE).
func LoadConfig(path string) (Config, error) {
	v := viper.New()

	v.SetDefault("port", "8080")
	v.SetDefault("default_page_size", 25)
	v.SetDefault("dataset_path", "")
	v.SetDefault("log_level", "info")

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("gotabview")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/gotabview")
	}

	v.SetEnvPrefix("GOTABVIEW")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// config file is optional; env and defaults still apply
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && path != "" {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}
