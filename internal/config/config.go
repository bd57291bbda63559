// Package config loads the site configuration from flags, environment and an
// optional config.yaml.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const envPrefix = "DOCSITE"

type Config struct {
	Addr      string    `mapstructure:"addr"`
	BaseURL   string    `mapstructure:"baseURL"`
	SiteTitle string    `mapstructure:"siteTitle"`
	OutputDir string    `mapstructure:"outputDir"`
	Log       LogConfig `mapstructure:"log"`
}

type LogConfig struct {
	Level       string `mapstructure:"level"`
	Development bool   `mapstructure:"development"`
}

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("addr", ":8080")
	v.SetDefault("baseURL", "https://testingcanx.com")
	v.SetDefault("siteTitle", "testingcanx")
	v.SetDefault("outputDir", "public")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.development", false)
}

// Default returns the configuration used when nothing is overridden.
func Default() *Config {
	v := viper.New()
	SetDefaults(v)
	cfg, err := decode(v)
	if err != nil {
		panic(err) // defaults always decode
	}
	return cfg
}

// Load reads cfgFile, or config.yaml from the working directory when cfgFile
// is empty, and applies DOCSITE_* environment overrides. A missing default
// config file is not an error.
func Load(v *viper.Viper, cfgFile string) (*Config, error) {
	SetDefaults(v)
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}
	return decode(v)
}

func decode(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	if cfg.BaseURL == "" {
		return nil, errors.New("config: baseURL must not be empty")
	}
	return &cfg, nil
}
