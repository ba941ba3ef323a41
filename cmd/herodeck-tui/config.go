package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sealive/herodeck/internal/slideshow"
	"github.com/spf13/viper"
)

// cliConfig holds only TUI-relevant configuration.
type cliConfig struct {
	Dwell      time.Duration `mapstructure:"dwell"`
	Tick       time.Duration `mapstructure:"tick"`
	SlidesFile string        `mapstructure:"slides-file"`
	Autoplay   bool          `mapstructure:"autoplay"`
	LogLevel   string        `mapstructure:"log-level"`
	LogFile    string        `mapstructure:"log-file"`
}

func loadCLIConfig(configPath string) (cliConfig, error) {
	var cfg cliConfig

	home, err := os.UserHomeDir()
	if err != nil {
		return cfg, fmt.Errorf("finding home directory: %w", err)
	}

	v := viper.New()
	v.SetEnvPrefix("HERODECK")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	v.SetDefault("dwell", slideshow.DefaultDwell)
	v.SetDefault("tick", slideshow.DefaultTick)
	v.SetDefault("slides-file", "")
	v.SetDefault("autoplay", true)
	v.SetDefault("log-level", "info")
	// The terminal belongs to the UI, so logs go to a file.
	v.SetDefault("log-file", filepath.Join(home, ".local", "state", "herodeck", "herodeck-tui.log"))

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigFile(filepath.Join(home, ".config", "herodeck", "config.yml"))
	}

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFound) && !os.IsNotExist(err) {
			return cfg, err
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, err
	}

	if strings.HasPrefix(cfg.SlidesFile, "~/") {
		cfg.SlidesFile = filepath.Join(home, cfg.SlidesFile[2:])
	}
	if strings.HasPrefix(cfg.LogFile, "~/") {
		cfg.LogFile = filepath.Join(home, cfg.LogFile[2:])
	}

	return cfg, nil
}

// applyFlagOverrides lets command-line flags win over the file and env.
func applyFlagOverrides(cfg cliConfig, slidesFile string, paused bool) cliConfig {
	if slidesFile != "" {
		cfg.SlidesFile = slidesFile
	}
	if paused {
		cfg.Autoplay = false
	}
	return cfg
}
