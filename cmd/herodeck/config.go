package main

import (
	"time"

	"github.com/sealive/herodeck/internal/slideshow"
)

const (
	defaultDwell    = slideshow.DefaultDwell
	defaultTick     = slideshow.DefaultTick
	defaultBindHost = "127.0.0.1"
	defaultAPIPort  = 3000
	defaultLogLevel = "info"
	defaultLogEnv   = "production"
)

// appConfig is the service runtime configuration.
type appConfig struct {
	Dwell      time.Duration `mapstructure:"dwell"`
	Tick       time.Duration `mapstructure:"tick"`
	SlidesFile string        `mapstructure:"slides-file"`
	Autoplay   bool          `mapstructure:"autoplay"`
	APIPort    int           `mapstructure:"api-port"`
	APIAddr    string        `mapstructure:"api-addr"`
	LogLevel   string        `mapstructure:"log-level"`
	LogEnv     string        `mapstructure:"log-env"`
	LogFile    string        `mapstructure:"log-file"`
	ConfigPath string        `mapstructure:"-"` // not from config file
}
