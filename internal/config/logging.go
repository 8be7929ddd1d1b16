package config

import "github.com/caarlos0/env/v11"

// LogConfig controls the process-wide zerolog setup.
type LogConfig struct {
	Level       string `env:"LOG_LEVEL" envDefault:"info"`
	Format      string `env:"LOG_FORMAT" envDefault:"json"` // json or console
	SampleEvery int    `env:"LOG_SAMPLE_EVERY" envDefault:"0"`
	File        string `env:"LOG_FILE"`
	MaxSizeMB   int    `env:"LOG_MAX_SIZE_MB" envDefault:"32"`
}

func LoadLog() (LogConfig, error) {
	var cfg LogConfig
	err := env.Parse(&cfg)
	return cfg, err
}
