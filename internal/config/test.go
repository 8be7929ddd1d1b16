package config

import "github.com/caarlos0/env/v11"

// TestConfig holds settings consumed only by integration tests. LoadTest
// fails when TEST_POSTGRES_DSN is absent, which the test helpers turn into
// a skip rather than a failure.
type TestConfig struct {
	PostgresDSN string `env:"TEST_POSTGRES_DSN,required,notEmpty"`
}

func LoadTest() (TestConfig, error) {
	var cfg TestConfig
	err := env.Parse(&cfg)
	return cfg, err
}
