package logging

import (
	"io"
	"os"
	"strings"

	"rhythm-lobby/internal/config"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var output io.Writer = os.Stdout

// Init configures the global zerolog logger from LogConfig. When a log file
// is configured the output rolls over at LOG_MAX_SIZE_MB, keeping one prior
// generation.
func Init(cfg config.LogConfig) {
	level := zerolog.InfoLevel
	if parsed, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(cfg.Level))); err == nil && cfg.Level != "" {
		level = parsed
	}

	output = os.Stdout
	if cfg.File != "" {
		if w, err := newRollingWriter(cfg.File, cfg.MaxSizeMB); err == nil {
			output = w
		}
	}
	if cfg.Format == "console" {
		output = zerolog.ConsoleWriter{Out: output}
	}

	zerolog.SetGlobalLevel(level)
	logger := zerolog.New(output).With().Timestamp().Logger()
	if cfg.SampleEvery > 1 {
		logger = logger.Sample(&zerolog.BasicSampler{N: uint32(cfg.SampleEvery)})
	}
	log.Logger = logger
}

// Writer returns the destination Init configured, for handlers that log
// outside zerolog (request logging).
func Writer() io.Writer {
	return output
}
