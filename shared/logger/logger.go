package logger

import (
	"os"
	"salas/config"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const envProduction = "production"

// InitLogger installs a human-readable console logger at trace level. Configure
// narrows it once the config is loaded.
func InitLogger() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.SetGlobalLevel(zerolog.TraceLevel)

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
}

// ErrorWithStack logs err with the stack trace of the caller attached.
func ErrorWithStack(err error) {
	log.Error().Msgf("%+v", errors.WithStack(err))
}

// Configure applies the configured level and, in production, switches to JSON lines
// tagged with the application name so they can be shipped as-is.
func Configure(cfg *config.Config) {
	SetLogLevel(cfg)

	if cfg.Server.Env != envProduction {
		return
	}

	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Str("app", cfg.App.Name).Logger()
}

// SetLogLevel applies SERVER_LOG_LEVEL; an unknown level keeps everything at trace.
func SetLogLevel(cfg *config.Config) {
	level, err := zerolog.ParseLevel(cfg.Server.LogLevel)
	if err != nil {
		log.Warn().Str("loglevel", cfg.Server.LogLevel).Msg("Unknown log level, logging everything")

		level = zerolog.TraceLevel
	}

	zerolog.SetGlobalLevel(level)
}
