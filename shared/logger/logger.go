package logger

import (
	"context"
	"io"
	"os"
	"reservas/config"
	"reservas/shared/constant"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// InitLogger sets up the global logger. Development gets a console writer, every other
// environment writes JSON lines to stdout.
func InitLogger() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.SetGlobalLevel(zerolog.TraceLevel)

	log.Logger = log.Output(output(config.Get().Server.Env)).With().Str("app", config.Get().App.Name).Logger()
	zerolog.DefaultContextLogger = &log.Logger
	log.Trace().Msg("Zerolog initialized.")
}

func output(env string) io.Writer {
	if env == constant.ServerEnvProduction {
		return os.Stdout
	}

	return zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
}

func ErrorWithStack(err error) {
	log.Error().Msgf("%+v", errors.WithStack(err))
}

func SetLogLevel(config *config.Config) {
	level, err := zerolog.ParseLevel(config.Server.LogLevel)
	if err != nil {
		level = zerolog.TraceLevel
		log.Trace().Str("loglevel", level.String()).Msg("Environment has no log level set up, using default.")
	} else {
		log.Trace().Str("loglevel", level.String()).Msg("Desired log level detected.")
	}

	zerolog.SetGlobalLevel(level)
}

// WithRequestID returns a context carrying a child of the global logger tagged with the request id.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	child := log.With().Str("request_id", requestID).Logger()

	return child.WithContext(context.WithValue(ctx, constant.ContextKeyRequestID, requestID))
}

// RequestID returns the request id stored by WithRequestID, or an empty string.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(constant.ContextKeyRequestID).(string)

	return id
}
