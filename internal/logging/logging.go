package logging

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// NewLogger constructs a console zerolog logger at the given level. An
// unparseable level falls back to info.
func NewLogger(level string) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339

	parsed := zerolog.InfoLevel
	if lv, err := zerolog.ParseLevel(strings.ToLower(level)); err == nil && level != "" {
		parsed = lv
	}

	writer := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: zerolog.TimeFieldFormat,
	}

	return zerolog.New(writer).Level(parsed).With().Timestamp().Logger()
}

// CalcLogger adapts a zerolog logger to the calculation package's Logger
// interface.
type CalcLogger struct {
	log zerolog.Logger
}

// NewCalcLogger wraps a zerolog logger for the calculation engine.
func NewCalcLogger(log zerolog.Logger) CalcLogger {
	return CalcLogger{log: log}
}

func (l CalcLogger) Debugf(format string, args ...any) { l.log.Debug().Msgf(format, args...) }
func (l CalcLogger) Infof(format string, args ...any)  { l.log.Info().Msgf(format, args...) }
func (l CalcLogger) Warnf(format string, args ...any)  { l.log.Warn().Msgf(format, args...) }
func (l CalcLogger) Errorf(format string, args ...any) { l.log.Error().Msgf(format, args...) }
