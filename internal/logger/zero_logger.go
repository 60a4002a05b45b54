package logger

import (
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"
)

// ZeroLogger writes JSON lines through zerolog.
type ZeroLogger struct {
	mu     sync.RWMutex
	base   zerolog.Logger
	logger zerolog.Logger
	exit   func(int)
}

var _ Logger = (*ZeroLogger)(nil)

// NewZeroLogger returns a logger that stamps every line with defaultFields.
func NewZeroLogger(writer io.Writer, level Level, defaultFields Fields) *ZeroLogger {
	base := zerolog.New(writer).With().Timestamp().Fields(map[string]interface{}(defaultFields)).Logger()
	l := &ZeroLogger{base: base, exit: os.Exit}
	l.SetLevel(level)
	return l
}

func toZerolog(level Level) zerolog.Level {
	switch level {
	case LevelDebug:
		return zerolog.DebugLevel
	case LevelInfo:
		return zerolog.InfoLevel
	case LevelError:
		return zerolog.ErrorLevel
	case LevelFatal:
		return zerolog.FatalLevel
	case LevelOff:
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

func (l *ZeroLogger) current() *zerolog.Logger {
	l.mu.RLock()
	defer l.mu.RUnlock()
	lg := l.logger
	return &lg
}

func (l *ZeroLogger) Info(message string, properties map[string]interface{}) {
	l.current().Info().Fields(properties).Msg(message)
}

func (l *ZeroLogger) Error(err error, properties map[string]interface{}) {
	l.current().Error().Fields(properties).Err(err).Msg(err.Error())
}

// Fatal logs at fatal level and exits the process.
func (l *ZeroLogger) Fatal(err error, properties map[string]interface{}) {
	l.current().WithLevel(zerolog.FatalLevel).Fields(properties).Err(err).Msg(err.Error())
	l.exit(1)
}

func (l *ZeroLogger) Debug(message string, properties map[string]interface{}) {
	l.current().Debug().Fields(properties).Msg(message)
}

func (l *ZeroLogger) SetLevel(level Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.logger = l.base.Level(toZerolog(level))
}
