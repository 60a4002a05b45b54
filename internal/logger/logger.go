package logger

import "strings"

type Fields map[string]interface{}

type Logger interface {
	Info(message string, properties map[string]interface{})
	Error(err error, properties map[string]interface{})
	Fatal(err error, properties map[string]interface{})
	Debug(message string, properties map[string]interface{})
	SetLevel(level Level)
}

type Level int8

const (
	LevelDebug Level = iota
	LevelInfo
	LevelError
	LevelFatal
	LevelOff
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelError:
		return "ERROR"
	case LevelFatal:
		return "FATAL"
	case LevelOff:
		return "OFF"
	default:
		return ""
	}
}

// ParseLevel maps a LOG_LEVEL value to a Level; unknown values mean info.
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug
	case "error":
		return LevelError
	case "fatal":
		return LevelFatal
	case "off", "disabled":
		return LevelOff
	default:
		return LevelInfo
	}
}
