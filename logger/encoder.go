package logger

import (
	"time"

	"go.uber.org/zap/zapcore"
)

// TimeLayout is the timestamp layout used in every log line. Second
// precision, 24-hour clock, no timezone. The filter package parses
// lines back with the same layout; changing it breaks parsing of
// existing files.
const TimeLayout = "2006-01-02 15:04:05"

// newLineEncoder builds the encoder producing the fixed line format
//
//	[2006-01-02 15:04:05] [LEVEL] [name] message
//
// Structured fields attached via With or per-call become part of the
// trailing message text.
func newLineEncoder() zapcore.Encoder {
	return zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
		TimeKey:          "ts",
		LevelKey:         "level",
		NameKey:          "logger",
		MessageKey:       "msg",
		LineEnding:       zapcore.DefaultLineEnding,
		ConsoleSeparator: " ",
		EncodeTime:       encodeBracketTime,
		EncodeLevel:      encodeBracketLevel,
		EncodeName:       encodeBracketName,
		EncodeDuration:   zapcore.StringDurationEncoder,
	})
}

func encodeBracketTime(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString("[" + t.Format(TimeLayout) + "]")
}

func encodeBracketLevel(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString("[" + levelName(l) + "]")
}

func encodeBracketName(name string, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString("[" + name + "]")
}

// levelName maps zap levels to the uppercase tags written to the file.
// Warn is spelled out as WARNING and everything above error collapses
// to CRITICAL, matching the severity names consumers filter on.
func levelName(l zapcore.Level) string {
	switch l {
	case zapcore.DebugLevel:
		return "DEBUG"
	case zapcore.InfoLevel:
		return "INFO"
	case zapcore.WarnLevel:
		return "WARNING"
	case zapcore.ErrorLevel:
		return "ERROR"
	case zapcore.DPanicLevel, zapcore.PanicLevel, zapcore.FatalLevel:
		return "CRITICAL"
	default:
		return l.CapitalString()
	}
}
