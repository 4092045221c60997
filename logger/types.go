// Package logger provides named, size-rotated file loggers with a fixed
// line format that the filter package can parse back.
package logger

// Level represents the logging level.
type Level string

const (
	// DebugLevel logs debug messages.
	DebugLevel Level = "debug"
	// InfoLevel logs info messages.
	InfoLevel Level = "info"
	// WarnLevel logs warning messages.
	WarnLevel Level = "warn"
	// ErrorLevel logs error messages.
	ErrorLevel Level = "error"
	// FatalLevel logs fatal messages and exits.
	FatalLevel Level = "fatal"
)

// Config describes where and how log files are written. It is passed
// explicitly to NewRegistry rather than living in package state, so two
// registries with different directories can coexist in one process.
type Config struct {
	// Dir is the directory log files are written to. Created with
	// MkdirAll on first use if it does not exist.
	Dir string `yaml:"dir" env:"LOG_DIR"`
	// Filename is the active log file name inside Dir.
	Filename string `yaml:"filename" env:"LOG_FILE"`
	// MaxSizeMB is the size threshold in megabytes before the active
	// file is rotated out.
	MaxSizeMB int `yaml:"max_size_mb" env:"LOG_MAX_SIZE_MB"`
	// MaxBackups is the number of rotated files to retain.
	MaxBackups int `yaml:"max_backups" env:"LOG_MAX_BACKUPS"`
	// MaxAgeDays is the maximum age of a rotated file in days.
	// Zero keeps rotated files regardless of age.
	MaxAgeDays int `yaml:"max_age_days" env:"LOG_MAX_AGE_DAYS"`
	// Compress gzips rotated files when true.
	Compress bool `yaml:"compress" env:"LOG_COMPRESS"`
	// Level is the minimum logging level (debug, info, warn, error, fatal).
	Level string `yaml:"level" env:"LOG_LEVEL"`
	// Stdout mirrors every record to standard output in addition to
	// the rotating file.
	Stdout bool `yaml:"stdout" env:"LOG_STDOUT"`
}

// Default configuration values.
const (
	// DefaultDir is the default log directory.
	DefaultDir = "logs"
	// DefaultFilename is the default active log file name.
	DefaultFilename = "app.log"
	// DefaultMaxSizeMB is the default rotation threshold.
	DefaultMaxSizeMB = 5
	// DefaultMaxBackups is the default number of rotated files kept.
	DefaultMaxBackups = 3
	// DefaultLevel is the default logging level. Loggers default to
	// debug so the file captures everything; consumers filter on read.
	DefaultLevel = "debug"
)

// SetDefaults applies default values to the config if not set.
func (c *Config) SetDefaults() {
	if c.Dir == "" {
		c.Dir = DefaultDir
	}
	if c.Filename == "" {
		c.Filename = DefaultFilename
	}
	if c.MaxSizeMB == 0 {
		c.MaxSizeMB = DefaultMaxSizeMB
	}
	if c.MaxBackups == 0 {
		c.MaxBackups = DefaultMaxBackups
	}
	if c.Level == "" {
		c.Level = DefaultLevel
	}
}
