package logger

// Config holds configuration for the logger.
type Config struct {
	// Level is the minimum log level (debug, info, warn, error).
	Level string `mapstructure:"level" default:"info"`
	// Format is the output encoding (json, console).
	Format string `mapstructure:"format" default:"json"`
	// File enables a rotating log file in addition to stderr when set.
	File string `mapstructure:"file" default:""`
	// MaxSizeMB is the size at which the log file is rotated.
	MaxSizeMB int `mapstructure:"max_size_mb" default:"100"`
	// MaxBackups is the number of rotated files to keep.
	MaxBackups int `mapstructure:"max_backups" default:"7"`
	// MaxAgeDays is the number of days rotated files are kept.
	MaxAgeDays int `mapstructure:"max_age_days" default:"30"`
	// Compress gzips rotated files.
	Compress bool `mapstructure:"compress" default:"true"`
}
