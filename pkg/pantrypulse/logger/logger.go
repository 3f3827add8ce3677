// Package logger configures the process-wide zerolog logger.
package logger

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// ErrServiceNameIsEmpty is returned if Log.ServiceName was not defined.
var ErrServiceNameIsEmpty = errors.New("log.service_name can not be empty")

// Console configures stdout/stderr output.
type Console struct {
	Enabled bool `mapstructure:"enabled"`
	Pretty  bool `mapstructure:"pretty"` // human readable instead of JSON
}

// File configures rolling log files, split into info and error streams.
type File struct {
	Enabled    bool   `mapstructure:"enabled"`
	Path       string `mapstructure:"path"`
	InfoLog    string `mapstructure:"info"`
	ErrorLog   string `mapstructure:"error"`
	MaxSize    int    `mapstructure:"max_size"` // megabytes
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAge     int    `mapstructure:"max_age"` // days
}

// Log is the logger configuration.
type Log struct {
	Level        string  `mapstructure:"level"`
	ServiceName  string  `mapstructure:"service_name"`
	ReportCaller bool    `mapstructure:"report_caller"`
	Console      Console `mapstructure:"console"`
	File         File    `mapstructure:"file"`
}

// LevelWriter routes warn and above to ErrorWriter and everything else to InfoWriter.
type LevelWriter struct {
	InfoWriter  io.Writer
	ErrorWriter io.Writer
}

func (lw *LevelWriter) Write(p []byte) (int, error) {
	return lw.InfoWriter.Write(p)
}

// WriteLevel implements zerolog.LevelWriter.
func (lw *LevelWriter) WriteLevel(l zerolog.Level, p []byte) (int, error) {
	if l == zerolog.Disabled {
		return 0, nil
	}
	if l >= zerolog.WarnLevel && l != zerolog.NoLevel {
		return lw.ErrorWriter.Write(p)
	}
	return lw.InfoWriter.Write(p)
}

// Init replaces the global zerolog logger according to cfg.
func Init(cfg Log) error {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		return fmt.Errorf("log level %q is not supported: %w", cfg.Level, err)
	}
	if cfg.ServiceName == "" {
		return ErrServiceNameIsEmpty
	}

	zerolog.SetGlobalLevel(level)

	var writers []io.Writer
	if cfg.Console.Enabled {
		writers = append(writers, newConsoleWriter(cfg.Console))
	}
	if cfg.File.Enabled {
		w, err := newRollingFileWriter(cfg.File)
		if err != nil {
			return err
		}
		writers = append(writers, w)
	}
	if len(writers) == 0 {
		writers = append(writers, io.Discard)
	}

	ctx := zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Hook(NewPrometheusHook(cfg.ServiceName)).
		With().Timestamp().Str("service", cfg.ServiceName)
	if cfg.ReportCaller {
		ctx = ctx.Caller()
	}
	log.Logger = ctx.Logger()

	return nil
}

func newConsoleWriter(cfg Console) io.Writer {
	if !cfg.Pretty {
		return &LevelWriter{InfoWriter: os.Stdout, ErrorWriter: os.Stderr}
	}
	return &LevelWriter{
		InfoWriter:  zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: zerolog.TimeFieldFormat},
		ErrorWriter: zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: zerolog.TimeFieldFormat},
	}
}

func newRollingFileWriter(cfg File) (io.Writer, error) {
	if err := os.MkdirAll(cfg.Path, 0o750); err != nil {
		return nil, fmt.Errorf("create log directory %s: %w", cfg.Path, err)
	}

	return &LevelWriter{
		InfoWriter: &lumberjack.Logger{
			Filename:   filepath.Join(cfg.Path, cfg.InfoLog),
			MaxSize:    cfg.MaxSize,
			MaxAge:     cfg.MaxAge,
			MaxBackups: cfg.MaxBackups,
		},
		ErrorWriter: &lumberjack.Logger{
			Filename:   filepath.Join(cfg.Path, cfg.ErrorLog),
			MaxSize:    cfg.MaxSize,
			MaxAge:     cfg.MaxAge,
			MaxBackups: cfg.MaxBackups,
		},
	}, nil
}
