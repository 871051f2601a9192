// Package logging routes the process loggers into a rotated log file.
// The terminal is owned by the game screen while it runs, so nothing is
// written to stdout or stderr once Setup succeeds.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"
)

type Options struct {
	File  string
	Debug bool

	// MaxSize is the size in megabytes at which the file is rotated.
	MaxSize    int
	MaxBackups int
	MaxAge     int
}

func (o Options) withDefaults() Options {
	if o.MaxSize <= 0 {
		o.MaxSize = 5
	}
	if o.MaxBackups <= 0 {
		o.MaxBackups = 3
	}
	if o.MaxAge <= 0 {
		o.MaxAge = 28
	}
	return o
}

func (o Options) Level() logrus.Level {
	if o.Debug {
		return logrus.DebugLevel
	}
	return logrus.InfoLevel
}

// Setup points every logger at a shared rotating file hook.
func Setup(opts Options, loggers ...*logrus.Logger) error {
	opts = opts.withDefaults()

	if opts.File == "" {
		return fmt.Errorf("log file is not set")
	}
	if err := os.MkdirAll(filepath.Dir(opts.File), 0o755); err != nil {
		return fmt.Errorf("unable to create log directory: %w", err)
	}

	level := opts.Level()
	hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
		Filename:   opts.File,
		MaxSize:    opts.MaxSize,
		MaxBackups: opts.MaxBackups,
		MaxAge:     opts.MaxAge,
		Level:      level,
		Formatter: &logrus.TextFormatter{
			DisableColors: true,
			FullTimestamp: true,
		},
	})
	if err != nil {
		return fmt.Errorf("unable to create log file hook: %w", err)
	}

	for _, logger := range loggers {
		logger.SetLevel(level)
		logger.SetOutput(io.Discard)
		logger.AddHook(hook)
	}
	return nil
}
