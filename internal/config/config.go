package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/sirupsen/logrus"
)

const (
	MinCellWidth  = 4
	MinCellHeight = 3

	// MaxRows and MaxColumns are far beyond what a terminal can draw and keep
	// rows*columns well inside int.
	MaxRows    = 1024
	MaxColumns = 1024
)

var ErrInvalid = errors.New("invalid configuration")

// Config holds the startup settings of the sweep command. Environment
// variables provide the defaults and command line flags override them.
type Config struct {
	Rows       int           `env:"SWEEP_ROWS"        envDefault:"9"`
	Columns    int           `env:"SWEEP_COLUMNS"     envDefault:"9"`
	Mines      int           `env:"SWEEP_MINES"       envDefault:"10"`
	CellWidth  int           `env:"SWEEP_CELL_WIDTH"  envDefault:"5"`
	CellHeight int           `env:"SWEEP_CELL_HEIGHT" envDefault:"3"`
	TickRate   time.Duration `env:"SWEEP_TICK_RATE"   envDefault:"250ms"`
	LogFile    string        `env:"SWEEP_LOG_FILE"`
	Debug      bool          `env:"SWEEP_DEBUG"`
}

func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load reads the environment. The returned Config carries the defaults
// even when parsing fails.
func Load() (*Config, error) {
	cfg := &Config{}
	err := ParseEnv(cfg)
	if cfg.LogFile == "" {
		cfg.LogFile = DefaultLogFile()
	}
	return cfg, err
}

func DefaultLogFile() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "sweep.log"
	}
	return filepath.Join(dir, "sweep", "sweep.log")
}

func (c *Config) Validate() error {
	switch {
	case c.Rows <= 0 || c.Rows > MaxRows:
		return fmt.Errorf("%w: rows must be within [1, %d], got %d", ErrInvalid, MaxRows, c.Rows)
	case c.Columns <= 0 || c.Columns > MaxColumns:
		return fmt.Errorf("%w: columns must be within [1, %d], got %d", ErrInvalid, MaxColumns, c.Columns)
	case c.Mines < 0:
		return fmt.Errorf("%w: mines must not be negative, got %d", ErrInvalid, c.Mines)
	case c.CellWidth < MinCellWidth:
		return fmt.Errorf("%w: cell width must be at least %d, got %d", ErrInvalid, MinCellWidth, c.CellWidth)
	case c.CellHeight < MinCellHeight:
		return fmt.Errorf("%w: cell height must be at least %d, got %d", ErrInvalid, MinCellHeight, c.CellHeight)
	case c.TickRate <= 0:
		return fmt.Errorf("%w: tick rate must be positive, got %s", ErrInvalid, c.TickRate)
	case c.LogFile == "":
		return fmt.Errorf("%w: log file must be set", ErrInvalid)
	}
	return nil
}

// ClampMines lowers the mine count to the number of tiles. It reports
// whether the count was changed.
func (c *Config) ClampMines() bool {
	if total := c.Rows * c.Columns; c.Mines > total {
		c.Mines = total
		return true
	}
	return false
}

func (c Config) Fields() logrus.Fields {
	return logrus.Fields{
		"rows":        c.Rows,
		"columns":     c.Columns,
		"mines":       c.Mines,
		"cell_width":  c.CellWidth,
		"cell_height": c.CellHeight,
		"tick_rate":   c.TickRate,
		"log_file":    c.LogFile,
		"debug":       c.Debug,
		"development": Development(),
	}
}
