package app

import (
	"errors"
	"flag"
	"fmt"

	"lifedots/internal/core"
	"lifedots/internal/life"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Rows     int
	Cols     int
	Density  float64
	Speed    float64
	CellSize int
	TPS      int
	// Seed of 0 picks a time-based seed.
	Seed  int64
	Theme string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	d := life.DefaultOptions()
	return &Config{
		Rows:     d.Rows,
		Cols:     d.Cols,
		Density:  d.Density,
		Speed:    d.Speed,
		CellSize: 10,
		TPS:      60,
		Theme:    d.Theme.String(),
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Rows, "rows", c.Rows, "board rows")
	fs.IntVar(&c.Cols, "cols", c.Cols, "board columns")
	fs.Float64Var(&c.Density, "density", c.Density, "probability that a seeded cell starts alive")
	fs.Float64Var(&c.Speed, "speed", c.Speed, "seconds between generations")
	fs.IntVar(&c.CellSize, "cell", c.CellSize, "cell size in pixels")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for board resets (0 = time-based)")
	fs.StringVar(&c.Theme, "theme", c.Theme, "initial theme: light or dark")
}

// Validate reports every invalid field.
func (c *Config) Validate() error {
	var errs []error
	if c.CellSize <= 0 {
		errs = append(errs, fmt.Errorf("cell size must be positive, got %d", c.CellSize))
	}
	if c.TPS <= 0 {
		errs = append(errs, fmt.Errorf("tps must be positive, got %d", c.TPS))
	}
	opts, err := c.Options()
	if err != nil {
		errs = append(errs, err)
	} else if err := opts.Validate(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Options converts the flags into controller options.
func (c *Config) Options() (life.Options, error) {
	theme, err := core.ParseTheme(c.Theme)
	if err != nil {
		return life.Options{}, err
	}
	seed := c.Seed
	if seed == 0 {
		seed = core.TimeSeed()
	}
	return life.Options{
		Rows:    c.Rows,
		Cols:    c.Cols,
		Density: c.Density,
		Speed:   c.Speed,
		Theme:   theme,
		Seed:    seed,
	}, nil
}

// CanvasSize returns the board size in pixels.
func (c *Config) CanvasSize() (int, int) {
	return c.Cols * c.CellSize, c.Rows * c.CellSize
}
