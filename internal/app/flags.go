package app

import (
	"errors"
	"flag"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config represents the command-line parameters for the application.
type Config struct {
	Pattern string
	Cols    int
	Rows    int
	Cell    int
	StepMS  int
	TPS     int
	Seed    int64
	Run     bool
	Set     KVList
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Pattern: "glider", Cols: 60, Rows: 60, Cell: 10, StepMS: 200, TPS: 60, Seed: 42}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "seed pattern to load")
	fs.IntVar(&c.Cols, "cols", c.Cols, "visible board columns")
	fs.IntVar(&c.Rows, "rows", c.Rows, "visible board rows")
	fs.IntVar(&c.Cell, "cell", c.Cell, "pixel size of one cell")
	fs.IntVar(&c.StepMS, "step-ms", c.StepMS, "auto-simulate interval in milliseconds")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the soup pattern")
	fs.BoolVar(&c.Run, "run", c.Run, "start with auto-simulate enabled")
	fs.Var(&c.Set, "set", "pattern parameter in key=value form (repeatable)")
}

// Validate reports the first out-of-range value.
func (c *Config) Validate() error {
	switch {
	case c.Pattern == "":
		return fmt.Errorf("%w: empty pattern name", ErrInvalidConfig)
	case c.Cols <= 0 || c.Rows <= 0:
		return fmt.Errorf("%w: board must be at least 1x1, got %dx%d", ErrInvalidConfig, c.Cols, c.Rows)
	case c.Cell <= 0:
		return fmt.Errorf("%w: cell size must be positive, got %d", ErrInvalidConfig, c.Cell)
	case c.StepMS <= 0:
		return fmt.Errorf("%w: step interval must be positive, got %dms", ErrInvalidConfig, c.StepMS)
	case c.TPS <= 0:
		return fmt.Errorf("%w: tps must be positive, got %d", ErrInvalidConfig, c.TPS)
	}
	return nil
}

// Interval returns the auto-simulate cadence.
func (c *Config) Interval() time.Duration {
	return time.Duration(c.StepMS) * time.Millisecond
}

// PatternConfig returns the -set pairs as a map. The -seed flag fills in
// "seed" unless a -set pair already did.
func (c *Config) PatternConfig() map[string]string {
	cfg := map[string]string{}
	for _, kv := range c.Set {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			continue
		}
		cfg[k] = v
	}
	if _, ok := cfg["seed"]; !ok {
		cfg["seed"] = strconv.FormatInt(c.Seed, 10)
	}
	return cfg
}

// KVList collects repeated key=value flags.
type KVList []string

func (l *KVList) String() string {
	return strings.Join(*l, ",")
}

func (l *KVList) Set(value string) error {
	if !strings.Contains(value, "=") {
		return fmt.Errorf("expected key=value, got %q", value)
	}
	*l = append(*l, value)
	return nil
}
