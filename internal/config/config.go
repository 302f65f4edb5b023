package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/matcalc/internal/calc"
	"github.com/san-kum/matcalc/internal/viz"
)

const (
	DefaultSize      = 4
	DefaultOperation = "mul"
	DefaultTheme     = "cyberpunk"
	DefaultPrecision = 2
	DefaultStep      = 0.1
	DefaultOperand   = "identity"

	MinSize      = 2
	MaxSize      = 4
	MaxPrecision = 6

	// EnvPrefix is prepended to upper-cased keys for environment overrides,
	// e.g. MATCALC_THEME.
	EnvPrefix = "MATCALC"
)

var (
	ErrInvalidSize      = errors.New("config: size out of range")
	ErrInvalidStep      = errors.New("config: step must be positive and finite")
	ErrInvalidPrecision = errors.New("config: precision out of range")
	ErrUnknownTheme     = errors.New("config: unknown theme")
)

// Config holds UI settings. Matrices themselves are never stored; Left and
// Right name operand presets.
type Config struct {
	Size      int     `yaml:"size" mapstructure:"size"`
	Operation string  `yaml:"operation" mapstructure:"operation"`
	Theme     string  `yaml:"theme" mapstructure:"theme"`
	Precision int     `yaml:"precision" mapstructure:"precision"`
	Step      float64 `yaml:"step" mapstructure:"step"`
	Left      string  `yaml:"left" mapstructure:"left"`
	Right     string  `yaml:"right" mapstructure:"right"`
}

func DefaultConfig() *Config {
	return &Config{
		Size:      DefaultSize,
		Operation: DefaultOperation,
		Theme:     DefaultTheme,
		Precision: DefaultPrecision,
		Step:      DefaultStep,
		Left:      DefaultOperand,
		Right:     DefaultOperand,
	}
}

// Load reads a YAML file on top of the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ApplyEnv overrides fields from MATCALC_* environment variables.
func ApplyEnv(cfg *Config) error {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	for _, key := range []string{"size", "operation", "theme", "precision", "step", "left", "right"} {
		if err := v.BindEnv(key); err != nil {
			return err
		}
	}

	if v.IsSet("size") {
		cfg.Size = v.GetInt("size")
	}
	if v.IsSet("operation") {
		cfg.Operation = v.GetString("operation")
	}
	if v.IsSet("theme") {
		cfg.Theme = v.GetString("theme")
	}
	if v.IsSet("precision") {
		cfg.Precision = v.GetInt("precision")
	}
	if v.IsSet("step") {
		cfg.Step = v.GetFloat64("step")
	}
	if v.IsSet("left") {
		cfg.Left = v.GetString("left")
	}
	if v.IsSet("right") {
		cfg.Right = v.GetString("right")
	}
	return nil
}

// Validate checks ranges, the operator name and the theme name.
func (c *Config) Validate() error {
	if c.Size < MinSize || c.Size > MaxSize {
		return fmt.Errorf("%w: %d (want %d..%d)", ErrInvalidSize, c.Size, MinSize, MaxSize)
	}
	if c.Step <= 0 || math.IsNaN(c.Step) || math.IsInf(c.Step, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidStep, c.Step)
	}
	if c.Precision < 0 || c.Precision > MaxPrecision {
		return fmt.Errorf("%w: %d (want 0..%d)", ErrInvalidPrecision, c.Precision, MaxPrecision)
	}
	if _, err := calc.ParseOperation(c.Operation); err != nil {
		return err
	}
	if _, ok := viz.LookupTheme(c.Theme); !ok {
		if s := calc.Suggest(c.Theme, viz.ThemeNames()); s != "" {
			return fmt.Errorf("%w: %q (did you mean %q?)", ErrUnknownTheme, c.Theme, s)
		}
		return fmt.Errorf("%w: %q", ErrUnknownTheme, c.Theme)
	}
	return nil
}

// Op returns the parsed operator, falling back to multiplication.
func (c *Config) Op() calc.Operation {
	op, err := calc.ParseOperation(c.Operation)
	if err != nil {
		return calc.Mul
	}
	return op
}
