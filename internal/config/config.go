package config

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config captures the runtime knobs for a training run.
type Config struct {
	DataPath      string  `yaml:"data_path"`
	Capacity      int     `yaml:"capacity"`
	MaxIterations int     `yaml:"max_iterations"`
	LearningRate  float64 `yaml:"learning_rate"`
	ScaleFrom     float64 `yaml:"scale_from"`
	ScaleTo       float64 `yaml:"scale_to"`
	SkipScaling   bool    `yaml:"skip_scaling"`
	InitWeight    float64 `yaml:"init_weight"`
	InitBias      float64 `yaml:"init_bias"`
	LogEvery      int     `yaml:"log_every"`
}

// Overrides captures CLI supplied values.
type Overrides struct {
	DataPath      string
	Capacity      int
	MaxIterations int
	LearningRate  float64
	LogEvery      int
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		DataPath:      "data/size_price_examples.txt",
		Capacity:      100,
		MaxIterations: 100,
		LearningRate:  1.0,
		ScaleFrom:     0,
		ScaleTo:       1,
		LogEvery:      10,
	}
}

// Load reads and validates a Config from YAML. Keys absent from the file keep
// their Default values.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open config")
	}
	defer f.Close()

	cfg, err := parseYAML(f)
	if err != nil {
		return nil, errors.Wrap(err, "parse config")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ApplyOverrides updates cfg using any non-zero override.
func (c *Config) ApplyOverrides(o Overrides) {
	if o.DataPath != "" {
		c.DataPath = o.DataPath
	}
	if o.Capacity > 0 {
		c.Capacity = o.Capacity
	}
	if o.MaxIterations > 0 {
		c.MaxIterations = o.MaxIterations
	}
	if o.LearningRate > 0 {
		c.LearningRate = o.LearningRate
	}
	if o.LogEvery > 0 {
		c.LogEvery = o.LogEvery
	}
}

// Validate verifies the config is runnable.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if c.DataPath == "" {
		return errors.New("data_path must be set")
	}
	if c.Capacity <= 0 {
		return errors.Errorf("capacity must be > 0 (got %d)", c.Capacity)
	}
	if c.MaxIterations <= 0 {
		return errors.Errorf("max_iterations must be > 0 (got %d)", c.MaxIterations)
	}
	if c.LearningRate <= 0 {
		return errors.Errorf("learning_rate must be > 0 (got %g)", c.LearningRate)
	}
	if !c.SkipScaling && c.ScaleFrom >= c.ScaleTo {
		return errors.Errorf("scale_from must be < scale_to (got %g >= %g)", c.ScaleFrom, c.ScaleTo)
	}
	if c.LogEvery <= 0 {
		c.LogEvery = 10
	}
	return nil
}

func parseYAML(r io.Reader) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return cfg, nil
}
