package config

import (
	"fmt"

	"github.com/kbukum/dframe/logger"
)

// Engine contains the tunable settings of the query engine.
type Engine struct {
	// Workers is the number of row-range workers a run uses. 1 means
	// sequential execution.
	Workers int `yaml:"workers" mapstructure:"workers"`
	// HistogramBins is the default bin count for histogram actions.
	HistogramBins int `yaml:"histogram_bins" mapstructure:"histogram_bins"`
	// Logging configures the engine logger.
	Logging logger.Config `yaml:"logging" mapstructure:"logging"`
}

// ApplyDefaults applies default values to engine configuration.
func (c *Engine) ApplyDefaults() {
	if c.Workers == 0 {
		c.Workers = 1
	}
	if c.HistogramBins == 0 {
		c.HistogramBins = 64
	}
	c.Logging.ApplyDefaults()
}

// Validate validates engine configuration.
func (c *Engine) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("workers must be >= 1 (got: %d)", c.Workers)
	}
	if c.HistogramBins < 1 {
		return fmt.Errorf("histogram_bins must be >= 1 (got: %d)", c.HistogramBins)
	}
	return c.Logging.Validate()
}
