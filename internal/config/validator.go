package config

import (
	"fmt"

	generrors "github.com/standardbeagle/glgen/internal/errors"
)

// Validate checks that a run has everything generation requires. Missing
// required settings are usage errors: the CLI prints help and exits non-zero.
func (c *Config) Validate() error {
	if len(c.Registry) == 0 {
		return generrors.NewConfigError("validate", fmt.Errorf("no registry files: use --registry or a registry node in %s", DefaultConfigFile))
	}
	if c.Output == "" {
		return generrors.NewConfigError("validate", fmt.Errorf("no output file: use --output or an output node in %s", DefaultConfigFile))
	}
	if len(c.Inputs) == 0 {
		return generrors.NewConfigError("validate", fmt.Errorf("no input files given"))
	}
	if c.Suggestions.Threshold < 0 || c.Suggestions.Threshold > 1 {
		return generrors.NewConfigError("validate", fmt.Errorf("suggestions threshold %v outside [0,1]", c.Suggestions.Threshold))
	}
	if c.Performance.MaxGoroutines < 0 {
		return generrors.NewConfigError("validate", fmt.Errorf("max_goroutines must not be negative"))
	}
	return nil
}
