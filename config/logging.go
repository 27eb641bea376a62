package config

import "github.com/wonglyxng/segmentation/errs"

// LoggingSettings is an external collaborator: the core never reads it, but
// hosts embedding this module use it to configure the logging package.
type LoggingSettings struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Validate checks that Format is one of the recognized renderers.
func (s LoggingSettings) Validate() error {
	switch s.Format {
	case "console", "json", "simple":
	default:
		return errs.ConfigurationError("logging.format", s.Format, "must be one of console, json, simple")
	}
	return nil
}
