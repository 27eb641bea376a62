package config

import "github.com/wonglyxng/segmentation/errs"

// AudioSettings controls how input audio is decoded before shaping.
type AudioSettings struct {
	// SampleRateHz is the sample rate audio is resampled to on load.
	SampleRateHz int `mapstructure:"sample_rate_hz"`
	// Channels is the channel layout audio is mixed down to on load (1 or 2).
	Channels int `mapstructure:"channels"`
	// LufsDB is reserved for loudness normalization; the shaper does not
	// exercise it (see DESIGN.md — Open Question carried from spec.md §9).
	LufsDB float64 `mapstructure:"lufs_db"`
}

// Validate checks AudioSettings against the invariants in spec.md §3.
func (s AudioSettings) Validate() error {
	if s.SampleRateHz <= 0 {
		return errs.ConfigurationError("audio.sample_rate_hz", s.SampleRateHz, "must be positive")
	}
	if s.Channels != 1 && s.Channels != 2 {
		return errs.ConfigurationError("audio.channels", s.Channels, "must be 1 or 2")
	}
	return nil
}
