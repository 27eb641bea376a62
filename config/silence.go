package config

import "github.com/wonglyxng/segmentation/errs"

// SilenceSettings controls the frame-energy silence detector.
type SilenceSettings struct {
	TopDB              float64 `mapstructure:"top_db"`
	MinSilenceDuration float64 `mapstructure:"minimum_silence_duration"`
	FrameLength        int     `mapstructure:"frame_length"`
	HopLength          int     `mapstructure:"hop_length"`
}

// Validate checks SilenceSettings against the invariants in spec.md §3.
func (s SilenceSettings) Validate() error {
	if s.TopDB < 0 {
		return errs.ConfigurationError("silence.top_db", s.TopDB, "must be >= 0")
	}
	if s.MinSilenceDuration < 0 {
		return errs.ConfigurationError("silence.minimum_silence_duration", s.MinSilenceDuration, "must be >= 0")
	}
	if s.FrameLength <= 0 {
		return errs.ConfigurationError("silence.frame_length", s.FrameLength, "must be positive")
	}
	if s.HopLength <= 0 {
		return errs.ConfigurationError("silence.hop_length", s.HopLength, "must be positive")
	}
	return nil
}
