package config

import "github.com/wonglyxng/segmentation/errs"

// DurationSettings bounds the shaper's merge admissibility, overlap padding,
// and hard/soft duration filter.
type DurationSettings struct {
	SoftLowerLimit  float64 `mapstructure:"soft_lower_limit"`
	SoftUpperLimit  float64 `mapstructure:"soft_upper_limit"`
	HardLowerLimit  float64 `mapstructure:"hard_lower_limit"`
	HardUpperLimit  float64 `mapstructure:"hard_upper_limit"`
	Overlap         float64 `mapstructure:"overlap"`
	MaxMergeGapSecs float64 `mapstructure:"maximum_merge_gap_duration"`
}

// Validate checks DurationSettings against the invariants in spec.md §3:
// all values non-negative and hard_lower <= soft_lower <= soft_upper <= hard_upper.
func (s DurationSettings) Validate() error {
	for name, v := range map[string]float64{
		"duration.soft_lower_limit":           s.SoftLowerLimit,
		"duration.soft_upper_limit":           s.SoftUpperLimit,
		"duration.hard_lower_limit":           s.HardLowerLimit,
		"duration.hard_upper_limit":           s.HardUpperLimit,
		"duration.overlap":                    s.Overlap,
		"duration.maximum_merge_gap_duration": s.MaxMergeGapSecs,
	} {
		if v < 0 {
			return errs.ConfigurationError(name, v, "must be >= 0")
		}
	}
	if s.HardLowerLimit > s.SoftLowerLimit {
		return errs.ConfigurationError("duration.hard_lower_limit", s.HardLowerLimit, "must be <= soft_lower_limit")
	}
	if s.SoftLowerLimit > s.SoftUpperLimit {
		return errs.ConfigurationError("duration.soft_lower_limit", s.SoftLowerLimit, "must be <= soft_upper_limit")
	}
	if s.SoftUpperLimit > s.HardUpperLimit {
		return errs.ConfigurationError("duration.soft_upper_limit", s.SoftUpperLimit, "must be <= hard_upper_limit")
	}
	return nil
}
