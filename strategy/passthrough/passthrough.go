// Package passthrough implements a null IntervalFinder: the whole buffer
// is one interval. It exercises the shaping pipeline (merge, overlap,
// hard-limit filter) independently of the silence detector, the role
// spec.md §9's "null/pass-through strategy... useful as a test double"
// describes.
package passthrough

import (
	segmentation "github.com/wonglyxng/segmentation"
)

// Strategy returns the entire buffer as a single raw interval.
type Strategy struct{}

// New builds a passthrough Strategy.
func New() *Strategy { return &Strategy{} }

// Name identifies the strategy for StrategyError messages.
func (s *Strategy) Name() string { return "PassthroughStrategy" }

// FindIntervals returns [0, buf.Len()) as the sole raw interval.
func (s *Strategy) FindIntervals(buf *segmentation.AudioBuffer) ([]segmentation.SampleInterval, error) {
	length := buf.Len()
	if length == 0 {
		return nil, nil
	}
	return []segmentation.SampleInterval{{Start: 0, End: length}}, nil
}
