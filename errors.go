// Package segmentation segments a PCM audio signal into time-bounded clips
// using a pluggable strategy. See the strategy package for the shaping
// pipeline and the config package for the recognized configuration surface.
package segmentation

import "github.com/wonglyxng/segmentation/errs"

// SegmentationError is the umbrella for every error this module raises.
// It is an alias of errs.SegmentationError so that config, strategy, and io
// can all construct and return the same concrete type without importing
// this root package (which would create an import cycle).
type SegmentationError = errs.SegmentationError

var (
	AudioLoadError         = errs.AudioLoadError
	AudioFormatError       = errs.AudioFormatError
	AudioDataError         = errs.AudioDataError
	SegmentWriteError      = errs.SegmentWriteError
	InvalidTimestampError  = errs.InvalidTimestampError
	StrategyError          = errs.StrategyError
	ConfigurationError     = errs.ConfigurationError
	OutputDirectoryError   = errs.OutputDirectoryError
	ManifestError          = errs.ManifestError
	TemplateError          = errs.TemplateError
	SilenceDetectionError  = errs.SilenceDetectionError
	EmptySegmentationError = errs.EmptySegmentationError
	Other                  = errs.Other
	Is                     = errs.Is
)
