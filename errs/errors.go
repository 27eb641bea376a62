// Package errs models every error this module raises as a tagged variant
// (one constructor per kind) rather than an exception hierarchy.
package errs

import (
	"errors"
	"fmt"
)

// SegmentationError is the umbrella for every error this module raises.
// Concrete failures are modeled as one constructor per kind rather than a
// type hierarchy; Unwrap always returns the wrapped cause, if any, so
// callers can use errors.As/errors.Is against it.
type SegmentationError struct {
	Kind    string
	Message string
	Cause   error
}

func (e *SegmentationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *SegmentationError) Unwrap() error { return e.Cause }

func wrap(kind, message string, cause error) *SegmentationError {
	return &SegmentationError{Kind: kind, Message: message, Cause: cause}
}

// AudioLoadError is raised when an audio file cannot be loaded or read.
func AudioLoadError(path, reason string) *SegmentationError {
	return wrap("AudioLoadError", fmt.Sprintf("failed to load audio file %q: %s", path, reason), nil)
}

// AudioFormatError is raised when the decoder fails for format/codec reasons.
func AudioFormatError(path, details string) *SegmentationError {
	return wrap("AudioFormatError", fmt.Sprintf("invalid audio format for %q: %s", path, details), nil)
}

// AudioDataError is raised when audio data is empty, non-finite, or otherwise malformed.
func AudioDataError(details string) *SegmentationError {
	return wrap("AudioDataError", fmt.Sprintf("invalid audio data: %s", details), nil)
}

// SegmentWriteError is raised when a segment cannot be written to disk.
func SegmentWriteError(path, reason string) *SegmentationError {
	return wrap("SegmentWriteError", fmt.Sprintf("failed to write segment to %q: %s", path, reason), nil)
}

// TimestampErrorDetail is a (start, end) pair in seconds.
type TimestampErrorDetail struct {
	Start, End float64
}

// InvalidTimestampError is raised when a generated (start, end) pair fails validation.
func InvalidTimestampError(start, end float64, reason string) *SegmentationError {
	msg := fmt.Sprintf("invalid timestamp range [%v, %v]", start, end)
	if reason != "" {
		msg += ": " + reason
	}
	return wrap("InvalidTimestampError", msg, nil)
}

// StrategyError wraps an unexpected failure inside a strategy implementation.
func StrategyError(strategyName, reason string) *SegmentationError {
	return wrap("StrategyError", fmt.Sprintf("strategy %q failed: %s", strategyName, reason), nil)
}

// ConfigurationError is raised when a setting fails validation.
func ConfigurationError(settingName string, value any, reason string) *SegmentationError {
	return wrap("ConfigurationError", fmt.Sprintf("invalid configuration for %q (value: %v): %s", settingName, value, reason), nil)
}

// OutputDirectoryError is raised when the output directory cannot be created or accessed.
func OutputDirectoryError(path, reason string) *SegmentationError {
	return wrap("OutputDirectoryError", fmt.Sprintf("cannot access output directory %q: %s", path, reason), nil)
}

// ManifestError is raised when the manifest file cannot be created or is invalid.
func ManifestError(path, reason string) *SegmentationError {
	return wrap("ManifestError", fmt.Sprintf("manifest error for %q: %s", path, reason), nil)
}

// TemplateError is raised when a filename template contains an unrecognized placeholder.
func TemplateError(template, reason string) *SegmentationError {
	return wrap("TemplateError", fmt.Sprintf("invalid template %q: %s", template, reason), nil)
}

// SilenceDetectionError wraps a failure from the underlying silence detector.
func SilenceDetectionError(details string) *SegmentationError {
	return wrap("SilenceDetectionError", fmt.Sprintf("silence detection failed: %s", details), nil)
}

// EmptySegmentationError is raised when shaping produces zero usable segments.
func EmptySegmentationError(reason string) *SegmentationError {
	return wrap("EmptySegmentationError", reason, nil)
}

// Other wraps an unclassified failure encountered inside a segment_* call.
func Other(message string, cause error) *SegmentationError {
	return wrap("Other", message, cause)
}

// Is reports whether err is a SegmentationError of the given kind.
func Is(err error, kind string) bool {
	var segErr *SegmentationError
	if errors.As(err, &segErr) {
		return segErr.Kind == kind
	}
	return false
}
