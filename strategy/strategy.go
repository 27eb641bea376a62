// Package strategy implements the segment-shaping pipeline: the
// transformation from raw non-silence intervals plus duration/overlap
// configuration into a final, validated timestamp list. It is adapted from
// the teacher's mutable, immutable-segment style (see segment.go in the
// retrieved wonglyxng/godub pack) generalized from byte-oriented
// AudioSegment slicing to the float-sample segmentation.AudioBuffer model.
package strategy

import (
	"path/filepath"

	"go.uber.org/zap"

	segmentation "github.com/wonglyxng/segmentation"
	"github.com/wonglyxng/segmentation/config"
	"github.com/wonglyxng/segmentation/errs"
	"github.com/wonglyxng/segmentation/internal/validators"
	segio "github.com/wonglyxng/segmentation/io"
)

// IntervalFinder is the one method a segmentation strategy variant must
// implement: map a buffer to raw sample intervals. SilenceStrategy and
// PassthroughStrategy are the two variants in this module (see
// strategy/silence and strategy/passthrough).
type IntervalFinder interface {
	// Name identifies the strategy for StrategyError messages.
	Name() string
	// FindIntervals returns the raw non-silence (or otherwise notable)
	// sample intervals for buf, before shaping.
	FindIntervals(buf *segmentation.AudioBuffer) ([]segmentation.SampleInterval, error)
}

// Base binds an IntervalFinder to the shaping pipeline (§4.4) and exposes
// the four façade operations from spec.md §4.5. It is the Go analogue of
// the Python strategy.base.BaseStrategy.
type Base struct {
	Finder   IntervalFinder
	Audio    config.AudioSettings
	Duration config.DurationSettings
	File     config.FileSettings
	Logger   *zap.Logger
}

// New builds a Base strategy over finder with the given settings. A nil
// logger is replaced with zap.NewNop(), matching the module's convention
// of accepting an optional *zap.Logger instead of a global.
func New(finder IntervalFinder, audio config.AudioSettings, duration config.DurationSettings, file config.FileSettings, logger *zap.Logger) *Base {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Base{Finder: finder, Audio: audio, Duration: duration, File: file, Logger: logger}
}

// SegmentArrayToTimestamps runs the full shaping pipeline (§4.4) over buf
// and returns the resulting timestamps in increasing start order.
func (b *Base) SegmentArrayToTimestamps(buf *segmentation.AudioBuffer) ([]segmentation.Timestamp, error) {
	if err := validators.ValidateAudioSamples(buf.Samples); err != nil {
		return nil, err
	}

	rawIntervals, err := b.Finder.FindIntervals(buf)
	if err != nil {
		return nil, errs.StrategyError(b.Finder.Name(), "failed to generate timestamps: "+err.Error())
	}

	return Shape(rawIntervals, buf.Len(), b.Audio.SampleRateHz, b.Duration, b.Logger)
}

// SegmentFileToTimestamps loads path and runs SegmentArrayToTimestamps over it.
func (b *Base) SegmentFileToTimestamps(path string) ([]segmentation.Timestamp, error) {
	buf, err := segio.LoadAudio(path, b.Audio.SampleRateHz, b.Audio.Channels)
	if err != nil {
		return nil, err
	}
	return b.SegmentArrayToTimestamps(buf)
}

// SegmentArrayToFiles runs the shaping pipeline over buf, then writes one
// segment file and (optionally) one manifest per timestamp, per the write
// loop in spec.md §4.5.
func (b *Base) SegmentArrayToFiles(buf *segmentation.AudioBuffer, originalName string) (map[string]string, error) {
	timestamps, err := b.SegmentArrayToTimestamps(buf)
	if err != nil {
		return nil, err
	}

	result := make(map[string]string, len(timestamps))
	durationSeconds := float64(buf.Len()) / float64(b.Audio.SampleRateHz)

	for index, ts := range timestamps {
		if ts.Start < 0 || ts.End < 0 {
			return nil, errs.InvalidTimestampError(ts.Start, ts.End, "timestamps cannot be negative")
		}
		if ts.Start >= ts.End {
			return nil, errs.InvalidTimestampError(ts.Start, ts.End, "start time must be before end time")
		}
		if ts.End > durationSeconds {
			return nil, errs.InvalidTimestampError(ts.Start, ts.End, "end time exceeds audio duration")
		}

		outputDir, err := segio.BuildOutputDirectory(
			b.File.OutputDirectory,
			b.File.OutputInSubdirectory,
			b.File.OutputSegmentInSubdirectory,
			originalName,
			index,
		)
		if err != nil {
			return nil, err
		}

		segmentFilename, err := segio.FormatFilename(originalName, index, b.File.NameTemplate, b.File.FileFormat)
		if err != nil {
			return nil, err
		}

		segmentPath := segio.BuildPath(outputDir, segmentFilename)

		startIndex := segmentation.SecondsToSamples(ts.Start, b.Audio.SampleRateHz)
		endIndex := segmentation.SecondsToSamples(ts.End, b.Audio.SampleRateHz)
		segmentAudio := buf.Slice(startIndex, endIndex)

		if err := segio.WriteSegment(segmentPath, segmentAudio.Samples, b.Audio.SampleRateHz, b.Audio.Channels); err != nil {
			return nil, err
		}

		if b.File.GenerateManifest {
			manifestFilename, err := segio.FormatFilename(originalName, index, b.File.ManifestNameTemplate, config.FileTypeJSON)
			if err != nil {
				return nil, err
			}
			manifestPath := segio.BuildPath(outputDir, manifestFilename)

			manifest := segio.Manifest{
				OriginalFile: originalName,
				Index:        index,
				SegmentFile:  filepath.ToSlash(segmentPath),
				StartTime:    ts.Start,
				EndTime:      ts.End,
			}
			if err := manifest.WriteFile(manifestPath); err != nil {
				return nil, err
			}
		}

		result[segmentFilename] = segmentPath
	}

	return result, nil
}

// SegmentFileToFiles loads path and runs SegmentArrayToFiles with its stem as original_name.
func (b *Base) SegmentFileToFiles(path string) (map[string]string, error) {
	buf, err := segio.LoadAudio(path, b.Audio.SampleRateHz, b.Audio.Channels)
	if err != nil {
		return nil, err
	}
	stem := filepath.Base(path)
	stem = stem[:len(stem)-len(filepath.Ext(stem))]
	return b.SegmentArrayToFiles(buf, stem)
}
