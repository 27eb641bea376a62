package strategy

import (
	"math"

	"go.uber.org/zap"

	segmentation "github.com/wonglyxng/segmentation"
	"github.com/wonglyxng/segmentation/config"
	"github.com/wonglyxng/segmentation/errs"
)

// rawSegment is the mutable scratch representation the merge pass works
// against, in sample (frame) coordinates. Kept separate from
// segmentation.SampleInterval because the merge pass mutates end-points
// in place, which SampleInterval's value semantics don't support cleanly.
type rawSegment struct {
	start, end int
}

// Shape turns raw non-silence (or otherwise notable) intervals into the
// final timestamp list, per spec.md §4.4: short-segment merge, overlap
// padding, then the hard-limit filter and sample-to-second conversion.
// Adapted from the Python strategy.base.BaseStrategy._process_raw_segments
// and its two helpers.
func Shape(rawIntervals []segmentation.SampleInterval, bufferLen, sampleRate int, duration config.DurationSettings, logger *zap.Logger) ([]segmentation.Timestamp, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	segments := make([]rawSegment, len(rawIntervals))
	for i, iv := range rawIntervals {
		segments[i] = rawSegment{start: iv.Start, end: iv.End}
	}

	merged := mergeShortSegments(segments, sampleRate, duration, logger)
	overlapped := applyOverlap(merged, bufferLen, sampleRate, duration)

	timestamps := make([]segmentation.Timestamp, 0, len(overlapped))
	for _, seg := range overlapped {
		segDuration := segmentation.SamplesToSeconds(seg.end-seg.start, sampleRate)
		startSeconds := segmentation.SamplesToSeconds(seg.start, sampleRate)
		endSeconds := segmentation.SamplesToSeconds(seg.end, sampleRate)

		if segDuration < duration.HardLowerLimit {
			logger.Debug("discarding segment below hard lower limit",
				zap.Float64("start", startSeconds), zap.Float64("end", endSeconds), zap.Float64("duration", segDuration))
			continue
		}
		if segDuration > duration.HardUpperLimit {
			logger.Warn("discarding segment above hard upper limit",
				zap.Float64("start", startSeconds), zap.Float64("end", endSeconds), zap.Float64("duration", segDuration))
			continue
		}

		timestamps = append(timestamps, segmentation.Timestamp{
			Start: segmentation.SamplesToSeconds(seg.start, sampleRate),
			End:   segmentation.SamplesToSeconds(seg.end, sampleRate),
		})
	}

	if len(timestamps) == 0 {
		return nil, errs.EmptySegmentationError("no segments survived shaping")
	}

	return timestamps, nil
}

// applyOverlap pads every segment by overlap/2 on each side, bounded by
// [0, bufferLen], mirroring BaseStrategy._apply_overlap.
func applyOverlap(segments []rawSegment, bufferLen, sampleRate int, duration config.DurationSettings) []rawSegment {
	if duration.Overlap <= 0 {
		return segments
	}

	padding := segmentation.SecondsToSamples(duration.Overlap/2, sampleRate)

	out := make([]rawSegment, len(segments))
	for i, seg := range segments {
		start := seg.start - padding
		if start < 0 {
			start = 0
		}
		end := seg.end + padding
		if end > bufferLen {
			end = bufferLen
		}
		out[i] = rawSegment{start: start, end: end}
	}
	return out
}

// mergeShortSegments merges segments shorter than soft_lower_limit into
// a neighbor, preferring whichever merge lands closest to the target
// duration (the midpoint of the soft range). A segment with no admissible
// neighbor is kept as is; the hard-limit filter in Shape then drops it only
// if it is shorter than hard_lower_limit. Adapted from
// BaseStrategy._merge_short_segments, including its re-entrant index walk:
// merging left re-evaluates the grown neighbor by decrementing i, merging
// right holds i so the newly shifted segment is re-evaluated in place.
func mergeShortSegments(segments []rawSegment, sampleRate int, duration config.DurationSettings, logger *zap.Logger) []rawSegment {
	if len(segments) == 0 {
		return nil
	}

	softMinSamples := segmentation.SecondsToSamples(duration.SoftLowerLimit, sampleRate)
	hardMaxSamples := segmentation.SecondsToSamples(duration.HardUpperLimit, sampleRate)
	targetSamples := segmentation.SecondsToSamples((duration.SoftLowerLimit+duration.SoftUpperLimit)/2, sampleRate)
	maxGapSamples := segmentation.SecondsToSamples(duration.MaxMergeGapSecs, sampleRate)

	segs := make([]rawSegment, len(segments))
	copy(segs, segments)

	i := 0
	for i < len(segs) {
		current := segs[i]
		segDuration := current.end - current.start

		if segDuration >= softMinSamples {
			i++
			continue
		}

		var (
			canMergeLeft, canMergeRight   bool
			scoreLeft, scoreRight         = math.Inf(1), math.Inf(1)
			newDurationLeft, newDurationR int
		)

		if i > 0 {
			left := segs[i-1]
			gap := current.start - left.end
			newDurationLeft = current.end - left.start
			if newDurationLeft <= hardMaxSamples && gap <= maxGapSamples {
				canMergeLeft = true
				scoreLeft = math.Abs(float64(newDurationLeft - targetSamples))
			}
		}

		if i < len(segs)-1 {
			right := segs[i+1]
			gap := right.start - current.end
			newDurationR = right.end - current.start
			if newDurationR <= hardMaxSamples && gap <= maxGapSamples {
				canMergeRight = true
				scoreRight = math.Abs(float64(newDurationR - targetSamples))
			}
		}

		if !canMergeLeft && !canMergeRight {
			logger.Debug("short segment is unmergeable, keeping for filter", zap.Int("index", i))
			i++
			continue
		}

		if canMergeLeft && (!canMergeRight || scoreLeft <= scoreRight) {
			logger.Debug("merging segment left", zap.Int("index", i))
			segs[i-1].end = current.end
			segs = append(segs[:i], segs[i+1:]...)
			i--
		} else {
			logger.Debug("merging segment right", zap.Int("index", i))
			segs[i+1].start = current.start
			segs = append(segs[:i], segs[i+1:]...)
		}
	}

	return segs
}
