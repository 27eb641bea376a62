// Package silence implements the frame-energy silence detector strategy
// (spec.md §4.3): the default IntervalFinder, grounded in the Python
// implementation's use of librosa.effects.split and adapted to a plain
// RMS-in-decibels threshold so the module carries no audio-DSP dependency
// beyond what go-audio already provides for decode/encode.
package silence

import (
	"math"
	"runtime"
	"sync"

	segmentation "github.com/wonglyxng/segmentation"
	"github.com/wonglyxng/segmentation/config"
	"github.com/wonglyxng/segmentation/errs"
)

// Strategy finds non-silent intervals by splitting the buffer into
// fixed-size frames, scoring each frame's RMS energy in decibels relative
// to the buffer's loudest frame, and keeping runs of frames above
// top_db below that peak. Adjacent runs separated by a gap shorter than
// minimum_silence_duration are merged, mirroring the implementations/
// silence/strategy.py merge of librosa's raw intervals.
type Strategy struct {
	Settings config.SilenceSettings
}

// New builds a silence Strategy over the given settings.
func New(settings config.SilenceSettings) *Strategy {
	return &Strategy{Settings: settings}
}

// Name identifies the strategy for StrategyError messages.
func (s *Strategy) Name() string { return "SilenceStrategy" }

// FindIntervals returns the merged non-silent sample intervals in buf.
func (s *Strategy) FindIntervals(buf *segmentation.AudioBuffer) ([]segmentation.SampleInterval, error) {
	mono := toMono(buf.Samples, buf.Channels)

	frames := frameRMS(mono, s.Settings.FrameLength, s.Settings.HopLength)
	if len(frames) == 0 {
		return nil, errs.SilenceDetectionError("audio is shorter than one analysis frame")
	}

	peak := 0.0
	for _, rms := range frames {
		if rms > peak {
			peak = rms
		}
	}
	if peak == 0 {
		// Entirely digital silence: no frame clears any threshold.
		return nil, nil
	}

	threshold := -s.Settings.TopDB
	nonSilent := make([]bool, len(frames))
	for i, rms := range frames {
		nonSilent[i] = amplitudeToDB(rms, peak) > threshold
	}

	raw := framesToIntervals(nonSilent, s.Settings.HopLength, s.Settings.FrameLength, len(mono))
	return mergeSilenceGaps(raw, s.Settings.MinSilenceDuration, buf.SampleRate), nil
}

// toMono averages interleaved multi-channel samples to a single channel
// for the purpose of energy analysis; the timestamps it produces still
// apply to the full-channel buffer since frame boundaries are expressed
// in frame (not raw sample) coordinates.
func toMono(samples []float64, channels int) []float64 {
	if channels <= 1 {
		return samples
	}
	frames := len(samples) / channels
	out := make([]float64, frames)
	for i := 0; i < frames; i++ {
		var sum float64
		for c := 0; c < channels; c++ {
			sum += samples[i*channels+c]
		}
		out[i] = sum / float64(channels)
	}
	return out
}

// frameRMS computes the RMS energy of each frameLength-sample window,
// advancing hopLength samples between windows. Computation is spread
// across a worker pool indexed by frame number, adapted from the
// teacher's DetectSilenceConcurrent worker/result-channel pattern, since
// each frame's RMS is independent of every other frame's.
func frameRMS(samples []float64, frameLength, hopLength int) []float64 {
	if frameLength <= 0 || hopLength <= 0 || len(samples) < frameLength {
		return nil
	}

	frameCount := (len(samples)-frameLength)/hopLength + 1
	result := make([]float64, frameCount)

	type job struct {
		index, start int
	}

	jobs := make(chan job, frameCount)
	var wg sync.WaitGroup

	workers := runtime.NumCPU()
	if workers > frameCount {
		workers = frameCount
	}
	if workers < 1 {
		workers = 1
	}

	worker := func() {
		defer wg.Done()
		for j := range jobs {
			window := samples[j.start : j.start+frameLength]
			var sumSquares float64
			for _, s := range window {
				sumSquares += s * s
			}
			result[j.index] = math.Sqrt(sumSquares / float64(frameLength))
		}
	}

	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go worker()
	}
	for i := 0; i < frameCount; i++ {
		jobs <- job{index: i, start: i * hopLength}
	}
	close(jobs)
	wg.Wait()

	return result
}

// amplitudeToDB converts an RMS amplitude to decibels relative to ref,
// flooring at -200dB to keep digital silence finite.
func amplitudeToDB(amplitude, ref float64) float64 {
	const floor = 1e-10
	ratio := amplitude / ref
	if ratio < floor {
		ratio = floor
	}
	return 20 * math.Log10(ratio)
}

// framesToIntervals collapses a per-frame non-silent boolean mask into
// sample intervals, one per maximal run of true frames.
func framesToIntervals(nonSilent []bool, hopLength, frameLength, totalSamples int) []segmentation.SampleInterval {
	var intervals []segmentation.SampleInterval

	inRun := false
	runStart := 0

	for i, active := range nonSilent {
		if active && !inRun {
			inRun = true
			runStart = i * hopLength
		}
		if !active && inRun {
			inRun = false
			end := i*hopLength + frameLength - hopLength
			intervals = append(intervals, segmentation.SampleInterval{Start: runStart, End: clamp(end, totalSamples)})
		}
	}
	if inRun {
		last := len(nonSilent) - 1
		end := last*hopLength + frameLength
		intervals = append(intervals, segmentation.SampleInterval{Start: runStart, End: clamp(end, totalSamples)})
	}

	return intervals
}

func clamp(v, max int) int {
	if v > max {
		return max
	}
	return v
}

// mergeSilenceGaps merges adjacent non-silent intervals separated by a
// silence gap shorter than minSilenceDuration, the same rule the
// strategy.py silence implementation applies to librosa's raw intervals.
func mergeSilenceGaps(intervals []segmentation.SampleInterval, minSilenceDuration float64, sampleRate int) []segmentation.SampleInterval {
	if len(intervals) == 0 {
		return nil
	}

	minGapSamples := segmentation.SecondsToSamples(minSilenceDuration, sampleRate)

	merged := make([]segmentation.SampleInterval, 0, len(intervals))
	current := intervals[0]

	for _, next := range intervals[1:] {
		if next.Start-current.End < minGapSamples {
			current.End = next.End
			continue
		}
		merged = append(merged, current)
		current = next
	}
	merged = append(merged, current)

	return merged
}
