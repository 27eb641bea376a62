package segmentation

import "math"

// SecondsToSamples converts a duration in seconds to a sample index,
// rounding (never truncating) to prevent cumulative drift when multiple
// timestamps are converted independently.
func SecondsToSamples(seconds float64, sampleRate int) int {
	return int(math.Round(seconds * float64(sampleRate)))
}

// SamplesToSeconds is the inverse of SecondsToSamples; the shaping pipeline
// uses it to convert its final sample intervals to timestamps.
func SamplesToSeconds(samples, sampleRate int) float64 {
	if sampleRate == 0 {
		return 0
	}
	return float64(samples) / float64(sampleRate)
}
