// Package validators holds the input-shape checks the facade runs before
// dispatching to a strategy, adapted from the Python
// segmentation.utilities.validators module.
package validators

import (
	"math"

	"github.com/wonglyxng/segmentation/errs"
)

// ValidateAudioSamples checks a raw sample slice for the invariants in
// spec.md §3: non-empty, finite values.
func ValidateAudioSamples(samples []float64) error {
	if len(samples) == 0 {
		return errs.AudioDataError("audio buffer is empty")
	}
	for _, s := range samples {
		if math.IsNaN(s) || math.IsInf(s, 0) {
			return errs.AudioDataError("audio buffer contains non-finite values")
		}
	}
	return nil
}
