package io

// mixToMono averages interleaved multi-channel samples down to a single
// channel. It is the Go analogue of the teacher's audioop.ToMono factor-0.5
// downmix, generalized to arbitrary channel counts.
func mixToMono(samples []float64, channels int) []float64 {
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

// duplicateToStereo upmixes a mono signal to interleaved stereo by
// duplicating each sample across both channels, the inverse of mixToMono
// for the channels == 2 case.
func duplicateToStereo(samples []float64) []float64 {
	out := make([]float64, len(samples)*2)
	for i, s := range samples {
		out[2*i] = s
		out[2*i+1] = s
	}
	return out
}

// resampleLinear resamples a single-channel signal from srcRate to dstRate
// using linear interpolation. This is the loader's one-time resample
// applied at decode time; the core never resamples again after this point
// (spec.md §1 Non-goals).
func resampleLinear(samples []float64, srcRate, dstRate int) []float64 {
	if srcRate == dstRate || len(samples) == 0 {
		return samples
	}

	ratio := float64(dstRate) / float64(srcRate)
	outLen := int(float64(len(samples)) * ratio)
	if outLen < 1 {
		outLen = 1
	}

	out := make([]float64, outLen)
	step := float64(srcRate) / float64(dstRate)

	for i := range out {
		srcPos := float64(i) * step
		idx := int(srcPos)
		frac := srcPos - float64(idx)

		if idx >= len(samples)-1 {
			out[i] = samples[len(samples)-1]
			continue
		}
		out[i] = samples[idx]*(1-frac) + samples[idx+1]*frac
	}

	return out
}
