package segmentation

// AudioBuffer is a dense, normalized PCM sample buffer at a fixed sample
// rate and channel count. Samples are interleaved per frame (frame i,
// channel c lives at Samples[i*Channels+c]); every sample-domain
// computation in this module (SampleInterval bounds, seconds_to_samples)
// operates in frame units, not raw slice indices. A Segmenter owns the
// buffer exclusively for the duration of one segment operation; slices
// derived from it are borrows with a bounded lifetime.
type AudioBuffer struct {
	Samples    []float64
	SampleRate int
	Channels   int
}

// Len returns the number of frames in the buffer.
func (b *AudioBuffer) Len() int {
	if b == nil || b.Channels == 0 {
		return 0
	}
	return len(b.Samples) / b.Channels
}

// DurationSeconds returns the buffer's length in seconds.
func (b *AudioBuffer) DurationSeconds() float64 {
	if b == nil || b.SampleRate == 0 {
		return 0
	}
	return float64(b.Len()) / float64(b.SampleRate)
}

// Slice returns the half-open frame range [start, end) as a new buffer
// sharing the same sample rate and channel count. It does not copy beyond
// what Go's slicing already borrows from the backing array.
func (b *AudioBuffer) Slice(start, end int) *AudioBuffer {
	channels := b.Channels
	if channels == 0 {
		channels = 1
	}
	return &AudioBuffer{
		Samples:    b.Samples[start*channels : end*channels],
		SampleRate: b.SampleRate,
		Channels:   channels,
	}
}

// SampleInterval is a half-open interval [Start, End) in frame coordinates.
type SampleInterval struct {
	Start int
	End   int
}

// Duration returns the interval's length in frames.
func (iv SampleInterval) Duration() int { return iv.End - iv.Start }

// Timestamp is a half-open interval [Start, End) in seconds.
type Timestamp struct {
	Start float64
	End   float64
}

// Duration returns the timestamp's length in seconds.
func (t Timestamp) Duration() float64 { return t.End - t.Start }
