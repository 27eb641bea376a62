package io

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteSegmentRejectsEmptySamples(t *testing.T) {
	err := WriteSegment(filepath.Join(t.TempDir(), "out.wav"), nil, 16000, 1)
	assert.Error(t, err)
}

func TestWriteSegmentRejectsInvalidSampleRate(t *testing.T) {
	err := WriteSegment(filepath.Join(t.TempDir(), "out.wav"), []float64{0.1, 0.2}, 0, 1)
	assert.Error(t, err)
}

func TestWriteSegmentRejectsInvalidChannelCount(t *testing.T) {
	err := WriteSegment(filepath.Join(t.TempDir(), "out.wav"), []float64{0.1, 0.2}, 16000, 0)
	assert.Error(t, err)
}

func TestWriteWAVRoundTripsThroughLoadAudio(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tone.wav")

	samples := make([]float64, 1600)
	for i := range samples {
		samples[i] = 0.5
	}

	require.NoError(t, WriteSegment(path, samples, 16000, 1))

	buf, err := LoadAudio(path, 16000, 1)
	require.NoError(t, err)
	assert.Equal(t, 1600, buf.Len())
	assert.Equal(t, 16000, buf.SampleRate)
	assert.Equal(t, 1, buf.Channels)

	for _, s := range buf.Samples {
		assert.InDelta(t, 0.5, s, 0.01)
	}
}

func TestWriteWAVStereoPreservesChannelCount(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "stereo.wav")

	samples := make([]float64, 1600) // 800 stereo frames
	for i := 0; i < len(samples); i += 2 {
		samples[i] = 0.5
		samples[i+1] = -0.5
	}

	require.NoError(t, WriteSegment(path, samples, 16000, 2))

	buf, err := LoadAudio(path, 16000, 2)
	require.NoError(t, err)
	assert.Equal(t, 800, buf.Len())
	assert.Equal(t, 2, buf.Channels)
}
