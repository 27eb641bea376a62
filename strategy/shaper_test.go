package strategy

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	segmentation "github.com/wonglyxng/segmentation"
	"github.com/wonglyxng/segmentation/config"
)

func durationSettings() config.DurationSettings {
	return config.DurationSettings{
		SoftLowerLimit:  10,
		SoftUpperLimit:  15,
		HardLowerLimit:  5,
		HardUpperLimit:  30,
		Overlap:         0,
		MaxMergeGapSecs: 1,
	}
}

func TestShapeKeepsAdmissibleSegmentUnchanged(t *testing.T) {
	sampleRate := 100
	intervals := []segmentation.SampleInterval{{Start: 0, End: 1200}} // 12s, within soft range

	timestamps, err := Shape(intervals, 1200, sampleRate, durationSettings(), nil)
	require.NoError(t, err)
	require.Len(t, timestamps, 1)
	assert.InDelta(t, 0, timestamps[0].Start, 1e-9)
	assert.InDelta(t, 12, timestamps[0].End, 1e-9)
}

func TestShapeMergesShortSegmentLeft(t *testing.T) {
	sampleRate := 100
	// first segment 12s (admissible), second segment 2s (too short), small gap
	intervals := []segmentation.SampleInterval{
		{Start: 0, End: 1200},
		{Start: 1250, End: 1450},
	}

	timestamps, err := Shape(intervals, 1450, sampleRate, durationSettings(), nil)
	require.NoError(t, err)
	require.Len(t, timestamps, 1)
	assert.InDelta(t, 0, timestamps[0].Start, 1e-9)
	assert.InDelta(t, 14.5, timestamps[0].End, 1e-9)
}

func TestShapeDiscardsUnmergeableShortSegment(t *testing.T) {
	sampleRate := 100
	// a single short (2s) segment with no neighbors at all
	intervals := []segmentation.SampleInterval{{Start: 0, End: 200}}

	_, err := Shape(intervals, 200, sampleRate, durationSettings(), nil)
	require.Error(t, err)
}

func TestShapeDiscardsOversizeSegment(t *testing.T) {
	sampleRate := 100
	intervals := []segmentation.SampleInterval{
		{Start: 0, End: 3500}, // 35s, exceeds hard upper limit of 30s and is unmergeable (alone)
		{Start: 3600, End: 4800},
	}

	timestamps, err := Shape(intervals, 4800, sampleRate, durationSettings(), nil)
	require.NoError(t, err)
	for _, ts := range timestamps {
		assert.LessOrEqual(t, ts.Duration(), 30.0)
	}
}

func TestShapeAppliesOverlapPadding(t *testing.T) {
	sampleRate := 100
	duration := durationSettings()
	duration.Overlap = 2.0 // 1s padding on each side

	intervals := []segmentation.SampleInterval{{Start: 500, End: 1700}} // 12s

	timestamps, err := Shape(intervals, 2000, sampleRate, duration, nil)
	require.NoError(t, err)
	require.Len(t, timestamps, 1)
	assert.InDelta(t, 4.0, timestamps[0].Start, 1e-9)
	assert.InDelta(t, 18.0, timestamps[0].End, 1e-9)
}

func TestShapeOverlapPaddingBoundedByBufferLength(t *testing.T) {
	sampleRate := 100
	duration := durationSettings()
	duration.Overlap = 2.0 // 1s = 100 samples padding each side

	intervals := []segmentation.SampleInterval{{Start: 0, End: 1200}}

	timestamps, err := Shape(intervals, 1200, sampleRate, duration, nil)
	require.NoError(t, err)
	require.Len(t, timestamps, 1)
	assert.InDelta(t, 0, timestamps[0].Start, 1e-9)
	assert.InDelta(t, 12.0, timestamps[0].End, 1e-9)
}

func TestShapeEmptyInputIsEmptySegmentationError(t *testing.T) {
	_, err := Shape(nil, 1000, 100, durationSettings(), nil)
	assert.Error(t, err)
}

func TestMergeShortSegmentsExactSampleBounds(t *testing.T) {
	sampleRate := 100
	segments := []rawSegment{
		{start: 0, end: 1200},
		{start: 1250, end: 1450},
	}

	got := mergeShortSegments(segments, sampleRate, durationSettings(), zap.NewNop())
	want := []rawSegment{{start: 0, end: 1450}}

	if diff := cmp.Diff(want, got, cmp.AllowUnexported(rawSegment{})); diff != "" {
		t.Errorf("mergeShortSegments() mismatch (-want +got):\n%s", diff)
	}
}
