package passthrough

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	segmentation "github.com/wonglyxng/segmentation"
)

func TestFindIntervalsSpansWholeBuffer(t *testing.T) {
	buf := &segmentation.AudioBuffer{Samples: make([]float64, 1600), SampleRate: 16000, Channels: 1}

	intervals, err := New().FindIntervals(buf)
	require.NoError(t, err)
	require.Len(t, intervals, 1)
	assert.Equal(t, segmentation.SampleInterval{Start: 0, End: 1600}, intervals[0])
}

func TestFindIntervalsEmptyBufferReturnsNone(t *testing.T) {
	buf := &segmentation.AudioBuffer{Samples: nil, SampleRate: 16000, Channels: 1}

	intervals, err := New().FindIntervals(buf)
	require.NoError(t, err)
	assert.Empty(t, intervals)
}

func TestName(t *testing.T) {
	assert.Equal(t, "PassthroughStrategy", New().Name())
}
