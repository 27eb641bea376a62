package segmenter_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	segmentation "github.com/wonglyxng/segmentation"
	"github.com/wonglyxng/segmentation/errs"
	"github.com/wonglyxng/segmentation/segmenter"
)

type stubStrategy struct {
	timestamps []segmentation.Timestamp
	files      map[string]string
	err        error
}

func (s *stubStrategy) SegmentArrayToTimestamps(*segmentation.AudioBuffer) ([]segmentation.Timestamp, error) {
	return s.timestamps, s.err
}

func (s *stubStrategy) SegmentFileToTimestamps(string) ([]segmentation.Timestamp, error) {
	return s.timestamps, s.err
}

func (s *stubStrategy) SegmentArrayToFiles(*segmentation.AudioBuffer, string) (map[string]string, error) {
	return s.files, s.err
}

func (s *stubStrategy) SegmentFileToFiles(string) (map[string]string, error) {
	return s.files, s.err
}

func TestSegmentPathToTimestampsDelegates(t *testing.T) {
	stub := &stubStrategy{timestamps: []segmentation.Timestamp{{Start: 0, End: 1}}}
	seg := segmenter.New(stub, nil)

	result, err := seg.SegmentPathToTimestamps("clip.wav")
	require.NoError(t, err)
	assert.Equal(t, stub.timestamps, result)
}

func TestSegmentPathToFilesPropagatesSegmentationErrorUnwrapped(t *testing.T) {
	original := errs.AudioLoadError("clip.wav", "file does not exist")
	stub := &stubStrategy{err: original}
	seg := segmenter.New(stub, nil)

	_, err := seg.SegmentPathToFiles("clip.wav")
	assert.Same(t, original, err)
}

func TestSegmentArrayToTimestampsWrapsUnexpectedError(t *testing.T) {
	stub := &stubStrategy{err: errors.New("boom")}
	seg := segmenter.New(stub, nil)

	_, err := seg.SegmentArrayToTimestamps(nil)
	require.Error(t, err)
	assert.True(t, errs.Is(err, "Other"))
}
