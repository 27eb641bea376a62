package io

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wonglyxng/segmentation/config"
)

func TestFormatFilenameRendersPlaceholders(t *testing.T) {
	name, err := FormatFilename("lecture", 3, "{original_name}_segment_{segment_index}", config.FileTypeWAV)
	require.NoError(t, err)
	assert.Equal(t, "lecture_segment_3.wav", name)
}

func TestFormatFilenameRejectsUnknownPlaceholder(t *testing.T) {
	_, err := FormatFilename("lecture", 3, "{original_name}_{unknown}", config.FileTypeWAV)
	assert.Error(t, err)
}

func TestParseSegmentIndexRoundTrips(t *testing.T) {
	name, err := FormatFilename("clip", 7, "{original_name}_segment_{segment_index}", config.FileTypeMP3)
	require.NoError(t, err)

	index, ok := ParseSegmentIndex(name)
	require.True(t, ok)
	assert.Equal(t, 7, index)
}

func TestParseSegmentIndexRejectsNonNumericSuffix(t *testing.T) {
	_, ok := ParseSegmentIndex("clip_segment_final.wav")
	assert.False(t, ok)
}
