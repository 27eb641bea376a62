package io

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManifestWriteFileProducesExpectedShape(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "segment_0.json")

	m := Manifest{
		OriginalFile: "lecture.wav",
		Index:        0,
		SegmentFile:  "output/lecture_segment_0.wav",
		StartTime:    1.5,
		EndTime:      13.25,
	}
	require.NoError(t, m.WriteFile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, "lecture.wav", decoded["original_file"])
	assert.Equal(t, 0.0, decoded["index"])
	assert.Equal(t, "output/lecture_segment_0.wav", decoded["segment_file"])
	assert.Equal(t, 1.5, decoded["start_time"])
	assert.Equal(t, 13.25, decoded["end_time"])
}

func TestManifestWriteFileCreatesParentDirectory(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "segment_0.json")

	m := Manifest{OriginalFile: "a.wav", Index: 0, SegmentFile: "a_0.wav", StartTime: 0, EndTime: 1}
	require.NoError(t, m.WriteFile(path))

	_, err := os.Stat(path)
	assert.NoError(t, err)
}
