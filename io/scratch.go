package io

import (
	"os"

	"github.com/tink-ab/tempfile"
)

// newScratchWAVPath reserves a unique .wav-suffixed temp file path for the
// ffmpeg transcode step (the temp file itself is removed again, so nothing
// exists at the returned path), using the teacher's tink-ab/tempfile
// dependency (chosen over os.CreateTemp's "*" pattern because the loader
// and writer both need an explicit, predictable suffix for ffmpeg to infer
// the container from).
func newScratchWAVPath() (string, error) {
	f, err := tempfile.TempFile("", "segmentation-", ".wav")
	if err != nil {
		return "", err
	}
	path := f.Name()
	f.Close()
	os.Remove(path)
	return path, nil
}
