package io

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/wonglyxng/segmentation/errs"
)

// Manifest describes one segment's provenance (spec.md §4.9). Field order
// here is the on-disk JSON key order — callers must not reorder these
// fields without updating the on-disk contract in spec.md §6.
type Manifest struct {
	OriginalFile string  `json:"original_file"`
	Index        int     `json:"index"`
	SegmentFile  string  `json:"segment_file"`
	StartTime    float64 `json:"start_time"`
	EndTime      float64 `json:"end_time"`
}

// WriteFile serializes m to path as indented JSON, creating parent
// directories as needed.
func (m Manifest) WriteFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errs.ManifestError(path, err.Error())
	}

	data, err := json.MarshalIndent(m, "", "    ")
	if err != nil {
		return errs.ManifestError(path, err.Error())
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errs.ManifestError(path, err.Error())
	}

	return nil
}
