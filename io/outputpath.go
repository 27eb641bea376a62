package io

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/wonglyxng/segmentation/errs"
)

// BuildOutputDirectory resolves and creates the directory a segment (and its
// manifest) at segmentIndex should be written under, per spec.md §4.6:
// optionally nested by the original file's stem and/or by segment index.
func BuildOutputDirectory(outputDirectory string, inSubdirectory, segmentInSubdirectory bool, originalName string, segmentIndex int) (string, error) {
	if inSubdirectory && originalName == "" {
		return "", errs.ConfigurationError("output_in_subdirectory", true, "original_name must be provided when output_in_subdirectory is true")
	}

	path := outputDirectory
	if inSubdirectory {
		stem := filepath.Base(originalName)
		stem = stem[:len(stem)-len(filepath.Ext(stem))]
		path = filepath.Join(path, stem)
	}
	if segmentInSubdirectory {
		path = filepath.Join(path, fmt.Sprintf("segment_%d", segmentIndex))
	}

	if err := os.MkdirAll(path, 0o755); err != nil {
		if os.IsPermission(err) {
			return "", errs.OutputDirectoryError(path, "permission denied: "+err.Error())
		}
		return "", errs.OutputDirectoryError(path, "cannot create directory: "+err.Error())
	}

	return path, nil
}

// BuildPath joins outputDirectory and filename.
func BuildPath(outputDirectory, filename string) string {
	return filepath.Join(outputDirectory, filename)
}
