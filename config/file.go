package config

import (
	"strings"

	"github.com/wonglyxng/segmentation/errs"
)

// FileType enumerates the supported output container formats. JSON is
// reserved for manifest sidecar files.
type FileType string

const (
	FileTypeWAV  FileType = "wav"
	FileTypeMP3  FileType = "mp3"
	FileTypeFLAC FileType = "flac"
	FileTypeAAC  FileType = "aac"
	FileTypeJSON FileType = "json"
)

// Extension returns the file extension (without the leading dot) for ft.
func (ft FileType) Extension() string { return string(ft) }

// FileSettings controls how segments and manifests are laid out on disk.
type FileSettings struct {
	OutputDirectory             string   `mapstructure:"output_directory"`
	OutputInSubdirectory        bool     `mapstructure:"output_in_subdirectory"`
	OutputSegmentInSubdirectory bool     `mapstructure:"output_segment_in_subdirectory"`
	NameTemplate                string   `mapstructure:"name_template"`
	ManifestNameTemplate        string   `mapstructure:"manifest_name_template"`
	FileFormat                  FileType `mapstructure:"file_format"`
	GenerateManifest            bool     `mapstructure:"generate_manifest"`
}

// Validate checks FileSettings against the invariants in spec.md §3: both
// recognized templates must carry the {original_name} and {segment_index}
// placeholders, and the configured file format must be a segment-writable one.
func (s FileSettings) Validate() error {
	for name, tpl := range map[string]string{
		"file.name_template":          s.NameTemplate,
		"file.manifest_name_template": s.ManifestNameTemplate,
	} {
		if !strings.Contains(tpl, "{original_name}") || !strings.Contains(tpl, "{segment_index}") {
			return errs.ConfigurationError(name, tpl, "template must contain both {original_name} and {segment_index}")
		}
	}
	switch s.FileFormat {
	case FileTypeWAV, FileTypeMP3, FileTypeFLAC, FileTypeAAC:
	default:
		return errs.ConfigurationError("file.file_format", s.FileFormat, "unsupported file format")
	}
	return nil
}
