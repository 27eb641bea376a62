package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultsValidate(t *testing.T) {
	assert.NoError(t, Defaults().Validate())
}

func TestLoadWithoutFilesReturnsDefaults(t *testing.T) {
	dir := t.TempDir()
	settings, err := Load(WithConfigDir(dir))
	require.NoError(t, err)
	assert.Equal(t, Defaults(), settings)
}

func TestLoadMergesDotenvPrecedence(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env.segmentation.defaults"), []byte("SEGMENTATION_AUDIO__SAMPLE_RATE_HZ=8000\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("SEGMENTATION_AUDIO__SAMPLE_RATE_HZ=44100\n"), 0o644))

	settings, err := Load(WithConfigDir(dir))
	require.NoError(t, err)
	assert.Equal(t, 44100, settings.Audio.SampleRateHz)
}

func TestLoadRejectsInvalidSettings(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("SEGMENTATION_AUDIO__CHANNELS=3\n"), 0o644))

	_, err := Load(WithConfigDir(dir))
	assert.Error(t, err)
}

func TestAudioSettingsValidate(t *testing.T) {
	valid := AudioSettings{SampleRateHz: 16000, Channels: 1}
	assert.NoError(t, valid.Validate())

	invalid := AudioSettings{SampleRateHz: 0, Channels: 1}
	assert.Error(t, invalid.Validate())

	badChannels := AudioSettings{SampleRateHz: 16000, Channels: 3}
	assert.Error(t, badChannels.Validate())
}

func TestDurationSettingsOrderingInvariant(t *testing.T) {
	valid := DurationSettings{SoftLowerLimit: 10, SoftUpperLimit: 15, HardLowerLimit: 5, HardUpperLimit: 30}
	assert.NoError(t, valid.Validate())

	invalid := DurationSettings{SoftLowerLimit: 20, SoftUpperLimit: 15, HardLowerLimit: 5, HardUpperLimit: 30}
	assert.Error(t, invalid.Validate())
}

func TestFileSettingsRequiresTemplatePlaceholders(t *testing.T) {
	settings := FileSettings{
		NameTemplate:         "{original_name}_only",
		ManifestNameTemplate: "{original_name}_{segment_index}",
		FileFormat:           FileTypeWAV,
	}
	assert.Error(t, settings.Validate())
}

func TestFileTypeExtension(t *testing.T) {
	assert.Equal(t, "wav", FileTypeWAV.Extension())
	assert.Equal(t, "json", FileTypeJSON.Extension())
}

func TestLoggingSettingsRejectsUnknownFormat(t *testing.T) {
	assert.Error(t, LoggingSettings{Level: "INFO", Format: "xml"}.Validate())
}
