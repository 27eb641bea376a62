// Package config defines the recognized segmentation settings and loads
// them from environment variables and dotenv-style files via viper and
// gotenv. Loading is an external collaborator to the segmentation core:
// the core only ever accepts an already-validated Settings value.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"github.com/subosito/gotenv"

	"github.com/wonglyxng/segmentation/errs"
)

// Settings is the full recognized configuration surface (spec.md §6).
type Settings struct {
	Audio    AudioSettings    `mapstructure:"audio"`
	Duration DurationSettings `mapstructure:"duration"`
	File     FileSettings     `mapstructure:"file"`
	Silence  SilenceSettings  `mapstructure:"silence"`
	Logging  LoggingSettings  `mapstructure:"logging"`
}

// Validate runs every sub-setting's Validate, short-circuiting on the first failure.
func (s Settings) Validate() error {
	validators := []func() error{
		s.Audio.Validate,
		s.Duration.Validate,
		s.File.Validate,
		s.Silence.Validate,
		s.Logging.Validate,
	}
	for _, validate := range validators {
		if err := validate(); err != nil {
			return err
		}
	}
	return nil
}

// Defaults returns the recognized defaults from spec.md §6.
func Defaults() Settings {
	return Settings{
		Audio: AudioSettings{
			SampleRateHz: 16000,
			Channels:     1,
			LufsDB:       -23.0,
		},
		Duration: DurationSettings{
			SoftLowerLimit:  10.0,
			SoftUpperLimit:  15.0,
			HardLowerLimit:  5.0,
			HardUpperLimit:  30.0,
			Overlap:         0.5,
			MaxMergeGapSecs: 1.0,
		},
		File: FileSettings{
			OutputDirectory:             "output",
			OutputInSubdirectory:        true,
			OutputSegmentInSubdirectory: false,
			NameTemplate:                "{original_name}_segment_{segment_index}",
			ManifestNameTemplate:        "{original_name}_manifest_{segment_index}",
			FileFormat:                  FileTypeWAV,
			GenerateManifest:            true,
		},
		Silence: SilenceSettings{
			TopDB:              30.0,
			MinSilenceDuration: 0.5,
			FrameLength:        2048,
			HopLength:          512,
		},
		Logging: LoggingSettings{
			Level:  "INFO",
			Format: "console",
		},
	}
}

// envFiles lists the dotenv precedence chain, ascending: library defaults,
// library overrides, project defaults, project overrides — matching the
// Python implementation's pydantic-settings env_file tuple.
var envFiles = []string{
	".env.segmentation.defaults",
	".env.segmentation",
	".env.defaults",
	".env",
}

// options holds Load's tunables; the zero value resolves envFiles relative
// to the process's working directory.
type options struct {
	configDir string
}

// Option customizes Load.
type Option func(*options)

// WithConfigDir resolves envFiles relative to dir instead of the working directory.
func WithConfigDir(dir string) Option {
	return func(o *options) { o.configDir = dir }
}

// envKeyPrefix is the prefix dotenv-file keys must carry to be recognized
// as segmentation settings, matching SetEnvPrefix below.
const envKeyPrefix = "SEGMENTATION_"

// Load builds Settings from registered defaults, the dotenv precedence
// chain in envFiles, and SEGMENTATION_-prefixed, "__"-nested-delimited
// environment variables, then validates the result.
//
// Dotenv files are parsed with gotenv and their SEGMENTATION_-prefixed
// keys are translated back to dotted setting keys and applied with
// viper.Set, rather than loaded as a viper config source or exported into
// the real process environment: viper's "env" config type would treat
// file keys as flat, literal strings that never pass through the
// SetEnvKeyReplacer translation AutomaticEnv applies to nested keys, and
// mutating os.Environ would leak across unrelated Load calls. A real
// environment variable for the same key always takes precedence over any
// dotenv file, matching the Python implementation's pydantic-settings
// precedence.
func Load(opts ...Option) (Settings, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	v := viper.New()
	v.SetEnvPrefix("SEGMENTATION")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "__"))
	v.AutomaticEnv()

	registerDefaults(v, Defaults())

	for _, name := range envFiles {
		path := name
		if o.configDir != "" {
			path = filepath.Join(o.configDir, name)
		}

		values, err := gotenv.Read(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return Settings{}, errs.Other("failed to load config file "+path, err)
		}

		for key, value := range values {
			dottedKey, ok := toDottedKey(key)
			if !ok {
				continue
			}
			if _, present := os.LookupEnv(key); present {
				continue
			}
			v.Set(dottedKey, value)
		}
	}

	var settings Settings
	if err := v.Unmarshal(&settings); err != nil {
		return Settings{}, errs.Other("failed to unmarshal configuration", err)
	}

	if err := settings.Validate(); err != nil {
		return Settings{}, err
	}

	return settings, nil
}

// toDottedKey translates an env-var-shaped key like
// "SEGMENTATION_AUDIO__SAMPLE_RATE_HZ" to the dotted setting key
// "audio.sample_rate_hz", the inverse of SetEnvKeyReplacer's transform.
func toDottedKey(envKey string) (string, bool) {
	if !strings.HasPrefix(envKey, envKeyPrefix) {
		return "", false
	}
	rest := strings.TrimPrefix(envKey, envKeyPrefix)
	dotted := strings.ReplaceAll(strings.ToLower(rest), "__", ".")
	return dotted, true
}

func registerDefaults(v *viper.Viper, d Settings) {
	v.SetDefault("audio.sample_rate_hz", d.Audio.SampleRateHz)
	v.SetDefault("audio.channels", d.Audio.Channels)
	v.SetDefault("audio.lufs_db", d.Audio.LufsDB)

	v.SetDefault("duration.soft_lower_limit", d.Duration.SoftLowerLimit)
	v.SetDefault("duration.soft_upper_limit", d.Duration.SoftUpperLimit)
	v.SetDefault("duration.hard_lower_limit", d.Duration.HardLowerLimit)
	v.SetDefault("duration.hard_upper_limit", d.Duration.HardUpperLimit)
	v.SetDefault("duration.overlap", d.Duration.Overlap)
	v.SetDefault("duration.maximum_merge_gap_duration", d.Duration.MaxMergeGapSecs)

	v.SetDefault("file.output_directory", d.File.OutputDirectory)
	v.SetDefault("file.output_in_subdirectory", d.File.OutputInSubdirectory)
	v.SetDefault("file.output_segment_in_subdirectory", d.File.OutputSegmentInSubdirectory)
	v.SetDefault("file.name_template", d.File.NameTemplate)
	v.SetDefault("file.manifest_name_template", d.File.ManifestNameTemplate)
	v.SetDefault("file.file_format", string(d.File.FileFormat))
	v.SetDefault("file.generate_manifest", d.File.GenerateManifest)

	v.SetDefault("silence.top_db", d.Silence.TopDB)
	v.SetDefault("silence.minimum_silence_duration", d.Silence.MinSilenceDuration)
	v.SetDefault("silence.frame_length", d.Silence.FrameLength)
	v.SetDefault("silence.hop_length", d.Silence.HopLength)

	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.format", d.Logging.Format)
}
