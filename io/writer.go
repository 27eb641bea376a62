package io

import (
	"math"
	"os"
	"path/filepath"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/wonglyxng/segmentation/config"
	"github.com/wonglyxng/segmentation/errs"
)

// writeBitDepth is the PCM depth segments are encoded at before any
// ffmpeg transcode; 16-bit matches the teacher pack's (pphelan007-davidAI)
// default and is lossless enough for the intermediate WAV step.
const writeBitDepth = 16

// WriteSegment encodes interleaved samples at sampleRate/channels to
// outputPath, per spec.md §4.8. The container is chosen from outputPath's
// extension: WAV is written natively, other formats are produced by
// encoding to a temporary WAV and transcoding it with ffmpeg.
func WriteSegment(outputPath string, samples []float64, sampleRate, channels int) error {
	if len(samples) == 0 {
		return errs.AudioDataError("cannot write empty audio segment")
	}
	if sampleRate <= 0 {
		return errs.AudioDataError("invalid sample rate")
	}
	if channels <= 0 {
		return errs.AudioDataError("invalid channel count")
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return errs.SegmentWriteError(outputPath, "cannot create parent directory: "+err.Error())
	}

	ext := config.FileType(trimLeadingDot(filepath.Ext(outputPath)))
	if ext == config.FileTypeWAV {
		return writeWAV(outputPath, samples, sampleRate, channels)
	}

	scratch, err := newScratchWAVPath()
	if err != nil {
		return errs.SegmentWriteError(outputPath, err.Error())
	}
	defer os.Remove(scratch)

	if err := writeWAV(scratch, samples, sampleRate, channels); err != nil {
		return err
	}

	if err := runFFmpeg(scratch, outputPath); err != nil {
		return errs.SegmentWriteError(outputPath, err.Error())
	}

	return nil
}

func writeWAV(outputPath string, samples []float64, sampleRate, channels int) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return errs.SegmentWriteError(outputPath, err.Error())
	}
	defer file.Close()

	encoder := wav.NewEncoder(file, sampleRate, writeBitDepth, channels, 1)

	intSamples := make([]int, len(samples))
	maxAmplitude := float64(int(1) << (writeBitDepth - 1))
	for i, s := range samples {
		clamped := math.Max(-1, math.Min(1, s))
		intSamples[i] = int(clamped * (maxAmplitude - 1))
	}

	buf := &audio.IntBuffer{
		Format: &audio.Format{NumChannels: channels, SampleRate: sampleRate},
		Data:   intSamples,
	}

	if err := encoder.Write(buf); err != nil {
		return errs.SegmentWriteError(outputPath, err.Error())
	}
	if err := encoder.Close(); err != nil {
		return errs.SegmentWriteError(outputPath, err.Error())
	}

	return nil
}

func trimLeadingDot(ext string) string {
	if len(ext) > 0 && ext[0] == '.' {
		return ext[1:]
	}
	return ext
}
