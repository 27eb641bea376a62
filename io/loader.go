// Package io decodes audio files to sample buffers, encodes sample slices
// back to files, and handles the filesystem-facing concerns (output paths,
// filenames, manifests) around a segmentation operation. WAV is read and
// written natively via go-audio/wav; other containers are shelled out to
// ffmpeg, adapted from the teacher's converter package.
package io

import (
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	segmentation "github.com/wonglyxng/segmentation"
	"github.com/wonglyxng/segmentation/errs"
)

// LoadAudio decodes path to an AudioBuffer resampled to sampleRate and
// mixed to channels (1 or 2), per spec.md §4.2.
func LoadAudio(path string, sampleRate, channels int) (*segmentation.AudioBuffer, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errs.AudioLoadError(path, "file does not exist")
		}
		return nil, errs.AudioLoadError(path, err.Error())
	}
	if info.IsDir() {
		return nil, errs.AudioLoadError(path, "not a regular file")
	}

	wavPath := path
	if strings.ToLower(filepath.Ext(path)) != ".wav" {
		tmp, err := transcodeToWAV(path)
		if err != nil {
			return nil, err
		}
		defer os.Remove(tmp)
		wavPath = tmp
	}

	file, err := os.Open(wavPath)
	if err != nil {
		return nil, errs.AudioLoadError(path, err.Error())
	}
	defer file.Close()

	decoder := wav.NewDecoder(file)
	if !decoder.IsValidFile() {
		return nil, classifyDecodeFailure(path, "not a valid WAV stream")
	}

	format := decoder.Format()
	var buf *audio.IntBuffer
	if buf, err = decoder.FullPCMBuffer(); err != nil {
		return nil, classifyDecodeFailure(path, err.Error())
	}

	// Integer PCM is scaled to [-1, 1) by the stream's bit depth.
	scale := math.Pow(2, float64(buf.SourceBitDepth-1))
	floatBuf := buf.AsFloatBuffer()
	samples := make([]float64, len(floatBuf.Data))
	for i, v := range floatBuf.Data {
		samples[i] = v / scale
	}

	if err := checkFinite(samples); err != nil {
		return nil, err
	}

	sourceChannels := int(format.NumChannels)
	if sourceChannels > 1 && channels == 1 {
		samples = mixToMono(samples, sourceChannels)
	} else if sourceChannels == 1 && channels == 2 {
		samples = duplicateToStereo(samples)
	}

	sourceRate := int(format.SampleRate)
	if sourceRate != sampleRate {
		if channels == 1 {
			samples = resampleLinear(samples, sourceRate, sampleRate)
		} else {
			samples = resampleInterleaved(samples, channels, sourceRate, sampleRate)
		}
	}

	return &segmentation.AudioBuffer{
		Samples:    samples,
		SampleRate: sampleRate,
		Channels:   channels,
	}, nil
}

// resampleInterleaved resamples each channel of an interleaved multi-channel
// signal independently and re-interleaves the result.
func resampleInterleaved(samples []float64, channels, srcRate, dstRate int) []float64 {
	frames := len(samples) / channels
	perChannel := make([][]float64, channels)
	for c := 0; c < channels; c++ {
		perChannel[c] = make([]float64, frames)
		for i := 0; i < frames; i++ {
			perChannel[c][i] = samples[i*channels+c]
		}
	}

	for c := range perChannel {
		perChannel[c] = resampleLinear(perChannel[c], srcRate, dstRate)
	}

	outFrames := len(perChannel[0])
	out := make([]float64, outFrames*channels)
	for i := 0; i < outFrames; i++ {
		for c := 0; c < channels; c++ {
			out[i*channels+c] = perChannel[c][i]
		}
	}
	return out
}

func checkFinite(samples []float64) error {
	if len(samples) == 0 {
		return errs.AudioDataError("decoded audio is empty")
	}
	for _, s := range samples {
		if math.IsNaN(s) || math.IsInf(s, 0) {
			return errs.AudioDataError("decoded audio contains non-finite values")
		}
	}
	return nil
}

// classifyDecodeFailure applies the heuristic from spec.md §4.2: a decoder
// failure whose text mentions "format" or "codec" is a format problem,
// anything else is a generic load failure.
func classifyDecodeFailure(path, reason string) error {
	lower := strings.ToLower(reason)
	if strings.Contains(lower, "format") || strings.Contains(lower, "codec") {
		return errs.AudioFormatError(path, reason)
	}
	return errs.AudioLoadError(path, reason)
}

// transcodeToWAV invokes ffmpeg to produce a scratch WAV copy of a non-WAV
// input, so the rest of the loader only ever has to speak go-audio/wav.
func transcodeToWAV(path string) (string, error) {
	tmp, err := newScratchWAVPath()
	if err != nil {
		return "", errs.AudioLoadError(path, err.Error())
	}
	if err := runFFmpeg(path, tmp); err != nil {
		os.Remove(tmp)
		return "", classifyDecodeFailure(path, err.Error())
	}
	return tmp, nil
}
