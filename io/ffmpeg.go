package io

import (
	"fmt"
	"os/exec"
	"runtime"
)

// ffmpegCommand is the external transcoder this package shells out to for
// non-WAV containers, adapted from the teacher's converter.GetEncoderName /
// converter.IsCommandAvailable (os/exec "which"/"where" probe).
const ffmpegCommand = "ffmpeg"

// isCommandAvailable reports whether name is resolvable on PATH, the way
// the teacher's converter package checks for its encoder before using it.
func isCommandAvailable(name string) bool {
	var cmd *exec.Cmd
	if runtime.GOOS == "windows" {
		cmd = exec.Command("where", name)
	} else {
		cmd = exec.Command("which", name)
	}
	return cmd.Run() == nil
}

// runFFmpeg transcodes inputPath to outputPath, overwriting outputPath if
// it exists. Both paths carry the extension ffmpeg uses to pick a codec.
func runFFmpeg(inputPath, outputPath string) error {
	if !isCommandAvailable(ffmpegCommand) {
		return fmt.Errorf("%s not found on PATH", ffmpegCommand)
	}
	cmd := exec.Command(ffmpegCommand, "-y", "-i", inputPath, outputPath)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("%s failed: %w: %s", ffmpegCommand, err, out)
	}
	return nil
}
