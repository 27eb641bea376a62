// Command segmentctl is a thin CLI over the segmentation module: load
// configuration from the environment and dotenv files, then segment one
// audio file to disk using the silence detector strategy.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/wonglyxng/segmentation/config"
	"github.com/wonglyxng/segmentation/logging"
	"github.com/wonglyxng/segmentation/segmenter"
	"github.com/wonglyxng/segmentation/strategy"
	"github.com/wonglyxng/segmentation/strategy/passthrough"
	"github.com/wonglyxng/segmentation/strategy/silence"
)

func main() {
	timestampsOnly := flag.Bool("timestamps-only", false, "print timestamps instead of writing segment files")
	usePassthrough := flag.Bool("passthrough", false, "use the pass-through strategy instead of silence detection")
	configDir := flag.String("config-dir", "", "directory to resolve .env config files from")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: segmentctl [flags] <audio-file>")
		os.Exit(2)
	}
	inputPath := flag.Arg(0)

	var opts []config.Option
	if *configDir != "" {
		opts = append(opts, config.WithConfigDir(*configDir))
	}

	settings, err := config.Load(opts...)
	if err != nil {
		fmt.Fprintln(os.Stderr, "segmentctl: config:", err)
		os.Exit(1)
	}

	logger, err := logging.New(settings.Logging)
	if err != nil {
		fmt.Fprintln(os.Stderr, "segmentctl: logging:", err)
		os.Exit(1)
	}
	defer logger.Sync()

	var finder strategy.IntervalFinder
	if *usePassthrough {
		finder = passthrough.New()
	} else {
		finder = silence.New(settings.Silence)
	}

	base := strategy.New(finder, settings.Audio, settings.Duration, settings.File, logger)
	seg := segmenter.New(base, logger)

	if *timestampsOnly {
		timestamps, err := seg.SegmentPathToTimestamps(inputPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, "segmentctl:", err)
			os.Exit(1)
		}
		for _, ts := range timestamps {
			fmt.Printf("%.3f\t%.3f\n", ts.Start, ts.End)
		}
		return
	}

	files, err := seg.SegmentPathToFiles(inputPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "segmentctl:", err)
		os.Exit(1)
	}
	for name, path := range files {
		fmt.Printf("%s\t%s\n", name, path)
	}
}
