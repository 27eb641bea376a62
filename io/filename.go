package io

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/wonglyxng/segmentation/config"
	"github.com/wonglyxng/segmentation/errs"
)

var placeholderPattern = regexp.MustCompile(`\{([^{}]*)\}`)

// FormatFilename renders template with (originalName, segmentIndex) and
// appends the extension implied by fileFormat. Only the {original_name} and
// {segment_index} placeholders are recognized; any other placeholder raises
// TemplateError, matching the KeyError behavior of Python's str.format.
func FormatFilename(originalName string, segmentIndex int, template string, fileFormat config.FileType) (string, error) {
	var failure error
	rendered := placeholderPattern.ReplaceAllStringFunc(template, func(match string) string {
		name := placeholderPattern.FindStringSubmatch(match)[1]
		switch name {
		case "original_name":
			return originalName
		case "segment_index":
			return strconv.Itoa(segmentIndex)
		default:
			if failure == nil {
				failure = errs.TemplateError(template, fmt.Sprintf("missing placeholder: %q", name))
			}
			return match
		}
	})
	if failure != nil {
		return "", failure
	}
	return fmt.Sprintf("%s.%s", rendered, fileFormat.Extension()), nil
}

// ParseSegmentIndex recovers the segment index rendered by FormatFilename,
// the inverse half of the filename round-trip invariant in spec.md §8.
func ParseSegmentIndex(filename string) (int, bool) {
	matches := regexp.MustCompile(`(\d+)(?:\.[^.]+)?$`).FindStringSubmatch(filename)
	if matches == nil {
		return 0, false
	}
	n, err := strconv.Atoi(matches[1])
	if err != nil {
		return 0, false
	}
	return n, true
}
