// Package segmenter provides the top-level entry point a host embeds:
// Segmenter pairs a Strategy (in practice a strategy.Base) with logging and
// a catch-all error wrapper, the Go analogue of the Python implementation's
// segmentation.segmenter.Segmenter. It does not import the strategy
// package: any value with Strategy's four methods can drive it.
package segmenter

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	segmentation "github.com/wonglyxng/segmentation"
	"github.com/wonglyxng/segmentation/errs"
)

// Strategy is the subset of strategy.Base's façade Segmenter drives. Any
// IntervalFinder-backed strategy.Base satisfies it.
type Strategy interface {
	SegmentArrayToTimestamps(buf *segmentation.AudioBuffer) ([]segmentation.Timestamp, error)
	SegmentFileToTimestamps(path string) ([]segmentation.Timestamp, error)
	SegmentArrayToFiles(buf *segmentation.AudioBuffer, originalName string) (map[string]string, error)
	SegmentFileToFiles(path string) (map[string]string, error)
}

// Segmenter drives a Strategy end to end and normalizes its errors: any
// error that isn't already a *errs.SegmentationError is wrapped in one,
// matching the Python Segmenter.segment's catch-all re-raise.
type Segmenter struct {
	Strategy Strategy
	Logger   *zap.Logger
}

// New builds a Segmenter over strategy. A nil logger is replaced with zap.NewNop().
func New(strategy Strategy, logger *zap.Logger) *Segmenter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Segmenter{Strategy: strategy, Logger: logger}
}

// SegmentPathToFiles loads path, segments it, and writes one file per
// segment, returning the segment-filename-to-path mapping.
func (s *Segmenter) SegmentPathToFiles(path string) (map[string]string, error) {
	s.Logger.Info("segmenting path to files", zap.String("path", path))
	result, err := s.Strategy.SegmentFileToFiles(path)
	if err != nil {
		return nil, s.wrap(err)
	}
	s.Logger.Info("segmentation complete", zap.Int("segments", len(result)), zap.String("path", path))
	return result, nil
}

// SegmentPathToTimestamps loads path and returns its shaped timestamps
// without writing any segment files.
func (s *Segmenter) SegmentPathToTimestamps(path string) ([]segmentation.Timestamp, error) {
	s.Logger.Info("segmenting path to timestamps", zap.String("path", path))
	result, err := s.Strategy.SegmentFileToTimestamps(path)
	if err != nil {
		return nil, s.wrap(err)
	}
	s.Logger.Info("segmentation complete", zap.Int("segments", len(result)), zap.String("path", path))
	return result, nil
}

// SegmentArrayToFiles segments an in-memory buffer and writes one file
// per segment under originalName, returning the segment-filename-to-path
// mapping.
func (s *Segmenter) SegmentArrayToFiles(buf *segmentation.AudioBuffer, originalName string) (map[string]string, error) {
	s.Logger.Info("segmenting array to files", zap.String("original_name", originalName))
	result, err := s.Strategy.SegmentArrayToFiles(buf, originalName)
	if err != nil {
		return nil, s.wrap(err)
	}
	s.Logger.Info("segmentation complete", zap.Int("segments", len(result)), zap.String("original_name", originalName))
	return result, nil
}

// SegmentArrayToTimestamps segments an in-memory buffer and returns its
// shaped timestamps without writing any segment files.
func (s *Segmenter) SegmentArrayToTimestamps(buf *segmentation.AudioBuffer) ([]segmentation.Timestamp, error) {
	s.Logger.Info("segmenting array to timestamps")
	result, err := s.Strategy.SegmentArrayToTimestamps(buf)
	if err != nil {
		return nil, s.wrap(err)
	}
	s.Logger.Info("segmentation complete", zap.Int("segments", len(result)))
	return result, nil
}

func (s *Segmenter) wrap(err error) error {
	var segErr *segmentation.SegmentationError
	if errors.As(err, &segErr) {
		return err
	}
	return errs.Other(fmt.Sprintf("unexpected error during segmentation: %v", err), err)
}
