// Package split carves a fully buffered stream into per-container files at
// previously located marker offsets, collecting a size record for each file
// written.
package split

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/zsiec/mkvsplit/internal/scan"
)

// ErrNoMarkers is returned by Split when the offset list is empty, meaning
// the input contained no container headers at all.
var ErrNoMarkers = errors.New("no MKV headers found")

// Result records one successfully written artifact for the summary report.
type Result struct {
	Name string
	Size int64
}

// Splitter writes each marker-delimited byte range of a buffer to its own
// file under a caller-supplied prefix.
type Splitter struct {
	log    *slog.Logger
	marker scan.Marker
	prefix string
}

// New creates a Splitter that writes files named "{prefix}_{index}.mkv".
// If log is nil, slog.Default() is used.
func New(prefix string, marker scan.Marker, log *slog.Logger) *Splitter {
	if log == nil {
		log = slog.Default()
	}
	return &Splitter{
		log:    log.With("component", "split"),
		marker: marker,
		prefix: prefix,
	}
}

// Split writes one file per offset-delimited segment of data and returns a
// record for each file created. Each segment runs from its offset to the
// next offset, or to the end of the buffer for the last one. Segments that
// do not begin with the marker, and segments whose write fails, are skipped
// with a diagnostic; their index still counts toward the file numbering, so
// a skip leaves a gap in the name sequence. An empty offset list returns
// ErrNoMarkers.
func (s *Splitter) Split(data []byte, offsets []int) ([]Result, error) {
	if len(offsets) == 0 {
		return nil, ErrNoMarkers
	}
	if err := os.MkdirAll(filepath.Dir(s.prefix), 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}
	if offsets[0] > 0 {
		s.log.Debug("discarding bytes before first marker", "bytes", offsets[0])
	}

	var results []Result
	for i, start := range offsets {
		end := len(data)
		if i+1 < len(offsets) {
			end = offsets[i+1]
		}
		segment := data[start:end]

		if len(segment) < len(s.marker) || !bytes.Equal(segment[:len(s.marker)], s.marker[:]) {
			s.log.Warn("segment does not start with marker, skipping",
				"index", i, "offset", start)
			continue
		}

		name := fmt.Sprintf("%s_%d.mkv", s.prefix, i)
		if err := os.WriteFile(name, segment, 0o644); err != nil {
			s.log.Error("write failed", "file", name, "error", err)
			continue
		}
		size := int64(len(segment))
		s.log.Info("created", "file", name, "size", FormatSize(size))
		results = append(results, Result{Name: name, Size: size})
	}
	return results, nil
}
