package pindelcfg

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jgbaldwinbrown/fasttsv"
)

// MedianMarker labels the row preceding the median insert size value
const MedianMarker = "MEDIAN_INSERT_SIZE"

// MedianInsertSize scans a Picard insert size metrics file and returns the
// first field of the line after the first MEDIAN_INSERT_SIZE line, unparsed
func MedianInsertSize(r io.Reader) (string, error) {
	const (
		searching = iota
		captureNext
	)

	state := searching
	s := fasttsv.NewScanner(r)
	for s.Scan() {
		fields := s.Line()
		first := ""
		if len(fields) > 0 {
			first = strings.TrimSuffix(fields[0], "\r")
		}

		switch state {
		case searching:
			if first == MedianMarker {
				state = captureNext
			}
		case captureNext:
			if first == "" {
				return "", ErrNoMedian
			}
			return strings.Clone(first), nil
		}
	}
	if err := s.InScanner.Err(); err != nil {
		return "", fmt.Errorf("failed to read metrics: %w", err)
	}
	return "", ErrNoMedian
}

// ReadMedian opens a metrics file from store and extracts its median
func ReadMedian(store Storage, name string) (string, error) {
	f, err := store.Open(name)
	if err != nil {
		return "", newError(KindIO, "failed to open metrics file", err)
	}
	defer f.Close()

	med, err := MedianInsertSize(f)
	if err != nil && !errors.Is(err, ErrNoMedian) {
		return "", newError(KindIO, fmt.Sprintf("failed to read %s", store.Path(name)), err)
	}
	if err != nil {
		return "", newError(KindMetrics, fmt.Sprintf("bad metrics file %s", store.Path(name)), err)
	}
	return med, nil
}
