package pindelcfg

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jgbaldwinbrown/csvh"
	"github.com/jgbaldwinbrown/fasttsv"
	"github.com/klauspost/compress/zstd"
)

// Required columns of the patient ID conversion table
const (
	ColPatientID  = "patient_ID"
	ColLibID      = "lib_ID"
	ColSampleType = "sample_type"
)

// Sample is one row of the conversion table
type Sample struct {
	PatientID  string
	LibID      string
	SampleType string
}

// Label is the sample name written to the pindel config
func (s Sample) Label() string {
	return s.PatientID + "_" + s.SampleType
}

// columns holds the positions of the required columns
type columns struct {
	patient int
	lib     int
	st      int
	width   int
}

func indexColumns(header []string) (columns, error) {
	idx := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimSpace(name)
		if _, dup := idx[name]; !dup {
			idx[name] = i
		}
	}

	var cols columns
	for _, c := range []struct {
		name string
		dst  *int
	}{
		{ColPatientID, &cols.patient},
		{ColLibID, &cols.lib},
		{ColSampleType, &cols.st},
	} {
		i, ok := idx[c.name]
		if !ok {
			return cols, fmt.Errorf("missing column %q in header", c.name)
		}
		*c.dst = i
		if i+1 > cols.width {
			cols.width = i + 1
		}
	}
	return cols, nil
}

// stripFields trims surrounding whitespace from a whole tab-separated line,
// leaving inner fields untouched
func stripFields(fields []string) []string {
	line := strings.TrimSpace(strings.Join(fields, "\t"))
	if line == "" {
		return nil
	}
	return strings.Split(line, "\t")
}

// ReadSamples reads a conversion table and returns the rows belonging to
// patientID, in table order
func ReadSamples(r io.Reader, patientID string) ([]Sample, error) {
	s := fasttsv.NewScanner(r)

	if !s.Scan() {
		if err := s.InScanner.Err(); err != nil {
			return nil, fmt.Errorf("failed to read header: %w", err)
		}
		return nil, fmt.Errorf("empty table")
	}
	cols, err := indexColumns(stripFields(s.Line()))
	if err != nil {
		return nil, err
	}

	var samples []Sample
	line := 1
	for s.Scan() {
		line++
		l := stripFields(s.Line())
		if l == nil {
			continue
		}
		if len(l) < cols.width {
			return nil, fmt.Errorf("line %d: %d fields, need at least %d", line, len(l), cols.width)
		}
		if l[cols.patient] != patientID {
			continue
		}
		samples = append(samples, Sample{
			PatientID:  l[cols.patient],
			LibID:      l[cols.lib],
			SampleType: l[cols.st],
		})
	}
	if err := s.InScanner.Err(); err != nil {
		return nil, fmt.Errorf("line %d: %w", line+1, err)
	}
	return samples, nil
}

// LoadSamples opens the conversion table at path and reads the rows for
// patientID. Tables ending in .gz or .zst are decompressed
func LoadSamples(path string, patientID string) ([]Sample, error) {
	r, err := openTable(path)
	if err != nil {
		return nil, newError(KindTable, "failed to open conversion table", err)
	}
	defer r.Close()

	samples, err := ReadSamples(r, patientID)
	if err != nil {
		return nil, newError(KindTable, fmt.Sprintf("failed to read conversion table %s", path), err)
	}
	return samples, nil
}

type zstdReadCloser struct {
	*zstd.Decoder
	f *os.File
}

func (z zstdReadCloser) Close() error {
	z.Decoder.Close()
	return z.f.Close()
}

func openTable(path string) (io.ReadCloser, error) {
	if !strings.HasSuffix(path, ".zst") {
		return csvh.OpenMaybeGz(path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	dec, err := zstd.NewReader(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create zstd decoder: %w", err)
	}
	return zstdReadCloser{Decoder: dec, f: f}, nil
}
