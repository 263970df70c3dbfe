package pindelcfg

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/google/renameio/v2"
	"github.com/rs/zerolog"
)

// OutputExt is appended to the patient ID to name the config file
const OutputExt = ".pindel.cfg"

// Options configures a Generate run
type Options struct {
	PatientID string
	Project   string
	TablePath string

	// InputRoot is the LG3 data root (LG3_INPUT_ROOT)
	InputRoot string

	// OutputDir receives <PatientID>.pindel.cfg; empty means the working directory
	OutputDir string

	// CheckBAM, if set, is called for each BAM path before the config is committed
	CheckBAM func(path string) error

	Logger zerolog.Logger
}

// Entry is one line of a pindel config
type Entry struct {
	BAMPath string
	Median  string
	Label   string
}

// Result describes a completed run
type Result struct {
	Convention Convention
	Entries    []Entry
	OutputPath string
}

// OutputPath returns the config file path for a patient
func OutputPath(dir, patientID string) string {
	if dir == "" {
		dir = "."
	}
	return filepath.Join(dir, patientID+OutputExt)
}

// Generate builds the pindel config for one patient. The output file is
// only replaced once every sample has resolved; a failed run leaves any
// previous file untouched
func Generate(opts Options) (*Result, error) {
	log := opts.Logger

	if opts.InputRoot == "" {
		return nil, ConfigError("LG3_INPUT_ROOT is not set")
	}

	samples, err := LoadSamples(opts.TablePath, opts.PatientID)
	if err != nil {
		return nil, err
	}
	if len(samples) == 0 {
		return nil, newError(KindResolution, fmt.Sprintf("patient %s not in %s", opts.PatientID, opts.TablePath), ErrNoSamples)
	}

	store := NewLocalStorage(InputDir(opts.InputRoot, opts.Project, opts.PatientID))
	conv, tried, err := ResolveConvention(store, samples[0].LibID, Conventions)
	if err != nil {
		for _, p := range tried {
			log.Error().Str("path", p).Msg("insert_size_metrics file not found")
		}
		return nil, err
	}
	log.Info().
		Str("convention", conv.Name).
		Str("file_suffix", conv.FileSuffix).
		Str("bam_suffix", conv.BAMSuffix).
		Msg("final fileheader")

	entries := make([]Entry, 0, len(samples))
	for _, s := range samples {
		med, err := ReadMedian(store, conv.MetricsName(s.LibID))
		if err != nil {
			return nil, err
		}
		log.Info().
			Str("sample_type", s.SampleType).
			Str("lib_ID", s.LibID).
			Str("median", med).
			Msg("sample")

		e := Entry{
			BAMPath: store.Path(conv.BAMName(s.LibID)),
			Median:  med,
			Label:   s.Label(),
		}
		if opts.CheckBAM != nil {
			if err := opts.CheckBAM(e.BAMPath); err != nil {
				return nil, newError(KindIO, fmt.Sprintf("BAM check failed for %s", e.BAMPath), err)
			}
		}
		entries = append(entries, e)
	}

	out := OutputPath(opts.OutputDir, opts.PatientID)
	if err := writeConfig(out, entries, log); err != nil {
		return nil, newError(KindIO, fmt.Sprintf("failed to write %s", out), err)
	}
	log.Info().Str("path", out).Int("samples", len(entries)).Msg("wrote pindel config")

	return &Result{Convention: conv, Entries: entries, OutputPath: out}, nil
}

// WriteEntries writes entries as tab-separated pindel config lines
func WriteEntries(w io.Writer, entries []Entry) error {
	for _, e := range entries {
		if _, err := fmt.Fprintf(w, "%s\t%s\t%s\n", e.BAMPath, e.Median, e.Label); err != nil {
			return err
		}
	}
	return nil
}

func writeConfig(path string, entries []Entry, log zerolog.Logger) error {
	pendingFile, err := renameio.NewPendingFile(path, renameio.WithPermissions(0o644))
	if err != nil {
		return fmt.Errorf("create pending config file: %w", err)
	}
	defer func() {
		if err := pendingFile.Cleanup(); err != nil {
			log.Debug().Err(err).Msg("cleanup pending config file")
		}
	}()

	if err := WriteEntries(pendingFile, entries); err != nil {
		return fmt.Errorf("write config data: %w", err)
	}

	if err := pendingFile.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("atomically replace config file: %w", err)
	}
	return nil
}
