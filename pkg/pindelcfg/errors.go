package pindelcfg

import (
	"errors"
	"fmt"
)

// Exit codes for pindel-setup
const (
	ExitSuccess = 0
	ExitFailure = 1
)

// Kind classifies a generator failure
type Kind int

const (
	KindUsage Kind = iota
	KindConfig
	KindTable
	KindResolution
	KindMetrics
	KindIO
)

func (k Kind) String() string {
	switch k {
	case KindUsage:
		return "usage"
	case KindConfig:
		return "config"
	case KindTable:
		return "table"
	case KindResolution:
		return "resolution"
	case KindMetrics:
		return "metrics"
	case KindIO:
		return "io"
	}
	return "unknown"
}

var (
	// ErrNoSamples is returned when no table row matches the patient
	ErrNoSamples = errors.New("no samples for patient")

	// ErrNoMedian is returned when a metrics file has no MEDIAN_INSERT_SIZE
	// marker, or the line after the marker is missing or empty
	ErrNoMedian = errors.New("MEDIAN_INSERT_SIZE not found")
)

// Error is the error type returned by Generate
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

func newError(kind Kind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, Cause: cause}
}

// UsageError returns an error for a malformed command line
func UsageError(message string) *Error {
	return newError(KindUsage, message, nil)
}

// ConfigError returns an error for missing or invalid configuration
func ConfigError(message string) *Error {
	return newError(KindConfig, message, nil)
}

// KindOf reports the Kind of err, or false if err is not an *Error
func KindOf(err error) (Kind, bool) {
	var pe *Error
	if errors.As(err, &pe) {
		return pe.Kind, true
	}
	return 0, false
}

// ExitCode maps an error to the process exit status. Every failure exits 1
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	return ExitFailure
}
