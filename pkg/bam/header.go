package bam

import (
	"fmt"
	"os"
	"sort"

	"github.com/biogo/hts/bam"
	"github.com/biogo/hts/sam"
)

var smTag = sam.NewTag("SM")

// HeaderInfo summarizes the parts of a BAM header pindel relies on
type HeaderInfo struct {
	Path       string
	Samples    []string // distinct @RG SM values, sorted
	ReadGroups int
	References int
}

// ReadHeaderInfo opens a BAM file and summarizes its header
func ReadHeaderInfo(bamPath string) (*HeaderInfo, error) {
	f, err := os.Open(bamPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open BAM file: %w", err)
	}
	defer f.Close()

	bamFile, err := bam.NewReader(f, 1)
	if err != nil {
		return nil, fmt.Errorf("failed to create BAM reader: %w", err)
	}
	defer bamFile.Close()

	h := bamFile.Header()
	return &HeaderInfo{
		Path:       bamPath,
		Samples:    SampleNames(h),
		ReadGroups: len(h.RGs()),
		References: len(h.Refs()),
	}, nil
}

// SampleNames returns the distinct SM values of the header's read groups
func SampleNames(h *sam.Header) []string {
	seen := make(map[string]bool)
	var names []string
	for _, rg := range h.RGs() {
		v := rg.Get(smTag)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		names = append(names, v)
	}
	sort.Strings(names)
	return names
}
