package pindelcfg

import (
	"fmt"
	"path/filepath"
	"strings"
)

// MetricsExt is appended to lib_ID + FileSuffix to name a metrics file
const MetricsExt = ".insert_size_metrics"

// mergedSuffix selects the merged BAM layout (<lib>.merged.sorted.bam)
const mergedSuffix = ".merged"

// Convention is a file naming scheme used by an upstream alignment run
type Convention struct {
	Name       string
	FileSuffix string // between lib_ID and .insert_size_metrics
	BAMSuffix  string // between lib_ID and .bam
}

// Known conventions, in probe order
var (
	ConventionRealigned = Convention{
		Name:       "realigned",
		FileSuffix: ".bwa.realigned.rmDups.recal",
		BAMSuffix:  ".bwa.realigned.rmDups.recal",
	}
	ConventionMulti = Convention{
		Name:       "multi",
		FileSuffix: "_multi",
		BAMSuffix:  ".bwa.mrkDups.sort.recal",
	}

	Conventions = []Convention{ConventionRealigned, ConventionMulti}
)

// MetricsName returns the insert size metrics file name for a library
func (c Convention) MetricsName(libID string) string {
	return libID + c.FileSuffix + MetricsExt
}

// BAMName returns the BAM file name for a library
func (c Convention) BAMName(libID string) string {
	if c.FileSuffix == mergedSuffix {
		return libID + mergedSuffix + ".sorted.bam"
	}
	return libID + c.BAMSuffix + ".bam"
}

// PatientFolder returns the directory name holding a patient's files.
// Normal samples ("P1norm") share the folder of their individual ("P1")
func PatientFolder(patientID string) string {
	if i := strings.Index(patientID, "norm"); i >= 0 {
		return patientID[:i]
	}
	return patientID
}

// InputDir returns <root>/<project>/bwa-mem/<patient folder>
func InputDir(root, project, patientID string) string {
	return filepath.Join(root, project, "bwa-mem", PatientFolder(patientID))
}

// ResolveConvention probes storage for the metrics file of libID under each
// candidate convention and returns the first one found. When none exists the
// error lists every path tried
func ResolveConvention(store Storage, libID string, candidates []Convention) (Convention, []string, error) {
	tried := make([]string, 0, len(candidates))
	for _, c := range candidates {
		name := c.MetricsName(libID)
		tried = append(tried, store.Path(name))
		ok, err := store.Exists(name)
		if err != nil {
			return Convention{}, tried, newError(KindIO, fmt.Sprintf("failed to stat %s", store.Path(name)), err)
		}
		if ok {
			return c, tried, nil
		}
	}
	return Convention{}, tried, newError(KindResolution,
		fmt.Sprintf("insert_size_metrics file can not be found. Tried: %s", strings.Join(tried, ", ")), nil)
}
