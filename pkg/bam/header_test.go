package bam

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/biogo/hts/bam"
	"github.com/biogo/hts/sam"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeBAM(t *testing.T, path string, text string) {
	t.Helper()
	ref, err := sam.NewReference("chr1", "", "", 1000, nil, nil)
	require.NoError(t, err)
	var b []byte
	if text != "" {
		b = []byte(text)
	}
	h, err := sam.NewHeader(b, []*sam.Reference{ref})
	require.NoError(t, err)

	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	w, err := bam.NewWriter(f, h, 1)
	require.NoError(t, err)
	require.NoError(t, w.Close())
}

func TestReadHeaderInfo(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "L1.bwa.realigned.rmDups.recal.bam")
	writeBAM(t, path, "@RG\tID:rg2\tSM:P1_tumor\n@RG\tID:rg1\tSM:P1_normal\n@RG\tID:rg3\tSM:P1_tumor\n")

	info, err := ReadHeaderInfo(path)
	require.NoError(t, err)
	assert.Equal(t, path, info.Path)
	assert.Equal(t, []string{"P1_normal", "P1_tumor"}, info.Samples)
	assert.Equal(t, 3, info.ReadGroups)
	assert.Equal(t, 1, info.References)
}

func TestReadHeaderInfo_NoReadGroups(t *testing.T) {
	path := filepath.Join(t.TempDir(), "L1.bam")
	writeBAM(t, path, "")

	info, err := ReadHeaderInfo(path)
	require.NoError(t, err)
	assert.Empty(t, info.Samples)
	assert.Zero(t, info.ReadGroups)
}

func TestReadHeaderInfo_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := ReadHeaderInfo(filepath.Join(dir, "missing.bam"))
	assert.ErrorContains(t, err, "failed to open BAM file")

	notBAM := filepath.Join(dir, "text.bam")
	require.NoError(t, os.WriteFile(notBAM, []byte("not a bam\n"), 0o644))
	_, err = ReadHeaderInfo(notBAM)
	assert.ErrorContains(t, err, "failed to create BAM reader")
}
