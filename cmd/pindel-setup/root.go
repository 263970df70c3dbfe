package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/scttfrdmn/pindelcfg-go/pkg/bam"
	"github.com/scttfrdmn/pindelcfg-go/pkg/pindelcfg"
	"github.com/spf13/cobra"
)

// InputRootEnv names the environment variable holding the LG3 data root
const InputRootEnv = "LG3_INPUT_ROOT"

type rootOptions struct {
	inputRoot string
	outputDir string
	checkBAMs bool
	logLevel  string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "pindel-setup <patient_ID> <project_name> <patient_ID_conversions>",
		Short: "Generate a pindel sample config for one patient",
		Long: `Generate <patient_ID>.pindel.cfg for the pindel variant caller.

Rows of the patient ID conversion table (columns patient_ID, lib_ID and
sample_type) are joined with the insert size metrics found under

  $LG3_INPUT_ROOT/<project_name>/bwa-mem/<patient folder>/

A patient ID containing "norm" uses the folder named by the text before it,
so normal and tumor samples of one individual share a directory.

Each output line holds the BAM path, median insert size and sample label.

Examples:
  # Write Patient157.pindel.cfg in the current directory
  LG3_INPUT_ROOT=/data pindel-setup Patient157 LG3 patient_ID_conversions.tsv

  # Verify every referenced BAM header before writing
  pindel-setup Patient157 LG3 patient_ID_conversions.tsv --check-bams`,
		Version:       version,
		Args:          usageArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, opts, args)
		},
	}

	cmd.Flags().StringVar(&opts.inputRoot, "input-root", "",
		"LG3 data root (default: $"+InputRootEnv+")")
	cmd.Flags().StringVar(&opts.outputDir, "output-dir", ".",
		"Directory to write <patient_ID>.pindel.cfg into")
	cmd.Flags().BoolVar(&opts.checkBAMs, "check-bams", false,
		"Open every referenced BAM and report its read group samples")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "info",
		"Log level: debug, info, warn, error")

	cmd.SetVersionTemplate(versionTemplate)
	return cmd
}

// usageArgs requires exactly three positional arguments and prints the
// usage line to stdout otherwise
func usageArgs(cmd *cobra.Command, args []string) error {
	if len(args) == 3 {
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "usage: %s patient_ID projectname patient_ID_conversions\n", cmd.Name())
	return pindelcfg.UsageError(fmt.Sprintf("expected 3 arguments, got %d", len(args)))
}

func runGenerate(cmd *cobra.Command, opts *rootOptions, args []string) error {
	log, err := newLogger(cmd.OutOrStdout(), opts.logLevel)
	if err != nil {
		return err
	}

	root := opts.inputRoot
	if root == "" {
		root = os.Getenv(InputRootEnv)
	}
	if root == "" {
		return pindelcfg.ConfigError(InputRootEnv + " is not set and --input-root was not given")
	}

	genOpts := pindelcfg.Options{
		PatientID: args[0],
		Project:   args[1],
		TablePath: strings.TrimSpace(args[2]),
		InputRoot: root,
		OutputDir: opts.outputDir,
		Logger:    log,
	}
	if opts.checkBAMs {
		genOpts.CheckBAM = func(path string) error {
			return checkBAM(log, path)
		}
	}

	_, err = pindelcfg.Generate(genOpts)
	return err
}

func checkBAM(log zerolog.Logger, path string) error {
	info, err := bam.ReadHeaderInfo(path)
	if err != nil {
		return err
	}
	if len(info.Samples) == 0 {
		log.Warn().Str("bam", path).Int("read_groups", info.ReadGroups).Msg("no SM tag in BAM read groups")
		return nil
	}
	log.Info().Str("bam", path).Strs("samples", info.Samples).Msg("BAM header")
	return nil
}
