package main

import (
	"fmt"
	"os"

	"github.com/scttfrdmn/pindelcfg-go/pkg/pindelcfg"
)

const version = "0.1.0"

const versionTemplate = `pindel-setup version {{.Version}}
Pindel config generator for LG3 projects
`

func main() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		if kind, ok := pindelcfg.KindOf(err); !ok || kind != pindelcfg.KindUsage {
			fmt.Fprintln(os.Stderr, "ERROR:", err)
		}
		os.Exit(pindelcfg.ExitCode(err))
	}
}
