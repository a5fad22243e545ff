// hcvtool - inspect and adjust colours in the HCV colour model
//
// hcvtool converts colours between RGB and hue/chroma/value attributes and
// edits them interactively without floating-point drift.
package main

import (
	"os"

	"github.com/jmylchreest/hcv/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
