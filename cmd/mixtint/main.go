// Mixtint approximates a target colour by mixing a small number of base
// pigments, reporting ranked mixing recipes under a linear mixing model.
package main

import (
	"os"

	"github.com/mixtint/mixtint/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
