package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mixtint/mixtint/internal/colour"
	"github.com/mixtint/mixtint/internal/pigment"
)

var palettePreview bool

// paletteCmd validates and pretty-prints a palette file, so ingestion
// problems can be debugged separately from solving.
var paletteCmd = &cobra.Command{
	Use:   "palette <file>",
	Short: "Validate and display a pigment palette file",
	Long: `Validate a palette file and list its pigments.

Supported formats:
  .json  array of {"name", "rgb", "density"} objects, or a name-to-colour map
  .csv   rows of "name,r,g,b[,density]" with an optional header
  other  plain text lines of "name: #hex" or "name: r,g,b"

Examples:
  mixtint palette paints.json
  mixtint palette paints.csv --preview`,
	Args: cobra.ExactArgs(1),
	RunE: runPalette,
}

func init() {
	paletteCmd.Flags().BoolVar(&palettePreview, "preview", false, "show colour swatches in terminal output")
}

// runPalette executes the palette command.
func runPalette(cmd *cobra.Command, args []string) error {
	palette, err := pigment.Load(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("Palette with %d pigments:\n\n", palette.Len())

	table := NewTable([]string{"Name", "Colour", "RGB", "Density"})
	for _, pig := range palette.Pigments() {
		hex := pig.Colour.Hex()
		if palettePreview {
			hex = colour.SwatchWithHex(pig.Colour, 4)
		}
		density := "-"
		if pig.Density > 0 {
			density = fmt.Sprintf("%.2f", pig.Density)
		}
		table.AddRow([]string{pig.Name, hex, pig.Colour.String(), density})
	}
	fmt.Print(table.Render())
	return nil
}
