package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mixtint/mixtint/internal/colour"
	"github.com/mixtint/mixtint/internal/image"
	"github.com/mixtint/mixtint/internal/pigment"
	"github.com/mixtint/mixtint/internal/recipe"
	"github.com/mixtint/mixtint/internal/search"
)

var (
	// Solve command flags.
	solvePalette     string
	solveTarget      string
	solveTargetImage string
	solveStrategy    string
	solveSubsetSize  int
	solveSubsetSizes []int
	solveStep        float64
	solveTopK        int
	solveThreshold   float64
	solveNearest     int
	solveSamples     int
	solveSeed        int64
	solveWorkers     int
	solveFormat      string
	solvePreview     bool
)

// solveCmd represents the solve command.
var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Find pigment mixing recipes for a target colour",
	Long: `Find pigment mixing recipes that approximate a target colour.

The target is given as a hex colour, an "r,g,b" triple, or derived from the
dominant colour of an image. The palette is loaded from a JSON, CSV, or
plain-text pigment file.

Strategies:
  grid      exhaustive enumeration of percentage splits on a step grid
  optimize  exact constrained least-squares solve per pigment subset
  random    uniform sampling of the weight simplex per subset

Examples:
  # Closest three-pigment mixes on a 5% grid
  mixtint solve -p paints.json -t "#e07a5f"

  # Exact per-subset optimization over subsets of 3, 4 and 5 pigments
  mixtint solve -p paints.json -t "224,122,95" --strategy optimize

  # Match the dominant colour of a photo, show colour swatches
  mixtint solve -p paints.csv --target-image sunset.jpg --preview

  # Coarser grid, more results, machine-readable output
  mixtint solve -p paints.json -t "#e07a5f" --step 10 --top 5 --format json

  # Bound the optimizer to the 8 pigments nearest the target
  mixtint solve -p paints.json -t "#e07a5f" --strategy optimize --nearest 8`,
	RunE: runSolve,
}

func init() {
	solveCmd.Flags().StringVarP(&solvePalette, "palette", "p", "", "palette file (JSON, CSV, or text; required)")
	solveCmd.Flags().StringVarP(&solveTarget, "target", "t", "", "target colour (hex or \"r,g,b\")")
	solveCmd.Flags().StringVar(&solveTargetImage, "target-image", "", "derive the target from an image's dominant colour")
	solveCmd.Flags().StringVarP(&solveStrategy, "strategy", "s", "grid", "search strategy (grid, optimize, random)")
	solveCmd.Flags().IntVar(&solveSubsetSize, "subset-size", 0, "pigments per recipe for grid/random (default 3)")
	solveCmd.Flags().IntSliceVar(&solveSubsetSizes, "subset-sizes", nil, "pigments per recipe for optimize (default 3,4,5)")
	solveCmd.Flags().Float64Var(&solveStep, "step", 0, "percentage grid increment for grid strategy (default 5)")
	solveCmd.Flags().IntVarP(&solveTopK, "top", "k", 0, "number of distinct recipes to return (default 3)")
	solveCmd.Flags().Float64Var(&solveThreshold, "threshold", 0, "exact-match distance threshold (default 5)")
	solveCmd.Flags().IntVar(&solveNearest, "nearest", 0, "restrict search to the N pigments nearest the target (0 = all)")
	solveCmd.Flags().IntVar(&solveSamples, "samples", 0, "simplex samples per subset for random strategy (default 200)")
	solveCmd.Flags().Int64Var(&solveSeed, "seed", 0, "random strategy seed")
	solveCmd.Flags().IntVar(&solveWorkers, "workers", 0, "subset evaluation workers (default: CPU count)")
	solveCmd.Flags().StringVarP(&solveFormat, "format", "f", "table", "output format (table, json)")
	solveCmd.Flags().BoolVar(&solvePreview, "preview", false, "show colour swatches in terminal output")

	_ = solveCmd.MarkFlagRequired("palette")
}

// runSolve executes the solve command.
func runSolve(cmd *cobra.Command, args []string) error {
	log := newLogger()

	target, err := resolveTarget()
	if err != nil {
		return err
	}

	palette, err := pigment.Load(solvePalette)
	if err != nil {
		return err
	}
	log.Debug("palette loaded", "path", solvePalette, "pigments", palette.Len())

	cfg := search.Config{
		Strategy:            search.Strategy(solveStrategy),
		SubsetSize:          solveSubsetSize,
		SubsetSizes:         solveSubsetSizes,
		Step:                solveStep,
		TopK:                solveTopK,
		ExactMatchThreshold: solveThreshold,
		NearestM:            solveNearest,
		Samples:             solveSamples,
		Seed:                solveSeed,
		Workers:             solveWorkers,
		Logger:              log,
	}

	result, err := search.Generate(target, palette, cfg)
	if err != nil {
		return err
	}

	switch solveFormat {
	case "table":
		fmt.Print(formatRecipeTable(target, result, solvePreview))
	case "json":
		out, err := formatRecipeJSON(target, result)
		if err != nil {
			return err
		}
		fmt.Println(out)
	default:
		return fmt.Errorf("unsupported format: %s (supported: table, json)", solveFormat)
	}

	if len(result) == 0 {
		fmt.Fprintln(os.Stderr, "no recipes found")
	}
	return nil
}

// resolveTarget picks the target colour from --target or --target-image.
func resolveTarget() (colour.RGB, error) {
	switch {
	case solveTarget != "" && solveTargetImage != "":
		return colour.RGB{}, fmt.Errorf("--target and --target-image are mutually exclusive")
	case solveTarget != "":
		return colour.Parse(solveTarget)
	case solveTargetImage != "":
		return image.TargetColour(solveTargetImage)
	default:
		return colour.RGB{}, fmt.Errorf("either --target or --target-image is required")
	}
}

// formatRecipeTable renders the result set as a text table, optionally with
// ANSI colour swatches.
func formatRecipeTable(target colour.RGB, result recipe.RecipeSet, preview bool) string {
	out := "Target: " + targetLabel(target, preview) + "\n\n"
	if len(result) == 0 {
		return out + "No recipes found.\n"
	}

	table := NewTable([]string{"#", "Recipe", "Mixed", "Error"})
	for i, cand := range result {
		mixed := cand.Mixed.Hex()
		if preview {
			mixed = colour.SwatchWithHex(cand.Mixed, 4)
		}
		table.AddRow([]string{
			fmt.Sprintf("%d", i+1),
			cand.Recipe.String(),
			mixed,
			fmt.Sprintf("%.2f", cand.Error),
		})
	}
	return out + table.Render()
}

func targetLabel(target colour.RGB, preview bool) string {
	if preview {
		return colour.SwatchWithHex(target, 4) + " " + target.String()
	}
	return target.Hex() + " " + target.String()
}

// solveOutput is the JSON shape of a solve result.
type solveOutput struct {
	Target  targetJSON   `json:"target"`
	Count   int          `json:"count"`
	Recipes []recipeJSON `json:"recipes"`
}

type targetJSON struct {
	Hex string     `json:"hex"`
	RGB colour.RGB `json:"rgb"`
}

type recipeJSON struct {
	Components []recipe.Component `json:"components"`
	Mixed      targetJSON         `json:"mixed"`
	Error      float64            `json:"error"`
}

func formatRecipeJSON(target colour.RGB, result recipe.RecipeSet) (string, error) {
	out := solveOutput{
		Target:  targetJSON{Hex: target.Hex(), RGB: target},
		Count:   len(result),
		Recipes: make([]recipeJSON, len(result)),
	}
	for i, cand := range result {
		out.Recipes[i] = recipeJSON{
			Components: cand.Recipe.Components,
			Mixed:      targetJSON{Hex: cand.Mixed.Hex(), RGB: cand.Mixed},
			Error:      cand.Error,
		}
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode result: %w", err)
	}
	return string(data), nil
}
