package multitile

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/dasdy/multitile/grid"
	"github.com/dasdy/multitile/model"
	"github.com/dasdy/multitile/scad"
	"github.com/spf13/cobra"
)

// applyCmd represents the apply command.
var applyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Apply a border preset to a scad file's LAYOUT",
	Long: `Resize the LAYOUT array of a multiboard tile scad file and assign
border styles to its boundary cells according to a named preset
(` + strings.Join(model.PresetNames(), ", ") + `).`,
	RunE: func(_ *cobra.Command, _ []string) error {
		pattern, err := model.Preset(presetName)
		if err != nil {
			return err
		}

		if rows < 1 || rows > maxGridSize || cols < 1 || cols > maxGridSize {
			return fmt.Errorf("rows and cols must be within 1..%d, got %dx%d", maxGridSize, rows, cols)
		}

		text, err := scad.LoadFile(scadFile)
		if err != nil {
			return err
		}

		g, err := scad.ParseLayout(text)
		if errors.Is(err, scad.ErrNoLayoutBlock) {
			return fmt.Errorf("%s does not look like a multiboard tile file: %w", scadFile, err)
		}

		if err != nil {
			return err
		}

		slog.Info("Parsed layout", "rows", g.Rows(), "cols", g.Cols())

		if err := g.Resize(rows, cols); err != nil {
			return err
		}

		grid.ApplyPattern(g, &pattern)

		updated, err := scad.ReplaceLayout(text, g)
		if err != nil {
			return err
		}

		target := outPath
		if target == "" {
			target = scadFile
		}

		if err := scad.SaveFile(target, updated); err != nil {
			return err
		}

		slog.Info("Applied preset", "preset", presetName, "rows", rows, "cols", cols, "out", target)

		return nil
	},
}

// Spinbox range of the original editor; the grid itself has no upper bound.
const maxGridSize = 50

var (
	scadFile   string
	presetName string
	rows       int
	cols       int
	outPath    string
)

func init() {
	rootCmd.AddCommand(applyCmd)

	applyCmd.Flags().StringVarP(
		&scadFile,
		"file",
		"f",
		"multiboard-tile.scad",
		"Scad file whose LAYOUT block to edit")

	applyCmd.Flags().StringVar(
		&presetName,
		"preset",
		"ALL",
		"Border preset to apply")

	applyCmd.Flags().IntVar(&rows, "rows", 9, "Number of grid rows")
	applyCmd.Flags().IntVar(&cols, "cols", 9, "Number of grid columns")

	applyCmd.Flags().StringVarP(
		&outPath,
		"out",
		"o",
		"",
		"Output path (default: rewrite the input file in place)")
}
