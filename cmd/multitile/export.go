package multitile

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/dasdy/multitile/render"
	"github.com/dasdy/multitile/scad"
	"github.com/spf13/cobra"
)

// exportCmd represents the export command.
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a scad file's LAYOUT as a script or an STL",
	Long: `Build the mb_tile() wrapper script for a scad file's LAYOUT block.
A .scad output gets the script written directly; a .stl output pipes the
script through OpenSCAD.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		text, err := scad.LoadFile(scadFile)
		if err != nil {
			return err
		}

		g, err := scad.ParseLayout(text)
		if err != nil {
			return err
		}

		includePath, err := filepath.Abs(scadFile)
		if err != nil {
			return fmt.Errorf("could not resolve path of %s: %w", scadFile, err)
		}

		script := scad.BuildScript(includePath, g)

		switch strings.ToLower(filepath.Ext(exportPath)) {
		case ".scad":
			// Keep the layout legend from the source file on top of the script.
			if comments := scad.LayoutComments(text); comments != "" {
				script = comments + "\n\n" + script
			}

			if err := scad.SaveFile(exportPath, script); err != nil {
				return err
			}

			slog.Info("Exported script", "out", exportPath)

			return nil
		case ".stl":
			runner := render.NewRunner(openscadBin)

			output, err := runner.ExportSTL(cmd.Context(), script, exportPath)
			if output != "" {
				slog.Info("Renderer output", "output", output)
			}

			if err != nil {
				return err
			}

			slog.Info("Exported STL", "out", exportPath)

			return nil
		default:
			return fmt.Errorf("output %q must end in .scad or .stl", exportPath)
		}
	},
}

var (
	exportPath  string
	openscadBin string
)

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVarP(
		&scadFile,
		"file",
		"f",
		"multiboard-tile.scad",
		"Scad file whose LAYOUT block to export")

	exportCmd.Flags().StringVarP(
		&exportPath,
		"out",
		"o",
		"tile.stl",
		"Output path, .scad or .stl")

	exportCmd.Flags().StringVar(
		&openscadBin,
		"openscad",
		render.DefaultBin,
		"Path to the OpenSCAD binary")
}
