package multitile

import (
	"errors"
	"log/slog"
	"os"

	"github.com/dasdy/multitile/db"
	"github.com/dasdy/multitile/grid"
	"github.com/dasdy/multitile/model"
	"github.com/dasdy/multitile/scad"
	"github.com/dasdy/multitile/web"
	"github.com/spf13/cobra"
)

// serveCmd represents the serve command.
var serveCmd = &cobra.Command{
	Use:              "serve",
	Short:            "Run the browser-based layout editor",
	Long:             `Serve a web interface for editing the grid: palette, border presets, resize, layout library and LAYOUT download.`,
	PersistentPreRun: bindFlags,
	RunE: func(_ *cobra.Command, _ []string) error {
		g, err := startingGrid()
		if err != nil {
			return err
		}

		storage, err := db.ConnectDB(storagePath)
		if err != nil {
			return err
		}
		defer storage.Close()

		return web.StartServer(port, g, storage)
	},
}

// startingGrid loads the LAYOUT of the configured scad file, or falls back
// to a default grid with borders on every side, matching the editor's
// startup state.
func startingGrid() (*grid.Grid, error) {
	text, err := scad.LoadFile(scadFile)
	if errors.Is(err, os.ErrNotExist) {
		slog.Info("No scad file, starting with a default bordered grid", "rows", rows, "cols", cols)

		g, err := grid.New(rows, cols)
		if err != nil {
			return nil, err
		}

		pattern := model.BorderPattern{Top: true, Bottom: true, Left: true, Right: true}
		grid.ApplyPattern(g, &pattern)

		return g, nil
	}

	if err != nil {
		return nil, err
	}

	return scad.ParseLayout(text)
}

var (
	port        int
	storagePath string
)

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().IntVarP(&port, "port", "p", 9000,
		"Port on which server should be watching")

	serveCmd.Flags().StringVarP(
		&scadFile,
		"file",
		"f",
		"multiboard-tile.scad",
		"Scad file whose LAYOUT seeds the editor")

	serveCmd.Flags().IntVar(&rows, "rows", 9, "Rows of the fallback grid")
	serveCmd.Flags().IntVar(&cols, "cols", 9, "Columns of the fallback grid")

	serveCmd.Flags().StringVarP(
		&storagePath,
		"storage",
		"s",
		"./layouts.sqlite",
		"Path of the layout library database")
}
