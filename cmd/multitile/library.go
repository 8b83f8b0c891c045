package multitile

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/dasdy/multitile/db"
	"github.com/dasdy/multitile/scad"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// libraryCmd groups the layout library subcommands.
var libraryCmd = &cobra.Command{
	Use:   "library",
	Short: "Manage the library of saved layouts",
	Long:  `Save, load, list and delete named layouts kept in a sqlite file.`,
}

var librarySaveCmd = &cobra.Command{
	Use:   "save <name>",
	Short: "Save a scad file's LAYOUT under a name",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		text, err := scad.LoadFile(scadFile)
		if err != nil {
			return err
		}

		g, err := scad.ParseLayout(text)
		if err != nil {
			return err
		}

		storage, err := db.ConnectDB(storagePath)
		if err != nil {
			return err
		}
		defer storage.Close()

		if err := storage.Save(args[0], g); err != nil {
			return err
		}

		slog.Info("Saved layout", "name", args[0], "rows", g.Rows(), "cols", g.Cols())

		return nil
	},
}

var libraryLoadCmd = &cobra.Command{
	Use:   "load <name>",
	Short: "Write a saved layout into a scad file's LAYOUT block",
	Long: `Load a layout from the library. With --file, splice it over the scad
file's LAYOUT block; otherwise print the block to stdout.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		storage, err := db.ConnectDB(storagePath)
		if err != nil {
			return err
		}
		defer storage.Close()

		g, err := storage.Load(args[0])
		if err != nil {
			return err
		}

		if loadTarget == "" {
			fmt.Fprintf(cmd.OutOrStdout(), "LAYOUT = %s;\n", scad.FormatLayout(g))

			return nil
		}

		text, err := scad.LoadFile(loadTarget)
		if err != nil {
			return err
		}

		updated, err := scad.ReplaceLayout(text, g)
		if err != nil {
			return err
		}

		if err := scad.SaveFile(loadTarget, updated); err != nil {
			return err
		}

		slog.Info("Loaded layout into scad file", "name", args[0], "file", loadTarget)

		return nil
	},
}

var libraryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved layouts",
	RunE: func(_ *cobra.Command, _ []string) error {
		storage, err := db.ConnectDB(storagePath)
		if err != nil {
			return err
		}
		defer storage.Close()

		infos, err := storage.List()
		if err != nil {
			return err
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{"Name", "Rows", "Cols", "Updated"})
		table.SetColumnAlignment([]int{
			tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT,
			tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_LEFT,
		})

		for _, info := range infos {
			table.Append([]string{info.Name, strconv.Itoa(info.Rows), strconv.Itoa(info.Cols), info.Updated})
		}

		table.Render()

		return nil
	},
}

var libraryDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a saved layout",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		storage, err := db.ConnectDB(storagePath)
		if err != nil {
			return err
		}
		defer storage.Close()

		if err := storage.Delete(args[0]); err != nil {
			return err
		}

		slog.Info("Deleted layout", "name", args[0])

		return nil
	},
}

// loadTarget is separate from scadFile: an empty value means "print the
// layout block to stdout" and must not inherit another command's default.
var loadTarget string

func init() {
	rootCmd.AddCommand(libraryCmd)
	libraryCmd.AddCommand(librarySaveCmd, libraryLoadCmd, libraryListCmd, libraryDeleteCmd)

	libraryCmd.PersistentFlags().StringVarP(
		&storagePath,
		"storage",
		"s",
		"./layouts.sqlite",
		"Path of the layout library database")

	librarySaveCmd.Flags().StringVarP(
		&scadFile,
		"file",
		"f",
		"multiboard-tile.scad",
		"Scad file whose LAYOUT to save")

	libraryLoadCmd.Flags().StringVarP(
		&loadTarget,
		"file",
		"f",
		"",
		"Scad file to splice the layout into (default: print to stdout)")
}
