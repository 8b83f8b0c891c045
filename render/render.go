// Package render drives the external OpenSCAD binary to turn a layout
// script into an STL file.
package render

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
	"time"

	"github.com/schollz/progressbar/v3"
)

// DefaultBin is the renderer binary looked up on PATH when no explicit
// path is configured.
const DefaultBin = "openscad"

// Runner invokes OpenSCAD with a script piped on stdin.
type Runner struct {
	Bin string
}

func NewRunner(bin string) *Runner {
	if bin == "" {
		bin = DefaultBin
	}

	return &Runner{Bin: bin}
}

// Args builds the renderer's command line for a binary-STL export to outPath.
// The script itself arrives on stdin.
func (r *Runner) Args(outPath string) []string {
	return []string{"/dev/stdin", "--export-format", "binstl", "-o", outPath}
}

// ExportSTL renders the script into outPath. The renderer's combined output
// is returned for logging either way; on a non-zero exit it is also folded
// into the error.
func (r *Runner) ExportSTL(ctx context.Context, script, outPath string) (string, error) {
	cmd := exec.CommandContext(ctx, r.Bin, r.Args(outPath)...)
	cmd.Stdin = strings.NewReader(script)

	var output bytes.Buffer

	cmd.Stdout = &output
	cmd.Stderr = &output

	slog.Info("Running renderer", "bin", r.Bin, "out", outPath)
	slog.Debug("Renderer script", "script", strings.ReplaceAll(script, "\n", " "))

	bar := progressbar.Default(-1, "Rendering STL...")

	if err := cmd.Start(); err != nil {
		return "", fmt.Errorf("could not start renderer %s: %w", r.Bin, err)
	}

	done := make(chan error, 1)
	go func() {
		done <- cmd.Wait()
	}()

	var runErr error

	for running := true; running; {
		select {
		case runErr = <-done:
			running = false
		case <-time.After(100 * time.Millisecond):
			_ = bar.Add(1)
		}
	}

	if err := bar.Finish(); err != nil {
		slog.Error("could not finish progress bar", "error", err)
	}

	if runErr != nil {
		return output.String(), fmt.Errorf("renderer failed: %w; output: %s", runErr, output.String())
	}

	slog.Info("Renderer finished", "out", outPath)

	return output.String(), nil
}
