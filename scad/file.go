package scad

import (
	"fmt"
	"log/slog"
	"os"
)

// LoadFile reads a scad document into memory.
func LoadFile(path string) (string, error) {
	slog.Debug("Reading scad file", "path", path)

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("could not read scad file %s: %w", path, err)
	}

	return string(data), nil
}

// SaveFile writes a scad document, creating or overwriting the target.
func SaveFile(path, text string) error {
	slog.Debug("Writing scad file", "path", path)

	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return fmt.Errorf("could not write scad file %s: %w", path, err)
	}

	return nil
}
