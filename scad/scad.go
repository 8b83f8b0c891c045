// Package scad locates and rewrites the LAYOUT array inside multiboard
// tile scad sources, and builds the small wrapper script handed to the
// renderer. Everything outside the LAYOUT block is preserved byte for byte.
package scad

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/dasdy/multitile/grid"
	"github.com/dasdy/multitile/model"
)

// ErrNoLayoutBlock is returned when a document has no LAYOUT = [ ... ]; block.
var ErrNoLayoutBlock = errors.New("no LAYOUT block found")

var (
	layoutStartRe = regexp.MustCompile(`LAYOUT\s*=`)
	rowRe         = regexp.MustCompile(`\[[^\[\]]*\]`)
	tokenRe       = regexp.MustCompile(`\b[A-Z]{1,2}\b`)
)

const (
	commentsStartMarker = "// layout info"
	commentsEndMarker   = "// end layout info"
)

// FindLayoutBlock returns the span of the LAYOUT = [ ... ]; assignment,
// including the trailing semicolon and whitespace. The closing bracket is
// found by depth walking, so nested row arrays are handled.
func FindLayoutBlock(text string) (start, end int, found bool) {
	m := layoutStartRe.FindStringIndex(text)
	if m == nil {
		return 0, 0, false
	}

	open := strings.Index(text[m[1]:], "[")
	if open == -1 {
		return 0, 0, false
	}

	depth := 0
	for i := m[1] + open; i < len(text); i++ {
		switch text[i] {
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				end = i + 1
				for end < len(text) && strings.ContainsRune(" \t\r\n;", rune(text[end])) {
					end++
				}

				return m[0], end, true
			}
		}
	}

	return 0, 0, false
}

// ParseLayout extracts the LAYOUT block into a grid. Unknown abbreviations
// inside a row are coerced to NORMAL, same as the editor does. Ragged rows
// are padded with NORMAL to the widest row.
func ParseLayout(text string) (*grid.Grid, error) {
	start, end, found := FindLayoutBlock(text)
	if !found {
		return nil, ErrNoLayoutBlock
	}

	block := text[start:end]
	// Skip past the outer bracket so row matching only sees the inner arrays.
	block = block[strings.Index(block, "[")+1:]

	var rows [][]model.StyleToken

	maxCols := 0

	for _, rowText := range rowRe.FindAllString(block, -1) {
		var row []model.StyleToken

		for _, abbrev := range tokenRe.FindAllString(rowText, -1) {
			tok, err := model.ParseAbbrev(abbrev)
			if err != nil {
				tok = model.Normal
			}

			row = append(row, tok)
		}

		if len(row) == 0 {
			continue
		}

		if len(row) > maxCols {
			maxCols = len(row)
		}

		rows = append(rows, row)
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("LAYOUT block contains no rows: %w", ErrNoLayoutBlock)
	}

	g, err := grid.New(len(rows), maxCols)
	if err != nil {
		return nil, fmt.Errorf("could not build grid from LAYOUT block: %w", err)
	}

	for i, row := range rows {
		for j, tok := range row {
			if err := g.Set(i, j, tok); err != nil {
				return nil, fmt.Errorf("could not fill grid from LAYOUT block: %w", err)
			}
		}
	}

	return g, nil
}

// FormatLayout renders the grid as an OpenSCAD array literal, one bracketed
// row per line.
func FormatLayout(g *grid.Grid) string {
	var sb strings.Builder

	sb.WriteString("[\n")

	first := true
	for row := range g.RowTokens() {
		if !first {
			sb.WriteString(",\n")
		}

		first = false

		abbrevs := make([]string, len(row))
		for i, tok := range row {
			abbrevs[i] = tok.Abbrev()
		}

		sb.WriteString("    [ " + strings.Join(abbrevs, ", ") + " ]")
	}

	sb.WriteString("\n]")

	return sb.String()
}

// ReplaceLayout splices the grid over the document's LAYOUT block, leaving
// the rest of the text untouched.
func ReplaceLayout(text string, g *grid.Grid) (string, error) {
	start, end, found := FindLayoutBlock(text)
	if !found {
		return "", ErrNoLayoutBlock
	}

	return text[:start] + "LAYOUT = " + FormatLayout(g) + ";\n" + text[end:], nil
}

// BuildScript produces the wrapper script that includes the tile library
// and instantiates the layout.
func BuildScript(includePath string, g *grid.Grid) string {
	return fmt.Sprintf("include <%s>;\nmb_tile(%s);", includePath, FormatLayout(g))
}

// LayoutComments extracts the "// layout info" ... "// end layout info"
// span from the document, through the end of the closing marker's line.
// Returns "" when the markers are absent.
func LayoutComments(text string) string {
	start := strings.Index(text, commentsStartMarker)
	if start == -1 {
		return ""
	}

	end := strings.Index(text[start:], commentsEndMarker)
	if end == -1 {
		return ""
	}

	end += start

	if nl := strings.IndexByte(text[end:], '\n'); nl != -1 {
		end += nl + 1
	} else {
		end = len(text)
	}

	return text[start:end]
}
