// Package components renders the editor pages. The components are plain
// templ.ComponentFunc values, so they plug into the same rendering path a
// generated template would.
package components

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// EditorPage renders the whole grid editor: palette, grid, preset bar,
// resize controls, library panel and the serialized LAYOUT block.
func EditorPage(rc *RenderContext) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprint(w, `<!DOCTYPE html>
<html>
<head>
<title>multitile</title>
<style>
body { font-family: sans-serif; margin: 1.5em; }
table.grid td { padding: 0; }
table.grid button { width: 3em; height: 3em; font-weight: bold; }
.palette label { display: inline-block; width: 3.5em; }
pre.layout { background: #f4f4f4; padding: 0.7em; }
form.inline { display: inline; }
</style>
</head>
<body>
<h1>multitile</h1>
`); err != nil {
			return err
		}

		for _, render := range []func(io.Writer, *RenderContext) error{
			renderResizeForm,
			renderPresetBar,
			renderGridForm,
			renderLibraryPanel,
			renderLayoutBlock,
		} {
			if err := render(w, rc); err != nil {
				return err
			}
		}

		_, err := fmt.Fprint(w, `<script>
const ws = new WebSocket("ws://" + location.host + "/stream");
ws.onmessage = () => location.reload();
</script>
</body>
</html>
`)

		return err
	})
}

func renderResizeForm(w io.Writer, rc *RenderContext) error {
	_, err := fmt.Fprintf(w, `<form class="inline" method="post" action="/resize">
Rows: <input type="number" name="rows" min="1" max="50" value="%d">
Cols: <input type="number" name="cols" min="1" max="50" value="%d">
<button type="submit">Resize</button>
</form>
`, rc.Rows, rc.Cols)

	return err
}

func renderPresetBar(w io.Writer, rc *RenderContext) error {
	if _, err := fmt.Fprint(w, `<form class="inline" method="post" action="/pattern">`); err != nil {
		return err
	}

	for _, name := range rc.Presets {
		if _, err := fmt.Fprintf(w, `<button name="preset" value="%s">%s</button>`,
			templ.EscapeString(name), templ.EscapeString(name)); err != nil {
			return err
		}
	}

	_, err := fmt.Fprint(w, "</form>\n")

	return err
}

// renderGridForm emits the palette and the cell buttons inside one form, so
// a cell click submits both the chosen style and the cell coordinates.
func renderGridForm(w io.Writer, rc *RenderContext) error {
	if _, err := fmt.Fprint(w, `<form method="post" action="/cell">
<div class="palette">
`); err != nil {
		return err
	}

	for _, style := range rc.Styles {
		checked := ""
		if style.Selected {
			checked = " checked"
		}

		if _, err := fmt.Fprintf(w,
			`<label title="%s"><input type="radio" name="style" value="%s"%s>%s</label>
`,
			templ.EscapeString(style.Name), templ.EscapeString(style.Abbrev), checked,
			templ.EscapeString(style.Abbrev)); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprint(w, `</div>
<table class="grid">
`); err != nil {
		return err
	}

	for _, row := range rc.Cells {
		if _, err := fmt.Fprint(w, "<tr>"); err != nil {
			return err
		}

		for _, cell := range row {
			if _, err := fmt.Fprintf(w,
				`<td><button title="%s" name="cell" value="%d,%d">%s</button></td>`,
				templ.EscapeString(cell.Name), cell.Row, cell.Col,
				templ.EscapeString(cell.Abbrev)); err != nil {
				return err
			}
		}

		if _, err := fmt.Fprint(w, "</tr>\n"); err != nil {
			return err
		}
	}

	_, err := fmt.Fprint(w, "</table>\n</form>\n")

	return err
}

func renderLibraryPanel(w io.Writer, rc *RenderContext) error {
	if _, err := fmt.Fprint(w, `<h2>Library</h2>
<form class="inline" method="post" action="/save">
<input type="text" name="name" placeholder="layout name">
<button type="submit">Save</button>
</form>
`); err != nil {
		return err
	}

	if len(rc.Saved) == 0 {
		return nil
	}

	if _, err := fmt.Fprint(w, `<form class="inline" method="post" action="/load">`); err != nil {
		return err
	}

	for _, name := range rc.Saved {
		if _, err := fmt.Fprintf(w, `<button name="name" value="%s">%s</button>`,
			templ.EscapeString(name), templ.EscapeString(name)); err != nil {
			return err
		}
	}

	_, err := fmt.Fprint(w, "</form>\n")

	return err
}

func renderLayoutBlock(w io.Writer, rc *RenderContext) error {
	_, err := fmt.Fprintf(w, `<h2>LAYOUT</h2>
<pre class="layout">%s</pre>
<a href="/layout.scad" download>Download layout block</a>
`, templ.EscapeString(rc.LayoutBlock))

	return err
}
