package components

// Cell is one grid position as rendered on the editor page.
type Cell struct {
	Row    int
	Col    int
	Abbrev string
	Name   string
}

// StyleOption is one palette entry.
type StyleOption struct {
	Abbrev   string
	Name     string
	Selected bool
}

// RenderContext carries everything the editor page needs.
type RenderContext struct {
	Rows        int
	Cols        int
	Cells       [][]Cell
	Styles      []StyleOption
	Presets     []string
	Saved       []string
	LayoutBlock string
}
