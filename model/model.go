package model

import (
	"fmt"
	"strings"
)

// StyleToken is the edge/corner/interior style assigned to one grid cell.
type StyleToken int

const (
	Normal StyleToken = iota
	RightEdge
	LeftEdge
	BottomRightCorner
	BottomLeftCorner
	TopRightCorner
	TopLeftCorner
	BottomEdge
	TopEdge
	Skip
	LeftRightEdges
	TopBottomEdges
)

// Tokens lists every style in declaration order.
var Tokens = []StyleToken{
	Normal, RightEdge, LeftEdge,
	BottomRightCorner, BottomLeftCorner, TopRightCorner, TopLeftCorner,
	BottomEdge, TopEdge, Skip, LeftRightEdges, TopBottomEdges,
}

var abbrevs = map[StyleToken]string{
	Normal:            "O",
	RightEdge:         "R",
	LeftEdge:          "L",
	BottomRightCorner: "BR",
	BottomLeftCorner:  "BL",
	TopRightCorner:    "TR",
	TopLeftCorner:     "TL",
	BottomEdge:        "B",
	TopEdge:           "T",
	Skip:              "X",
	LeftRightEdges:    "LR",
	TopBottomEdges:    "TB",
}

var names = map[StyleToken]string{
	Normal:            "NORMAL",
	RightEdge:         "RIGHT_EDGE",
	LeftEdge:          "LEFT_EDGE",
	BottomRightCorner: "BOTTOM_RIGHT_CORNER",
	BottomLeftCorner:  "BOTTOM_LEFT_CORNER",
	TopRightCorner:    "TOP_RIGHT_CORNER",
	TopLeftCorner:     "TOP_LEFT_CORNER",
	BottomEdge:        "BOTTOM_EDGE",
	TopEdge:           "TOP_EDGE",
	Skip:              "SKIP",
	LeftRightEdges:    "LEFT_RIGHT_EDGES",
	TopBottomEdges:    "TOP_BOTTOM_EDGES",
}

var byAbbrev = func() map[string]StyleToken {
	m := make(map[string]StyleToken, len(abbrevs))
	for tok, a := range abbrevs {
		m[a] = tok
	}

	return m
}()

// Abbrev returns the short form used inside LAYOUT arrays (O, TL, BR, ...).
func (t StyleToken) Abbrev() string {
	if a, ok := abbrevs[t]; ok {
		return a
	}

	return abbrevs[Normal]
}

// String returns the full style name as spelled in the scad sources.
func (t StyleToken) String() string {
	if n, ok := names[t]; ok {
		return n
	}

	return fmt.Sprintf("StyleToken(%d)", int(t))
}

// Valid reports whether t is one of the known styles.
func (t StyleToken) Valid() bool {
	_, ok := abbrevs[t]

	return ok
}

// ParseAbbrev maps an abbreviation back to its token.
func ParseAbbrev(s string) (StyleToken, error) {
	tok, ok := byAbbrev[strings.ToUpper(strings.TrimSpace(s))]
	if !ok {
		return Normal, fmt.Errorf("unknown style abbreviation %q", s)
	}

	return tok, nil
}

// BorderPattern selects which outer sides of the grid should carry a border.
type BorderPattern struct {
	Top    bool
	Bottom bool
	Left   bool
	Right  bool
}
