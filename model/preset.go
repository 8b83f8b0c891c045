package model

import (
	"fmt"
	"sort"
	"strings"
)

// Border presets as offered by the editor's preset picker. The name spells
// the sides that get a border, clockwise-ish: L=left, T=top, R=right, B=bottom.
var presets = map[string]BorderPattern{
	"LTR":  {Top: true, Left: true, Right: true},
	"LT":   {Top: true, Left: true},
	"T":    {Top: true},
	"TR":   {Top: true, Right: true},
	"LR":   {Left: true, Right: true},
	"L":    {Left: true},
	"NONE": {},
	"R":    {Right: true},
	"LBR":  {Left: true, Bottom: true, Right: true},
	"LB":   {Left: true, Bottom: true},
	"B":    {Bottom: true},
	"BR":   {Bottom: true, Right: true},
	"ALL":  {Top: true, Bottom: true, Left: true, Right: true},
	"LTB":  {Left: true, Top: true, Bottom: true},
	"BT":   {Top: true, Bottom: true},
	"TRB":  {Top: true, Right: true, Bottom: true},
}

// Preset looks up a named border preset, case-insensitively.
func Preset(name string) (BorderPattern, error) {
	p, ok := presets[strings.ToUpper(strings.TrimSpace(name))]
	if !ok {
		return BorderPattern{}, fmt.Errorf("unknown border preset %q", name)
	}

	return p, nil
}

// PresetNames returns all preset names in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}
