package gotemplate

import (
	"strings"

	"github.com/flosch/pongo2/v6"
)

func registerDefaultFilters() {
	if !pongo2.FilterExists("trim") {
		_ = pongo2.RegisterFilter("trim", filterTrim)
	}
	if !pongo2.FilterExists("mark") {
		_ = pongo2.RegisterFilter("mark", filterMark)
	}
}

func filterTrim(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	return pongo2.AsValue(strings.TrimSpace(in.String())), nil
}

// filterMark renders a boolean as a check column: "x" for true, the param
// (default ".") for false.
func filterMark(in *pongo2.Value, param *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	if in.IsTrue() {
		return pongo2.AsValue("x"), nil
	}
	off := "."
	if param != nil && !param.IsNil() && param.String() != "" {
		off = param.String()
	}
	return pongo2.AsValue(off), nil
}
