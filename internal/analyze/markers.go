package analyze

import (
	"fmt"
	"go/ast"
	"strconv"
	"strings"
)

const markerPrefix = "//enumgen:"

// Marker names.
const (
	markerGenerate    = "generate"
	markerFlags       = "flags"
	markerTransform   = "transform"
	markerName        = "name"
	markerCore        = "core"
	markerLabel       = "label"
	markerDescription = "description"
	markerOmit        = "omit"
)

var (
	typeMarkers   = []string{markerGenerate, markerFlags, markerTransform, markerName, markerCore}
	memberMarkers = []string{markerLabel, markerDescription, markerOmit, markerTransform}
)

// marker is one //enumgen:<name> <arg> comment line.
type marker struct {
	name string
	arg  string
	pos  ast.Node
}

// markers extracts the enumgen markers of the given comment groups, in order.
func markers(groups ...*ast.CommentGroup) []marker {
	var out []marker

	for _, g := range groups {
		if g == nil {
			continue
		}

		for _, c := range g.List {
			rest, ok := strings.CutPrefix(c.Text, markerPrefix)
			if !ok {
				continue
			}

			name, arg, _ := strings.Cut(rest, " ")
			out = append(out, marker{name: name, arg: strings.TrimSpace(arg), pos: c})
		}
	}

	return out
}

// has reports whether a marker with the given name is present.
func has(ms []marker, name string) bool {
	for _, m := range ms {
		if m.name == name {
			return true
		}
	}

	return false
}

// quoted parses the argument of a label or description marker.
func (m marker) quoted() (string, error) {
	s, err := strconv.Unquote(m.arg)
	if err != nil {
		return "", fmt.Errorf("marker %s expects a quoted string, got %s", m.name, m.arg)
	}

	return s, nil
}
