package glitch

import (
	"fmt"
	"strings"
)

// Declaration is a single CSS "property: value" pair.
type Declaration struct {
	Property string
	Value    string
}

func (d Declaration) String() string {
	return d.Property + ": " + d.Value + ";"
}

// Declarations keeps CSS declarations in the order they were added.
type Declarations []Declaration

// Add appends a declaration whose value is built from format and args.
func (d *Declarations) Add(property string, format string, args ...interface{}) {
	*d = append(*d, Declaration{property, fmt.Sprintf(format, args...)})
}

// Join renders each declaration prefixed by indent, separated by sep.
func (d Declarations) Join(indent string, sep string) string {
	lines := make([]string, len(d))
	for i, decl := range d {
		lines[i] = indent + decl.String()
	}
	return strings.Join(lines, sep)
}
