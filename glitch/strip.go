package glitch

import (
	"fmt"
	"strings"
)

// Strip is one horizontal slice of the glitched element, in em.
type Strip struct {
	Top    int
	Height int
}

// Offset is the shift and hue rotation a strip applies during one pulse.
type Offset struct {
	X   int
	Hue int
}

// StripSpec is a strip together with its randomised animation parameters.
type StripSpec struct {
	Strip
	Duration int // seconds
	Delay    int // seconds
	Offsets  []Offset
}

// Name is the keyframe rule the strip runs.
func (s StripSpec) Name() string {
	return fmt.Sprintf("glitch-%d", s.Duration)
}

// Style returns the inline declarations of the strip.
func (s StripSpec) Style() (Declarations, Declarations) {
	var props, layout Declarations
	for i, o := range s.Offsets {
		props.Add(fmt.Sprintf("--glitch-x-%d", i+1), "%dem", o.X)
		props.Add(fmt.Sprintf("--glitch-hue-%d", i+1), "%ddeg", o.Hue)
	}

	layout.Add("background-position", "0 -%dem", s.Top)
	layout.Add("height", "%dem", s.Height)
	layout.Add("animation-name", "%s", s.Name())
	layout.Add("animation-duration", "%dms", s.Duration*1000)
	layout.Add("animation-delay", "%ds", s.Delay)
	return props, layout
}

// trailing marks the declarations the markup follows with a space.
var trailing = map[string]bool{
	"height":             true,
	"animation-duration": true,
}

// HTML renders the strip as a div with inline style. Values are numeric so
// nothing is escaped.
func (s StripSpec) HTML() string {
	props, layout := s.Style()

	var style []string
	if len(props) > 0 {
		style = append(style, props.Join("    ", "\n"), "")
	}
	for _, decl := range layout {
		line := "    " + decl.String()
		if trailing[decl.Property] {
			line += " "
		}
		style = append(style, line)
	}

	return fmt.Sprintf("<div \n  class=\"strip\" \n  style=\"\n%s\n  \"\n></div>", strings.Join(style, "\n"))
}

// NewStrip draws the animation parameters of a strip.
func (g *Generator) NewStrip(top int, stripHeight int) StripSpec {
	s := StripSpec{Strip: Strip{top, stripHeight}}
	s.Duration = g.rand(g.opts.DurationMin, g.opts.DurationMax)

	for i := 1; i < g.opts.Steps; i++ {
		s.Offsets = append(s.Offsets, Offset{
			X:   g.rand(-g.opts.ShiftRange, g.opts.ShiftRange),
			Hue: g.rand(-g.opts.HueRange, g.opts.HueRange),
		})
	}

	s.Delay = g.rand(g.opts.DelayMin, g.opts.DelayMax)
	return s
}

// StripHTML draws a strip and renders it.
func (g *Generator) StripHTML(top int, stripHeight int) string {
	return g.NewStrip(top, stripHeight).HTML()
}
