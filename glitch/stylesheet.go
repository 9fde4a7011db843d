package glitch

import (
	"fmt"
	"strings"
)

// GlitchPercentage is the share of a duration-second animation taken by one
// glitch pulse.
func (g *Generator) GlitchPercentage(duration int) float64 {
	return float64(g.opts.GlitchDurationMs*100) / float64(duration*1000)
}

// Rule is the drawn keyframe rule run by every strip of one duration.
type Rule struct {
	Duration   int // seconds
	Percentage float64
	Steps      int
	Glitches   []Glitch
}

// Name is the animation-name strips of this duration reference.
func (r Rule) Name() string {
	return fmt.Sprintf("glitch-%d", r.Duration)
}

// Frames lays the rule out as keyframes.
func (r Rule) Frames() []Keyframe {
	return Keyframes(r.Percentage, r.Steps, r.Glitches)
}

func (r Rule) String() string {
	return FormatKeyframes(r.Name(), r.Frames())
}

// Rules draws one rule for every strip duration, using Options.Steps so the
// rules match the custom properties strips carry.
func (g *Generator) Rules() []Rule {
	var rules []Rule
	for n := g.opts.DurationMin; n <= g.opts.DurationMax; n++ {
		pct := g.GlitchPercentage(n)
		rules = append(rules, Rule{
			Duration:   n,
			Percentage: pct,
			Steps:      g.opts.Steps,
			Glitches:   g.Glitches(pct, g.opts.Steps, g.opts.Tick),
		})
	}
	return rules
}

// Stylesheet builds one keyframe rule for every strip duration.
func (g *Generator) Stylesheet() []string {
	rules := g.Rules()
	css := make([]string, len(rules))
	for i, r := range rules {
		css[i] = r.String()
	}
	return css
}

// Document is a generated set of strips and the rules they run, both drawn
// once and rendered from the same values.
type Document struct {
	Specs     []StripSpec
	Rules     []Rule
	Strips    []string
	Keyframes []string
}

// HTML joins the strips.
func (d Document) HTML() string {
	return strings.Join(d.Strips, "\n")
}

// CSS joins the keyframe rules.
func (d Document) CSS() string {
	return strings.Join(d.Keyframes, "\n")
}

// Rule finds the rule strips of duration run.
func (d Document) Rule(duration int) (Rule, bool) {
	for _, r := range d.Rules {
		if r.Duration == duration {
			return r, true
		}
	}
	return Rule{}, false
}

// Height is the total height covered by the strips.
func (d Document) Height() int {
	if len(d.Specs) == 0 {
		return 0
	}
	last := d.Specs[len(d.Specs)-1]
	return last.Top + last.Height
}

// NewDocument renders already drawn strips and rules.
func NewDocument(specs []StripSpec, rules []Rule) Document {
	d := Document{Specs: specs, Rules: rules}
	d.Strips = make([]string, len(specs))
	for i, s := range specs {
		d.Strips[i] = s.HTML()
	}
	d.Keyframes = make([]string, len(rules))
	for i, r := range rules {
		d.Keyframes[i] = r.String()
	}
	return d
}

// Document draws strips covering height and the full stylesheet.
func (g *Generator) Document(height int) Document {
	specs := g.Strips(height)
	return NewDocument(specs, g.Rules())
}
