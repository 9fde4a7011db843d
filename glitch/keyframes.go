package glitch

import (
	"fmt"
	"strings"
)

// Keyframe is a set of percentage keys sharing one CSS block.
type Keyframe struct {
	Keys []float64
	CSS  Declarations
}

func (k Keyframe) String() string {
	keys := make([]string, len(k.Keys))
	for i, key := range k.Keys {
		keys[i] = fmt.Sprintf("%.2f%%", key)
	}

	return strings.Join([]string{
		strings.Join(keys, ",\n  "),
		"{",
		k.CSS.Join("  ", "\n  "),
		"}",
	}, "\n  ")
}

// A Pulse is the window of one step in which the glitched state is shown.
type Pulse struct {
	Step  int
	Start float64
	End   float64
}

// Contains reports whether the percentage p falls inside the pulse.
func (p Pulse) Contains(pct float64) bool {
	return p.Start <= pct && pct <= p.End
}

// Progress is how far pct is through the pulse, from 0 to 1.
func (p Pulse) Progress(pct float64) float64 {
	if p.End <= p.Start {
		return 0
	}
	return (pct - p.Start) / (p.End - p.Start)
}

func stepSize(steps int) float64 {
	if steps <= 0 {
		steps = DefaultSteps
	}
	return 100 / float64(steps)
}

// BaseKeys lists the keys at which the untouched state is pinned: 0, the start
// and end of every step's glitch, and 100.
func BaseKeys(glitchPercentageDuration float64, steps int) []float64 {
	if steps <= 0 {
		steps = DefaultSteps
	}
	step := stepSize(steps)

	keys := []float64{0}
	for i := 1; i < steps; i++ {
		p := float64(i) * step
		keys = append(keys, p, p+glitchPercentageDuration)
	}
	return append(keys, 100)
}

// Pulses lists the glitch windows, inset by tick from the base keys.
func Pulses(glitchPercentageDuration float64, steps int, tick float64) []Pulse {
	if steps <= 0 {
		steps = DefaultSteps
	}
	step := stepSize(steps)

	pulses := make([]Pulse, 0, steps-1)
	for i := 1; i < steps; i++ {
		p := float64(i) * step
		pulses = append(pulses, Pulse{i, p + tick, p + glitchPercentageDuration - tick})
	}
	return pulses
}

// Glitch is the drawn state of one pulse: the drop-shadow colour and offset
// shown while the strip is torn.
type Glitch struct {
	Pulse
	Shadow  Shadow
	ShadowX int // px
	ShadowY int // px
}

// Glitches draws the shadow of every pulse. Draw order per step is colour,
// then x, then y.
func (g *Generator) Glitches(glitchPercentageDuration float64, steps int, tick float64) []Glitch {
	var glitches []Glitch
	for _, pulse := range Pulses(glitchPercentageDuration, steps, tick) {
		shadow := g.palette.Pick(g.random)
		x := g.rand(-g.opts.ShadowRange, g.opts.ShadowRange)
		y := g.rand(-g.opts.ShadowRange, g.opts.ShadowRange)
		glitches = append(glitches, Glitch{pulse, shadow, x, y})
	}
	return glitches
}

// Keyframes lays out a baseline keyframe followed by one keyframe per glitch.
func Keyframes(glitchPercentageDuration float64, steps int, glitches []Glitch) []Keyframe {
	base := Keyframe{Keys: BaseKeys(glitchPercentageDuration, steps)}
	base.CSS.Add("transform", "none")
	// Safari only restarts the animation when the filter is set explicitly.
	base.CSS.Add("filter", "hue-rotate(0) drop-shadow(0 0 0 transparent)")

	frames := []Keyframe{base}
	for _, gl := range glitches {
		frame := Keyframe{Keys: []float64{gl.Start, gl.End}}
		frame.CSS.Add("transform", "translateX(var(--glitch-x-%d))", gl.Step)
		frame.CSS.Add("filter", "hue-rotate(var(--glitch-hue-%d)) drop-shadow(%dpx %dpx 0 %s)",
			gl.Step, gl.ShadowX, gl.ShadowY, gl.Shadow.CSS())
		frames = append(frames, frame)
	}

	return frames
}

// KeyframeSpec builds the keyframes of one rule. The first keyframe is the
// baseline; one glitch keyframe follows for every step after the first.
func (g *Generator) KeyframeSpec(glitchPercentageDuration float64, steps int, tick float64) []Keyframe {
	return Keyframes(glitchPercentageDuration, steps, g.Glitches(glitchPercentageDuration, steps, tick))
}

// FormatKeyframes serializes keyframes into an @keyframes rule.
func FormatKeyframes(name string, frames []Keyframe) string {
	blocks := make([]string, len(frames))
	for i, f := range frames {
		blocks[i] = f.String()
	}
	return fmt.Sprintf("@keyframes %s {\n  %s\n}", name, strings.Join(blocks, "\n\n  "))
}

// KeyFrames builds the @keyframes rule called name. Strips only carry custom
// properties for Options.Steps, so steps above that reference undefined
// --glitch-x-N and --glitch-hue-N; Rules always uses Options.Steps.
func (g *Generator) KeyFrames(name string, glitchPercentageDuration float64, steps int, tick float64) string {
	return FormatKeyframes(name, g.KeyframeSpec(glitchPercentageDuration, steps, tick))
}
