// Package glitch generates the CSS keyframes and HTML strips of a CRT style
// glitch effect.
//
// A glitched element is cut into horizontal strips of random height. Every
// strip runs one of a handful of keyframe rules (glitch-5 … glitch-10) with
// its own delay, horizontal shift and hue rotation, so the strips tear apart
// independently for a moment at each step boundary.
package glitch

import (
	"github.com/matt-g-everett/glitchtx/util"
)

// Generator draws the random parameters of the effect from one source.
type Generator struct {
	opts    Options
	random  util.Random
	palette Palette
}

// NewGenerator creates a Generator. Zero options fall back to defaults.
func NewGenerator(opts Options, random util.Random) (*Generator, error) {
	g := new(Generator)
	g.opts = opts.WithDefaults()
	g.random = random

	palette, err := ParsePalette(g.opts.ShadowColours, g.opts.ShadowAlpha)
	if err != nil {
		return nil, err
	}
	g.palette = palette

	return g, nil
}

func (g *Generator) rand(min int, max int) int {
	return util.Range(g.random, min, max)
}
