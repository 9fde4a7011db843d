package stream

import (
	"math"
	"sort"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/matt-g-everett/glitchtx/glitch"
	"github.com/matt-g-everett/glitchtx/util"
)

const pulseLutLength = 32

// pxPerEm matches the font size of the preview page, turning drop-shadow
// pixel offsets into strip rows.
const pxPerEm = 8.0

type ledStrip struct {
	spec     glitch.StripSpec
	glitches []glitch.Glitch
}

// A GlitchStrip is an Animation that plays a generated document on an led
// strip. The strips slice a gradient, and each one tears on its own timeline
// using the pulses and shadows of the keyframe rule it runs in a browser.
type GlitchStrip struct {
	strips     []ledStrip
	height     int
	gradient   GradientTable
	saturation float64
	luminance  float64
	lut        []float64
	startMs    int64
}

// NewGlitchStrip creates an instance of a GlitchStrip object.
func NewGlitchStrip(doc glitch.Document, gradient GradientTable,
	saturation float64, luminance float64, startMs int64) *GlitchStrip {

	s := new(GlitchStrip)
	s.height = doc.Height()
	if s.height < 1 {
		s.height = 1
	}
	s.gradient = gradient
	s.saturation = saturation
	s.luminance = luminance
	s.lut = util.GenerateLut(pulseLutLength)
	s.startMs = startMs

	for _, spec := range doc.Specs {
		rule, _ := doc.Rule(spec.Duration)
		s.strips = append(s.strips, ledStrip{spec, rule.Glitches})
	}

	return s
}

func (st *ledStrip) covers(row float64) bool {
	return float64(st.spec.Top) <= row && row < float64(st.spec.Top+st.spec.Height)
}

// stripAt finds the strip covering row.
func (s *GlitchStrip) stripAt(row float64) *ledStrip {
	i := sort.Search(len(s.strips), func(i int) bool {
		st := s.strips[i].spec
		return float64(st.Top+st.Height) > row
	})
	if i >= len(s.strips) {
		i = len(s.strips) - 1
	}
	return &s.strips[i]
}

func (s *GlitchStrip) baseColour(row float64) colorful.Color {
	t := math.Mod(row, float64(s.height))
	if t < 0 {
		t += float64(s.height)
	}
	return s.gradient.GetColor(t/float64(s.height), s.saturation, s.luminance)
}

// progress is the position through the strip's animation in percent, or -1
// while it is still delayed.
func (s *GlitchStrip) progress(st *ledStrip, runtimeMs int64) float64 {
	elapsed := runtimeMs - s.startMs - int64(st.spec.Delay*1000)
	durationMs := int64(st.spec.Duration * 1000)
	if elapsed < 0 || durationMs <= 0 {
		return -1
	}
	return float64(elapsed%durationMs) * 100 / float64(durationMs)
}

// CalculateFrame creates a new Frame instance.
func (s *GlitchStrip) CalculateFrame(runtimeMs int64) *Frame {
	f := NewFrame()
	numPixels := len(f.pixels)
	rowsPerPixel := float64(s.height) / float64(numPixels)

	for i := 0; i < numPixels; i++ {
		row := float64(i) * rowsPerPixel
		st := s.stripAt(row)
		f.pixels[i] = s.baseColour(row)

		pct := s.progress(st, runtimeMs)
		for k, gl := range st.glitches {
			if !gl.Contains(pct) || k >= len(st.spec.Offsets) {
				continue
			}

			gain := util.SampleLut(s.lut, gl.Progress(pct))
			offset := st.spec.Offsets[k]
			c := s.baseColour(row - float64(offset.X)*gain)
			h, chroma, l := c.Hcl()
			c = colorful.Hcl(math.Mod(h+float64(offset.Hue)*gain+360, 360), chroma, l)

			// The strip is one pixel wide, so only the vertical offset moves
			// the shadow: a pixel is shaded when the row it casts from is
			// inside the strip.
			if st.covers(row - float64(gl.ShadowY)/pxPerEm) {
				c = c.BlendRgb(gl.Shadow.Colour, gl.Shadow.Alpha*gain)
			}
			f.pixels[i] = c
			break
		}
	}

	return f
}
