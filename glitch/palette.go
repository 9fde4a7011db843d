package glitch

import (
	"fmt"
	"strconv"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/matt-g-everett/glitchtx/util"
	"github.com/pkg/errors"
)

// A Shadow is a translucent drop-shadow colour.
type Shadow struct {
	Colour colorful.Color
	Alpha  float64
}

// CSS renders the shadow in the space separated rgb() syntax.
func (s Shadow) CSS() string {
	r, g, b := s.Colour.Clamped().RGB255()
	return fmt.Sprintf("rgb(%d %d %d / %s)", r, g, b, strconv.FormatFloat(s.Alpha, 'f', -1, 64))
}

// Palette is the set of shadow colours a glitch pulse picks from.
type Palette []Shadow

// ParsePalette parses hex colours that all share one alpha.
func ParsePalette(hexes []string, alpha float64) (Palette, error) {
	if len(hexes) == 0 {
		return nil, errors.New("palette needs at least one colour")
	}

	p := make(Palette, 0, len(hexes))
	for _, h := range hexes {
		c, err := colorful.Hex(h)
		if err != nil {
			return nil, errors.Wrapf(err, "parse shadow colour %q", h)
		}
		p = append(p, Shadow{c, alpha})
	}
	return p, nil
}

// Pick chooses a shadow at random. A two colour palette is a coin flip that
// favours the first colour on heads.
func (p Palette) Pick(r util.Random) Shadow {
	switch len(p) {
	case 1:
		return p[0]
	case 2:
		if util.Chance(r) {
			return p[0]
		}
		return p[1]
	}

	i := int(r.Float64() * float64(len(p)))
	if i >= len(p) {
		i = len(p) - 1
	}
	return p[i]
}
