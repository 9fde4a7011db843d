package glitch

// tile cuts height into strips of random size, the last one taking whatever
// is left. A height of zero or less produces a single strip of that height.
func (g *Generator) tile(height int, emit func(top int, stripHeight int)) {
	i := 0
	for {
		stripHeight := g.rand(g.opts.StripMin, g.opts.StripMax)

		if i+stripHeight >= height {
			emit(i, height-i)
			return
		}

		emit(i, stripHeight)
		i += stripHeight
	}
}

// Tile partitions height into strips, top to bottom.
func (g *Generator) Tile(height int) []Strip {
	var strips []Strip
	g.tile(height, func(top int, stripHeight int) {
		strips = append(strips, Strip{top, stripHeight})
	})
	return strips
}

// Strips partitions height and draws the parameters of every strip.
func (g *Generator) Strips(height int) []StripSpec {
	var specs []StripSpec
	g.tile(height, func(top int, stripHeight int) {
		specs = append(specs, g.NewStrip(top, stripHeight))
	})
	return specs
}

// GlitchHTML renders the strips covering height.
func (g *Generator) GlitchHTML(height int) []string {
	specs := g.Strips(height)
	html := make([]string, len(specs))
	for i, s := range specs {
		html[i] = s.HTML()
	}
	return html
}
