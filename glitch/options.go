package glitch

const (
	// DefaultSteps is the number of repeating segments in a keyframe rule.
	DefaultSteps = 3
	// DefaultTick keeps two keyframes from landing on the same percentage.
	DefaultTick = 0.1
)

// Options control the ranges the generator draws from.
type Options struct {
	Steps            int      `yaml:"steps"`
	Tick             float64  `yaml:"tick"`
	GlitchDurationMs int      `yaml:"glitchDurationMs"`
	DurationMin      int      `yaml:"durationMin"`
	DurationMax      int      `yaml:"durationMax"`
	DelayMin         int      `yaml:"delayMin"`
	DelayMax         int      `yaml:"delayMax"`
	StripMin         int      `yaml:"stripMin"`
	StripMax         int      `yaml:"stripMax"`
	ShiftRange       int      `yaml:"shiftRange"`
	HueRange         int      `yaml:"hueRange"`
	ShadowRange      int      `yaml:"shadowRange"`
	ShadowColours    []string `yaml:"shadowColours"`
	ShadowAlpha      float64  `yaml:"shadowAlpha"`
}

// DefaultOptions returns the ranges of the stock glitch effect.
func DefaultOptions() Options {
	return Options{
		Steps:            DefaultSteps,
		Tick:             DefaultTick,
		GlitchDurationMs: 500,
		DurationMin:      5,
		DurationMax:      10,
		DelayMin:         0,
		DelayMax:         2,
		StripMin:         1,
		StripMax:         6,
		ShiftRange:       10,
		HueRange:         50,
		ShadowRange:      4,
		ShadowColours:    []string{"#ff0000", "#0000ff"},
		ShadowAlpha:      0.1,
	}
}

// WithDefaults fills every zero field from DefaultOptions. DelayMin is left
// alone since zero is its default.
func (o Options) WithDefaults() Options {
	d := DefaultOptions()
	if o.Steps <= 0 {
		o.Steps = d.Steps
	}
	if o.Tick <= 0 {
		o.Tick = d.Tick
	}
	if o.GlitchDurationMs <= 0 {
		o.GlitchDurationMs = d.GlitchDurationMs
	}
	if o.DurationMin <= 0 {
		o.DurationMin = d.DurationMin
	}
	if o.DurationMax <= 0 {
		o.DurationMax = d.DurationMax
	}
	if o.DelayMax <= 0 {
		o.DelayMax = d.DelayMax
	}
	if o.StripMin <= 0 {
		o.StripMin = d.StripMin
	}
	if o.StripMax <= 0 {
		o.StripMax = d.StripMax
	}
	if o.ShiftRange <= 0 {
		o.ShiftRange = d.ShiftRange
	}
	if o.HueRange <= 0 {
		o.HueRange = d.HueRange
	}
	if o.ShadowRange <= 0 {
		o.ShadowRange = d.ShadowRange
	}
	if len(o.ShadowColours) == 0 {
		o.ShadowColours = d.ShadowColours
	}
	if o.ShadowAlpha <= 0 {
		o.ShadowAlpha = d.ShadowAlpha
	}
	return o
}
