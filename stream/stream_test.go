package stream

import (
	"context"
	"encoding/binary"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/eclipse/paho.mqtt.golang"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/matt-g-everett/glitchtx/glitch"
	"github.com/matt-g-everett/glitchtx/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixed float64

func (f fixed) Float64() float64 { return float64(f) }

type fakeToken struct {
	err error
}

func (t *fakeToken) Wait() bool                     { return true }
func (t *fakeToken) WaitTimeout(time.Duration) bool { return true }
func (t *fakeToken) Done() <-chan struct{} {
	ch := make(chan struct{})
	close(ch)
	return ch
}
func (t *fakeToken) Error() error { return t.err }

type message struct {
	topic    string
	qos      byte
	retained bool
	payload  interface{}
}

type fakePublisher struct {
	messages []message
	err      error
}

func (p *fakePublisher) Publish(topic string, qos byte, retained bool, payload interface{}) mqtt.Token {
	p.messages = append(p.messages, message{topic, qos, retained, payload})
	return &fakeToken{p.err}
}

type solid struct{}

func (solid) CalculateFrame(runtimeMs int64) *Frame {
	f := NewFrame()
	for i := range f.pixels {
		f.pixels[i] = colorful.Color{R: 1, G: 0.5, B: 0}
	}
	return f
}

func TestReadConfig(t *testing.T) {
	c, err := ReadConfig(strings.NewReader(`
height: 40
glitch:
  steps: 4
  shadowColours: ["#00ff00"]
mqtt:
  url: tcp://broker:1883
  topics:
    stream: led/stream
`))
	require.NoError(t, err)

	assert.Equal(t, 40, c.Height)
	assert.Equal(t, 4, c.Glitch.Steps)
	assert.Equal(t, glitch.DefaultTick, c.Glitch.Tick)
	assert.Equal(t, []string{"#00ff00"}, c.Glitch.ShadowColours)
	assert.Equal(t, "tcp://broker:1883", c.Mqtt.URL)
	assert.Equal(t, "led/stream", c.Mqtt.Topics.Stream)
	assert.Equal(t, "home/glitch/markup", c.Mqtt.Topics.Markup)
	assert.Equal(t, ":3000", c.Server.Address)
}

func TestReadConfigEmpty(t *testing.T) {
	c, err := ReadConfig(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), c)
}

func TestReadConfigInvalid(t *testing.T) {
	_, err := ReadConfig(strings.NewReader("height: [1"))
	assert.Error(t, err)
}

func TestFrameMarshalBinary(t *testing.T) {
	f := solid{}.CalculateFrame(0)
	f.pixels[1] = colorful.Color{R: 2, G: -1, B: 0}

	data, err := f.MarshalBinary()
	require.NoError(t, err)
	require.Len(t, data, 2+numPixels*3)
	assert.Equal(t, uint16(numPixels), binary.LittleEndian.Uint16(data))
	assert.Equal(t, []byte{255, 128, 0}, data[2:5])
	assert.Equal(t, []byte{255, 0, 0}, data[5:8])
}

func TestGradientGetColor(t *testing.T) {
	c := Rainbow.GetColor(0.56, 0.3, 0.6)
	h, _, _ := c.Hcl()
	assert.InDelta(t, 180.0, h, 1.0)

	past := Rainbow.GetColor(2, 1.0, 0.05)
	assert.True(t, past.AlmostEqualRgb(colorful.Hcl(360, 1.0, 0.05)))
}

func newTestGlitchStrip(t *testing.T) *GlitchStrip {
	t.Helper()
	g, err := glitch.NewGenerator(glitch.Options{}, fixed(0.8))
	require.NoError(t, err)
	return NewGlitchStrip(g.Document(10), Rainbow, 1.0, 0.3, 0)
}

func newSeededDocument(t *testing.T) glitch.Document {
	t.Helper()
	g, err := glitch.NewGenerator(glitch.Options{}, util.NewRandom(7))
	require.NoError(t, err)
	return g.Document(62)
}

func TestGlitchStripPlaysDocument(t *testing.T) {
	doc := newSeededDocument(t)
	s := NewGlitchStrip(doc, Rainbow, 1.0, 0.3, 0)

	assert.Equal(t, 62, s.height)
	require.Len(t, s.strips, len(doc.Strips))
	for i, st := range s.strips {
		assert.Equal(t, doc.Strips[i], st.spec.HTML())
	}
}

func TestGlitchStripSharesRuleShadows(t *testing.T) {
	doc := newSeededDocument(t)
	s := NewGlitchStrip(doc, Rainbow, 1.0, 0.3, 0)

	byDuration := map[int]*ledStrip{}
	shared := 0
	for i := range s.strips {
		st := &s.strips[i]
		rule, ok := doc.Rule(st.spec.Duration)
		require.True(t, ok)
		assert.Equal(t, rule.Glitches, st.glitches)

		if first, seen := byDuration[st.spec.Duration]; seen {
			assert.Equal(t, first.glitches, st.glitches)
			shared++
		} else {
			byDuration[st.spec.Duration] = st
		}
	}
	// More strips than durations, so some must share a rule.
	assert.Greater(t, shared, 0)
}

func TestGlitchStripLayout(t *testing.T) {
	s := newTestGlitchStrip(t)
	require.Len(t, s.strips, 2)
	assert.Equal(t, glitch.Strip{Top: 0, Height: 5}, s.strips[0].spec.Strip)
	assert.Equal(t, glitch.Strip{Top: 5, Height: 5}, s.strips[1].spec.Strip)
	assert.Len(t, s.strips[0].glitches, 2)
	assert.Equal(t, 2, s.strips[0].glitches[0].ShadowY)

	assert.True(t, s.strips[0].covers(0))
	assert.False(t, s.strips[0].covers(5))
	assert.False(t, s.strips[1].covers(-0.25))

	assert.Same(t, &s.strips[0], s.stripAt(4.9))
	assert.Same(t, &s.strips[1], s.stripAt(5))
	assert.Same(t, &s.strips[1], s.stripAt(50))
}

func TestGlitchStripIdle(t *testing.T) {
	s := newTestGlitchStrip(t)

	// Still inside the two second delay.
	f := s.CalculateFrame(1000)
	for i := 0; i < numPixels; i += 50 {
		row := float64(i) * 10 / numPixels
		assert.Equal(t, s.baseColour(row), f.Pixel(i))
	}

	// Start of the timeline, before the first pulse.
	f = s.CalculateFrame(2000)
	assert.Equal(t, s.baseColour(0), f.Pixel(0))
}

func TestGlitchStripPulse(t *testing.T) {
	s := newTestGlitchStrip(t)

	// 36% of a nine second animation, after the delay, sits in the first pulse.
	f := s.CalculateFrame(2000 + 3240)
	assert.False(t, f.Pixel(0).AlmostEqualRgb(s.baseColour(0)))
}

func TestStreamerSendFrame(t *testing.T) {
	p := &fakePublisher{}
	s := NewStreamer(DefaultConfig(), p, solid{})

	require.NoError(t, s.SendFrame(0))
	require.Len(t, p.messages, 1)
	m := p.messages[0]
	assert.Equal(t, "home/xmastree/stream", m.topic)
	assert.Equal(t, byte(2), m.qos)
	assert.False(t, m.retained)
	assert.Len(t, m.payload, 2+numPixels*3)
}

func TestStreamerPublishError(t *testing.T) {
	p := &fakePublisher{err: errors.New("offline")}
	s := NewStreamer(DefaultConfig(), p, solid{})

	err := s.SendFrame(0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "offline")
}

func TestStreamerPublishSources(t *testing.T) {
	p := &fakePublisher{}
	s := NewStreamer(DefaultConfig(), p, solid{})

	doc := glitch.Document{Strips: []string{"<a>", "<b>"}, Keyframes: []string{"x", "y"}}
	require.NoError(t, s.PublishSources(doc))
	require.Len(t, p.messages, 2)
	assert.Equal(t, message{"home/glitch/stylesheet", 1, true, "x\ny"}, p.messages[0])
	assert.Equal(t, message{"home/glitch/markup", 1, true, "<a>\n<b>"}, p.messages[1])
}

func TestStreamerRun(t *testing.T) {
	p := &fakePublisher{}
	c := DefaultConfig()
	c.Led.FrameMs = 1
	s := NewStreamer(c, p, solid{})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	require.NoError(t, s.Run(ctx))
	assert.NotEmpty(t, p.messages)
}
