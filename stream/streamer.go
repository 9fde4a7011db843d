package stream

import (
	"context"
	"log"
	"time"

	"github.com/eclipse/paho.mqtt.golang"
	"github.com/matt-g-everett/glitchtx/glitch"
	"github.com/pkg/errors"
)

// Publisher is the part of mqtt.Client the Streamer uses.
type Publisher interface {
	Publish(topic string, qos byte, retained bool, payload interface{}) mqtt.Token
}

// Streamer that streams RGB data frames to an ledrx device.
type Streamer struct {
	client    Publisher
	topics    Topics
	animation Animation
	interval  time.Duration
}

// NewStreamer creates an instance of a Streamer.
func NewStreamer(config Config, client Publisher, animation Animation) *Streamer {
	s := new(Streamer)
	s.client = client
	s.topics = config.Mqtt.Topics
	s.animation = animation
	s.interval = time.Duration(config.Led.FrameMs) * time.Millisecond
	if s.interval <= 0 {
		s.interval = 33 * time.Millisecond
	}

	return s
}

func (s *Streamer) publish(topic string, qos byte, retained bool, payload interface{}) error {
	token := s.client.Publish(topic, qos, retained, payload)
	token.Wait()
	return errors.Wrapf(token.Error(), "publish to %s", topic)
}

// SendFrame sends a frame as binary over MQTT to an ledrx device.
func (s *Streamer) SendFrame(runtimeMs int64) error {
	f := s.animation.CalculateFrame(runtimeMs)
	b, err := f.MarshalBinary()
	if err != nil {
		return errors.Wrap(err, "marshal frame")
	}
	return s.publish(s.topics.Stream, 2, false, b)
}

// PublishSources publishes the stylesheet and markup as retained messages so
// displays that connect later still pick them up.
func (s *Streamer) PublishSources(doc glitch.Document) error {
	if err := s.publish(s.topics.Stylesheet, 1, true, doc.CSS()); err != nil {
		return err
	}
	return s.publish(s.topics.Markup, 1, true, doc.HTML())
}

// Run causes the Streamer to send Frames until ctx is done. Animations are
// given the wall clock in milliseconds.
func (s *Streamer) Run(ctx context.Context) error {
	publishTimer := time.NewTicker(s.interval)
	defer publishTimer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case now := <-publishTimer.C:
			if err := s.SendFrame(now.UnixNano()/int64(time.Millisecond)); err != nil {
				log.Println(err)
			}
		}
	}
}
