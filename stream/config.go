package stream

import (
	"io"

	"github.com/matt-g-everett/glitchtx/glitch"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// Topics are the MQTT topics the streamer publishes on.
type Topics struct {
	Stream     string `yaml:"stream"`
	Stylesheet string `yaml:"stylesheet"`
	Markup     string `yaml:"markup"`
}

type Config struct {
	Height int            `yaml:"height"`
	Glitch glitch.Options `yaml:"glitch"`
	Server struct {
		Address string `yaml:"address"`
	} `yaml:"server"`
	Led struct {
		Saturation float64 `yaml:"saturation"`
		Luminance  float64 `yaml:"luminance"`
		FrameMs    int     `yaml:"frameMs"`
	} `yaml:"led"`
	Mqtt struct {
		URL      string `yaml:"url"`
		ClientID string `yaml:"clientId"`
		Username string `yaml:"username"`
		Password string `yaml:"password"`
		Topics   Topics `yaml:"topics"`
	} `yaml:"mqtt"`
}

// DefaultConfig is used for anything a config file leaves out.
func DefaultConfig() Config {
	var c Config
	c.Height = 62
	c.Glitch = glitch.DefaultOptions()
	c.Server.Address = ":3000"
	c.Led.Saturation = 1.0
	c.Led.Luminance = 0.05
	c.Led.FrameMs = 33
	c.Mqtt.ClientID = "glitchtx"
	c.Mqtt.Topics = Topics{
		Stream:     "home/xmastree/stream",
		Stylesheet: "home/glitch/stylesheet",
		Markup:     "home/glitch/markup",
	}
	return c
}

// ReadConfig decodes YAML on top of DefaultConfig.
func ReadConfig(r io.Reader) (Config, error) {
	c := DefaultConfig()
	if err := yaml.NewDecoder(r).Decode(&c); err != nil && err != io.EOF {
		return c, errors.Wrap(err, "decode config")
	}
	c.Glitch = c.Glitch.WithDefaults()
	return c, nil
}
