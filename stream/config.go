package stream

import (
	"fmt"
	"io"
	"math"

	"gopkg.in/yaml.v2"
)

// Config is the YAML configuration of a streamer.
type Config struct {
	Mqtt struct {
		URL      string `yaml:"url"`
		Username string `yaml:"username"`
		Password string `yaml:"password"`
		ClientID string `yaml:"clientID"`
		Topics   struct {
			Stream  string `yaml:"stream"`
			Events  string `yaml:"events"`
			Control string `yaml:"control"`
		}
	} `yaml:"mqtt"`
	Listen      string        `yaml:"listen"`
	FrameRate   float64       `yaml:"frameRate"`
	Pixels      int           `yaml:"pixels"`
	TrailLength int           `yaml:"trailLength"`
	Loop        *int64        `yaml:"loop"`
	Gradient    GradientTable `yaml:"gradient"`
	Channels    Sheet         `yaml:"channels"`
}

// ReadConfig decodes a Config from r and fills in defaults.
func ReadConfig(r io.Reader) (Config, error) {
	var c Config
	decoder := yaml.NewDecoder(r)
	if err := decoder.Decode(&c); err != nil && err != io.EOF {
		return c, err
	}

	if c.Mqtt.ClientID == "" {
		c.Mqtt.ClientID = "ledtimeline"
	}
	if c.Mqtt.Topics.Stream == "" {
		c.Mqtt.Topics.Stream = "home/xmastree/stream"
	}
	if c.Mqtt.Topics.Events == "" {
		c.Mqtt.Topics.Events = "home/xmastree/events"
	}
	if c.Mqtt.Topics.Control == "" {
		c.Mqtt.Topics.Control = "home/xmastree/control"
	}
	if c.Listen == "" {
		c.Listen = ":3000"
	}
	if c.FrameRate <= 0 {
		c.FrameRate = 30
	}
	if c.Pixels <= 0 {
		c.Pixels = numPixels
	}
	if c.Pixels > math.MaxUint16 {
		return c, fmt.Errorf("pixels: %d exceeds the frame limit of %d", c.Pixels, math.MaxUint16)
	}
	if c.TrailLength <= 0 {
		c.TrailLength = c.Pixels
	}
	if len(c.Gradient) == 0 {
		c.Gradient = DefaultGradient()
	}

	return c, nil
}
