package stream

import (
	"github.com/matt-g-everett/ledtimeline/util"
)

// A Strip is an Animation that lays a gradient along the led strip. The
// gradient's offset, saturation and luminance come from timeline channels.
type Strip struct {
	gradient    GradientTable
	pixels      int
	trailLength int
	offset      *Channel
	saturation  *Channel
	luminance   *Channel
}

// NewStrip creates a Strip reading the "offset", "saturation" and "luminance"
// channels. Missing channels fall back to an offset of 0, full saturation and
// a dim luminance.
func NewStrip(gradient GradientTable, pixels int, trailLength int, channels []*Channel) *Strip {
	s := new(Strip)
	s.gradient = gradient
	s.pixels = pixels
	s.trailLength = trailLength
	if s.trailLength <= 0 {
		s.trailLength = pixels
	}
	s.offset = FindChannel(channels, "offset")
	s.saturation = FindChannel(channels, "saturation")
	s.luminance = FindChannel(channels, "luminance")

	return s
}

func channelValue(c *Channel, fallback float64) float64 {
	if c == nil {
		return fallback
	}
	return c.Value()
}

// CalculateFrame renders the strip from the current channel values.
func (s *Strip) CalculateFrame(frame int64) *Frame {
	f := NewFrame(s.pixels)
	offset := channelValue(s.offset, 0.0)
	saturation := channelValue(s.saturation, 1.0)
	luminance := channelValue(s.luminance, 0.05)
	for i := 0; i < s.pixels; i++ {
		t := util.Wrap(float64(i)/float64(s.trailLength) + offset)
		f.pixels[i] = s.gradient.GetColor(t, saturation, luminance)
	}

	return f
}
