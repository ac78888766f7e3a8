package stream

import "github.com/matt-g-everett/ledtimeline/timeline"

// A Channel is a scalar property of the strip animated by the timeline.
type Channel struct {
	id    timeline.Identity
	value float64
	min   float64
	max   float64
}

// NewChannel creates a Channel over [min, max] starting at initial.
func NewChannel(id timeline.Identity, min, max, initial float64) *Channel {
	c := new(Channel)
	c.id = id
	c.min = min
	c.max = max
	c.value = initial
	return c
}

func (c *Channel) Value() float64 {
	return c.value
}

func (c *Channel) SetValue(x float64) {
	c.value = x
}

func (c *Channel) Min() float64 {
	return c.min
}

func (c *Channel) Max() float64 {
	return c.max
}

func (c *Channel) Identity() timeline.Identity {
	return c.id
}

// FindChannel returns the first channel called name, or nil.
func FindChannel(channels []*Channel, name string) *Channel {
	for _, c := range channels {
		if c.id.Name == name {
			return c
		}
	}
	return nil
}
