package stream

import (
	"sync"

	"github.com/matt-g-everett/ledtimeline/timeline"
)

// Controller owns a timeline and the animation rendering its targets. All
// access to the timeline goes through the Controller, which serialises it.
type Controller struct {
	mu        sync.Mutex
	timeline  *timeline.Timeline
	animation Animation
	paused    bool
	looping   bool
	loop      int64
}

// NewController creates an instance of a Controller.
func NewController(tl *timeline.Timeline, animation Animation) *Controller {
	c := new(Controller)
	c.timeline = tl
	c.animation = animation
	return c
}

// Step evaluates the timeline at the current frame, renders that frame and
// advances the clock. When paused the current frame is rendered without
// evaluating the timeline. With looping enabled, the clock rewinds to 0 once
// the loop frame has been stepped.
func (c *Controller) Step() (*Frame, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.timeline.Clock()
	if c.paused {
		return c.animation.CalculateFrame(now), nil
	}

	err := c.timeline.Step()
	f := c.animation.CalculateFrame(now)
	if c.looping && now >= c.loop {
		c.timeline.SetClock(0)
	}

	return f, err
}

// Clock returns the frame the next Step evaluates.
func (c *Controller) Clock() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.timeline.Clock()
}

// SetClock scrubs the timeline to frame t.
func (c *Controller) SetClock(t int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.timeline.SetClock(t)
}

// Pause stops the clock advancing.
func (c *Controller) Pause() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.paused = true
}

// Resume restarts the clock after Pause.
func (c *Controller) Resume() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.paused = false
}

// Paused reports whether the clock is paused.
func (c *Controller) Paused() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.paused
}

// SetLoop rewinds the clock to 0 after frame has been stepped.
func (c *Controller) SetLoop(frame int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.looping = true
	c.loop = frame
}

// DisableLoop turns off looping.
func (c *Controller) DisableLoop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.looping = false
}

// Loop returns the loop frame and whether looping is enabled.
func (c *Controller) Loop() (int64, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loop, c.looping
}
