// Package timeline steps scalar targets along keyframes on an integer frame
// clock.
//
// Each registered target owns a Track of keyframes. Every call to Step
// evaluates all tracks at the current clock, committing an interpolated value
// to each target, and then advances the clock by one frame. The clock may be
// set directly to scrub or rewind; keyframe callbacks fire again whenever the
// clock lands on their frame.
//
// A Timeline is not safe for concurrent use.
package timeline

import (
	"errors"
	"fmt"
)

// Timeline owns the tracks of all registered targets and the shared clock.
type Timeline struct {
	clock  int64
	tracks map[Identity]*Track
}

// New creates an empty Timeline at frame 0.
func New() *Timeline {
	return &Timeline{tracks: make(map[Identity]*Track)}
}

// Clock returns the current frame.
func (tl *Timeline) Clock() int64 {
	return tl.clock
}

// SetClock moves the timeline to frame t.
func (tl *Timeline) SetClock(t int64) {
	tl.clock = t
}

// Len returns the number of registered targets.
func (tl *Timeline) Len() int {
	return len(tl.tracks)
}

func checkIdentity(t Target) (Identity, error) {
	if t == nil {
		return Identity{}, fmt.Errorf("%w: target", ErrMissingField)
	}
	id := t.Identity()
	if id.Group == "" {
		return id, fmt.Errorf("%w: target group", ErrMissingField)
	}
	if id.Name == "" {
		return id, fmt.Errorf("%w: target name", ErrMissingField)
	}
	return id, nil
}

// Register creates a track for t. Keyframes may only be added to registered
// targets.
func (tl *Timeline) Register(t Target) error {
	id, err := checkIdentity(t)
	if err != nil {
		return err
	}
	if _, ok := tl.tracks[id]; ok {
		return fmt.Errorf("%w: %+v", ErrDuplicateRegistration, id)
	}

	tl.tracks[id] = newTrack(t)
	return nil
}

// Track returns the track registered for id.
func (tl *Timeline) Track(id Identity) (*Track, error) {
	tr, ok := tl.tracks[id]
	if !ok {
		return nil, fmt.Errorf("%w: %+v", ErrUnregisteredTarget, id)
	}
	return tr, nil
}

// AddKeyframe adds k to the track of t.
func (tl *Timeline) AddKeyframe(t Target, k Keyframe) error {
	id, err := checkIdentity(t)
	if err != nil {
		return err
	}
	tr, err := tl.Track(id)
	if err != nil {
		return err
	}
	if err := tr.Add(k); err != nil {
		return fmt.Errorf("%s/%s: %w", id.Group, id.Name, err)
	}
	return nil
}

// Step evaluates every track at the current clock and then advances the
// clock by one frame. The clock advances even if a track fails or a callback
// panics.
func (tl *Timeline) Step() error {
	now := tl.clock
	defer func() {
		tl.clock++
	}()

	var errs []error
	for _, tr := range tl.tracks {
		if err := tr.Evaluate(now); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
