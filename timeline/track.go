package timeline

import (
	"fmt"
	"sort"

	"github.com/matt-g-everett/ledtimeline/util"
)

// A Track holds the keyframes of a single target, ordered by time.
type Track struct {
	target    Target
	keyframes []Keyframe
}

func newTrack(t Target) *Track {
	return &Track{target: t}
}

// Target returns the target the track animates.
func (tr *Track) Target() Target {
	return tr.target
}

// Keyframes returns a copy of the track's keyframes in time order.
func (tr *Track) Keyframes() []Keyframe {
	out := make([]Keyframe, len(tr.keyframes))
	copy(out, tr.keyframes)
	return out
}

// Len returns the number of keyframes on the track.
func (tr *Track) Len() int {
	return len(tr.keyframes)
}

// index returns the position of the first keyframe at or after time.
func (tr *Track) index(time int64) int {
	return sort.Search(len(tr.keyframes), func(i int) bool {
		return tr.keyframes[i].time >= time
	})
}

// Add inserts k. A track holds at most one keyframe per time, and k must
// carry a valid policy.
func (tr *Track) Add(k Keyframe) error {
	if !k.policy.Valid() {
		return fmt.Errorf("%w: interpolation policy of keyframe at %d", ErrMissingField, k.time)
	}

	i := tr.index(k.time)
	if i < len(tr.keyframes) && tr.keyframes[i].time == k.time {
		return fmt.Errorf("%w %d", ErrDuplicateKeyframeTime, k.time)
	}

	tr.keyframes = append(tr.keyframes, Keyframe{})
	copy(tr.keyframes[i+1:], tr.keyframes[i:])
	tr.keyframes[i] = k
	return nil
}

// source returns the keyframe at now, or failing that the latest one before it.
func (tr *Track) source(now int64) (Keyframe, bool) {
	i := tr.index(now)
	if i < len(tr.keyframes) && tr.keyframes[i].time == now {
		return tr.keyframes[i], true
	}
	if i == 0 {
		return Keyframe{}, false
	}
	return tr.keyframes[i-1], true
}

// next returns the earliest keyframe strictly after now.
func (tr *Track) next(now int64) (Keyframe, bool) {
	i := sort.Search(len(tr.keyframes), func(i int) bool {
		return tr.keyframes[i].time > now
	})
	if i == len(tr.keyframes) {
		return Keyframe{}, false
	}
	return tr.keyframes[i], true
}

// Evaluate computes the target's value at now and commits it. A keyframe
// lying exactly on now has its callback run first. Before the first keyframe
// the target is left alone.
func (tr *Track) Evaluate(now int64) error {
	src, ok := tr.source(now)
	if !ok {
		return nil
	}
	if src.time == now {
		if err := src.RunCallback(tr.target); err != nil {
			return err
		}
	}

	value := src.value
	if dst, ok := tr.next(now); ok {
		factor := float64(now-src.time) / float64(dst.time-src.time)
		value = Interpolate(src.policy, factor, src.value, dst.value)
	}

	tr.target.SetValue(util.Clamp(value, tr.target.Min(), tr.target.Max()))
	return nil
}
