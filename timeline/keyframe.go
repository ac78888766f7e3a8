package timeline

import "fmt"

// A Callback is notified when the clock lands exactly on a keyframe's time.
type Callback func(t Target, k Keyframe)

// A Keyframe anchors a value at a frame. Keyframes are immutable.
type Keyframe struct {
	policy   Policy
	time     int64
	value    float64
	callback Callback
}

// NewKeyframe creates a keyframe. callback may be nil.
func NewKeyframe(policy Policy, time int64, value float64, callback Callback) (Keyframe, error) {
	if !policy.Valid() {
		return Keyframe{}, fmt.Errorf("%w: interpolation policy", ErrMissingField)
	}

	return Keyframe{
		policy:   policy,
		time:     time,
		value:    value,
		callback: callback,
	}, nil
}

func (k Keyframe) Policy() Policy { return k.policy }
func (k Keyframe) Time() int64    { return k.time }
func (k Keyframe) Value() float64 { return k.value }

// Equal reports whether k and o have the same time, value and policy. The
// callback does not take part.
func (k Keyframe) Equal(o Keyframe) bool {
	return k.policy == o.policy && k.time == o.time && k.value == o.value
}

// RunCallback invokes the keyframe's callback with t, if there is one.
func (k Keyframe) RunCallback(t Target) error {
	if t == nil {
		return fmt.Errorf("%w: target", ErrMissingField)
	}
	if k.callback != nil {
		k.callback(t, k)
	}
	return nil
}

func (k Keyframe) String() string {
	return fmt.Sprintf("[Keyframe %v %d %v]", k.value, k.time, k.policy)
}
