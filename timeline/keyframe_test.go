package timeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewKeyframeRequiresPolicy(t *testing.T) {
	_, err := NewKeyframe(0, 0, 0.5, nil)
	assert.ErrorIs(t, err, ErrMissingField)

	_, err = NewKeyframe(Policy(99), 0, 0.5, nil)
	assert.ErrorIs(t, err, ErrMissingField)

	k, err := NewKeyframe(Linear, -3, 0.5, nil)
	require.NoError(t, err)
	assert.Equal(t, Linear, k.Policy())
	assert.Equal(t, int64(-3), k.Time())
	assert.Equal(t, 0.5, k.Value())
}

func TestKeyframeEqualIgnoresCallback(t *testing.T) {
	k0, _ := NewKeyframe(Linear, 4, 0.5, nil)
	k1, _ := NewKeyframe(Linear, 4, 0.5, func(Target, Keyframe) {})
	k2, _ := NewKeyframe(Exponential, 4, 0.5, nil)
	k3, _ := NewKeyframe(Linear, 5, 0.5, nil)
	k4, _ := NewKeyframe(Linear, 4, 0.25, nil)

	assert.True(t, k0.Equal(k1))
	assert.True(t, k1.Equal(k0))
	assert.False(t, k0.Equal(k2))
	assert.False(t, k0.Equal(k3))
	assert.False(t, k0.Equal(k4))
}

func TestKeyframeRunCallback(t *testing.T) {
	target := newScalar("test", "opacity")

	var gotTarget Target
	var gotKeyframe Keyframe
	calls := 0
	k, err := NewKeyframe(StepToSource, 7, 0.25, func(t Target, k Keyframe) {
		calls++
		gotTarget = t
		gotKeyframe = k
	})
	require.NoError(t, err)

	require.NoError(t, k.RunCallback(target))
	assert.Equal(t, 1, calls)
	assert.Same(t, target, gotTarget)
	assert.True(t, k.Equal(gotKeyframe))

	assert.ErrorIs(t, k.RunCallback(nil), ErrMissingField)
	assert.Equal(t, 1, calls)

	plain, _ := NewKeyframe(Linear, 0, 0, nil)
	assert.NoError(t, plain.RunCallback(target))
	assert.ErrorIs(t, plain.RunCallback(nil), ErrMissingField)
}

func TestKeyframeString(t *testing.T) {
	k, _ := NewKeyframe(Logarithmic, 12, 0.5, nil)
	assert.Equal(t, "[Keyframe 0.5 12 logarithmic]", k.String())
}
