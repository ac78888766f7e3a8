package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matt-g-everett/ledtimeline/timeline"
)

type simple struct {
	id    timeline.Identity
	value float64
}

func newSimple(group, name string, id int64) *simple {
	return &simple{id: timeline.Identity{Group: group, Name: name, ID: id}}
}

func (s *simple) Value() float64              { return s.value }
func (s *simple) SetValue(x float64)          { s.value = x }
func (s *simple) Min() float64                { return 0 }
func (s *simple) Max() float64                { return 1 }
func (s *simple) Identity() timeline.Identity { return s.id }

func TestKey(t *testing.T) {
	assert.Equal(t, "strip/luminance[3]", Key(timeline.Identity{Group: "strip", Name: "luminance", ID: 3}))
}

func TestGroups(t *testing.T) {
	r := New(timeline.New())
	targets := []*simple{
		newSimple("group0", "g0-name2", 1),
		newSimple("group0", "g0-name0", 2),
		newSimple("group1", "g1-name1", 3),
		newSimple("group0", "g0-name1", 4),
		newSimple("group1", "g1-name0", 5),
	}
	for _, s := range targets {
		require.NoError(t, r.Add(s))
	}
	assert.Equal(t, 5, r.Timeline().Len())

	var names []string
	for _, s := range r.Group("group0") {
		names = append(names, s.Identity().Name)
	}
	assert.Equal(t, []string{"g0-name0", "g0-name1", "g0-name2"}, names)
	assert.Len(t, r.Group("group1"), 2)
	assert.Empty(t, r.Group("missing"))
	assert.Equal(t, []string{"group0", "group1"}, r.Groups())
}

func TestAddDuplicate(t *testing.T) {
	r := New(timeline.New())
	require.NoError(t, r.Add(newSimple("g", "a", 1)))
	assert.ErrorIs(t, r.Add(newSimple("g", "a", 1)), timeline.ErrDuplicateRegistration)
	assert.NoError(t, r.Add(newSimple("g", "a", 2)))
	assert.Len(t, r.Group("g"), 2)
}

func TestAddMissingFields(t *testing.T) {
	r := New(timeline.New())
	assert.ErrorIs(t, r.Add(nil), timeline.ErrMissingField)
	assert.ErrorIs(t, r.Add(newSimple("", "a", 1)), timeline.ErrMissingField)
	assert.ErrorIs(t, r.Add(newSimple("g", "", 1)), timeline.ErrMissingField)
	assert.Empty(t, r.Groups())
	assert.Equal(t, 0, r.Timeline().Len())
}

func TestLookupAndAddKeyframe(t *testing.T) {
	r := New(timeline.New())
	s := newSimple("g", "a", 1)
	require.NoError(t, r.Add(s))

	got, err := r.Lookup(s.Identity())
	require.NoError(t, err)
	assert.Same(t, s, got)

	missing := timeline.Identity{Group: "g", Name: "b", ID: 1}
	_, err = r.Lookup(missing)
	assert.ErrorIs(t, err, timeline.ErrUnregisteredTarget)

	k, err := timeline.NewKeyframe(timeline.Linear, 0, 0.25, nil)
	require.NoError(t, err)
	require.NoError(t, r.AddKeyframe(s.Identity(), k))
	assert.ErrorIs(t, r.AddKeyframe(s.Identity(), k), timeline.ErrDuplicateKeyframeTime)
	assert.ErrorIs(t, r.AddKeyframe(missing, k), timeline.ErrUnregisteredTarget)

	require.NoError(t, r.Timeline().Step())
	assert.Equal(t, 0.25, s.value)
}

func TestAddIdentitiesWithSameKey(t *testing.T) {
	r := New(timeline.New())
	a := newSimple("a", "b/c", 1)
	b := newSimple("a/b", "c", 1)
	require.Equal(t, Key(a.Identity()), Key(b.Identity()))

	require.NoError(t, r.Add(a))
	require.NoError(t, r.Add(b))
	assert.Equal(t, 2, r.Timeline().Len())

	got, err := r.Lookup(b.Identity())
	require.NoError(t, err)
	assert.Same(t, b, got)
	assert.Equal(t, []timeline.Target{a}, r.Group("a"))
	assert.Equal(t, []timeline.Target{b}, r.Group("a/b"))
}
