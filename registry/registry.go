// Package registry keeps timeline targets addressable by identity and
// collects them into named groups.
package registry

import (
	"fmt"
	"sort"

	"github.com/matt-g-everett/ledtimeline/timeline"
)

// Key renders id as group/name[id] for display. Distinct identities may
// render the same key.
func Key(id timeline.Identity) string {
	return fmt.Sprintf("%s/%s[%d]", id.Group, id.Name, id.ID)
}

// Registry records the targets registered with a Timeline.
type Registry struct {
	timeline *timeline.Timeline
	targets  map[timeline.Identity]timeline.Target
	groups   map[string][]timeline.Identity
}

// New creates a Registry that registers targets with tl.
func New(tl *timeline.Timeline) *Registry {
	r := new(Registry)
	r.timeline = tl
	r.targets = make(map[timeline.Identity]timeline.Target)
	r.groups = make(map[string][]timeline.Identity)
	return r
}

// Timeline returns the timeline targets are registered with.
func (r *Registry) Timeline() *timeline.Timeline {
	return r.timeline
}

func less(a, b timeline.Identity) bool {
	if a.Name != b.Name {
		return a.Name < b.Name
	}
	return a.ID < b.ID
}

// Add registers t with the timeline and records it under its group.
func (r *Registry) Add(t timeline.Target) error {
	if t == nil {
		return r.timeline.Register(nil)
	}

	id := t.Identity()
	if _, ok := r.targets[id]; ok {
		return fmt.Errorf("%w: %s", timeline.ErrDuplicateRegistration, Key(id))
	}
	if err := r.timeline.Register(t); err != nil {
		return fmt.Errorf("%s: %w", Key(id), err)
	}

	r.targets[id] = t
	ids := r.groups[id.Group]
	i := sort.Search(len(ids), func(i int) bool { return !less(ids[i], id) })
	ids = append(ids, timeline.Identity{})
	copy(ids[i+1:], ids[i:])
	ids[i] = id
	r.groups[id.Group] = ids
	return nil
}

// Lookup returns the target registered under id.
func (r *Registry) Lookup(id timeline.Identity) (timeline.Target, error) {
	t, ok := r.targets[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", timeline.ErrUnregisteredTarget, Key(id))
	}
	return t, nil
}

// AddKeyframe adds k to the target registered under id.
func (r *Registry) AddKeyframe(id timeline.Identity, k timeline.Keyframe) error {
	t, err := r.Lookup(id)
	if err != nil {
		return err
	}
	return r.timeline.AddKeyframe(t, k)
}

// Group returns the targets in group, ordered by name and then id.
func (r *Registry) Group(group string) []timeline.Target {
	ids := r.groups[group]
	out := make([]timeline.Target, 0, len(ids))
	for _, id := range ids {
		out = append(out, r.targets[id])
	}
	return out
}

// Groups returns the names of all groups in order.
func (r *Registry) Groups() []string {
	names := make([]string, 0, len(r.groups))
	for name := range r.groups {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
