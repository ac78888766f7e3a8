package stream

import (
	"fmt"

	"github.com/matt-g-everett/ledtimeline/registry"
	"github.com/matt-g-everett/ledtimeline/timeline"
)

// KeyframeSpec is a keyframe as written in the config file. A non-empty
// Event is announced when the clock reaches Time.
type KeyframeSpec struct {
	Time   int64   `yaml:"time"`
	Value  float64 `yaml:"value"`
	Policy string  `yaml:"policy"`
	Event  string  `yaml:"event"`
}

// ChannelSpec describes a channel and its keyframes.
type ChannelSpec struct {
	Group     string         `yaml:"group"`
	Name      string         `yaml:"name"`
	ID        int64          `yaml:"id"`
	Min       float64        `yaml:"min"`
	Max       float64        `yaml:"max"`
	Initial   *float64       `yaml:"initial"`
	Keyframes []KeyframeSpec `yaml:"keyframes"`
}

// A Sheet is the set of animated channels loaded from config.
type Sheet []ChannelSpec

// A Notifier is told about keyframe events as the clock reaches them.
type Notifier func(event string, t timeline.Target, k timeline.Keyframe)

func (s ChannelSpec) identity() timeline.Identity {
	group := s.Group
	if group == "" {
		group = "strip"
	}
	return timeline.Identity{Group: group, Name: s.Name, ID: s.ID}
}

// Build creates the sheet's channels, registers them with reg and adds their
// keyframes. notify may be nil.
func (s Sheet) Build(reg *registry.Registry, notify Notifier) ([]*Channel, error) {
	channels := make([]*Channel, 0, len(s))
	for _, cs := range s {
		id := cs.identity()
		key := registry.Key(id)
		if cs.Max < cs.Min {
			return nil, fmt.Errorf("channel %s: max %v is below min %v", key, cs.Max, cs.Min)
		}

		initial := cs.Min
		if cs.Initial != nil {
			initial = *cs.Initial
		}
		c := NewChannel(id, cs.Min, cs.Max, initial)
		if err := reg.Add(c); err != nil {
			return nil, err
		}

		for _, ks := range cs.Keyframes {
			policy, err := timeline.ParsePolicy(ks.Policy)
			if err != nil {
				return nil, fmt.Errorf("channel %s frame %d: %w", key, ks.Time, err)
			}

			var callback timeline.Callback
			if ks.Event != "" && notify != nil {
				event := ks.Event
				callback = func(t timeline.Target, k timeline.Keyframe) {
					notify(event, t, k)
				}
			}

			k, err := timeline.NewKeyframe(policy, ks.Time, ks.Value, callback)
			if err != nil {
				return nil, fmt.Errorf("channel %s frame %d: %w", key, ks.Time, err)
			}
			if err := reg.AddKeyframe(id, k); err != nil {
				return nil, err
			}
		}

		channels = append(channels, c)
	}

	return channels, nil
}
