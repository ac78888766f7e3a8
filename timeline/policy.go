package timeline

import (
	"fmt"
	"strings"
)

// A Policy selects how the span after a keyframe is interpolated. The policy
// of the earlier keyframe of a bracket governs the whole bracket.
type Policy int

// The zero Policy is not valid and marks an absent policy.
const (
	_ Policy = iota
	Linear
	Exponential
	Logarithmic
	// StepToSource holds the earlier keyframe's value until the next keyframe.
	StepToSource
	// StepToTarget jumps to the next keyframe's value for the whole span.
	StepToTarget
)

var policyNames = map[Policy]string{
	Linear:       "linear",
	Exponential:  "exponential",
	Logarithmic:  "logarithmic",
	StepToSource: "step-source",
	StepToTarget: "step-target",
}

// Valid reports whether p is one of the defined policies.
func (p Policy) Valid() bool {
	_, ok := policyNames[p]
	return ok
}

func (p Policy) String() string {
	if name, ok := policyNames[p]; ok {
		return name
	}
	return fmt.Sprintf("Policy(%d)", int(p))
}

// ParsePolicy returns the policy with the given name, ignoring case.
func ParsePolicy(name string) (Policy, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for p, n := range policyNames {
		if n == name {
			return p, nil
		}
	}
	if name == "" {
		return 0, fmt.Errorf("%w: interpolation policy", ErrMissingField)
	}
	return 0, fmt.Errorf("unknown interpolation policy %q", name)
}
