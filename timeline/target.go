package timeline

// Identity distinguishes targets registered with a Timeline. Group and Name
// must not be empty.
type Identity struct {
	Group string
	Name  string
	ID    int64
}

// A Target is a scalar value animated by a Timeline. Values passed to
// SetValue are always within [Min(), Max()].
type Target interface {
	Value() float64
	SetValue(x float64)
	Min() float64
	Max() float64
	Identity() Identity
}
