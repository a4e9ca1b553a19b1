package domain

// Axis indexes one of the six psychological axes a profile is scored on.
type Axis int

// The six axes, in canonical order.
const (
	AxisAnalytic Axis = iota
	AxisCreative
	AxisOperational
	AxisSocial
	AxisRisk
	AxisStructure
	NumAxes
)

var axisNames = [NumAxes]string{"analytic", "creative", "operational", "social", "risk", "structure"}

// String returns the canonical axis name.
func (a Axis) String() string {
	if a < 0 || a >= NumAxes {
		return "unknown"
	}
	return axisNames[a]
}

// AxisByName resolves a canonical axis name; the boolean is false for
// unknown names.
func AxisByName(name string) (Axis, bool) {
	for i, n := range axisNames {
		if n == name {
			return Axis(i), true
		}
	}
	return 0, false
}

// AxisProfile is the fixed-size 6-axis vector summarizing a user's
// personality answers, each value in [0,10] after normalization. Built fresh
// per request; immutable once computed.
type AxisProfile [NumAxes]float64

// AxisWeights is a partial per-category mapping from axis to weight,
// positive or negative. Absent axes do not contribute.
type AxisWeights map[Axis]float64
