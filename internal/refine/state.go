// Package refine implements the disambiguation flow used when the blended
// ranking cannot separate its two top candidates: the decision state
// machine, the quality gate applied to generated micro-questions, and the
// curated fallback bank keyed by candidate pair.
package refine

// State is the outcome of one classification round.
type State int

const (
	// StateDirect picks the top candidate without further questioning.
	StateDirect State = iota
	// StateNeedsRefinement emits micro-questions disambiguating the two
	// top candidates.
	StateNeedsRefinement
	// StateForced terminates the flow: the first candidate is returned
	// regardless of confidence, never another question set.
	StateForced
)

// Decision thresholds.
const (
	// ConfidenceThreshold separates a direct pick from a refinement round.
	ConfidenceThreshold = 0.6
	// ForceThreshold is the round count at which the flow always decides.
	ForceThreshold = 2
	// MaxRounds is a hard cap on the client-reported round counter;
	// anything above is clamped, not rejected.
	MaxRounds = 10
	// ForcedConfidence is the confidence reported on a forced decision.
	ForcedConfidence = 0.6
)

// Question set bounds for one refinement round.
const (
	MinQuestions = 2
	MaxQuestions = 5
)

func (s State) String() string {
	switch s {
	case StateDirect:
		return "direct"
	case StateNeedsRefinement:
		return "needs_refinement"
	case StateForced:
		return "forced"
	}
	return "unknown"
}

// Decide is the pure transition function of the flow. The round counter
// wins over confidence: once the force threshold is reached the flow must
// decide, even at zero confidence.
func Decide(confidence float64, roundCount int) State {
	if roundCount > MaxRounds {
		roundCount = MaxRounds
	}
	if roundCount >= ForceThreshold {
		return StateForced
	}
	if confidence >= ConfidenceThreshold {
		return StateDirect
	}
	return StateNeedsRefinement
}
