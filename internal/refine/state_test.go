package refine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecide(t *testing.T) {
	tests := []struct {
		name       string
		confidence float64
		round      int
		want       State
	}{
		{"high confidence first round", 0.85, 0, StateDirect},
		{"threshold is inclusive", 0.6, 0, StateDirect},
		{"low confidence first round", 0.35, 0, StateNeedsRefinement},
		{"just under threshold", 0.59, 1, StateNeedsRefinement},
		{"force threshold reached", 0.95, 2, StateForced},
		{"forced even at zero confidence", 0, 3, StateForced},
		{"absurd round counter clamped", 0.1, 500, StateForced},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Decide(tt.confidence, tt.round))
		})
	}
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "direct", StateDirect.String())
	assert.Equal(t, "needs_refinement", StateNeedsRefinement.String())
	assert.Equal(t, "forced", StateForced.String())
	assert.Equal(t, "unknown", State(42).String())
}
