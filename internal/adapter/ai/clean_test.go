package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"bare object", `{"a":1}`, `{"a":1}`},
		{"fenced", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"fence without language", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"prose around", `Voici le résultat : {"pick":"data_ia"} — bonne lecture.`, `{"pick":"data_ia"}`},
		{"array", `[{"id":"x"}]`, `[{"id":"x"}]`},
		{"braces inside strings", `{"q":"aimez-vous {ceci} ?"}`, `{"q":"aimez-vous {ceci} ?"}`},
		{"nested", `{"a":{"b":[1,2]}}`, `{"a":{"b":[1,2]}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CleanJSON(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCleanJSONErrors(t *testing.T) {
	for _, in := range []string{
		"",
		"pas de json ici",
		`{"truncated": `,
		`{"a": unquoted}`,
	} {
		_, err := CleanJSON(in)
		assert.ErrorIs(t, err, ErrNoJSON, "input %q", in)
	}
}
