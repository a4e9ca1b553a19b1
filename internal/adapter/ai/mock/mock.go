// Package mock implements domain.AIClient deterministically for offline
// and test runs: same prompts, same answers, no network.
package mock

import (
	"encoding/json"
	"fmt"
	"hash/fnv"
	"strings"

	"github.com/avenira/orient-api/internal/catalog"
	"github.com/avenira/orient-api/internal/domain"
	"github.com/avenira/orient-api/internal/refine"
	"github.com/avenira/orient-api/internal/usecase"
)

// Client is a deterministic AI stand-in.
type Client struct{}

// New constructs the mock client.
func New() domain.AIClient { return &Client{} }

// ChatJSON dispatches on the task marker embedded in the system prompt and
// answers with stable, schema-correct JSON.
func (c *Client) ChatJSON(_ domain.Context, systemPrompt, userPrompt string, _ int) (string, error) {
	switch {
	case strings.Contains(systemPrompt, usecase.TaskSectorRank):
		return c.rankSectors(userPrompt)
	case strings.Contains(systemPrompt, usecase.TaskRefineQuestions):
		return c.refineQuestions(userPrompt)
	case strings.Contains(systemPrompt, usecase.TaskDisambiguate):
		return c.pickFirstCandidate(userPrompt)
	case strings.Contains(systemPrompt, usecase.TaskJobPick):
		return c.pickFirstCandidate(userPrompt)
	case strings.Contains(systemPrompt, usecase.TaskDescribe):
		return c.describe(userPrompt)
	}
	return "", fmt.Errorf("%w: unknown mock task", domain.ErrInvalidArgument)
}

// rankSectors scores every candidate id with a stable hash of id plus the
// user prompt, normalized to (0,1]. Pseudo-random but reproducible.
func (c *Client) rankSectors(userPrompt string) (string, error) {
	ids := candidates(userPrompt)
	if len(ids) == 0 {
		ids = catalog.SectorIDs()
	}
	type entry struct {
		ID    string  `json:"id"`
		Score float64 `json:"score"`
	}
	ranked := make([]entry, 0, len(ids))
	for _, id := range ids {
		ranked = append(ranked, entry{ID: id, Score: float64(stableHash(id+userPrompt)%100+1) / 100})
	}
	b, err := json.Marshal(map[string]any{"ranked": ranked})
	return string(b), err
}

func (c *Client) refineQuestions(userPrompt string) (string, error) {
	ids := candidates(userPrompt)
	if len(ids) < 2 {
		return "", fmt.Errorf("%w: mock needs two candidates", domain.ErrInvalidArgument)
	}
	b, err := json.Marshal(map[string]any{"questions": refine.FallbackQuestions(ids[0], ids[1])})
	return string(b), err
}

func (c *Client) pickFirstCandidate(userPrompt string) (string, error) {
	ids := candidates(userPrompt)
	if len(ids) == 0 {
		return "", fmt.Errorf("%w: mock needs candidates", domain.ErrInvalidArgument)
	}
	b, err := json.Marshal(map[string]any{"pick": ids[0], "confidence": 0.72})
	return string(b), err
}

func (c *Client) describe(userPrompt string) (string, error) {
	name := lineValue(userPrompt, "Nom:")
	if name == "" {
		name = "ce domaine"
	}
	desc := fmt.Sprintf("%s vous ouvre des perspectives concrètes. Explorez les formations et les métiers associés pour confirmer cette orientation.", name)
	b, err := json.Marshal(map[string]string{"description": desc})
	return string(b), err
}

// candidates parses the allowed-id line the prompts embed.
func candidates(userPrompt string) []string {
	raw := lineValue(userPrompt, usecase.CandidatesLinePrefix)
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func lineValue(text, prefix string) string {
	for _, line := range strings.Split(text, "\n") {
		if strings.HasPrefix(line, prefix) {
			return strings.TrimSpace(strings.TrimPrefix(line, prefix))
		}
	}
	return ""
}

func stableHash(s string) uint32 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(s))
	return h.Sum32()
}
