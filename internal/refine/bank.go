package refine

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/avenira/orient-api/internal/catalog"
	"github.com/avenira/orient-api/internal/domain"
)

//go:embed data/fallback_bank.yaml
var fallbackBankYAML []byte

type bankQuestion struct {
	ID       string `yaml:"id"`
	Question string `yaml:"question"`
	Options  []struct {
		Label string `yaml:"label"`
		Value string `yaml:"value"`
	} `yaml:"options"`
}

type bankFile struct {
	Pairs []struct {
		IDs       []string       `yaml:"ids"`
		Questions []bankQuestion `yaml:"questions"`
	} `yaml:"pairs"`
	Generic []bankQuestion `yaml:"generic"`
}

var (
	pairBank    map[string][]domain.MicroQuestion
	genericBank []domain.MicroQuestion
)

func init() {
	var f bankFile
	if err := yaml.Unmarshal(fallbackBankYAML, &f); err != nil {
		panic(fmt.Sprintf("refine: malformed fallback_bank.yaml: %v", err))
	}
	pairBank = make(map[string][]domain.MicroQuestion, len(f.Pairs))
	for _, p := range f.Pairs {
		if len(p.IDs) != 2 {
			panic(fmt.Sprintf("refine: fallback pair with %d ids", len(p.IDs)))
		}
		pairBank[PairKey(p.IDs[0], p.IDs[1])] = toQuestions(p.Questions)
	}
	genericBank = toQuestions(f.Generic)
}

func toQuestions(qs []bankQuestion) []domain.MicroQuestion {
	out := make([]domain.MicroQuestion, 0, len(qs))
	for _, q := range qs {
		mq := domain.MicroQuestion{ID: q.ID, Question: q.Question}
		for _, o := range q.Options {
			mq.Options = append(mq.Options, domain.ChoiceOption{Label: o.Label, Value: o.Value})
		}
		out = append(out, mq)
	}
	return out
}

// PairKey builds the order-independent bank key for two sector ids.
func PairKey(idA, idB string) string {
	ids := []string{idA, idB}
	sort.Strings(ids)
	return ids[0] + "|" + ids[1]
}

// FallbackQuestions returns the curated question set for a candidate pair,
// or the generic set with the sector names spliced in when no pair entry
// exists. The result is always a fresh slice safe to mutate.
func FallbackQuestions(idA, idB string) []domain.MicroQuestion {
	if qs, ok := pairBank[PairKey(idA, idB)]; ok {
		out := make([]domain.MicroQuestion, len(qs))
		copy(out, qs)
		return out
	}
	nameA, nameB := sectorName(idA), sectorName(idB)
	out := make([]domain.MicroQuestion, 0, len(genericBank))
	for _, q := range genericBank {
		mq := domain.MicroQuestion{ID: q.ID, Question: q.Question}
		for _, o := range q.Options {
			label := strings.ReplaceAll(o.Label, "{A}", nameA)
			label = strings.ReplaceAll(label, "{B}", nameB)
			mq.Options = append(mq.Options, domain.ChoiceOption{Label: label, Value: o.Value})
		}
		out = append(out, mq)
	}
	return out
}

func sectorName(id string) string {
	if s, ok := catalog.SectorByID(id); ok {
		return s.Name
	}
	return id
}
