package tags

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avenira/orient-api/internal/catalog"
	"github.com/avenira/orient-api/internal/domain"
)

func TestComputeDomainTags_HumanDominant(t *testing.T) {
	raw := map[string]any{
		"secteur_41": "J'aime aider les personnes autour de moi",
		"secteur_42": "Comprendre le ressenti des gens",
		"secteur_43": "Le contact humain me motive",
		"secteur_44": "Accompagner une personne dans sa transformation",
		"secteur_45": "Tout ce qui est vivant m'intéresse",
	}
	got := ComputeDomainTags(raw)
	assert.GreaterOrEqual(t, got.HumanScore, 4)
	assert.Equal(t, domain.FinaliteHumainDirect, got.FinaliteDominante)
	assert.False(t, got.SignauxTechExplicites)
}

func TestComputeDomainTags_SystemDominant(t *testing.T) {
	raw := map[string]any{
		"secteur_41": "Comprendre le mécanisme d'une machine",
		"secteur_42": "La logique des systèmes",
		"secteur_43": "Travailler la matière",
		"secteur_44": "L'énergie et le mouvement",
		"secteur_45": "La structure d'un engrenage",
	}
	got := ComputeDomainTags(raw)
	assert.GreaterOrEqual(t, got.SystemScore, 4)
	assert.Equal(t, domain.FinaliteSystemeObjet, got.FinaliteDominante)
}

func TestComputeDomainTags_GenericLogicNeverSetsTechFlag(t *testing.T) {
	// The product rule: logique/structuré/système/analytique language alone
	// must not flag explicit tech signals.
	raw := map[string]any{
		"secteur_41": "Je suis quelqu'un de logique et structuré",
		"secteur_42": "J'aime les systèmes bien organisés",
		"secteur_43": "Une approche analytique",
	}
	got := ComputeDomainTags(raw)
	assert.False(t, got.SignauxTechExplicites)
}

func TestComputeDomainTags_ExplicitTechSetsFlag(t *testing.T) {
	raw := map[string]any{
		"secteur_41": "J'adore écrire du code et la robotique",
	}
	got := ComputeDomainTags(raw)
	assert.True(t, got.SignauxTechExplicites)
}

func TestComputeDomainTags_ShortKeywordNeedsWordBoundary(t *testing.T) {
	// "devenir" must not match the "dev" keyword.
	raw := map[string]any{
		"secteur_41": "Je veux devenir quelqu'un de bien",
	}
	got := ComputeDomainTags(raw)
	assert.False(t, got.SignauxTechExplicites)

	raw["secteur_42"] = "faire du dev le week-end"
	got = ComputeDomainTags(raw)
	assert.True(t, got.SignauxTechExplicites)
}

func TestComputeDomainTags_Deterministic(t *testing.T) {
	raw := map[string]any{
		"secteur_41": map[string]any{"label": "aider les personnes", "value": "A"},
		"secteur_43": "la logique des machines",
	}
	first := ComputeDomainTags(raw)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, ComputeDomainTags(raw))
	}
}

func TestComputeMicroDomainScores_DenseOutput(t *testing.T) {
	got := ComputeMicroDomainScores(map[string]any{})
	require.Len(t, got, len(catalog.Sectors))
	for id, v := range got {
		assert.Zero(t, v, id)
	}
}

func TestComputeMicroDomainScores_TechChoices(t *testing.T) {
	raw := map[string]any{
		"secteur_47": "C",
		"secteur_48": map[string]any{"label": "C) Les données", "value": "C"},
		"secteur_49": "C",
		"secteur_50": "C",
	}
	got := ComputeMicroDomainScores(raw)
	assert.Equal(t, 7.0, got["ingenierie_tech"])
	assert.Equal(t, 7.0, got["data_ia"])
	assert.Zero(t, got["sante_bien_etre"])
}

func TestComputeMicroDomainScores_UnparseableContributesZero(t *testing.T) {
	raw := map[string]any{
		"secteur_47": "une réponse libre sans choix",
		"secteur_48": "A",
	}
	got := ComputeMicroDomainScores(raw)
	assert.Zero(t, got["sante_bien_etre"], "unparseable choice must not default-substitute")
	assert.Equal(t, 3.0, got["social_humanitaire"])
}
