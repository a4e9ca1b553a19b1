package refine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avenira/orient-api/internal/domain"
)

func q(id, text string, labels [3]string) domain.MicroQuestion {
	return domain.MicroQuestion{
		ID:       id,
		Question: text,
		Options: []domain.ChoiceOption{
			{Label: labels[0], Value: "A"},
			{Label: labels[1], Value: "B"},
			{Label: labels[2], Value: "C"},
		},
	}
}

func TestAcceptableSpecificSet(t *testing.T) {
	qs := []domain.MicroQuestion{
		q("q1", "Préférez-vous suivre un patient ou préparer une compétition ?",
			[3]string{"Suivre un patient", "Préparer une compétition", "Les deux"}),
		q("q2", "Plutôt un lieu de soin ou un terrain de sport ?",
			[3]string{"Un lieu de soin", "Un terrain de sport", "Peu importe"}),
		q("q3", "Qu'est-ce qui compte le plus pour vous ?",
			[3]string{"La santé des gens", "L'ambiance d'un match", "L'équilibre"}),
	}
	assert.True(t, Acceptable(qs, "sante_bien_etre", "sport_evenementiel"))
}

func TestAcceptableRejectsGenericPhrasing(t *testing.T) {
	qs := []domain.MicroQuestion{
		q("q1", "Aimez-vous travailler dans un cadre structuré ?",
			[3]string{"Oui", "Non", "Parfois"}),
		q("q2", "Préférez-vous travailler en autonomie ?",
			[3]string{"Oui", "Non", "Parfois"}),
		q("q3", "Préférez-vous le soin ou le sport ?",
			[3]string{"Le soin", "Le sport", "Les deux"}),
	}
	assert.False(t, Acceptable(qs, "sante_bien_etre", "sport_evenementiel"))
}

func TestAcceptableRejectsVocabularyFreeSet(t *testing.T) {
	qs := []domain.MicroQuestion{
		q("q1", "Préférez-vous le matin ou le soir ?", [3]string{"Matin", "Soir", "Ça dépend"}),
		q("q2", "Plutôt thé ou café ?", [3]string{"Thé", "Café", "Eau"}),
		q("q3", "Ville ou campagne ?", [3]string{"Ville", "Campagne", "Les deux"}),
	}
	assert.False(t, Acceptable(qs, "sante_bien_etre", "sport_evenementiel"))
}

func TestAcceptableRejectsMalformedSets(t *testing.T) {
	valid := q("q1", "Soin ou sport ?", [3]string{"Le soin", "Le sport", "Les deux"})

	twoOptions := valid
	twoOptions.Options = valid.Options[:2]
	assert.False(t, Acceptable([]domain.MicroQuestion{valid, twoOptions},
		"sante_bien_etre", "sport_evenementiel"))

	dupValues := valid
	dupValues.Options = []domain.ChoiceOption{
		{Label: "x", Value: "A"}, {Label: "y", Value: "A"}, {Label: "z", Value: "C"},
	}
	assert.False(t, Acceptable([]domain.MicroQuestion{valid, dupValues},
		"sante_bien_etre", "sport_evenementiel"))

	assert.False(t, Acceptable([]domain.MicroQuestion{valid},
		"sante_bien_etre", "sport_evenementiel"), "below minimum size")
	assert.False(t, Acceptable([]domain.MicroQuestion{valid, valid, valid, valid, valid, valid},
		"sante_bien_etre", "sport_evenementiel"), "above maximum size")
}

func TestFallbackBankPassesOwnGate(t *testing.T) {
	pairs := [][2]string{
		{"sante_bien_etre", "sport_evenementiel"},
		{"business_entrepreneuriat", "creation_design"},
		{"data_ia", "ingenierie_tech"},
		{"commerce_vente", "communication_media"},
		{"droit_justice", "finance_gestion"},
	}
	for _, p := range pairs {
		qs := FallbackQuestions(p[0], p[1])
		require.Len(t, qs, 3, "%s|%s", p[0], p[1])
		assert.True(t, Acceptable(qs, p[0], p[1]), "%s|%s", p[0], p[1])
	}
}

func TestFallbackQuestionsOrderIndependent(t *testing.T) {
	a := FallbackQuestions("sport_evenementiel", "sante_bien_etre")
	b := FallbackQuestions("sante_bien_etre", "sport_evenementiel")
	assert.Equal(t, a, b)
}

func TestFallbackQuestionsGeneric(t *testing.T) {
	qs := FallbackQuestions("environnement_nature", "droit_justice")
	require.Len(t, qs, 3)
	for _, mq := range qs {
		require.Len(t, mq.Options, 3)
		for _, o := range mq.Options {
			assert.NotContains(t, o.Label, "{A}")
			assert.NotContains(t, o.Label, "{B}")
		}
	}
	joined := ""
	for _, mq := range qs {
		for _, o := range mq.Options {
			joined += o.Label + " "
		}
	}
	assert.True(t, strings.Contains(joined, "Environnement & Nature"))
	assert.True(t, strings.Contains(joined, "Droit & Justice"))
}
