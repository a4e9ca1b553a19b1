package usecase

import (
	"fmt"
	"sort"
	"strings"

	"github.com/avenira/orient-api/internal/answers"
	"github.com/avenira/orient-api/internal/catalog"
	"github.com/avenira/orient-api/pkg/textx"
)

// Task markers embedded in every system prompt. The mock client branches on
// them; the real provider just reads them as context.
const (
	TaskSectorRank      = "classement_secteurs"
	TaskRefineQuestions = "questions_affinage"
	TaskDisambiguate    = "arbitrage_secteurs"
	TaskJobPick         = "choix_metier"
	TaskDescribe        = "description_orientation"
)

// CandidatesLinePrefix introduces the allowed-id list in user prompts; the
// mock client parses it back.
const CandidatesLinePrefix = "candidats:"

const (
	maxAnswerDigestChars = 220
	maxDigestAnswers     = 60
)

// strictJSONReminder is appended to the system prompt on the single
// amended retry after a malformed response.
const strictJSONReminder = "\nIMPORTANT: réponds UNIQUEMENT avec le document JSON demandé, sans texte autour, sans balises markdown."

// answersDigest flattens normalized answers into stable "id: text" lines,
// sorted by id so the same answers always produce the same prompt.
func answersDigest(raw map[string]any) string {
	norm := answers.Normalize(raw)
	ids := make([]string, 0, len(norm))
	for id := range norm {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	if len(ids) > maxDigestAnswers {
		ids = ids[:maxDigestAnswers]
	}
	var b strings.Builder
	for _, id := range ids {
		a := answers.Answer{Kind: answers.KindLabeled, Label: norm[id].Label, Value: norm[id].Value}
		text := textx.SanitizeText(answers.FreeText(a))
		if text == "" {
			continue
		}
		if len([]rune(text)) > maxAnswerDigestChars {
			text = string([]rune(text)[:maxAnswerDigestChars])
		}
		fmt.Fprintf(&b, "%s: %s\n", id, text)
	}
	return b.String()
}

func sectorRankPrompts(raw map[string]any) (string, string) {
	system := "Tu es un moteur d'orientation professionnelle pour adolescents. " +
		"Tâche: " + TaskSectorRank + ". " +
		"À partir des réponses d'un quiz, classe les secteurs autorisés par affinité décroissante. " +
		`Réponds en JSON: {"ranked":[{"id":"<secteur>","score":<0..1>}]}. ` +
		"Utilise uniquement les identifiants autorisés, chacun au plus une fois."
	user := CandidatesLinePrefix + " " + strings.Join(catalog.SectorIDs(), ", ") + "\n\nRéponses:\n" + answersDigest(raw)
	return system, user
}

func refineQuestionsPrompts(idA, idB string) (string, string) {
	nameA, nameB := sectorDisplayName(idA), sectorDisplayName(idB)
	system := "Tu es un moteur d'orientation professionnelle pour adolescents. " +
		"Tâche: " + TaskRefineQuestions + ". " +
		"Génère exactement 3 questions fermées qui départagent deux secteurs proches. " +
		"Chaque question doit utiliser le vocabulaire concret de ces deux secteurs, jamais des formules de test de personnalité génériques. " +
		`Réponds en JSON: {"questions":[{"id":"<id>","question":"<texte>","options":[{"label":"<texte>","value":"A"},{"label":"<texte>","value":"B"},{"label":"<texte>","value":"C"}]}]}.`
	user := fmt.Sprintf("%s %s, %s\nSecteur A: %s (%s)\nSecteur B: %s (%s)",
		CandidatesLinePrefix, idA, idB, nameA, idA, nameB, idB)
	return system, user
}

func disambiguatePrompts(idA, idB string, microAnswers map[string]any) (string, string) {
	system := "Tu es un moteur d'orientation professionnelle pour adolescents. " +
		"Tâche: " + TaskDisambiguate + ". " +
		"On te donne deux secteurs candidats et les réponses aux questions de départage. " +
		`Choisis exactement l'un des deux identifiants. Réponds en JSON: {"pick":"<id>","confidence":<0..1>}.`
	user := fmt.Sprintf("%s %s, %s\n\nRéponses de départage:\n%s",
		CandidatesLinePrefix, idA, idB, answersDigest(microAnswers))
	return system, user
}

func jobPickPrompts(sectorID string, candidates []catalog.Job, raw map[string]any) (string, string) {
	ids := make([]string, 0, len(candidates))
	for _, j := range candidates {
		ids = append(ids, j.ID)
	}
	system := "Tu es un moteur d'orientation professionnelle pour adolescents. " +
		"Tâche: " + TaskJobPick + ". " +
		"À partir des réponses d'un quiz métier, choisis le métier le plus adapté parmi la liste autorisée. " +
		`Réponds en JSON: {"pick":"<id_metier>","confidence":<0..1>}. L'identifiant doit appartenir à la liste.`
	user := fmt.Sprintf("Secteur verrouillé: %s\n%s %s\n\nRéponses:\n%s",
		sectorID, CandidatesLinePrefix, strings.Join(ids, ", "), answersDigest(raw))
	return system, user
}

func describePrompts(kind, id, name, baseText string) (string, string) {
	system := "Tu es un moteur d'orientation professionnelle pour adolescents. " +
		"Tâche: " + TaskDescribe + ". " +
		"Réécris une courte description engageante, en français, au vouvoiement, en phrases complètes. " +
		`Réponds en JSON: {"description":"<texte>"}.`
	user := fmt.Sprintf("Type: %s\nIdentifiant: %s\nNom: %s\nTexte de base: %s", kind, id, name, baseText)
	return system, user
}

func sectorDisplayName(id string) string {
	if s, ok := catalog.SectorByID(id); ok {
		return s.Name
	}
	return id
}
