// Package catalog holds the fixed, versioned category catalogs: the sixteen
// professional sectors and the per-sector job clusters, with their axis
// weights and discriminating vocabulary. Catalogs are compiled data, not
// runtime state; every category id returned to a client must be a member of
// the catalog matching its kind.
package catalog

import "github.com/avenira/orient-api/internal/domain"

// Orientation tags how a sector relates to the human-vs-system signal of the
// domain questions.
type Orientation string

// Orientation values.
const (
	OrientationHuman  Orientation = "human"
	OrientationSystem Orientation = "system"
	OrientationMixed  Orientation = "mixed"
)

// Sector is one of the sixteen top-level professional domains.
type Sector struct {
	ID          string
	Name        string
	Description string
	Orientation Orientation
	// Tech marks sectors boosted by explicit tech signals only.
	Tech    bool
	Weights domain.AxisWeights
	// Vocabulary lists discriminating keywords, lowercased. The refinement
	// gate uses them to check that micro questions actually separate a pair.
	Vocabulary []string
}

// Sectors is the full sector catalog, in stable order.
var Sectors = []Sector{
	{
		ID:          "ingenierie_tech",
		Name:        "Ingénierie & Tech",
		Description: "Concevoir, construire et améliorer des systèmes techniques. Du logiciel à la robotique, ce secteur s'adresse à celles et ceux qui aiment comprendre comment les choses fonctionnent.",
		Orientation: OrientationSystem,
		Tech:        true,
		Weights:     domain.AxisWeights{domain.AxisAnalytic: 1.2, domain.AxisStructure: 0.8, domain.AxisOperational: 0.4, domain.AxisSocial: -0.3},
		Vocabulary:  []string{"code", "logiciel", "robot", "machine", "ingénieur", "technique", "électronique", "programmer", "système embarqué", "prototype"},
	},
	{
		ID:          "data_ia",
		Name:        "Data & Intelligence Artificielle",
		Description: "Donner du sens aux données. Analyser, modéliser et prédire pour éclairer les décisions, avec une forte dose de mathématiques et de curiosité.",
		Orientation: OrientationSystem,
		Tech:        true,
		Weights:     domain.AxisWeights{domain.AxisAnalytic: 1.4, domain.AxisStructure: 0.7, domain.AxisCreative: 0.2, domain.AxisOperational: -0.2},
		Vocabulary:  []string{"données", "data", "statistique", "algorithme", "intelligence artificielle", "modèle", "analyse", "prédiction", "graphique"},
	},
	{
		ID:          "sante_bien_etre",
		Name:        "Santé & Bien-être",
		Description: "Prendre soin des autres, du corps et de l'esprit. Soigner, accompagner, prévenir : des métiers où la relation humaine est au centre.",
		Orientation: OrientationHuman,
		Weights:     domain.AxisWeights{domain.AxisSocial: 1.3, domain.AxisOperational: 0.5, domain.AxisStructure: 0.4, domain.AxisRisk: -0.3},
		Vocabulary:  []string{"soin", "patient", "santé", "corps", "bien-être", "soigner", "hôpital", "accompagner", "écoute", "prévention"},
	},
	{
		ID:          "sport_evenementiel",
		Name:        "Sport & Événementiel",
		Description: "Faire vivre des moments collectifs. Entraîner, organiser des compétitions et des événements, transmettre l'énergie du terrain.",
		Orientation: OrientationHuman,
		Weights:     domain.AxisWeights{domain.AxisOperational: 1.1, domain.AxisSocial: 0.9, domain.AxisRisk: 0.5, domain.AxisAnalytic: -0.4},
		Vocabulary:  []string{"sport", "entraînement", "compétition", "événement", "équipe", "terrain", "match", "physique", "animer", "coacher"},
	},
	{
		ID:          "creation_design",
		Name:        "Création & Design",
		Description: "Imaginer des formes, des images et des expériences. Du graphisme au design d'objet, un secteur pour les esprits visuels et inventifs.",
		Orientation: OrientationMixed,
		Weights:     domain.AxisWeights{domain.AxisCreative: 1.4, domain.AxisAnalytic: -0.2, domain.AxisStructure: -0.3, domain.AxisOperational: 0.3},
		Vocabulary:  []string{"dessin", "créer", "graphisme", "esthétique", "visuel", "maquette", "couleur", "imaginer", "style", "œuvre"},
	},
	{
		ID:          "business_entrepreneuriat",
		Name:        "Business & Entrepreneuriat",
		Description: "Monter des projets, convaincre et développer. Créer son activité ou faire grandir celle des autres, avec le goût du risque et de la décision.",
		Orientation: OrientationMixed,
		Weights:     domain.AxisWeights{domain.AxisRisk: 1.2, domain.AxisSocial: 0.6, domain.AxisAnalytic: 0.4, domain.AxisStructure: -0.2},
		Vocabulary:  []string{"entreprise", "projet", "lancer", "marché", "client", "vendre", "startup", "négocier", "investir", "business"},
	},
	{
		ID:          "commerce_vente",
		Name:        "Commerce & Vente",
		Description: "Le contact client avant tout. Conseiller, vendre et fidéliser, en magasin comme à distance.",
		Orientation: OrientationHuman,
		Weights:     domain.AxisWeights{domain.AxisSocial: 1.1, domain.AxisOperational: 0.6, domain.AxisRisk: 0.4, domain.AxisCreative: -0.2},
		Vocabulary:  []string{"vente", "client", "conseiller", "magasin", "commerce", "relation", "argumenter", "fidéliser", "boutique"},
	},
	{
		ID:          "communication_media",
		Name:        "Communication & Médias",
		Description: "Raconter, informer, faire passer des messages. Journalisme, réseaux sociaux, relations presse : des métiers de la parole et de l'image.",
		Orientation: OrientationMixed,
		Weights:     domain.AxisWeights{domain.AxisCreative: 0.9, domain.AxisSocial: 0.8, domain.AxisAnalytic: 0.2, domain.AxisStructure: -0.2},
		Vocabulary:  []string{"communication", "média", "journalisme", "réseaux sociaux", "écrire", "vidéo", "message", "campagne", "interview"},
	},
	{
		ID:          "droit_justice",
		Name:        "Droit & Justice",
		Description: "Défendre, arbitrer et encadrer. Les métiers du droit demandent rigueur, argumentation et sens de l'équité.",
		Orientation: OrientationHuman,
		Weights:     domain.AxisWeights{domain.AxisAnalytic: 0.9, domain.AxisStructure: 1.0, domain.AxisSocial: 0.5, domain.AxisRisk: -0.4},
		Vocabulary:  []string{"droit", "loi", "justice", "avocat", "défendre", "tribunal", "contrat", "plaidoyer", "règle"},
	},
	{
		ID:          "education_transmission",
		Name:        "Éducation & Transmission",
		Description: "Apprendre aux autres et les faire grandir. Enseigner, former, animer : transmettre un savoir ou une passion.",
		Orientation: OrientationHuman,
		Weights:     domain.AxisWeights{domain.AxisSocial: 1.2, domain.AxisStructure: 0.6, domain.AxisCreative: 0.3, domain.AxisRisk: -0.3},
		Vocabulary:  []string{"enseigner", "apprendre", "élève", "former", "pédagogie", "expliquer", "école", "transmettre", "atelier"},
	},
	{
		ID:          "environnement_nature",
		Name:        "Environnement & Nature",
		Description: "Travailler avec le vivant et pour la planète. Protéger les écosystèmes, cultiver, gérer les ressources naturelles.",
		Orientation: OrientationSystem,
		Weights:     domain.AxisWeights{domain.AxisOperational: 0.9, domain.AxisAnalytic: 0.5, domain.AxisStructure: 0.3, domain.AxisSocial: 0.2},
		Vocabulary:  []string{"nature", "environnement", "climat", "animaux", "plante", "écologie", "forêt", "agriculture", "biodiversité"},
	},
	{
		ID:          "artisanat_metiers_manuels",
		Name:        "Artisanat & Métiers manuels",
		Description: "Fabriquer de ses mains. Bois, métal, cuir, cuisine : des savoir-faire concrets où le geste compte autant que l'idée.",
		Orientation: OrientationSystem,
		Weights:     domain.AxisWeights{domain.AxisOperational: 1.3, domain.AxisCreative: 0.6, domain.AxisAnalytic: -0.3, domain.AxisSocial: -0.2},
		Vocabulary:  []string{"fabriquer", "atelier", "manuel", "bois", "matière", "outil", "réparer", "construire", "artisan", "geste"},
	},
	{
		ID:          "finance_gestion",
		Name:        "Finance & Gestion",
		Description: "Piloter les chiffres. Comptabilité, audit, gestion de budget : la précision au service des organisations.",
		Orientation: OrientationSystem,
		Weights:     domain.AxisWeights{domain.AxisAnalytic: 1.1, domain.AxisStructure: 1.0, domain.AxisCreative: -0.4, domain.AxisRisk: -0.2},
		Vocabulary:  []string{"finance", "budget", "comptabilité", "chiffres", "audit", "banque", "gestion", "investissement", "bilan"},
	},
	{
		ID:          "hotellerie_restauration_tourisme",
		Name:        "Hôtellerie, Restauration & Tourisme",
		Description: "Accueillir et faire voyager. Cuisine, hôtellerie, guides et agences : l'art de recevoir et de faire découvrir.",
		Orientation: OrientationHuman,
		Weights:     domain.AxisWeights{domain.AxisSocial: 0.9, domain.AxisOperational: 0.9, domain.AxisCreative: 0.3, domain.AxisAnalytic: -0.4},
		Vocabulary:  []string{"cuisine", "accueil", "voyage", "hôtel", "restaurant", "tourisme", "service", "découverte", "client"},
	},
	{
		ID:          "social_humanitaire",
		Name:        "Social & Humanitaire",
		Description: "Aider celles et ceux qui en ont besoin. Accompagnement social, solidarité internationale, médiation : l'humain d'abord.",
		Orientation: OrientationHuman,
		Weights:     domain.AxisWeights{domain.AxisSocial: 1.4, domain.AxisRisk: 0.3, domain.AxisOperational: 0.3, domain.AxisAnalytic: -0.3},
		Vocabulary:  []string{"aider", "solidarité", "accompagnement", "association", "humanitaire", "écoute", "social", "entraide", "personnes"},
	},
	{
		ID:          "sciences_recherche",
		Name:        "Sciences & Recherche",
		Description: "Comprendre le monde par l'expérience et la preuve. Biologie, physique, chimie : chercher, tester, publier.",
		Orientation: OrientationSystem,
		Weights:     domain.AxisWeights{domain.AxisAnalytic: 1.3, domain.AxisStructure: 0.6, domain.AxisCreative: 0.4, domain.AxisSocial: -0.3},
		Vocabulary:  []string{"recherche", "expérience", "laboratoire", "science", "hypothèse", "biologie", "physique", "chimie", "observer"},
	},
}

// SectorByID returns the sector for a catalog id; the boolean is false for
// ids outside the catalog.
func SectorByID(id string) (Sector, bool) {
	for _, s := range Sectors {
		if s.ID == id {
			return s, true
		}
	}
	return Sector{}, false
}

// SectorIDs returns all sector ids in catalog order.
func SectorIDs() []string {
	ids := make([]string, len(Sectors))
	for i, s := range Sectors {
		ids[i] = s.ID
	}
	return ids
}
