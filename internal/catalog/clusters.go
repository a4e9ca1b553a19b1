package catalog

import "github.com/avenira/orient-api/internal/domain"

// Job is one concrete job proposal inside a cluster.
type Job struct {
	ID   string
	Name string
}

// Cluster groups related jobs used as an intermediate scoring unit inside a
// sector.
type Cluster struct {
	ID       string
	SectorID string
	Label    string
	Weights  domain.AxisWeights
	Jobs     []Job
}

// overusedJobs lists catch-all job ids that crowd out specific proposals.
// They are excluded from a candidate slate unless their own cluster ranks in
// the current top-K.
var overusedJobs = map[string]bool{
	"designer":       true,
	"chef_de_projet": true,
	"consultant":     true,
	"charge_de_com":  true,
}

// Clusters is the full job-cluster catalog. Every sector owns at least two
// clusters so the job flow always has a real candidate slate.
var Clusters = []Cluster{
	// ingenierie_tech
	{ID: "dev_logiciel", SectorID: "ingenierie_tech", Label: "Développement logiciel",
		Weights: domain.AxisWeights{domain.AxisAnalytic: 1.2, domain.AxisStructure: 0.8, domain.AxisCreative: 0.3},
		Jobs:    []Job{{"developpeur_web", "Développeur·se web"}, {"developpeur_mobile", "Développeur·se mobile"}, {"devops", "Ingénieur·e DevOps"}}},
	{ID: "systemes_robotique", SectorID: "ingenierie_tech", Label: "Systèmes & robotique",
		Weights: domain.AxisWeights{domain.AxisAnalytic: 0.9, domain.AxisOperational: 1.0, domain.AxisStructure: 0.5},
		Jobs:    []Job{{"ingenieur_robotique", "Ingénieur·e robotique"}, {"technicien_maintenance", "Technicien·ne de maintenance"}, {"ingenieur_embarque", "Ingénieur·e systèmes embarqués"}}},
	{ID: "cybersecurite", SectorID: "ingenierie_tech", Label: "Cybersécurité",
		Weights: domain.AxisWeights{domain.AxisAnalytic: 1.1, domain.AxisRisk: 0.6, domain.AxisStructure: 0.7},
		Jobs:    []Job{{"analyste_securite", "Analyste sécurité"}, {"pentester", "Pentester"}}},

	// data_ia
	{ID: "analyse_donnees", SectorID: "data_ia", Label: "Analyse de données",
		Weights: domain.AxisWeights{domain.AxisAnalytic: 1.3, domain.AxisStructure: 0.6},
		Jobs:    []Job{{"data_analyst", "Data analyst"}, {"charge_etudes", "Chargé·e d'études statistiques"}}},
	{ID: "ia_machine_learning", SectorID: "data_ia", Label: "IA & machine learning",
		Weights: domain.AxisWeights{domain.AxisAnalytic: 1.4, domain.AxisCreative: 0.4, domain.AxisStructure: 0.5},
		Jobs:    []Job{{"data_scientist", "Data scientist"}, {"ml_engineer", "Ingénieur·e machine learning"}}},

	// sante_bien_etre
	{ID: "soins_medicaux", SectorID: "sante_bien_etre", Label: "Soins médicaux",
		Weights: domain.AxisWeights{domain.AxisSocial: 1.2, domain.AxisStructure: 0.7, domain.AxisOperational: 0.5},
		Jobs:    []Job{{"infirmier", "Infirmier·ère"}, {"medecin_generaliste", "Médecin généraliste"}, {"aide_soignant", "Aide-soignant·e"}}},
	{ID: "reeducation_bien_etre", SectorID: "sante_bien_etre", Label: "Rééducation & bien-être",
		Weights: domain.AxisWeights{domain.AxisSocial: 1.0, domain.AxisOperational: 0.9},
		Jobs:    []Job{{"kinesitherapeute", "Kinésithérapeute"}, {"osteopathe", "Ostéopathe"}, {"sophrologue", "Sophrologue"}}},
	{ID: "psychologie", SectorID: "sante_bien_etre", Label: "Psychologie",
		Weights: domain.AxisWeights{domain.AxisSocial: 1.3, domain.AxisAnalytic: 0.6},
		Jobs:    []Job{{"psychologue", "Psychologue"}, {"psychomotricien", "Psychomotricien·ne"}}},

	// sport_evenementiel
	{ID: "encadrement_sportif", SectorID: "sport_evenementiel", Label: "Encadrement sportif",
		Weights: domain.AxisWeights{domain.AxisOperational: 1.1, domain.AxisSocial: 1.0, domain.AxisRisk: 0.4},
		Jobs:    []Job{{"coach_sportif", "Coach sportif·ve"}, {"educateur_sportif", "Éducateur·rice sportif·ve"}, {"preparateur_physique", "Préparateur·rice physique"}}},
	{ID: "organisation_evenements", SectorID: "sport_evenementiel", Label: "Organisation d'événements",
		Weights: domain.AxisWeights{domain.AxisOperational: 1.0, domain.AxisStructure: 0.6, domain.AxisSocial: 0.7},
		Jobs:    []Job{{"organisateur_evenements", "Organisateur·rice d'événements"}, {"regisseur", "Régisseur·se"}, {"chef_de_projet", "Chef·fe de projet événementiel"}}},

	// creation_design
	{ID: "design_graphique", SectorID: "creation_design", Label: "Design graphique",
		Weights: domain.AxisWeights{domain.AxisCreative: 1.4, domain.AxisStructure: 0.2},
		Jobs:    []Job{{"graphiste", "Graphiste"}, {"designer", "Designer"}, {"illustrateur", "Illustrateur·rice"}}},
	{ID: "design_produit", SectorID: "creation_design", Label: "Design produit & UX",
		Weights: domain.AxisWeights{domain.AxisCreative: 1.1, domain.AxisAnalytic: 0.5, domain.AxisSocial: 0.3},
		Jobs:    []Job{{"ux_designer", "UX designer"}, {"designer_produit", "Designer produit"}}},
	{ID: "audiovisuel", SectorID: "creation_design", Label: "Audiovisuel",
		Weights: domain.AxisWeights{domain.AxisCreative: 1.2, domain.AxisOperational: 0.5},
		Jobs:    []Job{{"monteur_video", "Monteur·se vidéo"}, {"photographe", "Photographe"}}},

	// business_entrepreneuriat
	{ID: "creation_entreprise", SectorID: "business_entrepreneuriat", Label: "Création d'entreprise",
		Weights: domain.AxisWeights{domain.AxisRisk: 1.3, domain.AxisCreative: 0.5, domain.AxisSocial: 0.5},
		Jobs:    []Job{{"entrepreneur", "Entrepreneur·se"}, {"fondateur_startup", "Fondateur·rice de startup"}}},
	{ID: "developpement_business", SectorID: "business_entrepreneuriat", Label: "Développement business",
		Weights: domain.AxisWeights{domain.AxisSocial: 0.9, domain.AxisRisk: 0.8, domain.AxisAnalytic: 0.5},
		Jobs:    []Job{{"business_developer", "Business developer"}, {"consultant", "Consultant·e"}, {"responsable_partenariats", "Responsable partenariats"}}},

	// commerce_vente
	{ID: "vente_conseil", SectorID: "commerce_vente", Label: "Vente & conseil",
		Weights: domain.AxisWeights{domain.AxisSocial: 1.2, domain.AxisOperational: 0.5},
		Jobs:    []Job{{"conseiller_vente", "Conseiller·ère de vente"}, {"commercial", "Commercial·e"}}},
	{ID: "distribution_retail", SectorID: "commerce_vente", Label: "Distribution & retail",
		Weights: domain.AxisWeights{domain.AxisOperational: 1.0, domain.AxisStructure: 0.6, domain.AxisSocial: 0.5},
		Jobs:    []Job{{"responsable_magasin", "Responsable de magasin"}, {"category_manager", "Category manager"}}},

	// communication_media
	{ID: "journalisme_contenu", SectorID: "communication_media", Label: "Journalisme & contenu",
		Weights: domain.AxisWeights{domain.AxisCreative: 0.9, domain.AxisAnalytic: 0.6, domain.AxisSocial: 0.5},
		Jobs:    []Job{{"journaliste", "Journaliste"}, {"redacteur", "Rédacteur·rice"}, {"podcasteur", "Podcasteur·se"}}},
	{ID: "communication_digitale", SectorID: "communication_media", Label: "Communication digitale",
		Weights: domain.AxisWeights{domain.AxisCreative: 0.8, domain.AxisSocial: 0.9},
		Jobs:    []Job{{"community_manager", "Community manager"}, {"charge_de_com", "Chargé·e de communication"}}},

	// droit_justice
	{ID: "metiers_du_droit", SectorID: "droit_justice", Label: "Métiers du droit",
		Weights: domain.AxisWeights{domain.AxisAnalytic: 1.0, domain.AxisStructure: 1.0, domain.AxisSocial: 0.4},
		Jobs:    []Job{{"avocat", "Avocat·e"}, {"juriste", "Juriste"}, {"notaire", "Notaire"}}},
	{ID: "securite_justice", SectorID: "droit_justice", Label: "Sécurité & justice",
		Weights: domain.AxisWeights{domain.AxisStructure: 0.9, domain.AxisOperational: 0.7, domain.AxisSocial: 0.5},
		Jobs:    []Job{{"magistrat", "Magistrat·e"}, {"officier_police", "Officier·ère de police"}}},

	// education_transmission
	{ID: "enseignement", SectorID: "education_transmission", Label: "Enseignement",
		Weights: domain.AxisWeights{domain.AxisSocial: 1.2, domain.AxisStructure: 0.7},
		Jobs:    []Job{{"professeur_ecoles", "Professeur·e des écoles"}, {"enseignant_secondaire", "Enseignant·e du secondaire"}}},
	{ID: "formation_animation", SectorID: "education_transmission", Label: "Formation & animation",
		Weights: domain.AxisWeights{domain.AxisSocial: 1.0, domain.AxisCreative: 0.5, domain.AxisOperational: 0.4},
		Jobs:    []Job{{"formateur", "Formateur·rice"}, {"animateur", "Animateur·rice"}, {"cpe", "Conseiller·ère principal·e d'éducation"}}},

	// environnement_nature
	{ID: "protection_environnement", SectorID: "environnement_nature", Label: "Protection de l'environnement",
		Weights: domain.AxisWeights{domain.AxisAnalytic: 0.7, domain.AxisOperational: 0.7, domain.AxisStructure: 0.4},
		Jobs:    []Job{{"charge_mission_environnement", "Chargé·e de mission environnement"}, {"garde_forestier", "Garde forestier·ère"}}},
	{ID: "agriculture_vivant", SectorID: "environnement_nature", Label: "Agriculture & vivant",
		Weights: domain.AxisWeights{domain.AxisOperational: 1.1, domain.AxisStructure: 0.3},
		Jobs:    []Job{{"agriculteur", "Agriculteur·rice"}, {"soigneur_animalier", "Soigneur·se animalier·ère"}, {"paysagiste", "Paysagiste"}}},

	// artisanat_metiers_manuels
	{ID: "artisanat_art", SectorID: "artisanat_metiers_manuels", Label: "Artisanat d'art",
		Weights: domain.AxisWeights{domain.AxisOperational: 1.1, domain.AxisCreative: 0.8},
		Jobs:    []Job{{"ebeniste", "Ébéniste"}, {"ceramiste", "Céramiste"}, {"bijoutier", "Bijoutier·ère"}}},
	{ID: "batiment_technique", SectorID: "artisanat_metiers_manuels", Label: "Bâtiment & technique",
		Weights: domain.AxisWeights{domain.AxisOperational: 1.2, domain.AxisStructure: 0.5},
		Jobs:    []Job{{"electricien", "Électricien·ne"}, {"menuisier", "Menuisier·ère"}, {"plombier", "Plombier·ère"}}},

	// finance_gestion
	{ID: "comptabilite_audit", SectorID: "finance_gestion", Label: "Comptabilité & audit",
		Weights: domain.AxisWeights{domain.AxisAnalytic: 1.0, domain.AxisStructure: 1.1},
		Jobs:    []Job{{"comptable", "Comptable"}, {"auditeur", "Auditeur·rice"}}},
	{ID: "finance_marche", SectorID: "finance_gestion", Label: "Finance de marché",
		Weights: domain.AxisWeights{domain.AxisAnalytic: 1.2, domain.AxisRisk: 0.6},
		Jobs:    []Job{{"analyste_financier", "Analyste financier·ère"}, {"gestionnaire_patrimoine", "Gestionnaire de patrimoine"}}},

	// hotellerie_restauration_tourisme
	{ID: "cuisine_restauration", SectorID: "hotellerie_restauration_tourisme", Label: "Cuisine & restauration",
		Weights: domain.AxisWeights{domain.AxisOperational: 1.2, domain.AxisCreative: 0.6},
		Jobs:    []Job{{"cuisinier", "Cuisinier·ère"}, {"patissier", "Pâtissier·ère"}, {"sommelier", "Sommelier·ère"}}},
	{ID: "accueil_tourisme", SectorID: "hotellerie_restauration_tourisme", Label: "Accueil & tourisme",
		Weights: domain.AxisWeights{domain.AxisSocial: 1.0, domain.AxisOperational: 0.6},
		Jobs:    []Job{{"receptionniste", "Réceptionniste"}, {"guide_touristique", "Guide touristique"}}},

	// social_humanitaire
	{ID: "accompagnement_social", SectorID: "social_humanitaire", Label: "Accompagnement social",
		Weights: domain.AxisWeights{domain.AxisSocial: 1.3, domain.AxisStructure: 0.4},
		Jobs:    []Job{{"educateur_specialise", "Éducateur·rice spécialisé·e"}, {"assistant_social", "Assistant·e de service social"}}},
	{ID: "solidarite_internationale", SectorID: "social_humanitaire", Label: "Solidarité internationale",
		Weights: domain.AxisWeights{domain.AxisSocial: 1.1, domain.AxisRisk: 0.7},
		Jobs:    []Job{{"coordinateur_ong", "Coordinateur·rice ONG"}, {"logisticien_humanitaire", "Logisticien·ne humanitaire"}}},

	// sciences_recherche
	{ID: "recherche_fondamentale", SectorID: "sciences_recherche", Label: "Recherche fondamentale",
		Weights: domain.AxisWeights{domain.AxisAnalytic: 1.4, domain.AxisCreative: 0.4},
		Jobs:    []Job{{"chercheur", "Chercheur·se"}, {"enseignant_chercheur", "Enseignant·e-chercheur·se"}}},
	{ID: "sciences_appliquees", SectorID: "sciences_recherche", Label: "Sciences appliquées",
		Weights: domain.AxisWeights{domain.AxisAnalytic: 1.1, domain.AxisOperational: 0.6, domain.AxisStructure: 0.5},
		Jobs:    []Job{{"technicien_laboratoire", "Technicien·ne de laboratoire"}, {"ingenieur_etudes", "Ingénieur·e d'études"}}},
}

// ClustersForSector returns the clusters of one sector, in catalog order.
func ClustersForSector(sectorID string) []Cluster {
	var out []Cluster
	for _, c := range Clusters {
		if c.SectorID == sectorID {
			out = append(out, c)
		}
	}
	return out
}

// JobsForSector returns the full candidate job slate of a sector.
func JobsForSector(sectorID string) []Job {
	var out []Job
	seen := map[string]bool{}
	for _, c := range ClustersForSector(sectorID) {
		for _, j := range c.Jobs {
			if !seen[j.ID] {
				seen[j.ID] = true
				out = append(out, j)
			}
		}
	}
	return out
}

// ClusterByID resolves a cluster id across the whole catalog.
func ClusterByID(id string) (Cluster, bool) {
	for _, c := range Clusters {
		if c.ID == id {
			return c, true
		}
	}
	return Cluster{}, false
}

// JobByID resolves a job id across the whole catalog.
func JobByID(id string) (Job, bool) {
	for _, c := range Clusters {
		for _, j := range c.Jobs {
			if j.ID == id {
				return j, true
			}
		}
	}
	return Job{}, false
}

// IsOverusedJob reports whether a job id is a catch-all that should be
// excluded from slates unless its own cluster ranks in the current top-K.
func IsOverusedJob(id string) bool { return overusedJobs[id] }
