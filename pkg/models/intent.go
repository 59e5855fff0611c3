package models

// Navigation actions produced by the intent router.
const (
	ActionFindProfessional = "find-professional"
	ActionJoin             = "join"
	ActionManageProjects   = "manage-projects"
	ActionUnknown          = "unknown"
)

// Routes the navigation layer maps actions to.
const (
	RouteHome          = "/"
	RouteJoin          = "/join"
	RouteProjects      = "/projects"
	RouteProfessionals = "/professionals"
)

// Work intents extracted from project descriptions and search queries.
const (
	WorkIntentRenovation  = "renovation"
	WorkIntentRepair      = "repair"
	WorkIntentUpgrade     = "upgrade"
	WorkIntentMaintenance = "maintenance"
)

// IntentMetadata carries the evidence behind a routing decision.
type IntentMetadata struct {
	ProfessionType string   `json:"profession_type,omitempty"`
	Location       string   `json:"location,omitempty"`
	Description    string   `json:"description,omitempty"`
	TradesRequired []string `json:"trades_required,omitempty"`
	DisplayText    string   `json:"display_text"`
}

// IntentResult is the resolver's final output, produced fresh per input
// string and never persisted.
type IntentResult struct {
	Action     string         `json:"action"`
	Route      string         `json:"route"`
	Confidence float64        `json:"confidence"`
	Metadata   IntentMetadata `json:"metadata"`
}

// ProjectPrefill seeds the new-project form from a free-text description.
// It reuses the resolution pipeline minus the intent router.
type ProjectPrefill struct {
	Title            string             `json:"title"`
	Description      string             `json:"description"`
	WorkIntent       string             `json:"work_intent,omitempty"`
	TradesRequired   []string           `json:"trades_required,omitempty"`
	Location         *CanonicalLocation `json:"location,omitempty"`
	SupplyCategories []string           `json:"supply_categories,omitempty"`
	Confidence       float64            `json:"confidence"`
}
