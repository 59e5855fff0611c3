package resolve

import "github.com/renova-inc/renova-engine/pkg/models"

// corePattern is the compact authoring form for built-in rules. ID and
// Source are derived in CorePatterns.
type corePattern struct {
	name      string
	pattern   string
	matchType string
	category  string
	mapsTo    string
}

// coreServicePatterns map problem vocabulary to the trade that fixes it.
// Service-keyword evidence ranks above bare profession names because it is
// more specific about the work needed.
var coreServicePatterns = []corePattern{
	{"Plumbing Problems", `plumbing|leak|leaky|leaking|pipe|drain|clog|tap|faucet|toilet|flush|water heater`, models.MatchTypeRegex, models.CategoryService, "Plumber"},
	{"Electrical Problems", `electric|elec\b|wiring|rewir|socket|outlet|power trip|fuse|circuit breaker|light switch`, models.MatchTypeRegex, models.CategoryService, "Electrician"},
	{"Painting Work", `paint|repaint|wallpaper|wall finish`, models.MatchTypeRegex, models.CategoryService, "Painter"},
	{"Carpentry Work", `carpentr|cabinet|wardrobe|shelv|shelf|woodwork|furniture repair`, models.MatchTypeRegex, models.CategoryService, "Carpenter"},
	{"Flooring Work", `floor|tiling|tile (laying|work)|vinyl|laminate|parquet|grout`, models.MatchTypeRegex, models.CategoryService, "Flooring Specialist"},
	{"Air Conditioning", `air ?con|aircon|a\/c|hvac|split unit|condenser`, models.MatchTypeRegex, models.CategoryService, "Air Conditioning Technician"},
	{"Waterproofing", `waterproof|seepage|damp|mould|mold|moisture`, models.MatchTypeRegex, models.CategoryService, "Waterproofing Specialist"},
	{"Locksmith Work", `locked out|change.{0,10}lock|door lock|key stuck`, models.MatchTypeRegex, models.CategoryService, "Locksmith"},
	{"Pest Problems", `pest|termite|cockroach|bed ?bug|rodent`, models.MatchTypeRegex, models.CategoryService, "Pest Control"},
	{"Demolition Work", `demolish|demolition|hacking|knock down wall`, models.MatchTypeRegex, models.CategoryService, "Demolition Contractor"},
	{"Full Renovation", `renovat|refurbish|remodel|makeover|fit ?out`, models.MatchTypeRegex, models.CategoryService, "Renovation Contractor"},
	{"Interior Design", `interior design|space planning|3d render`, models.MatchTypeRegex, models.CategoryService, "Interior Designer"},
	{"Glass and Windows", `window|glazing|glass panel|mirror install`, models.MatchTypeRegex, models.CategoryService, "Glazier"},
	{"Gas Work", `gas stove|gas pipe|gas leak|town gas`, models.MatchTypeRegex, models.CategoryService, "Gas Technician"},
	{"Post-Renovation Cleaning", `post[- ]?renovation clean|deep clean|move[- ]?out clean`, models.MatchTypeRegex, models.CategoryService, "Cleaning Service"},
}

// coreTradePatterns match professions named directly in the input.
var coreTradePatterns = []corePattern{
	{"Plumber", "plumber", models.MatchTypeContains, models.CategoryTrade, "Plumber"},
	{"Electrician", "electrician", models.MatchTypeContains, models.CategoryTrade, "Electrician"},
	{"Painter", "painter", models.MatchTypeContains, models.CategoryTrade, "Painter"},
	{"Carpenter", "carpenter", models.MatchTypeContains, models.CategoryTrade, "Carpenter"},
	{"Tiler", "tiler", models.MatchTypeContains, models.CategoryTrade, "Flooring Specialist"},
	{"Locksmith", "locksmith", models.MatchTypeContains, models.CategoryTrade, "Locksmith"},
	{"Handyman", "handyman", models.MatchTypeContains, models.CategoryTrade, "Handyman"},
	{"Interior Designer", "designer", models.MatchTypeContains, models.CategoryTrade, "Interior Designer"},
	{"Renovation Contractor", "contractor", models.MatchTypeContains, models.CategoryTrade, "Renovation Contractor"},
	{"Cleaner", "cleaner", models.MatchTypeContains, models.CategoryTrade, "Cleaning Service"},
}

// coreLocationPatterns cover colloquial region names and abbreviations the
// gazetteer's canonical names would miss. MapsTo is the canonical name
// looked up in the gazetteer at whatever level it exists.
var coreLocationPatterns = []corePattern{
	{"Hong Kong Island", `hong kong island|hk island|\bhki\b`, models.MatchTypeRegex, models.CategoryLocation, "Hong Kong Island"},
	{"New Territories", `new territories|\bn\.?t\.?\b`, models.MatchTypeRegex, models.CategoryLocation, "New Territories"},
	{"Kowloon Side", `kowloon|\bkln\b`, models.MatchTypeRegex, models.CategoryLocation, "Kowloon"},
	{"Tsim Sha Tsui", `tsim sha tsui|\btst\b`, models.MatchTypeRegex, models.CategoryLocation, "Tsim Sha Tsui"},
	{"Causeway Bay", `causeway bay|\bcwb\b`, models.MatchTypeRegex, models.CategoryLocation, "Causeway Bay"},
	{"Mong Kok", `mong ?kok|\bmk\b`, models.MatchTypeRegex, models.CategoryLocation, "Mong Kok"},
	{"Tseung Kwan O", `tseung kwan o|\btko\b`, models.MatchTypeRegex, models.CategoryLocation, "Tseung Kwan O"},
	{"Sheung Wan", `sheung wan`, models.MatchTypeContains, models.CategoryLocation, "Sheung Wan"},
}

// coreIntentPatterns classify the kind of work being asked for.
var coreIntentPatterns = []corePattern{
	{"Renovation Intent", `renovat|refurbish|remodel|makeover|redo my|redesign`, models.MatchTypeRegex, models.CategoryIntent, models.WorkIntentRenovation},
	{"Repair Intent", `fix|repair|broken|not working|faulty|damaged|burst|cracked`, models.MatchTypeRegex, models.CategoryIntent, models.WorkIntentRepair},
	{"Upgrade Intent", `upgrade|improve|replace|install new|modernis|moderniz|swap out`, models.MatchTypeRegex, models.CategoryIntent, models.WorkIntentUpgrade},
	{"Maintenance Intent", `maintain|maintenance|servicing|service my|check[- ]?up|inspection|annual`, models.MatchTypeRegex, models.CategoryIntent, models.WorkIntentMaintenance},
}

// coreSupplyPatterns classify reseller-oriented product mentions; consumed
// only by the project pre-fill path.
var coreSupplyPatterns = []corePattern{
	{"Tiles", `tile|ceramic|porcelain|mosaic`, models.MatchTypeRegex, models.CategorySupply, "Tiles"},
	{"Paint and Coatings", `paint|primer|varnish|lacquer`, models.MatchTypeRegex, models.CategorySupply, "Paint & Coatings"},
	{"Lighting", `light|lamp|\bled\b|chandelier`, models.MatchTypeRegex, models.CategorySupply, "Lighting"},
	{"Sanitary Ware", `sink|basin|toilet|bathtub|shower head|tap|faucet`, models.MatchTypeRegex, models.CategorySupply, "Sanitary Ware"},
	{"Kitchen and Cabinets", `cabinet|countertop|kitchen top|worktop`, models.MatchTypeRegex, models.CategorySupply, "Kitchen & Cabinets"},
	{"Doors and Windows", `door|window frame|gate|grille`, models.MatchTypeRegex, models.CategorySupply, "Doors & Windows"},
	{"Flooring Materials", `vinyl|laminate|parquet|hardwood|skirting`, models.MatchTypeRegex, models.CategorySupply, "Flooring Materials"},
}

// CorePatterns returns the fixed rule set shipped with the system. The
// slice order (service, trade, location, intent, supply) defines the
// iteration order used for tie-breaking; callers must not mutate entries.
func CorePatterns() []models.Pattern {
	groups := [][]corePattern{
		coreServicePatterns,
		coreTradePatterns,
		coreLocationPatterns,
		coreIntentPatterns,
		coreSupplyPatterns,
	}
	var out []models.Pattern
	for _, group := range groups {
		for _, c := range group {
			out = append(out, models.Pattern{
				ID:        models.CorePatternID(c.category, c.name),
				Name:      c.name,
				Pattern:   c.pattern,
				MatchType: c.matchType,
				Category:  c.category,
				MapsTo:    c.mapsTo,
				Enabled:   true,
				Source:    models.PatternSourceCore,
			})
		}
	}
	return out
}
