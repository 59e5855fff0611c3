package services

import "github.com/renova-inc/renova-engine/pkg/models"

// seedTrade is the compact authoring form for the built-in trade list.
type seedTrade struct {
	name        string
	category    string
	description string
	aliases     []string
	featured    bool
	sortOrder   int
}

var seedTrades = []seedTrade{
	{"Plumber", models.TradeCategoryContractor, "Water supply, drainage and bathroom fittings", []string{"plumbing", "pipe fitter"}, true, 10},
	{"Electrician", models.TradeCategoryContractor, "Wiring, sockets, lighting and fuse boards", []string{"electrical", "sparky"}, true, 20},
	{"Painter", models.TradeCategoryContractor, "Interior and exterior painting and wallpapering", []string{"painting", "decorator"}, true, 30},
	{"Carpenter", models.TradeCategoryContractor, "Custom furniture, cabinets and woodwork", []string{"carpentry", "joiner"}, true, 40},
	{"Flooring Specialist", models.TradeCategoryContractor, "Tiling, vinyl, laminate and parquet flooring", []string{"tiler", "floor layer"}, false, 50},
	{"Air Conditioning Technician", models.TradeCategoryContractor, "Split and window unit installation and servicing", []string{"aircon", "hvac"}, true, 60},
	{"Waterproofing Specialist", models.TradeCategoryContractor, "Seepage, damp and external wall waterproofing", []string{"waterproofing"}, false, 70},
	{"Locksmith", models.TradeCategoryContractor, "Locks, keys and door security", nil, false, 80},
	{"Pest Control", models.TradeCategoryCompany, "Termite, cockroach and rodent treatment", []string{"exterminator"}, false, 90},
	{"Demolition Contractor", models.TradeCategoryCompany, "Hacking, demolition and site clearance", nil, false, 100},
	{"Renovation Contractor", models.TradeCategoryCompany, "Full-flat renovation and fit-out", []string{"renovation company", "fit-out"}, true, 110},
	{"Interior Designer", models.TradeCategoryCompany, "Space planning, design and project management", []string{"designer"}, true, 120},
	{"Glazier", models.TradeCategoryContractor, "Windows, glass panels and mirrors", []string{"glass worker"}, false, 130},
	{"Gas Technician", models.TradeCategoryContractor, "Town gas appliances and pipework", nil, false, 140},
	{"Cleaning Service", models.TradeCategoryCompany, "Post-renovation and deep cleaning", []string{"cleaner"}, false, 150},
	{"Handyman", models.TradeCategoryGeneral, "Small repairs and odd jobs", []string{"odd jobs"}, false, 160},
	{"Building Materials Supplier", models.TradeCategoryReseller, "Tiles, flooring, doors and general materials", nil, false, 200},
	{"Sanitary Ware Supplier", models.TradeCategoryReseller, "Sinks, basins, toilets and bathroom fittings", nil, false, 210},
	{"Lighting Supplier", models.TradeCategoryReseller, "Lamps, LED fittings and chandeliers", nil, false, 220},
}

// seedServiceMappings are the keyword-to-trade edges loaded at startup.
// Keys are matched with contains semantics against lower-cased input.
var seedServiceMappings = map[string]string{
	"water leak":        "Plumber",
	"burst pipe":        "Plumber",
	"clogged drain":     "Plumber",
	"toilet flush":      "Plumber",
	"water heater":      "Plumber",
	"power trip":        "Electrician",
	"light fitting":     "Electrician",
	"ceiling fan":       "Electrician",
	"power socket":      "Electrician",
	"wall painting":     "Painter",
	"peeling paint":     "Painter",
	"built-in wardrobe": "Carpenter",
	"kitchen cabinet":   "Carpenter",
	"floor tiling":      "Flooring Specialist",
	"cracked tile":      "Flooring Specialist",
	"aircon cleaning":   "Air Conditioning Technician",
	"aircon not cold":   "Air Conditioning Technician",
	"ceiling seepage":   "Waterproofing Specialist",
	"locked out":        "Locksmith",
	"termite":           "Pest Control",
	"hacking wall":      "Demolition Contractor",
	"whole flat":        "Renovation Contractor",
	"window repair":     "Glazier",
	"gas stove":         "Gas Technician",
	"post renovation cleaning": "Cleaning Service",
}
