package phase

import "strings"

// Phase is a construction-sequence category. Phases are totally ordered
// by declaration: the position in the table below is both the build
// order and the keyword-matching priority.
type Phase string

const (
	Planning         Phase = "planning"
	Permits          Phase = "permits"
	Demolition       Phase = "demolition"
	SitePrep         Phase = "site_prep"
	Excavation       Phase = "excavation"
	Foundation       Phase = "foundation"
	Framing          Phase = "framing"
	Roofing          Phase = "roofing"
	WindowsDoors     Phase = "windows_doors"
	Siding           Phase = "siding"
	PlumbingRough    Phase = "plumbing_rough"
	ElectricalRough  Phase = "electrical_rough"
	HVACRough        Phase = "hvac_rough"
	Insulation       Phase = "insulation"
	Drywall          Phase = "drywall"
	Tile             Phase = "tile"
	Cabinets         Phase = "cabinets"
	Countertops      Phase = "countertops"
	Flooring         Phase = "flooring"
	Trim             Phase = "trim"
	Painting         Phase = "painting"
	PlumbingFinish   Phase = "plumbing_finish"
	ElectricalFinish Phase = "electrical_finish"
	HVACFinish       Phase = "hvac_finish"
	Appliances       Phase = "appliances"
	Landscaping      Phase = "landscaping"
	Cleanup          Phase = "cleanup"
	FinalInspection  Phase = "final_inspection"
)

type phaseDef struct {
	phase    Phase
	keywords []string
}

// phaseTable drives classification. A description is assigned to the
// FIRST phase in this table with a matching keyword substring, so an
// item mentioning both framing and drywall lands in framing. Items
// matching nothing default to Planning.
var phaseTable = []phaseDef{
	{Planning, []string{"blueprint", "design", "drawing", "consult", "plan"}},
	{Permits, []string{"permit", "zoning", "approval"}},
	{Demolition, []string{"demolition", "demo", "tear out", "tear-out", "remove existing", "gut job"}},
	{SitePrep, []string{"site prep", "grading", "clearing", "silt fence"}},
	{Excavation, []string{"excavat", "trench", "earthwork", "backfill"}},
	{Foundation, []string{"foundation", "footing", "concrete", "slab", "pour", "rebar", "cement"}},
	{Framing, []string{"fram", "stud", "joist", "truss", "beam", "header", "sheathing", "subfloor"}},
	{Roofing, []string{"roof", "shingle", "underlayment", "flashing", "gutter"}},
	{WindowsDoors, []string{"window", "exterior door", "entry door", "skylight"}},
	{Siding, []string{"siding", "stucco", "brick veneer", "exterior trim", "soffit", "fascia"}},
	{PlumbingRough, []string{"plumbing rough", "rough plumbing", "rough-in plumbing", "plumbing rough-in", "water line", "supply line", "drain", "sewer"}},
	{ElectricalRough, []string{"electrical rough", "rough electrical", "rough-in electrical", "electrical rough-in", "wiring", "circuit", "panel", "conduit"}},
	{HVACRough, []string{"hvac", "ductwork", "duct", "furnace", "air handler", "heat pump"}},
	{Insulation, []string{"insulation", "insulate", "batt", "blown-in", "vapor barrier", "air seal"}},
	{Drywall, []string{"drywall", "sheetrock", "gypsum", "taping", "texture"}},
	{Tile, []string{"tile", "backsplash", "grout", "shower pan"}},
	{Cabinets, []string{"cabinet", "vanity", "built-in"}},
	{Countertops, []string{"countertop", "counter top", "granite", "quartz"}},
	{Flooring, []string{"flooring", "hardwood", "vinyl", "carpet", "laminate", "refinish floor"}},
	{Trim, []string{"trim", "baseboard", "casing", "crown molding", "wainscot", "millwork"}},
	{Painting, []string{"paint", "primer", "stain", "caulk"}},
	{PlumbingFinish, []string{"faucet", "toilet", "sink", "shower head", "garbage disposal", "plumbing fixture"}},
	{ElectricalFinish, []string{"light fixture", "outlet", "switch", "receptacle", "ceiling fan"}},
	{HVACFinish, []string{"register", "grille", "thermostat", "condenser"}},
	{Appliances, []string{"appliance", "dishwasher", "refrigerator", "microwave", "oven", "range hood"}},
	{Landscaping, []string{"landscap", "sod", "mulch", "planting", "irrigation", "fence"}},
	{Cleanup, []string{"cleanup", "clean up", "clean-up", "debris", "haul", "dumpster", "final clean"}},
	{FinalInspection, []string{"final inspection", "punch list", "punch-list", "walkthrough", "walk-through", "certificate of occupancy"}},
}

var phaseRank = func() map[Phase]int {
	ranks := make(map[Phase]int, len(phaseTable))
	for i, def := range phaseTable {
		ranks[def.phase] = i
	}
	return ranks
}()

// Order returns the build-order rank of the phase. Unknown phases rank
// alongside Planning.
func (p Phase) Order() int {
	if rank, ok := phaseRank[p]; ok {
		return rank
	}
	return 0
}

// All returns every phase in build order.
func All() []Phase {
	phases := make([]Phase, len(phaseTable))
	for i, def := range phaseTable {
		phases[i] = def.phase
	}
	return phases
}

// Classify assigns a description to a phase by keyword match, first
// matching phase in build order wins. Unmatched descriptions default to
// Planning.
func Classify(description string) Phase {
	desc := strings.ToLower(description)
	for _, def := range phaseTable {
		for _, kw := range def.keywords {
			if strings.Contains(desc, kw) {
				return def.phase
			}
		}
	}
	return Planning
}
