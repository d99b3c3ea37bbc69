// Package catalog holds the checklist reference data: the survey job
// types, their categories, and the keyword-tagged checklist items the
// analysis engine matches voice notes against.
//
// The catalog is read-only configuration. Callers obtain a snapshot
// once and pass it into analysis functions; nothing here is mutated
// after load.
package catalog

import (
	"fmt"
	"sort"

	"github.com/conornaught0n/emg-energy-demo/internal/common"
	"github.com/conornaught0n/emg-energy-demo/internal/model"
)

// Catalog maps job type ids to their checklist definitions.
type Catalog map[string]model.JobType

// Builtin returns the default catalog of survey job types.
func Builtin() Catalog {
	c := make(Catalog, len(builtinJobTypes))
	for _, jt := range builtinJobTypes {
		c[jt.ID] = jt
	}
	return c
}

// Get looks up a job type by id. The boolean reports whether it exists.
func (c Catalog) Get(id string) (model.JobType, bool) {
	jt, ok := c[id]
	return jt, ok
}

// IDs returns the job type ids in sorted order.
func (c Catalog) IDs() []string {
	ids := make([]string, 0, len(c))
	for id := range c {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Validate checks every job type against the catalog invariants.
// A catalog that fails validation must not be handed to analysis:
// in particular an item without keywords would make the confidence
// denominator zero.
func (c Catalog) Validate() error {
	for _, id := range c.IDs() {
		jt := c[id]
		if jt.ID != id {
			return fmt.Errorf("catalog key %q does not match job type id %q", id, jt.ID)
		}
		if err := jt.Validate(); err != nil {
			return fmt.Errorf("%w: %v", common.ErrInvalidCatalog, err)
		}
	}
	return nil
}

var builtinJobTypes = []model.JobType{
	{
		ID:          "ber-assessment",
		Name:        "BER Rating Assessment",
		Description: "Full Building Energy Rating assessment per DEAP methodology",
		Icon:        "🏠",
		Checklist: []model.Category{
			{
				ID:   "building-fabric",
				Name: "Building Fabric",
				Items: []model.ChecklistItem{
					{ID: "walls-external", Name: "External wall construction and U-value", Keywords: []string{"wall", "cavity", "solid", "insulation", "brick", "block", "external"}},
					{ID: "walls-internal", Name: "Internal wall partitions", Keywords: []string{"internal wall", "partition", "dividing wall"}},
					{ID: "roof-construction", Name: "Roof construction and insulation", Keywords: []string{"roof", "attic", "loft", "insulation", "tiles", "felt", "sarking"}},
					{ID: "floor-construction", Name: "Floor construction and insulation", Keywords: []string{"floor", "ground floor", "suspended", "concrete", "timber"}},
					{ID: "windows-glazing", Name: "Windows and glazing type", Keywords: []string{"window", "glazing", "double", "single", "triple", "pvc", "timber"}},
					{ID: "doors-external", Name: "External doors and glazing", Keywords: []string{"door", "front door", "back door", "external door", "patio door"}},
					{ID: "thermal-bridging", Name: "Thermal bridging assessment", Keywords: []string{"thermal bridge", "cold bridge", "junction", "cold spot"}},
				},
			},
			{
				ID:   "heating-systems",
				Name: "Heating Systems",
				Items: []model.ChecklistItem{
					{ID: "boiler-type", Name: "Main heating boiler type and age", Keywords: []string{"boiler", "furnace", "heater", "condensing", "combi", "gas", "oil"}},
					{ID: "radiators", Name: "Radiator count and sizing", Keywords: []string{"radiator", "rad", "heating panel"}},
					{ID: "heating-controls", Name: "Heating controls and thermostats", Keywords: []string{"thermostat", "control", "timer", "programmer", "TRV"}},
					{ID: "hot-water", Name: "Hot water system and cylinder", Keywords: []string{"hot water", "cylinder", "immersion", "tank", "storage"}},
					{ID: "distribution", Name: "Heat distribution system", Keywords: []string{"pipes", "distribution", "pump", "zone", "circuit"}},
				},
			},
			{
				ID:   "ventilation",
				Name: "Ventilation",
				Items: []model.ChecklistItem{
					{ID: "ventilation-type", Name: "Ventilation system type", Keywords: []string{"ventilation", "air", "vent", "extract", "supply", "MVHR", "MEV"}},
					{ID: "air-tightness", Name: "Air tightness and draught proofing", Keywords: []string{"draught", "draft", "air tight", "sealed", "gaps", "leaks"}},
					{ID: "extractor-fans", Name: "Extractor fans and location", Keywords: []string{"extractor", "fan", "exhaust", "bathroom fan", "kitchen fan"}},
				},
			},
			{
				ID:   "renewable-energy",
				Name: "Renewable Energy",
				Items: []model.ChecklistItem{
					{ID: "solar-pv", Name: "Solar PV panels", Keywords: []string{"solar", "PV", "photovoltaic", "panels", "solar panels"}},
					{ID: "solar-thermal", Name: "Solar thermal panels", Keywords: []string{"solar thermal", "solar water", "evacuated tube"}},
					{ID: "heat-pump", Name: "Heat pump system", Keywords: []string{"heat pump", "air source", "ground source", "ASHP", "GSHP"}},
					{ID: "biomass", Name: "Biomass heating", Keywords: []string{"biomass", "wood", "pellet", "stove"}},
				},
			},
			{
				ID:   "property-details",
				Name: "Property Details",
				Items: []model.ChecklistItem{
					{ID: "property-type", Name: "Property type and age", Keywords: []string{"house", "apartment", "bungalow", "detached", "semi", "terraced", "built", "age"}},
					{ID: "floor-area", Name: "Floor area measurements", Keywords: []string{"area", "square metre", "sqm", "size", "dimensions"}},
					{ID: "room-layout", Name: "Room layout and usage", Keywords: []string{"bedroom", "living", "kitchen", "bathroom", "room", "layout"}},
					{ID: "orientation", Name: "Building orientation", Keywords: []string{"north", "south", "east", "west", "facing", "orientation"}},
				},
			},
		},
	},
	{
		ID:          "attic-insulation",
		Name:        "Attic Insulation Survey",
		Description: "Assessment of attic/roof space insulation compliance",
		Icon:        "🏚️",
		Checklist: []model.Category{
			{
				ID:   "attic-access",
				Name: "Access & Structure",
				Items: []model.ChecklistItem{
					{ID: "attic-access", Name: "Attic access location and type", Keywords: []string{"access", "hatch", "attic door", "loft hatch"}},
					{ID: "structural-integrity", Name: "Roof structure integrity", Keywords: []string{"structure", "timber", "truss", "rafter", "damage", "rot"}},
					{ID: "ventilation-attic", Name: "Attic ventilation", Keywords: []string{"ventilation", "vent", "soffit", "ridge", "air flow"}},
				},
			},
			{
				ID:   "insulation-current",
				Name: "Current Insulation",
				Items: []model.ChecklistItem{
					{ID: "insulation-type", Name: "Insulation material type", Keywords: []string{"insulation", "mineral wool", "fibreglass", "cellulose", "foam"}},
					{ID: "insulation-depth", Name: "Insulation depth/thickness", Keywords: []string{"depth", "thickness", "mm", "millimetre", "layer"}},
					{ID: "insulation-condition", Name: "Insulation condition", Keywords: []string{"condition", "compressed", "damaged", "wet", "mold", "settling"}},
					{ID: "coverage", Name: "Coverage and gaps", Keywords: []string{"coverage", "gap", "missing", "patchy", "complete"}},
				},
			},
			{
				ID:   "compliance",
				Name: "Compliance Assessment",
				Items: []model.ChecklistItem{
					{ID: "u-value", Name: "U-value calculation", Keywords: []string{"u-value", "thermal", "resistance", "R-value"}},
					{ID: "part-l", Name: "Part L compliance check", Keywords: []string{"part l", "compliance", "regulation", "building reg"}},
					{ID: "recommendations", Name: "Upgrade recommendations", Keywords: []string{"recommend", "upgrade", "improve", "add", "top up"}},
				},
			},
		},
	},
	{
		ID:          "heating-system",
		Name:        "Heating System Assessment",
		Description: "Comprehensive heating system efficiency and compliance assessment",
		Icon:        "🔥",
		Checklist: []model.Category{
			{
				ID:   "boiler-assessment",
				Name: "Boiler/Heat Source",
				Items: []model.ChecklistItem{
					{ID: "boiler-make-model", Name: "Boiler make, model and age", Keywords: []string{"boiler", "make", "model", "brand", "age", "installed"}},
					{ID: "boiler-type", Name: "Boiler type and fuel", Keywords: []string{"gas", "oil", "condensing", "combi", "system", "regular"}},
					{ID: "boiler-efficiency", Name: "Efficiency rating", Keywords: []string{"efficiency", "rating", "SEDBUK", "percentage"}},
					{ID: "boiler-condition", Name: "Physical condition", Keywords: []string{"condition", "rust", "corrosion", "leaks", "noise"}},
					{ID: "servicing", Name: "Service history", Keywords: []string{"service", "maintenance", "serviced", "last service"}},
				},
			},
			{
				ID:   "distribution",
				Name: "Distribution System",
				Items: []model.ChecklistItem{
					{ID: "radiators-count", Name: "Radiator count and sizing", Keywords: []string{"radiator", "count", "number", "size"}},
					{ID: "radiator-condition", Name: "Radiator condition", Keywords: []string{"radiator", "condition", "cold spots", "air", "bleed"}},
					{ID: "pipework", Name: "Pipework and insulation", Keywords: []string{"pipes", "pipework", "insulated", "lagging"}},
					{ID: "pump", Name: "Circulation pump", Keywords: []string{"pump", "circulation", "circulator"}},
				},
			},
			{
				ID:   "controls",
				Name: "Controls & Efficiency",
				Items: []model.ChecklistItem{
					{ID: "thermostat", Name: "Room thermostat", Keywords: []string{"thermostat", "room stat", "temperature control"}},
					{ID: "programmer", Name: "Heating programmer/timer", Keywords: []string{"programmer", "timer", "schedule", "time clock"}},
					{ID: "trv", Name: "TRV (Thermostatic Radiator Valves)", Keywords: []string{"TRV", "thermostatic valve", "radiator valve"}},
					{ID: "zone-control", Name: "Zone controls", Keywords: []string{"zone", "zoning", "zone valve", "multi-zone"}},
				},
			},
		},
	},
	{
		ID:          "ventilation-survey",
		Name:        "Ventilation System Survey",
		Description: "Assessment of ventilation systems and indoor air quality",
		Icon:        "💨",
		Checklist: []model.Category{
			{
				ID:   "system-type",
				Name: "Ventilation System",
				Items: []model.ChecklistItem{
					{ID: "ventilation-system", Name: "Ventilation system type", Keywords: []string{"MVHR", "MEV", "natural", "mechanical", "ventilation system"}},
					{ID: "ductwork", Name: "Ductwork condition", Keywords: []string{"duct", "ductwork", "ducting", "air duct"}},
					{ID: "filters", Name: "Filter condition and type", Keywords: []string{"filter", "filtration", "air filter"}},
				},
			},
			{
				ID:   "extraction",
				Name: "Extract Ventilation",
				Items: []model.ChecklistItem{
					{ID: "kitchen-extract", Name: "Kitchen extraction", Keywords: []string{"kitchen", "extract", "cooker hood", "kitchen fan"}},
					{ID: "bathroom-extract", Name: "Bathroom extraction", Keywords: []string{"bathroom", "extract", "bathroom fan", "humidity"}},
					{ID: "utility-extract", Name: "Utility room extraction", Keywords: []string{"utility", "extract", "utility fan"}},
				},
			},
		},
	},
}
