// Package quote defines the structured painting-quote schema shared by the
// parser, pricing calculator, and assistant modules.
package quote

import "fmt"

// Project type values for ParsedQuoteData.ProjectType.
const (
	ProjectInterior = "interior"
	ProjectExterior = "exterior"
	ProjectBoth     = "both"
)

// Surface keys used for product changes and rate adjustments.
const (
	SurfaceWalls    = "walls"
	SurfaceCeilings = "ceilings"
	SurfaceTrim     = "trim"
	SurfaceDoors    = "doors"
	SurfaceWindows  = "windows"
)

// ProductChange is a mid-conversation request to swap the paint product for
// one surface ("switch to Benjamin Moore for walls").
type ProductChange struct {
	Brand         string   `json:"brand,omitempty"`
	Product       string   `json:"product,omitempty"`
	CostPerGallon *float64 `json:"cost_per_gallon,omitempty"`
}

// RateAdjustments captures mid-conversation per-surface or per-unit labor
// rate overrides ("doors should be $175 each").
type RateAdjustments struct {
	WallRate    *float64 `json:"wall_rate,omitempty"`
	CeilingRate *float64 `json:"ceiling_rate,omitempty"`
	TrimRate    *float64 `json:"trim_rate,omitempty"`
	DoorRate    *float64 `json:"door_rate,omitempty"`
	WindowRate  *float64 `json:"window_rate,omitempty"`
	PrimingRate *float64 `json:"priming_rate,omitempty"`
}

// Empty reports whether no adjustment is present.
func (r *RateAdjustments) Empty() bool {
	if r == nil {
		return true
	}
	return r.WallRate == nil && r.CeilingRate == nil && r.TrimRate == nil &&
		r.DoorRate == nil && r.WindowRate == nil && r.PrimingRate == nil
}

// ParsedQuoteData is the structured output of the extraction pipeline.
//
// Text fields use the empty string for "unknown"; numeric and boolean fields
// use nil pointers for "not mentioned" so a later conversation turn can
// distinguish "not stated" from an explicit zero or false. Metadata fields
// (confidence, missing fields, assumptions, notes) are always derived by the
// pipeline, never extracted from user text.
type ParsedQuoteData struct {
	// Customer identity
	CustomerName    string `json:"customer_name"`
	PropertyAddress string `json:"property_address"`
	ProjectType     string `json:"project_type,omitempty"`

	// Scope flags
	CeilingIncluded *bool `json:"ceiling_included,omitempty"`
	DoorsIncluded   *bool `json:"doors_included,omitempty"`
	TrimIncluded    *bool `json:"trim_included,omitempty"`
	WindowsIncluded *bool `json:"windows_included,omitempty"`
	PrimerIncluded  *bool `json:"primer_included,omitempty"`

	// Measurements
	LinearFeet   *float64 `json:"linear_feet,omitempty"`
	WallHeightFt *float64 `json:"wall_height_ft,omitempty"`
	WallsSqft    *float64 `json:"walls_sqft,omitempty"`
	CeilingsSqft *float64 `json:"ceilings_sqft,omitempty"`
	TrimSqft     *float64 `json:"trim_sqft,omitempty"`
	DoorsCount   *int     `json:"doors_count,omitempty"`
	WindowsCount *int     `json:"windows_count,omitempty"`

	// Derived-only: linear_feet x wall_height_ft. Authoritative for
	// walls_sqft only when walls_sqft was not independently supplied.
	CalculatedWallAreaSqft *float64 `json:"calculated_wall_area_sqft,omitempty"`

	// Paint specification (topcoat)
	PaintBrand              string   `json:"paint_brand,omitempty"`
	PaintProduct            string   `json:"paint_product,omitempty"`
	PaintSheen              string   `json:"paint_sheen,omitempty"`
	SpreadRateSqftPerGallon *float64 `json:"spread_rate_sqft_per_gallon,omitempty"`
	PaintCostPerGallon      *float64 `json:"paint_cost_per_gallon,omitempty"`

	// Paint specification (primer)
	PrimerBrand       string   `json:"primer_brand,omitempty"`
	PrimerProduct     string   `json:"primer_product,omitempty"`
	PrimerCostPerSqft *float64 `json:"primer_cost_per_sqft,omitempty"`

	// Pricing. LaborCostPerSqft is the legacy combined rate kept for
	// backward compatibility with older quote records; wall/ceiling rates
	// are the per-surface replacements.
	WallLaborRate    *float64 `json:"wall_labor_rate,omitempty"`
	CeilingLaborRate *float64 `json:"ceiling_labor_rate,omitempty"`
	LaborCostPerSqft *float64 `json:"labor_cost_per_sqft,omitempty"`
	MarkupPercent    *float64 `json:"markup_percent,omitempty"`

	// Mid-conversation change requests, keyed by surface.
	ProductChanges  map[string]ProductChange `json:"product_changes,omitempty"`
	RateAdjustments *RateAdjustments         `json:"rate_adjustments,omitempty"`

	// Derived metadata
	ConfidenceScore   float64  `json:"confidence_score"`
	MissingFields     []string `json:"missing_fields,omitempty"`
	AssumptionsMade   []string `json:"assumptions_made,omitempty"`
	ProjectScopeNotes string   `json:"project_scope_notes,omitempty"`
}

// Enrich computes derived fields from the raw extraction. The only computed
// field is the linear-feet-to-wall-area conversion: when both linear_feet
// and wall_height_ft are present, calculated_wall_area_sqft is their product
// and is adopted as walls_sqft only if walls_sqft was not independently
// stated. Running Enrich repeatedly yields the same record.
func (d *ParsedQuoteData) Enrich() {
	if d.LinearFeet == nil || d.WallHeightFt == nil {
		return
	}
	area := *d.LinearFeet * *d.WallHeightFt
	d.CalculatedWallAreaSqft = Float(area)
	if d.WallsSqft == nil {
		d.WallsSqft = Float(area)
		d.AssumptionsMade = appendUnique(d.AssumptionsMade, fmt.Sprintf(
			"Wall area calculated from %g linear feet x %g ft wall height = %g sqft",
			*d.LinearFeet, *d.WallHeightFt, area))
	}
}

// WallArea returns the effective wall area: an explicit walls_sqft, or the
// derived value when only linear measurements were given. Zero when neither
// is known.
func (d *ParsedQuoteData) WallArea() float64 {
	if d.WallsSqft != nil {
		return *d.WallsSqft
	}
	if d.CalculatedWallAreaSqft != nil {
		return *d.CalculatedWallAreaSqft
	}
	return 0
}

func appendUnique(list []string, s string) []string {
	for _, existing := range list {
		if existing == s {
			return list
		}
	}
	return append(list, s)
}

// Float returns a pointer to v. Convenience for optional numeric fields.
func Float(v float64) *float64 { return &v }

// Int returns a pointer to v.
func Int(v int) *int { return &v }

// Bool returns a pointer to v.
func Bool(v bool) *bool { return &v }
