// Package transport defines the pricing estimate DTOs.
package transport

import "paintquote_backend/internal/quote"

// EstimateRequest carries the structured quote data to price.
type EstimateRequest struct {
	Data quote.ParsedQuoteData `json:"data" validate:"required"`
}

// Materials is the materials portion of the estimate breakdown.
type Materials struct {
	PaintGallons         int     `json:"paint_gallons"`
	PaintCostPerGallon   float64 `json:"paint_cost_per_gallon"`
	PaintCost            float64 `json:"paint_cost"`
	PrimerIncluded       bool    `json:"primer_included"`
	PrimerCostPerSqft    float64 `json:"primer_cost_per_sqft"`
	PrimerCost           float64 `json:"primer_cost"`
	TotalMaterialsCost   float64 `json:"total_materials_cost"`
	SpreadRateSqftPerGal float64 `json:"spread_rate_sqft_per_gallon"`
}

// Areas is the per-surface area breakdown.
type Areas struct {
	WallsSqft    float64 `json:"walls_sqft"`
	CeilingsSqft float64 `json:"ceilings_sqft"`
	TrimSqft     float64 `json:"trim_sqft"`
	TotalSqft    float64 `json:"total_sqft"`
}

// Labor is the labor portion of the breakdown. Labor is a fixed share of the
// pre-markup subtotal rather than an additive per-sqft line item.
type Labor struct {
	Method       string  `json:"method"`
	PercentOfJob float64 `json:"percent_of_job"`
	LaborCost    float64 `json:"labor_cost"`
}

// PricingResult is the full priced estimate with every intermediate echoed
// for display.
type PricingResult struct {
	Areas     Areas     `json:"areas"`
	Materials Materials `json:"materials"`
	Labor     Labor     `json:"labor"`

	Subtotal      float64 `json:"subtotal"`
	MarkupPercent float64 `json:"markup_percent"`
	MarkupAmount  float64 `json:"markup_amount"`
	FinalQuote    float64 `json:"final_quote"`

	// Passed through unchanged for downstream display.
	ProductChanges  map[string]quote.ProductChange `json:"product_changes,omitempty"`
	RateAdjustments *quote.RateAdjustments         `json:"rate_adjustments,omitempty"`
}
