// Package service implements the deterministic quote calculator.
package service

import (
	"math"

	"paintquote_backend/internal/pricing/transport"
	"paintquote_backend/internal/quote"
)

// Pricing defaults applied when the parsed data leaves a value unstated.
const (
	DefaultSpreadRateSqftPerGallon = 350.0
	DefaultPaintCostPerGallon      = 50.0
	DefaultPrimerCostPerSqft       = 0.45

	// Labor is a fixed share of the pre-markup subtotal. The subtotal is
	// solved from materials (subtotal = materials / (1 - share)) rather
	// than summed from per-sqft rates.
	laborShare  = 0.30
	laborMethod = "percentage_of_total"
)

// Service prices structured quote data. It is stateless and pure.
type Service struct{}

// New creates a new pricing service.
func New() *Service {
	return &Service{}
}

// Price converts structured quote data into a priced estimate. Same input
// always yields the same output. Missing markup means no markup, and a
// zero-area input yields a defined zero-cost result.
func (s *Service) Price(data *quote.ParsedQuoteData) transport.PricingResult {
	areas := transport.Areas{
		WallsSqft: data.WallArea(),
	}
	if data.CeilingIncluded != nil && *data.CeilingIncluded && data.CeilingsSqft != nil {
		areas.CeilingsSqft = *data.CeilingsSqft
	}
	if data.TrimIncluded != nil && *data.TrimIncluded && data.TrimSqft != nil {
		areas.TrimSqft = *data.TrimSqft
	}
	areas.TotalSqft = areas.WallsSqft + areas.CeilingsSqft + areas.TrimSqft

	spreadRate := DefaultSpreadRateSqftPerGallon
	if data.SpreadRateSqftPerGallon != nil && *data.SpreadRateSqftPerGallon > 0 {
		spreadRate = *data.SpreadRateSqftPerGallon
	}
	paintCost := DefaultPaintCostPerGallon
	if data.PaintCostPerGallon != nil {
		paintCost = *data.PaintCostPerGallon
	}
	primerRate := DefaultPrimerCostPerSqft
	if data.PrimerCostPerSqft != nil {
		primerRate = *data.PrimerCostPerSqft
	}

	materials := transport.Materials{
		PaintGallons:         int(math.Ceil(areas.TotalSqft / spreadRate)),
		PaintCostPerGallon:   paintCost,
		PrimerCostPerSqft:    primerRate,
		SpreadRateSqftPerGal: spreadRate,
	}
	materials.PaintCost = float64(materials.PaintGallons) * paintCost
	if data.PrimerIncluded != nil && *data.PrimerIncluded {
		materials.PrimerIncluded = true
		materials.PrimerCost = areas.TotalSqft * primerRate
	}
	materials.TotalMaterialsCost = materials.PaintCost + materials.PrimerCost

	subtotal := materials.TotalMaterialsCost / (1 - laborShare)
	labor := transport.Labor{
		Method:       laborMethod,
		PercentOfJob: laborShare * 100,
		LaborCost:    subtotal * laborShare,
	}

	markupPercent := 0.0
	if data.MarkupPercent != nil {
		markupPercent = *data.MarkupPercent
	}
	markupAmount := subtotal * markupPercent / 100

	return transport.PricingResult{
		Areas:           areas,
		Materials:       materials,
		Labor:           labor,
		Subtotal:        subtotal,
		MarkupPercent:   markupPercent,
		MarkupAmount:    markupAmount,
		FinalQuote:      subtotal + markupAmount,
		ProductChanges:  data.ProductChanges,
		RateAdjustments: data.RateAdjustments,
	}
}
