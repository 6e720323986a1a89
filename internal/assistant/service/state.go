package service

import (
	"time"

	contractortransport "paintquote_backend/internal/contractor/transport"
	"paintquote_backend/internal/quote"
	"paintquote_backend/platform/ai"
)

// Conversation stages, advanced along a fixed checklist as fields
// accumulate.
const (
	StageCollectingBasics       = "collecting_basics"
	StageCollectingMeasurements = "collecting_measurements"
	StageCollectingPaint        = "collecting_paint"
	StageCollectingRates        = "collecting_rates"
	StageReadyForMarkup         = "ready_for_markup"
	StageComplete               = "complete"
)

// ConversationState is the per-session working set: the stage tag, the
// accumulated extraction, the message history, and the contractor context
// loaded once at session start. It lives only in the session store and is
// destroyed when the session ends.
type ConversationState struct {
	ID            string                                 `json:"id"`
	CompanyID     string                                 `json:"company_id"`
	Stage         string                                 `json:"stage"`
	ExtractedData *quote.ParsedQuoteData                 `json:"extracted_data"`
	History       []ai.Message                           `json:"history"`
	Context       *contractortransport.ContractorContext `json:"context"`
	CreatedAt     time.Time                              `json:"created_at"`
	UpdatedAt     time.Time                              `json:"updated_at"`
}

// computeStage derives the stage from the accumulated data. It walks the
// checklist from the top so the stage is a pure function of the data and
// never regresses as fields accumulate.
func computeStage(d *quote.ParsedQuoteData) string {
	if d == nil {
		return StageCollectingBasics
	}
	if d.CustomerName == "" || d.PropertyAddress == "" {
		return StageCollectingBasics
	}
	if d.WallArea() == 0 {
		return StageCollectingMeasurements
	}
	if d.PaintBrand == "" && d.PaintCostPerGallon == nil {
		return StageCollectingPaint
	}
	if d.LaborCostPerSqft == nil && d.WallLaborRate == nil && d.CeilingLaborRate == nil {
		return StageCollectingRates
	}
	if d.MarkupPercent == nil {
		return StageReadyForMarkup
	}
	return StageComplete
}
