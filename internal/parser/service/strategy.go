package service

import (
	"context"

	"paintquote_backend/internal/quote"
)

// Strategy names for logging and warning decisions.
const (
	strategyModel    = "model"
	strategyFallback = "fallback"
)

// ExtractionStrategy is the backend-agnostic extraction boundary. The
// pipeline stages above it (enrichment, quality assessment, clarification
// questions) never know which implementation is running.
//
// Primary is the only stage allowed to fail: there is nothing earlier to
// fall back to. Validate returning an error means the caller should keep
// the unvalidated draft. ExtractField never fails; its worst case is an
// empty map.
type ExtractionStrategy interface {
	Name() string
	Primary(ctx context.Context, text string) (*quote.ParsedQuoteData, error)
	Validate(ctx context.Context, text string, draft *quote.ParsedQuoteData) (*quote.ParsedQuoteData, error)
	ExtractField(ctx context.Context, text, instruction string) (map[string]any, error)
}
