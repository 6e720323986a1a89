// Package service implements the multi-stage quote data parser: primary
// extraction, validation, derived-field enrichment, and quality assessment.
package service

import (
	"context"
	"strings"

	"paintquote_backend/internal/parser/transport"
	"paintquote_backend/internal/quote"
	"paintquote_backend/platform/ai"
	"paintquote_backend/platform/logger"
)

// maxParseInput bounds what is sent to the model boundary. Longer input is
// truncated, never rejected.
const maxParseInput = 8000

const lowAccuracyWarning = "Parsed without a model backend; pattern extraction is lower accuracy."

// Service runs the parsing pipeline over an extraction strategy. The
// strategy is chosen once at construction: model-backed when a chat model
// is configured, deterministic pattern matching otherwise.
type Service struct {
	strategy ExtractionStrategy
	log      *logger.Logger
}

// New creates a parser service. A nil model selects the fallback strategy.
func New(model ai.ChatModel, log *logger.Logger) *Service {
	var strategy ExtractionStrategy
	if model != nil {
		strategy = newModelStrategy(model, log)
	} else {
		strategy = newFallbackStrategy()
	}
	return &Service{strategy: strategy, log: log}
}

// Strategy exposes the extraction strategy for the assistant orchestrator,
// which reuses it for per-turn opportunistic extraction.
func (s *Service) Strategy() ExtractionStrategy {
	return s.strategy
}

// Parse runs the full pipeline on one raw quote description. Input-quality
// gaps are not errors: they surface as clarification questions on an
// otherwise successful result. Only empty input and a failed primary
// extraction yield success=false.
func (s *Service) Parse(ctx context.Context, text string) transport.ParsingResult {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		empty := &quote.ParsedQuoteData{}
		assess(empty)
		return transport.ParsingResult{
			Success:                false,
			Data:                   empty,
			Errors:                 []string{"input is empty"},
			NeedsClarification:     true,
			ClarificationQuestions: clarificationQuestions(empty),
		}
	}

	var warnings []string
	if len(trimmed) > maxParseInput {
		trimmed = trimmed[:maxParseInput]
		warnings = append(warnings, "input truncated for extraction")
	}
	if s.strategy.Name() == strategyFallback {
		warnings = append(warnings, lowAccuracyWarning)
	}

	draft, err := s.strategy.Primary(ctx, trimmed)
	if err != nil {
		s.log.WithContext(ctx).Error("primary extraction failed", "error", err)
		empty := &quote.ParsedQuoteData{}
		assess(empty)
		return transport.ParsingResult{
			Success:                false,
			Data:                   empty,
			Errors:                 []string{err.Error()},
			Warnings:               warnings,
			NeedsClarification:     true,
			ClarificationQuestions: clarificationQuestions(empty),
		}
	}

	data, err := s.strategy.Validate(ctx, trimmed, draft)
	if err != nil {
		// Validation is a quality improvement, not a hard dependency.
		s.log.WithContext(ctx).Warn("validation stage unavailable, keeping unvalidated extraction", "error", err)
		warnings = append(warnings, "validation stage unavailable; result is unvalidated")
		data = draft
	}

	data.Enrich()
	assess(data)
	questions := clarificationQuestions(data)

	return transport.ParsingResult{
		Success:                true,
		Data:                   data,
		Warnings:               warnings,
		NeedsClarification:     len(questions) > 0,
		ClarificationQuestions: questions,
	}
}

// ExtractField runs a narrow single-question extraction. Never fails: the
// worst case is an empty field map, which callers treat as "no new
// information this turn."
func (s *Service) ExtractField(ctx context.Context, text, instruction string) map[string]any {
	fields, err := s.strategy.ExtractField(ctx, text, instruction)
	if err != nil || fields == nil {
		return map[string]any{}
	}
	return fields
}
