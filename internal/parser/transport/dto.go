// Package transport defines the parsing pipeline DTOs.
package transport

import "paintquote_backend/internal/quote"

// ParseRequest carries one raw quote description to parse.
type ParseRequest struct {
	Text string `json:"text"`
}

// ParsingResult is the outcome of the multi-stage parse. Data is always
// present on success, even when mostly empty; input-quality gaps surface as
// clarification questions, not errors.
type ParsingResult struct {
	Success                bool                   `json:"success"`
	Data                   *quote.ParsedQuoteData `json:"data,omitempty"`
	Errors                 []string               `json:"errors,omitempty"`
	Warnings               []string               `json:"warnings,omitempty"`
	NeedsClarification     bool                   `json:"needs_clarification"`
	ClarificationQuestions []string               `json:"clarification_questions,omitempty"`
}

// ExtractFieldRequest carries one utterance plus a narrow extraction
// instruction ("is this interior, exterior, or both?").
type ExtractFieldRequest struct {
	Text        string `json:"text"`
	Instruction string `json:"instruction" validate:"required"`
}

// ExtractFieldResult wraps the partial record from a single-shot extraction.
// An empty Fields map means "no new information extracted this turn."
type ExtractFieldResult struct {
	Fields map[string]any `json:"fields"`
}
