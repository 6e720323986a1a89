// Package transport defines the conversational assistant DTOs.
package transport

import "paintquote_backend/internal/quote"

// ChatRequest is one user turn. An empty SessionID starts a new session.
type ChatRequest struct {
	SessionID string `json:"session_id"`
	CompanyID string `json:"company_id" validate:"required"`
	Message   string `json:"message" validate:"required"`
}

// PaintActionResult records one dispatched catalog write and its outcome.
type PaintActionResult struct {
	Type   string `json:"type"`
	Target string `json:"target"`
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// Paint action types and statuses.
const (
	ActionPriceUpdate     = "price_update"
	ActionSaveNewFavorite = "save_new_favorite"

	ActionPending = "pending"
	ActionSuccess = "success"
	ActionFailed  = "failed"
)

// ChatResponse is the assistant's turn result: the conversational reply plus
// the updated accumulated extraction.
type ChatResponse struct {
	SessionID       string                 `json:"session_id"`
	Reply           string                 `json:"reply"`
	ReplyConfidence float64                `json:"reply_confidence"`
	Stage           string                 `json:"stage"`
	ExtractedData   *quote.ParsedQuoteData `json:"extracted_data"`
	Actions         []PaintActionResult    `json:"actions,omitempty"`
}
