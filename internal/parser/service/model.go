package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"paintquote_backend/internal/quote"
	"paintquote_backend/platform/ai"
	"paintquote_backend/platform/logger"
)

const (
	extractionTemperature = 0.1
	extractionMaxTokens   = 1500
)

// modelStrategy runs extraction through the chat-model boundary.
type modelStrategy struct {
	model ai.ChatModel
	log   *logger.Logger
}

func newModelStrategy(model ai.ChatModel, log *logger.Logger) *modelStrategy {
	return &modelStrategy{model: model, log: log}
}

func (m *modelStrategy) Name() string { return strategyModel }

// Primary runs the stage-1 extraction call. Malformed model output is fatal
// here: there is no earlier stage to fall back to.
func (m *modelStrategy) Primary(ctx context.Context, text string) (*quote.ParsedQuoteData, error) {
	raw, err := m.complete(ctx, "primary_extraction", []ai.Message{
		ai.System(extractionSystemPrompt),
		ai.User(text),
	})
	if err != nil {
		return nil, fmt.Errorf("primary extraction: %w", err)
	}

	var data quote.ParsedQuoteData
	if err := json.Unmarshal([]byte(stripJSONFences(raw)), &data); err != nil {
		return nil, fmt.Errorf("primary extraction returned invalid JSON: %w", err)
	}
	return &data, nil
}

// Validate runs the stage-2 re-examination. Any failure is reported to the
// caller, which keeps the unvalidated draft.
func (m *modelStrategy) Validate(ctx context.Context, text string, draft *quote.ParsedQuoteData) (*quote.ParsedQuoteData, error) {
	draftJSON, err := json.Marshal(draft)
	if err != nil {
		return nil, fmt.Errorf("marshal draft: %w", err)
	}

	raw, err := m.complete(ctx, "validation", []ai.Message{
		ai.System(buildValidationPrompt(text, string(draftJSON))),
	})
	if err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}

	var validated quote.ParsedQuoteData
	if err := json.Unmarshal([]byte(stripJSONFences(raw)), &validated); err != nil {
		return nil, fmt.Errorf("validation returned invalid JSON: %w", err)
	}
	return &validated, nil
}

// ExtractField runs a narrow single-question extraction. Never fails: any
// model or parse problem yields an empty map.
func (m *modelStrategy) ExtractField(ctx context.Context, text, instruction string) (map[string]any, error) {
	raw, err := m.complete(ctx, "field_extraction", []ai.Message{
		ai.System(buildFieldPrompt(instruction)),
		ai.User(text),
	})
	if err != nil {
		return map[string]any{}, nil
	}

	fields := map[string]any{}
	if err := json.Unmarshal([]byte(stripJSONFences(raw)), &fields); err != nil {
		return map[string]any{}, nil
	}
	return fields, nil
}

func (m *modelStrategy) complete(ctx context.Context, stage string, messages []ai.Message) (string, error) {
	start := time.Now()
	raw, err := m.model.Complete(ctx, ai.Request{
		Messages:    messages,
		Temperature: extractionTemperature,
		MaxTokens:   extractionMaxTokens,
	})
	m.log.ModelCall(stage, m.model.Name(), float64(time.Since(start).Milliseconds()), err)
	return raw, err
}

// stripJSONFences tolerates models that wrap JSON in markdown fences or
// surround it with prose: it returns the span from the first '{' to the
// matching final '}'.
func stripJSONFences(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	s = strings.TrimSpace(s)

	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start >= 0 && end > start {
		return s[start : end+1]
	}
	return s
}
