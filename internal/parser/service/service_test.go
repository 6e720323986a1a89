package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"paintquote_backend/internal/quote"
	"paintquote_backend/platform/ai"
	"paintquote_backend/platform/logger"
)

type stubModel struct {
	responses []string
	errs      []error
	requests  []ai.Request
}

func (m *stubModel) Name() string { return "stub-model" }

func (m *stubModel) Complete(_ context.Context, req ai.Request) (string, error) {
	i := len(m.requests)
	m.requests = append(m.requests, req)
	var err error
	if i < len(m.errs) {
		err = m.errs[i]
	}
	resp := ""
	if i < len(m.responses) {
		resp = m.responses[i]
	}
	return resp, err
}

func newModelService(m *stubModel) *Service {
	return New(m, logger.New("development"))
}

func TestParse_ModelPipelineUsesValidatedOutput(t *testing.T) {
	model := &stubModel{responses: []string{
		`{"customer_name": "Cici", "walls_sqft": 4000}`,
		`{"customer_name": "Cici", "walls_sqft": 4500}`,
	}}

	result := newModelService(model).Parse(context.Background(), "Cici, big job, 4500 sqft walls")

	if !result.Success {
		t.Fatalf("expected success, got %+v", result)
	}
	if len(model.requests) != 2 {
		t.Fatalf("expected primary + validation calls, got %d", len(model.requests))
	}
	if *result.Data.WallsSqft != 4500 {
		t.Errorf("expected validated value 4500, got %v", *result.Data.WallsSqft)
	}
	if model.requests[0].Temperature != 0.1 {
		t.Errorf("extraction should run near-deterministic, got temperature %v", model.requests[0].Temperature)
	}
}

func TestParse_ModelOutputWithMarkdownFences(t *testing.T) {
	fenced := "```json\n{\"customer_name\": \"Ann\"}\n```"
	model := &stubModel{responses: []string{fenced, fenced}}

	result := newModelService(model).Parse(context.Background(), "Ann needs painting")

	if !result.Success || result.Data.CustomerName != "Ann" {
		t.Fatalf("expected fenced JSON to parse, got %+v", result)
	}
}

func TestParse_ValidationFailureKeepsPrimaryDraft(t *testing.T) {
	model := &stubModel{responses: []string{
		`{"customer_name": "Bob"}`,
		`sorry, I can't help with that`,
	}}

	result := newModelService(model).Parse(context.Background(), "Bob's house")

	if !result.Success {
		t.Fatalf("validation failure must not fail the parse: %+v", result)
	}
	if result.Data.CustomerName != "Bob" {
		t.Errorf("expected stage-1 draft preserved, got %q", result.Data.CustomerName)
	}
	found := false
	for _, w := range result.Warnings {
		if strings.Contains(w, "unvalidated") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected unvalidated warning, got %v", result.Warnings)
	}
}

func TestParse_PrimaryFailureIsFatal(t *testing.T) {
	model := &stubModel{
		responses: []string{""},
		errs:      []error{errors.New("model unavailable")},
	}

	result := newModelService(model).Parse(context.Background(), "some job")

	if result.Success {
		t.Fatal("expected success=false when primary extraction fails")
	}
	if len(result.Errors) == 0 {
		t.Error("expected the failure surfaced in errors")
	}
	if len(model.requests) != 1 {
		t.Errorf("validation must not run after a fatal primary stage, got %d calls", len(model.requests))
	}
}

func TestParse_PrimaryGarbageJSONIsFatal(t *testing.T) {
	model := &stubModel{responses: []string{"definitely not json"}}

	result := newModelService(model).Parse(context.Background(), "some job")

	if result.Success {
		t.Fatal("expected success=false on malformed primary output")
	}
}

func TestExtractField_ModelFailureReturnsEmpty(t *testing.T) {
	model := &stubModel{
		responses: []string{"not json at all"},
	}

	fields := newModelService(model).ExtractField(context.Background(), "hmm", "extract the customer name and address")

	if len(fields) != 0 {
		t.Errorf("expected empty map on malformed output, got %v", fields)
	}
}

func TestAssess_ConfidenceMonotonicity(t *testing.T) {
	d := &quote.ParsedQuoteData{CustomerName: "Cici"}
	assess(d)
	before := d.ConfidenceScore

	d.WallsSqft = quote.Float(1200)
	assess(d)

	if d.ConfidenceScore <= before {
		t.Errorf("adding a field must not decrease confidence: %v -> %v", before, d.ConfidenceScore)
	}
}

func TestAssess_CriticalMissingFields(t *testing.T) {
	d := &quote.ParsedQuoteData{}
	assess(d)

	want := []string{"Customer name", "Property address", "Wall square footage", "Labor cost per square foot"}
	if len(d.MissingFields) != len(want) {
		t.Fatalf("expected %v, got %v", want, d.MissingFields)
	}
	for i, label := range want {
		if d.MissingFields[i] != label {
			t.Errorf("missing field %d: expected %q, got %q", i, label, d.MissingFields[i])
		}
	}
}

func TestStripJSONFences(t *testing.T) {
	cases := map[string]string{
		"{\"a\":1}":                        `{"a":1}`,
		"```json\n{\"a\":1}\n```":          `{"a":1}`,
		"Here you go:\n{\"a\":1}\nThanks!": `{"a":1}`,
	}
	for in, want := range cases {
		if got := stripJSONFences(in); got != want {
			t.Errorf("stripJSONFences(%q) = %q, want %q", in, got, want)
		}
	}
}
