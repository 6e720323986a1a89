package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"paintquote_backend/internal/assistant/transport"
	contractortransport "paintquote_backend/internal/contractor/transport"
	"paintquote_backend/internal/datasource"
	parserservice "paintquote_backend/internal/parser/service"
	"paintquote_backend/internal/quote"
	"paintquote_backend/platform/ai"
	"paintquote_backend/platform/apperr"
	"paintquote_backend/platform/logger"
)

type stubModel struct {
	reply string
	err   error
	calls int
}

func (m *stubModel) Name() string { return "stub-model" }

func (m *stubModel) Complete(_ context.Context, _ ai.Request) (string, error) {
	m.calls++
	return m.reply, m.err
}

type stubLoader struct {
	cc *contractortransport.ContractorContext
}

func (l *stubLoader) Load(_ context.Context, companyID string) *contractortransport.ContractorContext {
	if l.cc != nil {
		return l.cc
	}
	return &contractortransport.ContractorContext{CompanyID: companyID, CompanyName: "Test Painting Co"}
}

type stubCatalog struct {
	updates []string
	creates []datasource.PaintProduct
	fail    bool
}

func (c *stubCatalog) UpdateProductPrice(_ context.Context, _, productID string, _ float64) error {
	if c.fail {
		return errors.New("write failed")
	}
	c.updates = append(c.updates, productID)
	return nil
}

func (c *stubCatalog) CreatePaintProduct(_ context.Context, _ string, p datasource.PaintProduct) (*datasource.PaintProduct, error) {
	if c.fail {
		return nil, errors.New("write failed")
	}
	c.creates = append(c.creates, p)
	return &p, nil
}

func newTestOrchestrator(model ai.ChatModel, catalog CatalogWriter, loader ContextLoader) *Service {
	log := logger.New("development")
	if loader == nil {
		loader = &stubLoader{}
	}
	return New(model, parserservice.New(nil, log), loader, catalog, NewMemoryStore(time.Hour), log)
}

func TestChat_NoModelIsConfigError(t *testing.T) {
	svc := newTestOrchestrator(nil, &stubCatalog{}, nil)

	_, err := svc.Chat(context.Background(), transport.ChatRequest{CompanyID: "c1", Message: "hi"})
	if !apperr.Is(err, apperr.KindConfig) {
		t.Fatalf("expected config error, got %v", err)
	}
}

func TestChat_AccumulatesAcrossTurns(t *testing.T) {
	model := &stubModel{reply: "Thanks! What are the measurements?"}
	svc := newTestOrchestrator(model, &stubCatalog{}, nil)
	ctx := context.Background()

	first, err := svc.Chat(ctx, transport.ChatRequest{CompanyID: "c1", Message: "Cici at 9090 Hillside Drive"})
	if err != nil {
		t.Fatalf("turn 1: %v", err)
	}
	if first.Stage != StageCollectingMeasurements {
		t.Errorf("expected measurements stage after basics, got %q", first.Stage)
	}
	if first.SessionID == "" {
		t.Fatal("expected a session ID")
	}

	second, err := svc.Chat(ctx, transport.ChatRequest{
		SessionID: first.SessionID,
		CompanyID: "c1",
		Message:   "The house needs 500 linear feet of wall painted, ceilings are 9 feet tall",
	})
	if err != nil {
		t.Fatalf("turn 2: %v", err)
	}
	d := second.ExtractedData
	if d.CustomerName != "Cici" {
		t.Errorf("turn 1 fields must survive turn 2, got name %q", d.CustomerName)
	}
	if d.WallsSqft == nil || *d.WallsSqft != 4500 {
		t.Errorf("expected enriched wall area 4500, got %v", d.WallsSqft)
	}
	if second.Stage != StageCollectingPaint {
		t.Errorf("expected paint stage, got %q", second.Stage)
	}
	if second.ReplyConfidence != modelReplyConfidence {
		t.Errorf("expected model confidence, got %v", second.ReplyConfidence)
	}
}

func TestChat_ModelFailureFallsBackToCannedReply(t *testing.T) {
	model := &stubModel{err: errors.New("model down")}
	svc := newTestOrchestrator(model, &stubCatalog{}, nil)

	resp, err := svc.Chat(context.Background(), transport.ChatRequest{CompanyID: "c1", Message: "how much would it cost to paint my house?"})
	if err != nil {
		t.Fatalf("model failure must not fail the turn: %v", err)
	}
	if resp.Reply == "" {
		t.Fatal("expected a canned reply")
	}
	if resp.ReplyConfidence >= modelReplyConfidence {
		t.Errorf("fallback confidence must be lower, got %v", resp.ReplyConfidence)
	}
}

func TestChat_UnknownSessionStartsFresh(t *testing.T) {
	model := &stubModel{reply: "ok"}
	svc := newTestOrchestrator(model, &stubCatalog{}, nil)

	resp, err := svc.Chat(context.Background(), transport.ChatRequest{
		SessionID: "expired-or-bogus",
		CompanyID: "c1",
		Message:   "hello",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.SessionID == "expired-or-bogus" {
		t.Error("expected a fresh session ID for an unknown session")
	}
}

func testState(catalog []datasource.PaintProduct) *ConversationState {
	return &ConversationState{
		ID:        "s1",
		CompanyID: "c1",
		Context: &contractortransport.ContractorContext{
			CompanyID:     "c1",
			PaintProducts: catalog,
		},
	}
}

func TestDispatchActions_PriceUpdateByFuzzyMatch(t *testing.T) {
	catalog := &stubCatalog{}
	svc := newTestOrchestrator(&stubModel{reply: "ok"}, catalog, nil)

	state := testState([]datasource.PaintProduct{
		{ID: "p1", Supplier: "Sherwin Williams", ProductName: "ProClassic"},
		{ID: "p2", Supplier: "Benjamin Moore", ProductName: "Regal Select"},
	})
	extracted := &quote.ParsedQuoteData{
		ProductChanges: map[string]quote.ProductChange{
			quote.SurfaceWalls: {Brand: "sherwin williams", Product: "proclassic", CostPerGallon: quote.Float(62.5)},
		},
	}

	results := svc.dispatchActions(context.Background(), state, extracted)

	if len(results) != 1 {
		t.Fatalf("expected one action, got %+v", results)
	}
	if results[0].Type != transport.ActionPriceUpdate || results[0].Status != transport.ActionSuccess {
		t.Errorf("unexpected action: %+v", results[0])
	}
	if len(catalog.updates) != 1 || catalog.updates[0] != "p1" {
		t.Errorf("expected update against p1, got %v", catalog.updates)
	}
}

func TestDispatchActions_UnknownProductBecomesNewFavorite(t *testing.T) {
	catalog := &stubCatalog{}
	svc := newTestOrchestrator(&stubModel{reply: "ok"}, catalog, nil)

	state := testState(nil)
	extracted := &quote.ParsedQuoteData{
		ProductChanges: map[string]quote.ProductChange{
			quote.SurfaceTrim: {Brand: "Behr", Product: "Urethane Alkyd", CostPerGallon: quote.Float(54)},
		},
	}

	results := svc.dispatchActions(context.Background(), state, extracted)

	if len(results) != 1 || results[0].Type != transport.ActionSaveNewFavorite {
		t.Fatalf("expected save_new_favorite, got %+v", results)
	}
	if len(catalog.creates) != 1 || catalog.creates[0].Supplier != "Behr" {
		t.Errorf("unexpected create: %+v", catalog.creates)
	}
	if catalog.creates[0].Category != quote.SurfaceTrim {
		t.Errorf("expected surface as category, got %q", catalog.creates[0].Category)
	}
}

func TestDispatchActions_FailureIsRecordedNotPropagated(t *testing.T) {
	catalog := &stubCatalog{fail: true}
	svc := newTestOrchestrator(&stubModel{reply: "ok"}, catalog, nil)

	state := testState([]datasource.PaintProduct{{ID: "p1", Supplier: "Behr", ProductName: "Premium Plus"}})
	extracted := &quote.ParsedQuoteData{
		ProductChanges: map[string]quote.ProductChange{
			quote.SurfaceWalls: {Brand: "Behr", Product: "Premium Plus", CostPerGallon: quote.Float(40)},
		},
	}

	results := svc.dispatchActions(context.Background(), state, extracted)

	if len(results) != 1 || results[0].Status != transport.ActionFailed {
		t.Fatalf("expected failed action result, got %+v", results)
	}
	if results[0].Error == "" {
		t.Error("expected the failure reason recorded")
	}
}

func TestDispatchActions_ChangeWithoutPriceIsConversationalOnly(t *testing.T) {
	catalog := &stubCatalog{}
	svc := newTestOrchestrator(&stubModel{reply: "ok"}, catalog, nil)

	state := testState(nil)
	extracted := &quote.ParsedQuoteData{
		ProductChanges: map[string]quote.ProductChange{
			quote.SurfaceWalls: {Brand: "Benjamin Moore"},
		},
	}

	if results := svc.dispatchActions(context.Background(), state, extracted); len(results) != 0 {
		t.Errorf("expected no writes, got %+v", results)
	}
}

func TestComputeStage_Checklist(t *testing.T) {
	d := &quote.ParsedQuoteData{}
	if got := computeStage(d); got != StageCollectingBasics {
		t.Errorf("empty data: got %q", got)
	}

	d.CustomerName = "Cici"
	d.PropertyAddress = "9090 Hillside Drive"
	if got := computeStage(d); got != StageCollectingMeasurements {
		t.Errorf("after basics: got %q", got)
	}

	d.WallsSqft = quote.Float(4500)
	if got := computeStage(d); got != StageCollectingPaint {
		t.Errorf("after measurements: got %q", got)
	}

	d.PaintCostPerGallon = quote.Float(50)
	if got := computeStage(d); got != StageCollectingRates {
		t.Errorf("after paint: got %q", got)
	}

	d.LaborCostPerSqft = quote.Float(1.5)
	if got := computeStage(d); got != StageReadyForMarkup {
		t.Errorf("after rates: got %q", got)
	}

	d.MarkupPercent = quote.Float(20)
	if got := computeStage(d); got != StageComplete {
		t.Errorf("after markup: got %q", got)
	}
}
