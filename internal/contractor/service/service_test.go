package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"paintquote_backend/internal/datasource"
	"paintquote_backend/platform/logger"
)

type stubDataSource struct {
	company     *datasource.Company
	companyErr  error
	settings    *datasource.SettingsRecord
	settingsErr error
	products    []datasource.PaintProduct
	productsErr error
	quotes      []datasource.QuoteRecord
	quotesErr   error

	gotLimit int
}

func (s *stubDataSource) GetCompany(ctx context.Context, companyID string) (*datasource.Company, error) {
	return s.company, s.companyErr
}

func (s *stubDataSource) GetSettings(ctx context.Context, companyID string) (*datasource.SettingsRecord, error) {
	return s.settings, s.settingsErr
}

func (s *stubDataSource) ListPaintProducts(ctx context.Context, companyID string) ([]datasource.PaintProduct, error) {
	return s.products, s.productsErr
}

func (s *stubDataSource) ListRecentQuotes(ctx context.Context, companyID string, limit int) ([]datasource.QuoteRecord, error) {
	s.gotLimit = limit
	return s.quotes, s.quotesErr
}

func f64(v float64) *float64 { return &v }

func newTestService(ds DataSource) *Service {
	svc := New(ds, logger.New("development"))
	svc.now = func() time.Time { return time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC) }
	return svc
}

func TestLoad_FillsPartialSettingsWithDefaults(t *testing.T) {
	ds := &stubDataSource{
		company:  &datasource.Company{ID: "c1", CompanyName: "Acme Painting"},
		settings: &datasource.SettingsRecord{WallRatePerSqft: f64(2.25), MarkupPercent: f64(35)},
	}

	cc := newTestService(ds).Load(context.Background(), "c1")

	if cc.Settings.WallRatePerSqft != 2.25 {
		t.Errorf("expected stored wall rate 2.25, got %v", cc.Settings.WallRatePerSqft)
	}
	if cc.Settings.MarkupPercent != 35 {
		t.Errorf("expected stored markup 35, got %v", cc.Settings.MarkupPercent)
	}
	if cc.Settings.CeilingRatePerSqft != 1.25 {
		t.Errorf("expected default ceiling rate 1.25, got %v", cc.Settings.CeilingRatePerSqft)
	}
	if cc.Settings.DoorRate != 125 {
		t.Errorf("expected default door rate 125, got %v", cc.Settings.DoorRate)
	}
	if !cc.Settings.TaxOnMaterialsOnly {
		t.Error("expected default tax_on_materials_only true")
	}
	if cc.CompanyName != "Acme Painting" {
		t.Errorf("unexpected company name %q", cc.CompanyName)
	}
}

func TestLoad_PartialFailureDegradesToDefaults(t *testing.T) {
	ds := &stubDataSource{
		companyErr:  errors.New("company lookup down"),
		settingsErr: errors.New("settings down"),
		products:    []datasource.PaintProduct{{ID: "p1", ProductName: "ProClassic"}},
	}

	cc := newTestService(ds).Load(context.Background(), "c1")

	if cc.CompanyName != "Your Company" {
		t.Errorf("expected placeholder company name, got %q", cc.CompanyName)
	}
	if cc.Settings.WallRatePerSqft != 1.50 {
		t.Errorf("expected default wall rate 1.50, got %v", cc.Settings.WallRatePerSqft)
	}
	// Sibling fetches must still land despite other failures.
	if len(cc.PaintProducts) != 1 {
		t.Fatalf("expected catalog to survive, got %+v", cc.PaintProducts)
	}
	if cc.RecentQuotes == nil {
		t.Error("expected empty, non-nil recent quotes")
	}
}

func TestLoad_MetricsOverThirtyDayWindow(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	ds := &stubDataSource{
		quotes: []datasource.QuoteRecord{
			{CustomerName: "A", Amount: 4000, Status: "accepted", CreatedAt: now.AddDate(0, 0, -2)},
			{CustomerName: "B", Amount: 2000, Status: "sent", CreatedAt: now.AddDate(0, 0, -10)},
			{CustomerName: "C", Amount: 6000, Status: "declined", CreatedAt: now.AddDate(0, 0, -20)},
			// Outside the window, excluded from every aggregate.
			{CustomerName: "D", Amount: 9000, Status: "accepted", CreatedAt: now.AddDate(0, 0, -45)},
		},
	}

	cc := newTestService(ds).Load(context.Background(), "c1")

	if ds.gotLimit != 10 {
		t.Errorf("expected recent quote limit 10, got %d", ds.gotLimit)
	}
	m := cc.Metrics
	if m.MonthlyQuoteCount != 3 {
		t.Fatalf("expected 3 quotes in window, got %d", m.MonthlyQuoteCount)
	}
	if m.MonthlyRevenue != 12000 {
		t.Errorf("expected revenue 12000, got %v", m.MonthlyRevenue)
	}
	if got := m.WinRatePercent; got < 33.3 || got > 33.4 {
		t.Errorf("expected win rate ~33.3, got %v", got)
	}
	if m.AverageJobSize != 4000 {
		t.Errorf("expected average job size 4000, got %v", m.AverageJobSize)
	}
	if len(cc.RecentQuotes) != 4 {
		t.Errorf("expected all fetched quotes summarized, got %d", len(cc.RecentQuotes))
	}
	if cc.RecentQuotes[0].AgeDays != 2 {
		t.Errorf("expected age 2 days, got %d", cc.RecentQuotes[0].AgeDays)
	}
}

func TestLoad_NoQuotesZeroSafeMetrics(t *testing.T) {
	cc := newTestService(&stubDataSource{}).Load(context.Background(), "c1")

	if cc.Metrics.WinRatePercent != 0 || cc.Metrics.AverageJobSize != 0 {
		t.Errorf("expected zero-safe metrics, got %+v", cc.Metrics)
	}
}
