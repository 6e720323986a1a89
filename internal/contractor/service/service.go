// Package service implements the contractor context loader.
package service

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"paintquote_backend/internal/contractor/transport"
	"paintquote_backend/internal/datasource"
	"paintquote_backend/platform/logger"
)

const (
	recentQuoteLimit = 10
	metricsWindow    = 30 * 24 * time.Hour
)

// DataSource is the subset of the data API client the loader reads from.
type DataSource interface {
	GetCompany(ctx context.Context, companyID string) (*datasource.Company, error)
	GetSettings(ctx context.Context, companyID string) (*datasource.SettingsRecord, error)
	ListPaintProducts(ctx context.Context, companyID string) ([]datasource.PaintProduct, error)
	ListRecentQuotes(ctx context.Context, companyID string, limit int) ([]datasource.QuoteRecord, error)
}

// Service loads contractor context snapshots from the data source.
type Service struct {
	ds  DataSource
	log *logger.Logger
	now func() time.Time
}

// New creates a new contractor context service.
func New(ds DataSource, log *logger.Logger) *Service {
	return &Service{ds: ds, log: log, now: time.Now}
}

// Load assembles a contractor context snapshot. The four sub-resources are
// fetched concurrently and each failure degrades to defaults independently,
// so Load never returns an error: a contractor with an unreachable settings
// record still gets a usable context.
func (s *Service) Load(ctx context.Context, companyID string) *transport.ContractorContext {
	var (
		company  *datasource.Company
		settings *datasource.SettingsRecord
		products []datasource.PaintProduct
		quotes   []datasource.QuoteRecord
	)

	// Plain errgroup on purpose: WithContext would cancel the sibling
	// fetches on the first failure, but partial data is exactly what we
	// want to keep here.
	var g errgroup.Group
	g.Go(func() error {
		res, err := s.ds.GetCompany(ctx, companyID)
		if err != nil {
			s.log.DataSourceError("get_company", err)
			return nil
		}
		company = res
		return nil
	})
	g.Go(func() error {
		res, err := s.ds.GetSettings(ctx, companyID)
		if err != nil {
			s.log.DataSourceError("get_settings", err)
			return nil
		}
		settings = res
		return nil
	})
	g.Go(func() error {
		res, err := s.ds.ListPaintProducts(ctx, companyID)
		if err != nil {
			s.log.DataSourceError("list_paint_products", err)
			return nil
		}
		products = res
		return nil
	})
	g.Go(func() error {
		res, err := s.ds.ListRecentQuotes(ctx, companyID, recentQuoteLimit)
		if err != nil {
			s.log.DataSourceError("list_recent_quotes", err)
			return nil
		}
		quotes = res
		return nil
	})
	_ = g.Wait()

	cc := &transport.ContractorContext{
		CompanyID:     companyID,
		CompanyName:   "Your Company",
		Settings:      fillSettings(settings),
		PaintProducts: products,
		RecentQuotes:  summarizeQuotes(quotes, s.now()),
		Metrics:       computeMetrics(quotes, s.now()),
		LoadedAt:      s.now(),
	}
	if cc.PaintProducts == nil {
		cc.PaintProducts = []datasource.PaintProduct{}
	}
	if company != nil {
		if company.CompanyName != "" {
			cc.CompanyName = company.CompanyName
		}
		cc.ContactName = company.ContactName
		cc.BusinessType = company.BusinessType
	}
	return cc
}

// fillSettings overlays the stored record on the hard-coded defaults,
// field by field. A nil record yields the defaults untouched.
func fillSettings(rec *datasource.SettingsRecord) transport.Settings {
	out := defaultSettings()
	if rec == nil {
		return out
	}
	if rec.WallRatePerSqft != nil {
		out.WallRatePerSqft = *rec.WallRatePerSqft
	}
	if rec.CeilingRatePerSqft != nil {
		out.CeilingRatePerSqft = *rec.CeilingRatePerSqft
	}
	if rec.TrimRatePerSqft != nil {
		out.TrimRatePerSqft = *rec.TrimRatePerSqft
	}
	if rec.DoorRate != nil {
		out.DoorRate = *rec.DoorRate
	}
	if rec.WindowRate != nil {
		out.WindowRate = *rec.WindowRate
	}
	if rec.PrimingRatePerSqft != nil {
		out.PrimingRatePerSqft = *rec.PrimingRatePerSqft
	}
	if rec.PaintCostPerGallon != nil {
		out.PaintCostPerGallon = *rec.PaintCostPerGallon
	}
	if rec.PrimerCostPerGallon != nil {
		out.PrimerCostPerGallon = *rec.PrimerCostPerGallon
	}
	if rec.TaxRatePercent != nil {
		out.TaxRatePercent = *rec.TaxRatePercent
	}
	if rec.TaxOnMaterialsOnly != nil {
		out.TaxOnMaterialsOnly = *rec.TaxOnMaterialsOnly
	}
	if rec.OverheadPercent != nil {
		out.OverheadPercent = *rec.OverheadPercent
	}
	if rec.MarkupPercent != nil {
		out.MarkupPercent = *rec.MarkupPercent
	}
	if rec.DefaultCeilingHeight != nil {
		out.DefaultCeilingHeight = *rec.DefaultCeilingHeight
	}
	if rec.CoverageMultiplier != nil {
		out.CoverageMultiplier = *rec.CoverageMultiplier
	}
	if rec.DoorsPerGallon != nil {
		out.DoorsPerGallon = *rec.DoorsPerGallon
	}
	if rec.WindowsPerGallon != nil {
		out.WindowsPerGallon = *rec.WindowsPerGallon
	}
	return out
}

func summarizeQuotes(quotes []datasource.QuoteRecord, now time.Time) []transport.QuoteSummary {
	out := make([]transport.QuoteSummary, 0, len(quotes))
	for _, q := range quotes {
		age := 0
		if !q.CreatedAt.IsZero() {
			age = int(now.Sub(q.CreatedAt).Hours() / 24)
		}
		out = append(out, transport.QuoteSummary{
			CustomerName: q.CustomerName,
			Amount:       q.Amount,
			Status:       q.Status,
			AgeDays:      age,
			ProjectType:  q.ProjectType,
		})
	}
	return out
}

// computeMetrics aggregates quotes created inside the 30-day window. Win
// rate counts accepted over all windowed quotes; both ratios guard the
// zero-quote case.
func computeMetrics(quotes []datasource.QuoteRecord, now time.Time) transport.Metrics {
	cutoff := now.Add(-metricsWindow)

	var m transport.Metrics
	accepted := 0
	for _, q := range quotes {
		if q.CreatedAt.Before(cutoff) {
			continue
		}
		m.MonthlyQuoteCount++
		m.MonthlyRevenue += q.Amount
		if q.Status == "accepted" {
			accepted++
		}
	}
	if m.MonthlyQuoteCount > 0 {
		m.WinRatePercent = float64(accepted) / float64(m.MonthlyQuoteCount) * 100
		m.AverageJobSize = m.MonthlyRevenue / float64(m.MonthlyQuoteCount)
	}
	return m
}
