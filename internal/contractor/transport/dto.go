// Package transport defines the contractor context DTOs.
package transport

import (
	"time"

	"paintquote_backend/internal/datasource"
)

// Settings is the fully populated pricing-defaults snapshot. Unlike the
// stored record, every field here is guaranteed non-zero-value-or-default:
// the loader fills any gap with hard-coded defaults so downstream consumers
// never branch on missing settings.
type Settings struct {
	WallRatePerSqft      float64 `json:"wall_rate_per_sqft" yaml:"wall_rate_per_sqft"`
	CeilingRatePerSqft   float64 `json:"ceiling_rate_per_sqft" yaml:"ceiling_rate_per_sqft"`
	TrimRatePerSqft      float64 `json:"trim_rate_per_sqft" yaml:"trim_rate_per_sqft"`
	DoorRate             float64 `json:"door_rate" yaml:"door_rate"`
	WindowRate           float64 `json:"window_rate" yaml:"window_rate"`
	PrimingRatePerSqft   float64 `json:"priming_rate_per_sqft" yaml:"priming_rate_per_sqft"`
	PaintCostPerGallon   float64 `json:"paint_cost_per_gallon" yaml:"paint_cost_per_gallon"`
	PrimerCostPerGallon  float64 `json:"primer_cost_per_gallon" yaml:"primer_cost_per_gallon"`
	TaxRatePercent       float64 `json:"tax_rate_percent" yaml:"tax_rate_percent"`
	TaxOnMaterialsOnly   bool    `json:"tax_on_materials_only" yaml:"tax_on_materials_only"`
	OverheadPercent      float64 `json:"overhead_percent" yaml:"overhead_percent"`
	MarkupPercent        float64 `json:"markup_percent" yaml:"markup_percent"`
	DefaultCeilingHeight float64 `json:"default_ceiling_height" yaml:"default_ceiling_height"`
	CoverageMultiplier   float64 `json:"coverage_multiplier" yaml:"coverage_multiplier"`
	DoorsPerGallon       float64 `json:"doors_per_gallon" yaml:"doors_per_gallon"`
	WindowsPerGallon     float64 `json:"windows_per_gallon" yaml:"windows_per_gallon"`
}

// QuoteSummary is a lightweight quote line used as conversational context.
type QuoteSummary struct {
	CustomerName string  `json:"customer_name"`
	Amount       float64 `json:"amount"`
	Status       string  `json:"status"`
	AgeDays      int     `json:"age_days"`
	ProjectType  string  `json:"project_type,omitempty"`
}

// Metrics are aggregates over the last 30 days of quotes, computed once at
// load time.
type Metrics struct {
	WinRatePercent    float64 `json:"win_rate_percent"`
	AverageJobSize    float64 `json:"average_job_size"`
	MonthlyRevenue    float64 `json:"monthly_revenue"`
	MonthlyQuoteCount int     `json:"monthly_quote_count"`
}

// ContractorContext is a read-mostly snapshot of one contractor's pricing
// defaults, catalog, and recent history, created fresh per conversation and
// never mutated except by explicit reload.
type ContractorContext struct {
	CompanyID    string `json:"company_id"`
	CompanyName  string `json:"company_name"`
	ContactName  string `json:"contact_name,omitempty"`
	BusinessType string `json:"business_type,omitempty"`

	Settings      Settings                  `json:"settings"`
	PaintProducts []datasource.PaintProduct `json:"paint_products"`
	RecentQuotes  []QuoteSummary            `json:"recent_quotes"`
	Metrics       Metrics                   `json:"metrics"`

	LoadedAt time.Time `json:"loaded_at"`
}
