// Package datasource provides the HTTP client for the quotes/companies data
// API. The core treats this API as an opaque record store: reads feed the
// contractor context loader, writes carry the assistant's paint actions.
package datasource

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Client is an HTTP client for the quotes data API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// Config configures the data API client.
type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// NewClient creates a new data API client.
func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}

	return &Client{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Company is the company profile record.
type Company struct {
	ID           string `json:"id"`
	CompanyName  string `json:"company_name"`
	ContactName  string `json:"contact_name"`
	BusinessType string `json:"business_type"`
}

// SettingsRecord carries the pricing settings as stored. Every field is a
// pointer because the store may hold a partial record; the contractor loader
// fills gaps with hard-coded defaults.
type SettingsRecord struct {
	WallRatePerSqft      *float64 `json:"wall_rate_per_sqft"`
	CeilingRatePerSqft   *float64 `json:"ceiling_rate_per_sqft"`
	TrimRatePerSqft      *float64 `json:"trim_rate_per_sqft"`
	DoorRate             *float64 `json:"door_rate"`
	WindowRate           *float64 `json:"window_rate"`
	PrimingRatePerSqft   *float64 `json:"priming_rate_per_sqft"`
	PaintCostPerGallon   *float64 `json:"paint_cost_per_gallon"`
	PrimerCostPerGallon  *float64 `json:"primer_cost_per_gallon"`
	TaxRatePercent       *float64 `json:"tax_rate_percent"`
	TaxOnMaterialsOnly   *bool    `json:"tax_on_materials_only"`
	OverheadPercent      *float64 `json:"overhead_percent"`
	MarkupPercent        *float64 `json:"markup_percent"`
	DefaultCeilingHeight *float64 `json:"default_ceiling_height"`
	CoverageMultiplier   *float64 `json:"coverage_multiplier"`
	DoorsPerGallon       *float64 `json:"doors_per_gallon"`
	WindowsPerGallon     *float64 `json:"windows_per_gallon"`
}

// PaintProduct is a catalog entry. List order is display order.
type PaintProduct struct {
	ID            string  `json:"id"`
	Category      string  `json:"category"`
	Supplier      string  `json:"supplier"`
	ProductName   string  `json:"product_name"`
	CostPerGallon float64 `json:"cost_per_gallon"`
	Sheen         string  `json:"sheen"`
}

// QuoteRecord is a lightweight quote summary from the store.
type QuoteRecord struct {
	ID           string    `json:"id"`
	CustomerName string    `json:"customer_name"`
	Amount       float64   `json:"amount"`
	Status       string    `json:"status"`
	ProjectType  string    `json:"project_type"`
	CreatedAt    time.Time `json:"created_at"`
}

// GetCompany fetches the company profile.
func (c *Client) GetCompany(ctx context.Context, companyID string) (*Company, error) {
	var company Company
	if err := c.getJSON(ctx, "/api/companies/"+url.PathEscape(companyID), &company); err != nil {
		return nil, err
	}
	return &company, nil
}

// GetSettings fetches the pricing settings record, possibly partial.
func (c *Client) GetSettings(ctx context.Context, companyID string) (*SettingsRecord, error) {
	var settings SettingsRecord
	if err := c.getJSON(ctx, "/api/companies/"+url.PathEscape(companyID)+"/settings", &settings); err != nil {
		return nil, err
	}
	return &settings, nil
}

// ListPaintProducts fetches the paint-product catalog in display order.
func (c *Client) ListPaintProducts(ctx context.Context, companyID string) ([]PaintProduct, error) {
	var products []PaintProduct
	if err := c.getJSON(ctx, "/api/companies/"+url.PathEscape(companyID)+"/paint-products", &products); err != nil {
		return nil, err
	}
	return products, nil
}

// ListRecentQuotes fetches up to limit quotes, most recent first.
func (c *Client) ListRecentQuotes(ctx context.Context, companyID string, limit int) ([]QuoteRecord, error) {
	path := fmt.Sprintf("/api/quotes?companyId=%s&limit=%d", url.QueryEscape(companyID), limit)
	var quotes []QuoteRecord
	if err := c.getJSON(ctx, path, &quotes); err != nil {
		return nil, err
	}
	return quotes, nil
}

// UpdateProductPrice updates one paint product's cost per gallon.
func (c *Client) UpdateProductPrice(ctx context.Context, companyID, productID string, costPerGallon float64) error {
	path := "/api/companies/" + url.PathEscape(companyID) + "/paint-products/" + url.PathEscape(productID)
	payload := map[string]float64{"cost_per_gallon": costPerGallon}
	return c.send(ctx, http.MethodPut, path, payload, nil)
}

// CreatePaintProduct adds a new favorite product to the catalog.
func (c *Client) CreatePaintProduct(ctx context.Context, companyID string, product PaintProduct) (*PaintProduct, error) {
	path := "/api/companies/" + url.PathEscape(companyID) + "/paint-products"
	var created PaintProduct
	if err := c.send(ctx, http.MethodPost, path, product, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) getJSON(ctx context.Context, path string, out interface{}) error {
	return c.send(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) send(ctx context.Context, method, path string, payload, out interface{}) error {
	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("marshal request for %s: %w", path, err)
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("create request for %s: %w", path, err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s failed: %w", method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("%s %s returned %d: %s", method, path, resp.StatusCode, string(raw))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response from %s: %w", path, err)
	}
	return nil
}
