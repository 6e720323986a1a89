package service

import (
	"context"
	"sort"
	"strings"

	"paintquote_backend/internal/assistant/transport"
	"paintquote_backend/internal/datasource"
	"paintquote_backend/internal/quote"
)

// CatalogWriter is the subset of the data API client the assistant writes
// through when dispatching paint actions.
type CatalogWriter interface {
	UpdateProductPrice(ctx context.Context, companyID, productID string, costPerGallon float64) error
	CreatePaintProduct(ctx context.Context, companyID string, product datasource.PaintProduct) (*datasource.PaintProduct, error)
}

// dispatchActions turns this turn's product changes into catalog writes: a
// change that resolves to an existing product becomes a price update, an
// unknown product with a price becomes a new favorite. Each action succeeds
// or fails on its own; failures are recorded, never propagated, and the
// accumulated extraction is untouched either way.
func (s *Service) dispatchActions(ctx context.Context, state *ConversationState, extracted *quote.ParsedQuoteData) []transport.PaintActionResult {
	if extracted == nil || len(extracted.ProductChanges) == 0 {
		return nil
	}

	surfaces := make([]string, 0, len(extracted.ProductChanges))
	for surface := range extracted.ProductChanges {
		surfaces = append(surfaces, surface)
	}
	sort.Strings(surfaces)

	var results []transport.PaintActionResult
	for _, surface := range surfaces {
		change := extracted.ProductChanges[surface]
		if change.CostPerGallon == nil {
			// A product swap with no price is conversational only;
			// there is nothing to write.
			continue
		}

		target := matchProduct(state.Context.PaintProducts, change)
		if target != nil {
			result := transport.PaintActionResult{
				Type:   transport.ActionPriceUpdate,
				Target: target.ProductName,
				Status: transport.ActionPending,
			}
			if err := s.catalog.UpdateProductPrice(ctx, state.CompanyID, target.ID, *change.CostPerGallon); err != nil {
				result.Status = transport.ActionFailed
				result.Error = err.Error()
			} else {
				result.Status = transport.ActionSuccess
			}
			s.log.PaintAction(result.Type, result.Target, result.Status)
			results = append(results, result)
			continue
		}

		if change.Brand == "" && change.Product == "" {
			continue
		}
		name := strings.TrimSpace(change.Brand + " " + change.Product)
		result := transport.PaintActionResult{
			Type:   transport.ActionSaveNewFavorite,
			Target: name,
			Status: transport.ActionPending,
		}
		_, err := s.catalog.CreatePaintProduct(ctx, state.CompanyID, datasource.PaintProduct{
			Category:      surface,
			Supplier:      change.Brand,
			ProductName:   change.Product,
			CostPerGallon: *change.CostPerGallon,
		})
		if err != nil {
			result.Status = transport.ActionFailed
			result.Error = err.Error()
		} else {
			result.Status = transport.ActionSuccess
		}
		s.log.PaintAction(result.Type, result.Target, result.Status)
		results = append(results, result)
	}
	return results
}

// matchProduct resolves a product change against the catalog by fuzzy
// name/supplier match: token overlap between the change's brand+product and
// each entry's supplier+name, best score wins.
func matchProduct(catalog []datasource.PaintProduct, change quote.ProductChange) *datasource.PaintProduct {
	query := tokens(change.Brand + " " + change.Product)
	if len(query) == 0 {
		return nil
	}

	var best *datasource.PaintProduct
	bestScore := 0
	for i := range catalog {
		candidate := tokens(catalog[i].Supplier + " " + catalog[i].ProductName)
		score := overlap(query, candidate)
		if score > bestScore {
			bestScore = score
			best = &catalog[i]
		}
	}
	return best
}

func tokens(s string) []string {
	return strings.Fields(strings.ToLower(s))
}

func overlap(a, b []string) int {
	set := make(map[string]bool, len(b))
	for _, t := range b {
		set[t] = true
	}
	n := 0
	for _, t := range a {
		if set[t] {
			n++
		}
	}
	return n
}
