package service

import (
	"context"
	"strings"
	"testing"

	"paintquote_backend/platform/logger"
)

func newFallbackService() *Service {
	return New(nil, logger.New("development"))
}

func TestParse_Fallback_LinearFeetScenario(t *testing.T) {
	input := "Cici at 9090 Hillside Drive. The house needs 500 linear feet of wall painted. " +
		"Use eggshell sherwin williams at $50/gal with a spread rate 350. Ceilings are 9 feet tall. " +
		"No primer. Labour included at $1.50/sqft. Add 20% markup."

	result := newFallbackService().Parse(context.Background(), input)

	if !result.Success {
		t.Fatalf("expected success, got %+v", result)
	}
	d := result.Data
	if d.CustomerName != "Cici" {
		t.Errorf("expected customer Cici, got %q", d.CustomerName)
	}
	if d.PropertyAddress != "9090 Hillside Drive" {
		t.Errorf("expected address 9090 Hillside Drive, got %q", d.PropertyAddress)
	}
	if d.LinearFeet == nil || *d.LinearFeet != 500 {
		t.Errorf("expected linear_feet 500, got %v", d.LinearFeet)
	}
	if d.WallHeightFt == nil || *d.WallHeightFt != 9 {
		t.Errorf("expected wall_height_ft 9, got %v", d.WallHeightFt)
	}
	if d.WallsSqft == nil || *d.WallsSqft != 4500 {
		t.Errorf("expected walls_sqft 4500 from enrichment, got %v", d.WallsSqft)
	}
	if d.PaintCostPerGallon == nil || *d.PaintCostPerGallon != 50 {
		t.Errorf("expected paint cost 50, got %v", d.PaintCostPerGallon)
	}
	if d.SpreadRateSqftPerGallon == nil || *d.SpreadRateSqftPerGallon != 350 {
		t.Errorf("expected spread rate 350, got %v", d.SpreadRateSqftPerGallon)
	}
	if d.LaborCostPerSqft == nil || *d.LaborCostPerSqft != 1.50 {
		t.Errorf("expected labor 1.50, got %v", d.LaborCostPerSqft)
	}
	if d.MarkupPercent == nil || *d.MarkupPercent != 20 {
		t.Errorf("expected markup 20, got %v", d.MarkupPercent)
	}
	if d.PrimerIncluded == nil || *d.PrimerIncluded {
		t.Errorf("expected primer excluded, got %v", d.PrimerIncluded)
	}
	if len(result.Warnings) == 0 {
		t.Error("expected the lower-accuracy fallback warning")
	}
}

func TestParse_Fallback_DirectSqftScenario(t *testing.T) {
	input := "John Smith, 123 Main Street. Interior only. 1200 sqft walls, 800 sqft ceilings. " +
		"Benjamin Moore paint at $45/gallon. $2.00 per square foot labor. 15% markup."

	result := newFallbackService().Parse(context.Background(), input)

	d := result.Data
	if d.CustomerName != "John Smith" || d.PropertyAddress != "123 Main Street" {
		t.Errorf("unexpected identity: %q / %q", d.CustomerName, d.PropertyAddress)
	}
	if d.WallsSqft == nil || *d.WallsSqft != 1200 {
		t.Errorf("expected walls_sqft 1200, got %v", d.WallsSqft)
	}
	if d.CeilingsSqft == nil || *d.CeilingsSqft != 800 {
		t.Errorf("expected ceilings_sqft 800, got %v", d.CeilingsSqft)
	}
	if d.PaintCostPerGallon == nil || *d.PaintCostPerGallon != 45 {
		t.Errorf("expected paint cost 45, got %v", d.PaintCostPerGallon)
	}
	if d.LaborCostPerSqft == nil || *d.LaborCostPerSqft != 2.00 {
		t.Errorf("expected labor 2.00, got %v", d.LaborCostPerSqft)
	}
	if d.MarkupPercent == nil || *d.MarkupPercent != 15 {
		t.Errorf("expected markup 15, got %v", d.MarkupPercent)
	}
	if d.ProjectType != "interior" {
		t.Errorf("expected interior, got %q", d.ProjectType)
	}
}

func TestParse_Fallback_VagueInputNeedsClarification(t *testing.T) {
	result := newFallbackService().Parse(context.Background(), "Just need a quote for some painting")

	if !result.NeedsClarification {
		t.Fatal("expected needs_clarification")
	}
	var mentionsName, mentionsAddress bool
	for _, q := range result.ClarificationQuestions {
		lower := strings.ToLower(q)
		if strings.Contains(lower, "name") || strings.Contains(lower, "customer") {
			mentionsName = true
		}
		if strings.Contains(lower, "address") || strings.Contains(lower, "property") {
			mentionsAddress = true
		}
	}
	if !mentionsName || !mentionsAddress {
		t.Errorf("expected questions about name and address, got %v", result.ClarificationQuestions)
	}
}

func TestParse_Fallback_RateAdjustmentScenario(t *testing.T) {
	input := "Mike Johnson, 555 Pine St. 1000 sqft walls at $1.60, 400 sqft ceilings at $1.30. " +
		"Switch to Benjamin Moore for walls. Doors should be $175 each."

	result := newFallbackService().Parse(context.Background(), input)

	d := result.Data
	if d.WallLaborRate == nil || *d.WallLaborRate != 1.60 {
		t.Errorf("expected wall_labor_rate 1.60, got %v", d.WallLaborRate)
	}
	if d.CeilingLaborRate == nil || *d.CeilingLaborRate != 1.30 {
		t.Errorf("expected ceiling_labor_rate 1.30, got %v", d.CeilingLaborRate)
	}
	change, ok := d.ProductChanges["walls"]
	if !ok || change.Brand != "Benjamin Moore" {
		t.Errorf("expected walls product change to Benjamin Moore, got %+v", d.ProductChanges)
	}
	if d.RateAdjustments == nil || d.RateAdjustments.DoorRate == nil || *d.RateAdjustments.DoorRate != 175 {
		t.Errorf("expected door rate adjustment 175, got %+v", d.RateAdjustments)
	}
}

func TestParse_Fallback_AsymmetricScopeDefaults(t *testing.T) {
	result := newFallbackService().Parse(context.Background(), "Paint the living room walls, 900 sqft walls")

	d := result.Data
	if d.CeilingIncluded == nil || !*d.CeilingIncluded {
		t.Errorf("ceilings default to included, got %v", d.CeilingIncluded)
	}
	for name, flag := range map[string]*bool{
		"doors":   d.DoorsIncluded,
		"trim":    d.TrimIncluded,
		"windows": d.WindowsIncluded,
		"primer":  d.PrimerIncluded,
	} {
		if flag == nil || *flag {
			t.Errorf("%s defaults to excluded, got %v", name, flag)
		}
	}

	excluded := newFallbackService().Parse(context.Background(), "900 sqft walls, no ceilings, include the doors and trim")
	if *excluded.Data.CeilingIncluded {
		t.Error("explicit exclusion should turn ceilings off")
	}
	if !*excluded.Data.DoorsIncluded || !*excluded.Data.TrimIncluded {
		t.Errorf("explicit inclusion should turn doors and trim on, got %v %v",
			excluded.Data.DoorsIncluded, excluded.Data.TrimIncluded)
	}
}

func TestParse_EmptyInputFails(t *testing.T) {
	result := newFallbackService().Parse(context.Background(), "   ")

	if result.Success {
		t.Fatal("expected success=false for empty input")
	}
	if !result.NeedsClarification || len(result.ClarificationQuestions) == 0 {
		t.Error("expected clarification questions for empty input")
	}
}

func TestParse_SymbolSoupCompletes(t *testing.T) {
	result := newFallbackService().Parse(context.Background(), "@#$%^&* ()!! ~~~")

	if !result.Success {
		t.Fatalf("symbol-only input must still complete, got %+v", result)
	}
	if !result.NeedsClarification {
		t.Error("expected high clarification need")
	}
}

func TestParse_VeryLongInputCompletes(t *testing.T) {
	input := "Cici at 9090 Hillside Drive. " + strings.Repeat("More detail about the job. ", 2000)

	result := newFallbackService().Parse(context.Background(), input)

	if !result.Success {
		t.Fatalf("long input must not error, got %+v", result)
	}
	if result.Data.CustomerName != "Cici" {
		t.Errorf("expected extraction to still work, got %q", result.Data.CustomerName)
	}
}

func TestExtractField_Fallback(t *testing.T) {
	svc := newFallbackService()

	fields := svc.ExtractField(context.Background(), "Sarah Lee at 42 Oak Avenue", "extract the customer name and address")
	if fields["customer_name"] != "Sarah Lee" || fields["property_address"] != "42 Oak Avenue" {
		t.Errorf("unexpected fields: %v", fields)
	}

	fields = svc.ExtractField(context.Background(), "it's the outside of the house", "is this interior, exterior, or both?")
	if fields["project_type"] != "exterior" {
		t.Errorf("expected exterior, got %v", fields)
	}

	fields = svc.ExtractField(context.Background(), "whatever you think", "what is the phase of the moon?")
	if len(fields) != 0 {
		t.Errorf("unknown instruction should yield empty map, got %v", fields)
	}
}
