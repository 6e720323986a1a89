package quote

// Merge folds a newly extracted record into an accumulated one. The policy
// is last-write-wins per field: a non-empty value from the new turn replaces
// the accumulated value, and fields the new turn did not mention keep their
// accumulated value. Nothing is ever cleared by a turn that is silent about
// a field.
//
// Derived metadata (confidence, missing fields, assumptions, notes) is taken
// wholesale from the newer record when present, since it describes the most
// recent parse rather than any single field.
func Merge(acc, next *ParsedQuoteData) *ParsedQuoteData {
	if acc == nil {
		acc = &ParsedQuoteData{}
	}
	if next == nil {
		return acc
	}
	out := *acc

	mergeString(&out.CustomerName, next.CustomerName)
	mergeString(&out.PropertyAddress, next.PropertyAddress)
	mergeString(&out.ProjectType, next.ProjectType)

	mergeBool(&out.CeilingIncluded, next.CeilingIncluded)
	mergeBool(&out.DoorsIncluded, next.DoorsIncluded)
	mergeBool(&out.TrimIncluded, next.TrimIncluded)
	mergeBool(&out.WindowsIncluded, next.WindowsIncluded)
	mergeBool(&out.PrimerIncluded, next.PrimerIncluded)

	mergeFloat(&out.LinearFeet, next.LinearFeet)
	mergeFloat(&out.WallHeightFt, next.WallHeightFt)
	mergeFloat(&out.WallsSqft, next.WallsSqft)
	mergeFloat(&out.CeilingsSqft, next.CeilingsSqft)
	mergeFloat(&out.TrimSqft, next.TrimSqft)
	mergeInt(&out.DoorsCount, next.DoorsCount)
	mergeInt(&out.WindowsCount, next.WindowsCount)
	mergeFloat(&out.CalculatedWallAreaSqft, next.CalculatedWallAreaSqft)

	mergeString(&out.PaintBrand, next.PaintBrand)
	mergeString(&out.PaintProduct, next.PaintProduct)
	mergeString(&out.PaintSheen, next.PaintSheen)
	mergeFloat(&out.SpreadRateSqftPerGallon, next.SpreadRateSqftPerGallon)
	mergeFloat(&out.PaintCostPerGallon, next.PaintCostPerGallon)
	mergeString(&out.PrimerBrand, next.PrimerBrand)
	mergeString(&out.PrimerProduct, next.PrimerProduct)
	mergeFloat(&out.PrimerCostPerSqft, next.PrimerCostPerSqft)

	mergeFloat(&out.WallLaborRate, next.WallLaborRate)
	mergeFloat(&out.CeilingLaborRate, next.CeilingLaborRate)
	mergeFloat(&out.LaborCostPerSqft, next.LaborCostPerSqft)
	mergeFloat(&out.MarkupPercent, next.MarkupPercent)

	out.ProductChanges = mergeProductChanges(acc.ProductChanges, next.ProductChanges)
	out.RateAdjustments = mergeRateAdjustments(acc.RateAdjustments, next.RateAdjustments)

	if next.ConfidenceScore > 0 || next.MissingFields != nil || next.AssumptionsMade != nil {
		out.ConfidenceScore = next.ConfidenceScore
		out.MissingFields = next.MissingFields
		out.AssumptionsMade = next.AssumptionsMade
	}
	mergeString(&out.ProjectScopeNotes, next.ProjectScopeNotes)

	return &out
}

func mergeString(dst *string, src string) {
	if src != "" {
		*dst = src
	}
}

func mergeFloat(dst **float64, src *float64) {
	if src != nil {
		v := *src
		*dst = &v
	}
}

func mergeInt(dst **int, src *int) {
	if src != nil {
		v := *src
		*dst = &v
	}
}

func mergeBool(dst **bool, src *bool) {
	if src != nil {
		v := *src
		*dst = &v
	}
}

func mergeProductChanges(acc, next map[string]ProductChange) map[string]ProductChange {
	if len(acc) == 0 && len(next) == 0 {
		return nil
	}
	out := make(map[string]ProductChange, len(acc)+len(next))
	for surface, change := range acc {
		out[surface] = change
	}
	for surface, change := range next {
		merged := out[surface]
		mergeString(&merged.Brand, change.Brand)
		mergeString(&merged.Product, change.Product)
		mergeFloat(&merged.CostPerGallon, change.CostPerGallon)
		out[surface] = merged
	}
	return out
}

func mergeRateAdjustments(acc, next *RateAdjustments) *RateAdjustments {
	if acc.Empty() && next.Empty() {
		return nil
	}
	out := &RateAdjustments{}
	if acc != nil {
		*out = *acc
	}
	if next != nil {
		mergeFloat(&out.WallRate, next.WallRate)
		mergeFloat(&out.CeilingRate, next.CeilingRate)
		mergeFloat(&out.TrimRate, next.TrimRate)
		mergeFloat(&out.DoorRate, next.DoorRate)
		mergeFloat(&out.WindowRate, next.WindowRate)
		mergeFloat(&out.PrimingRate, next.PrimingRate)
	}
	return out
}
