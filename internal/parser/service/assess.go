package service

import "paintquote_backend/internal/quote"

// Quality assessment: confidence is the share of the expected field set that
// is populated, missing_fields covers the four critical gaps, and the
// clarification questions cover the five most business-critical ones in a
// fixed, stable order.

// expectedFieldCount is the size of the recognized field set confidence is
// measured against.
const expectedFieldCount = 20

func countPopulated(d *quote.ParsedQuoteData) int {
	n := 0
	for _, set := range []bool{
		d.CustomerName != "",
		d.PropertyAddress != "",
		d.ProjectType != "",
		d.CeilingIncluded != nil,
		d.DoorsIncluded != nil,
		d.TrimIncluded != nil,
		d.WindowsIncluded != nil,
		d.PrimerIncluded != nil,
		d.LinearFeet != nil,
		d.WallHeightFt != nil,
		d.WallsSqft != nil,
		d.CeilingsSqft != nil,
		d.TrimSqft != nil,
		d.DoorsCount != nil,
		d.WindowsCount != nil,
		d.PaintBrand != "",
		d.PaintSheen != "",
		d.PaintCostPerGallon != nil,
		d.LaborCostPerSqft != nil || d.WallLaborRate != nil || d.CeilingLaborRate != nil,
		d.MarkupPercent != nil,
	} {
		if set {
			n++
		}
	}
	return n
}

// assess fills the derived metadata on the final record.
func assess(d *quote.ParsedQuoteData) {
	d.ConfidenceScore = float64(countPopulated(d)) / expectedFieldCount * 100

	d.MissingFields = d.MissingFields[:0]
	if d.CustomerName == "" {
		d.MissingFields = append(d.MissingFields, "Customer name")
	}
	if d.PropertyAddress == "" {
		d.MissingFields = append(d.MissingFields, "Property address")
	}
	if d.WallsSqft == nil && d.CalculatedWallAreaSqft == nil {
		d.MissingFields = append(d.MissingFields, "Wall square footage")
	}
	if d.LaborCostPerSqft == nil && d.WallLaborRate == nil && d.CeilingLaborRate == nil {
		d.MissingFields = append(d.MissingFields, "Labor cost per square foot")
	}
}

// clarificationQuestions returns one question per business-critical gap, in
// fixed order.
func clarificationQuestions(d *quote.ParsedQuoteData) []string {
	var questions []string
	if d.CustomerName == "" {
		questions = append(questions, "What is the customer's name?")
	}
	if d.PropertyAddress == "" {
		questions = append(questions, "What is the property address?")
	}
	if d.WallsSqft == nil && d.LinearFeet == nil {
		questions = append(questions, "What are the wall measurements (square footage, or linear feet plus wall height)?")
	}
	if d.LaborCostPerSqft == nil && d.WallLaborRate == nil && d.CeilingLaborRate == nil {
		questions = append(questions, "What labor rate should I use (per square foot)?")
	}
	if d.PaintCostPerGallon == nil {
		questions = append(questions, "Which paint are you using, and what does it cost per gallon?")
	}
	return questions
}
