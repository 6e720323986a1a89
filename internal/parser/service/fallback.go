package service

import (
	"context"
	"regexp"
	"strconv"
	"strings"

	"paintquote_backend/internal/quote"
)

// fallbackStrategy is the deterministic regex extractor used when no model
// backend is configured. It replicates the extraction contract with pattern
// rules and the documented asymmetric scope defaults: ceilings are painted
// unless excluded, doors/trim/windows are not unless called out, primer is
// not unless required.
type fallbackStrategy struct{}

func newFallbackStrategy() *fallbackStrategy { return &fallbackStrategy{} }

func (f *fallbackStrategy) Name() string { return strategyFallback }

const sqftUnit = `(?:sq\.?\s*ft\.?|sqft|square\s*(?:feet|foot|footage))`

var (
	reNameAt    = regexp.MustCompile(`^\s*([A-Z][A-Za-z.'-]*(?:\s+[A-Z][A-Za-z.'-]*)*)\s+at\s+(\d+\s+[A-Za-z0-9 .'-]+?)\s*(?:[.,;\n]|$)`)
	reNameComma = regexp.MustCompile(`^\s*([A-Z][A-Za-z.'-]*(?:\s+[A-Z][A-Za-z.'-]*)*),\s*(\d+\s+[A-Za-z0-9 .'-]+?)\s*(?:[.,;\n]|$)`)
	reNameLabel = regexp.MustCompile(`(?i)(?:customer|client|name)\s*(?:is|:)\s*([A-Za-z][A-Za-z .'-]+?)\s*(?:[.,;\n]|$)`)
	reAddrLabel = regexp.MustCompile(`(?i)(?:address|property|located at)\s*(?:is|:|at)?\s*(\d+\s+[A-Za-z0-9 .'-]+?)\s*(?:[.,;\n]|$)`)

	reLinearFeet  = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*linear\s*(?:feet|foot|ft)`)
	reWallHeightA = regexp.MustCompile(`(?i)(?:ceilings?|walls?)\s+(?:are|is)?\s*(\d+(?:\.\d+)?)\s*(?:feet|foot|ft)\b`)
	reWallHeightB = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*(?:feet|foot|ft)\s*(?:tall|high)?\s*(?:ceilings?|walls?)`)

	reWallsSqftA    = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*` + sqftUnit + `\s*(?:of\s+)?walls?`)
	reWallsSqftB    = regexp.MustCompile(`(?i)walls?\s*(?:are|is|:)?\s*(\d+(?:\.\d+)?)\s*` + sqftUnit)
	reCeilingsSqftA = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*` + sqftUnit + `\s*(?:of\s+)?ceilings?`)
	reCeilingsSqftB = regexp.MustCompile(`(?i)ceilings?\s*(?:are|is|:)?\s*(\d+(?:\.\d+)?)\s*` + sqftUnit)
	reTrimSqftA     = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*` + sqftUnit + `\s*(?:of\s+)?trim`)
	reTrimSqftB     = regexp.MustCompile(`(?i)trim\s*(?:is|:)?\s*(\d+(?:\.\d+)?)\s*` + sqftUnit)

	rePaintCost   = regexp.MustCompile(`(?i)\$?(\d+(?:\.\d+)?)\s*(?:/|per)\s*gal(?:lon)?`)
	reSpreadRateA = regexp.MustCompile(`(?i)spread\s*rate\s*(?:of|is|at|:)?\s*(\d+(?:\.\d+)?)`)
	reSpreadRateB = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*` + sqftUnit + `\s*(?:/|per)\s*gal(?:lon)?`)

	rePerSqftMoney = regexp.MustCompile(`(?i)\$(\d+(?:\.\d+)?)\s*(?:/|per)\s*` + sqftUnit)

	reWallRateAt    = regexp.MustCompile(`(?i)walls?\s+at\s+\$(\d+(?:\.\d+)?)`)
	reCeilingRateAt = regexp.MustCompile(`(?i)ceilings?\s+at\s+\$(\d+(?:\.\d+)?)`)

	reMarkupA = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*(?:%|percent)\s*markup`)
	reMarkupB = regexp.MustCompile(`(?i)markup\s*(?:of|at|to|is|:)?\s*(\d+(?:\.\d+)?)`)

	reDoorsCount   = regexp.MustCompile(`(?i)(\d+)\s+doors?\b`)
	reWindowsCount = regexp.MustCompile(`(?i)(\d+)\s+windows?\b`)
)

// Product-change patterns, tested in order. Run against the original text so
// brand names keep their casing.
var productChangePatterns = []struct {
	re *regexp.Regexp
	// group indexes for surface and brand captures
	surfaceGroup, brandGroup int
	defaultSurface           string
}{
	{regexp.MustCompile(`(?i)switch(?:ing)?\s+to\s+([A-Za-z][A-Za-z0-9 .'-]+?)\s+for\s+(?:the\s+)?(walls?|ceilings?|trim|doors?|windows?)`), 2, 1, ""},
	{regexp.MustCompile(`(?i)change\s+(?:the\s+)?(wall|ceiling|trim|door|window)\s+paint\s+to\s+([A-Za-z][A-Za-z0-9 .'-]+?)\s*(?:[.,;\n]|$)`), 1, 2, ""},
	{regexp.MustCompile(`(?i)use\s+([A-Za-z][A-Za-z0-9 .'-]+?)\s+instead(?:\s+(?:for|on)\s+(?:the\s+)?(walls?|ceilings?|trim|doors?|windows?))?`), 2, 1, quote.SurfaceWalls},
}

// Rate-adjustment patterns, a fixed ordered list tested independently. One
// input may populate several adjustments.
var rateAdjustmentPatterns = []struct {
	re    *regexp.Regexp
	apply func(*quote.RateAdjustments, float64)
}{
	{regexp.MustCompile(`(?i)doors?\s+(?:should\s+be|at)\s+\$?(\d+(?:\.\d+)?)`), func(r *quote.RateAdjustments, v float64) { r.DoorRate = quote.Float(v) }},
	{regexp.MustCompile(`(?i)door\s+rate\s+to\s+\$?(\d+(?:\.\d+)?)`), func(r *quote.RateAdjustments, v float64) { r.DoorRate = quote.Float(v) }},
	{regexp.MustCompile(`(?i)windows?\s+(?:should\s+be|at)\s+\$?(\d+(?:\.\d+)?)`), func(r *quote.RateAdjustments, v float64) { r.WindowRate = quote.Float(v) }},
	{regexp.MustCompile(`(?i)window\s+rate\s+to\s+\$?(\d+(?:\.\d+)?)`), func(r *quote.RateAdjustments, v float64) { r.WindowRate = quote.Float(v) }},
	{regexp.MustCompile(`(?i)trim\s+(?:should\s+be|at)\s+\$?(\d+(?:\.\d+)?)`), func(r *quote.RateAdjustments, v float64) { r.TrimRate = quote.Float(v) }},
	{regexp.MustCompile(`(?i)trim\s+rate\s+to\s+\$?(\d+(?:\.\d+)?)`), func(r *quote.RateAdjustments, v float64) { r.TrimRate = quote.Float(v) }},
	{regexp.MustCompile(`(?i)wall\s+rate\s+to\s+\$?(\d+(?:\.\d+)?)`), func(r *quote.RateAdjustments, v float64) { r.WallRate = quote.Float(v) }},
	{regexp.MustCompile(`(?i)ceiling\s+rate\s+to\s+\$?(\d+(?:\.\d+)?)`), func(r *quote.RateAdjustments, v float64) { r.CeilingRate = quote.Float(v) }},
	{regexp.MustCompile(`(?i)priming\s+(?:rate\s+)?(?:should\s+be|at|to)\s+\$?(\d+(?:\.\d+)?)`), func(r *quote.RateAdjustments, v float64) { r.PrimingRate = quote.Float(v) }},
}

var knownBrands = []struct{ needle, brand string }{
	{"sherwin williams", "Sherwin Williams"},
	{"sherwin-williams", "Sherwin Williams"},
	{"benjamin moore", "Benjamin Moore"},
	{"dunn edwards", "Dunn Edwards"},
	{"dunn-edwards", "Dunn Edwards"},
	{"behr", "Behr"},
	{"valspar", "Valspar"},
	{"ppg", "PPG"},
	{"kilz", "Kilz"},
}

// Checked in order so "semi-gloss" wins over "gloss".
var knownSheens = []string{"eggshell", "semi-gloss", "semigloss", "satin", "gloss", "flat", "matte"}

func (f *fallbackStrategy) Primary(_ context.Context, text string) (*quote.ParsedQuoteData, error) {
	data := &quote.ParsedQuoteData{}
	lower := strings.ToLower(text)

	extractNameAddress(text, data)
	extractMeasurements(text, data)
	extractPaintSpec(text, lower, data)
	extractRates(text, data)
	extractScopeFlags(lower, data)
	extractChangeRequests(text, data)

	return data, nil
}

// Validate is a no-op in fallback mode; there is no second opinion to ask.
func (f *fallbackStrategy) Validate(_ context.Context, _ string, draft *quote.ParsedQuoteData) (*quote.ParsedQuoteData, error) {
	return draft, nil
}

func extractNameAddress(text string, data *quote.ParsedQuoteData) {
	for _, re := range []*regexp.Regexp{reNameAt, reNameComma} {
		if m := re.FindStringSubmatch(text); m != nil {
			data.CustomerName = strings.TrimSpace(m[1])
			data.PropertyAddress = strings.TrimSpace(m[2])
			return
		}
	}
	if m := reNameLabel.FindStringSubmatch(text); m != nil {
		data.CustomerName = strings.TrimSpace(m[1])
	}
	if m := reAddrLabel.FindStringSubmatch(text); m != nil {
		data.PropertyAddress = strings.TrimSpace(m[1])
	}
}

func extractMeasurements(text string, data *quote.ParsedQuoteData) {
	data.LinearFeet = matchFloat(reLinearFeet, text)
	if data.WallHeightFt = matchFloat(reWallHeightA, text); data.WallHeightFt == nil {
		data.WallHeightFt = matchFloat(reWallHeightB, text)
	}

	data.WallsSqft = matchFirstFloat(text, reWallsSqftA, reWallsSqftB)
	data.CeilingsSqft = matchFirstFloat(text, reCeilingsSqftA, reCeilingsSqftB)
	data.TrimSqft = matchFirstFloat(text, reTrimSqftA, reTrimSqftB)

	if v := matchFloat(reDoorsCount, text); v != nil {
		data.DoorsCount = quote.Int(int(*v))
	}
	if v := matchFloat(reWindowsCount, text); v != nil {
		data.WindowsCount = quote.Int(int(*v))
	}
}

func extractPaintSpec(text, lower string, data *quote.ParsedQuoteData) {
	for _, b := range knownBrands {
		if strings.Contains(lower, b.needle) {
			data.PaintBrand = b.brand
			break
		}
	}
	for _, sheen := range knownSheens {
		if strings.Contains(lower, sheen) {
			data.PaintSheen = sheen
			break
		}
	}

	// Spread rate first so "350 sqft per gallon" is not read as paint cost.
	if data.SpreadRateSqftPerGallon = matchFloat(reSpreadRateA, text); data.SpreadRateSqftPerGallon == nil {
		data.SpreadRateSqftPerGallon = matchFloat(reSpreadRateB, text)
	}
	data.PaintCostPerGallon = matchFloat(rePaintCost, text)
}

// extractRates attributes per-sqft dollar amounts by phrase proximity: a
// nearby "wall" or "ceiling" makes it a per-surface labor rate, a nearby
// "primer" makes it the primer cost, anything else is the general labor
// rate. Surface words are checked first so "wall labor at $2/sqft" lands on
// the surface rate.
func extractRates(text string, data *quote.ParsedQuoteData) {
	lower := strings.ToLower(text)
	for _, m := range rePerSqftMoney.FindAllStringSubmatchIndex(lower, -1) {
		value, err := strconv.ParseFloat(lower[m[2]:m[3]], 64)
		if err != nil {
			continue
		}
		window := proximityWindow(lower, m[0], m[1])
		switch {
		case strings.Contains(window, "wall"):
			data.WallLaborRate = quote.Float(value)
		case strings.Contains(window, "ceiling"):
			data.CeilingLaborRate = quote.Float(value)
		case strings.Contains(window, "labor") || strings.Contains(window, "labour"):
			data.LaborCostPerSqft = quote.Float(value)
		case strings.Contains(window, "primer") || strings.Contains(window, "priming"):
			data.PrimerCostPerSqft = quote.Float(value)
		default:
			data.LaborCostPerSqft = quote.Float(value)
		}
	}

	if v := matchFloat(reWallRateAt, text); v != nil {
		data.WallLaborRate = v
	}
	if v := matchFloat(reCeilingRateAt, text); v != nil {
		data.CeilingLaborRate = v
	}

	if data.MarkupPercent = matchFloat(reMarkupA, text); data.MarkupPercent == nil {
		data.MarkupPercent = matchFloat(reMarkupB, text)
	}
}

func proximityWindow(lower string, start, end int) string {
	from := start - 30
	if from < 0 {
		from = 0
	}
	to := end + 20
	if to > len(lower) {
		to = len(lower)
	}
	return lower[from:to]
}

// extractScopeFlags applies the asymmetric business defaults and flips them
// on explicit include/exclude language.
func extractScopeFlags(lower string, data *quote.ParsedQuoteData) {
	data.CeilingIncluded = quote.Bool(!excludeMention(lower, "ceiling") && !strings.Contains(lower, "walls only"))
	data.DoorsIncluded = quote.Bool(includeMention(lower, "door") && !excludeMention(lower, "door"))
	data.TrimIncluded = quote.Bool(includeMention(lower, "trim") && !excludeMention(lower, "trim"))
	data.WindowsIncluded = quote.Bool(includeMention(lower, "window") && !excludeMention(lower, "window"))
	data.PrimerIncluded = quote.Bool(primerMention(lower) && !excludeMention(lower, "primer"))

	switch {
	case strings.Contains(lower, "interior") && strings.Contains(lower, "exterior"),
		strings.Contains(lower, "inside and out"):
		data.ProjectType = quote.ProjectBoth
	case strings.Contains(lower, "exterior"), strings.Contains(lower, "outside"):
		data.ProjectType = quote.ProjectExterior
	default:
		data.ProjectType = quote.ProjectInterior
	}
}

var (
	reExclude = `(?i)(?:no|without|exclud(?:e|ing)|skip(?:ping)?|not?\s+(?:painting|doing|including))\s+(?:the\s+|any\s+)?%s`
	reInclude = `(?i)(?:includ(?:e|ing)|paint(?:ing)?|with|plus|and|do(?:ing)?)\s+(?:the\s+)?%ss?\b|%ss?\s+(?:are\s+)?included`
)

func excludeMention(lower, subject string) bool {
	return regexp.MustCompile(strings.ReplaceAll(reExclude, "%s", subject)).MatchString(lower)
}

func includeMention(lower, subject string) bool {
	return regexp.MustCompile(strings.ReplaceAll(reInclude, "%s", subject)).MatchString(lower)
}

func primerMention(lower string) bool {
	for _, phrase := range []string{"with primer", "include primer", "including primer", "needs primer", "need primer", "requires primer", "primer required", "primer included", "apply primer", "use primer", "using primer", "primer coat"} {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}

func extractChangeRequests(text string, data *quote.ParsedQuoteData) {
	for _, p := range productChangePatterns {
		m := p.re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		surface := p.defaultSurface
		if p.surfaceGroup < len(m) && m[p.surfaceGroup] != "" {
			surface = normalizeSurface(m[p.surfaceGroup])
		}
		if surface == "" {
			continue
		}
		if data.ProductChanges == nil {
			data.ProductChanges = map[string]quote.ProductChange{}
		}
		change := data.ProductChanges[surface]
		change.Brand = strings.TrimSpace(m[p.brandGroup])
		data.ProductChanges[surface] = change
	}

	adjustments := &quote.RateAdjustments{}
	for _, p := range rateAdjustmentPatterns {
		m := p.re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			p.apply(adjustments, v)
		}
	}
	if !adjustments.Empty() {
		data.RateAdjustments = adjustments
	}
}

func normalizeSurface(raw string) string {
	switch strings.TrimSuffix(strings.ToLower(strings.TrimSpace(raw)), "s") {
	case "wall":
		return quote.SurfaceWalls
	case "ceiling":
		return quote.SurfaceCeilings
	case "trim":
		return quote.SurfaceTrim
	case "door":
		return quote.SurfaceDoors
	case "window":
		return quote.SurfaceWindows
	}
	return ""
}

func matchFloat(re *regexp.Regexp, text string) *float64 {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return nil
	}
	return quote.Float(v)
}

func matchFirstFloat(text string, res ...*regexp.Regexp) *float64 {
	for _, re := range res {
		if v := matchFloat(re, text); v != nil {
			return v
		}
	}
	return nil
}
