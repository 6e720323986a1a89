package service

import (
	"context"
	"regexp"
	"strings"
)

// Single-shot field extraction, fallback path. Hand-written rules per known
// instruction type; unknown instructions return an empty map.

var (
	reNameAnd  = regexp.MustCompile(`(?i)^\s*([A-Za-z][A-Za-z .'-]*?)\s+and\s+(\d+\s+[A-Za-z0-9 .'-]+?)\s*$`)
	reStreetic = regexp.MustCompile(`(?i)\d+\s+[A-Za-z0-9 .'-]*\b(?:street|st|avenue|ave|drive|dr|road|rd|lane|ln|court|ct|boulevard|blvd|way|place|pl)\b`)
)

func (f *fallbackStrategy) ExtractField(_ context.Context, text, instruction string) (map[string]any, error) {
	inst := strings.ToLower(instruction)
	switch {
	case strings.Contains(inst, "name") && strings.Contains(inst, "address"):
		return extractNameAddressFields(text), nil
	case strings.Contains(inst, "interior") || strings.Contains(inst, "exterior") || strings.Contains(inst, "project type"):
		return classifyProjectType(text), nil
	}
	return map[string]any{}, nil
}

func extractNameAddressFields(text string) map[string]any {
	for _, re := range []*regexp.Regexp{reNameAnd, reNameAt, reNameComma} {
		if m := re.FindStringSubmatch(text); m != nil {
			return map[string]any{
				"customer_name":    strings.TrimSpace(m[1]),
				"property_address": strings.TrimSpace(m[2]),
			}
		}
	}
	// No separator pattern matched; a street-looking string is still an
	// address on its own.
	if loc := reStreetic.FindString(text); loc != "" {
		return map[string]any{"property_address": strings.TrimSpace(loc)}
	}
	return map[string]any{}
}

func classifyProjectType(text string) map[string]any {
	lower := strings.ToLower(text)
	switch {
	case strings.Contains(lower, "both"),
		strings.Contains(lower, "interior") && strings.Contains(lower, "exterior"),
		strings.Contains(lower, "inside and out"):
		return map[string]any{"project_type": "both"}
	case strings.Contains(lower, "exterior"), strings.Contains(lower, "outside"):
		return map[string]any{"project_type": "exterior"}
	case strings.Contains(lower, "interior"), strings.Contains(lower, "inside"):
		return map[string]any{"project_type": "interior"}
	}
	return map[string]any{}
}
