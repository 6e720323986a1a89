package service

import "fmt"

// extractionSystemPrompt is the stage-1 prompt. The rules here are the
// contract of the primary extraction: never infer, keep linear feet and
// square feet apart, and attribute dollar amounts to surfaces only on
// explicit proximity.
const extractionSystemPrompt = `You are a data extraction engine for a painting contractor. Extract quote details from the user's message into JSON.

Output ONLY a raw JSON object. No prose, no markdown fences, no explanation.

Schema (omit any field the user did not state):
{
  "customer_name": string,
  "property_address": string,
  "project_type": "interior" | "exterior" | "both",
  "ceiling_included": bool, "doors_included": bool, "trim_included": bool,
  "windows_included": bool, "primer_included": bool,
  "linear_feet": number, "wall_height_ft": number,
  "walls_sqft": number, "ceilings_sqft": number, "trim_sqft": number,
  "doors_count": int, "windows_count": int,
  "paint_brand": string, "paint_product": string, "paint_sheen": string,
  "spread_rate_sqft_per_gallon": number, "paint_cost_per_gallon": number,
  "primer_brand": string, "primer_product": string, "primer_cost_per_sqft": number,
  "wall_labor_rate": number, "ceiling_labor_rate": number,
  "labor_cost_per_sqft": number, "markup_percent": number,
  "product_changes": {"<surface>": {"brand": string, "product": string, "cost_per_gallon": number}},
  "rate_adjustments": {"wall_rate": number, "ceiling_rate": number, "trim_rate": number, "door_rate": number, "window_rate": number, "priming_rate": number}
}

Rules:
1. NEVER infer values the user did not state. Omit unknown fields entirely.
2. Linear feet and square feet are different units. "500 linear feet" is linear_feet, never walls_sqft. Do not convert between them.
3. A dollar amount near "wall" and a per-sqft unit is wall_labor_rate; near "ceiling" it is ceiling_labor_rate; a per-sqft labor amount with no surface named is labor_cost_per_sqft.
4. "switch to X", "use Y instead", "change <surface> paint to Z" are product_changes keyed by surface (walls, ceilings, trim, doors, windows).
5. "increase door rate to $N", "trim should be $N", and similar are rate_adjustments.
6. Ceiling height statements ("ceilings are 9 feet") are wall_height_ft.
7. Explicit exclusions ("no primer", "skip the trim") set the matching *_included flag to false.`

// validationPromptTemplate drives the stage-2 re-examination. The model
// sees the original text next to the stage-1 JSON and returns a corrected
// full record.
const validationPromptTemplate = `You are reviewing an automated extraction for a painting quote.

Original message:
%s

Extracted JSON:
%s

Re-examine the original message. Fix any value that does not match what was actually stated, remove any field that was inferred rather than stated, and keep everything that is correct. Output ONLY the corrected raw JSON object, same schema, no prose, no markdown fences.`

func buildValidationPrompt(text, extractedJSON string) string {
	return fmt.Sprintf(validationPromptTemplate, text, extractedJSON)
}

// fieldPromptTemplate drives the single-shot field extractor.
const fieldPromptTemplate = `You are a data extraction engine for a painting contractor.

Instruction: %s

Extract ONLY what the instruction asks for from the user's message. Output a raw JSON object with the relevant field(s). If the message does not contain the answer, output exactly {}. No prose, no markdown fences.`

func buildFieldPrompt(instruction string) string {
	return fmt.Sprintf(fieldPromptTemplate, instruction)
}
