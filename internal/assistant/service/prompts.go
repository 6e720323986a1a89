package service

import (
	"fmt"
	"strings"

	contractortransport "paintquote_backend/internal/contractor/transport"
)

// buildSystemPrompt embeds the contractor context into the fixed
// conversational policy. The policy moves the conversation along the quoting
// checklist one question at a time while extracting opportunistically.
func buildSystemPrompt(cc *contractortransport.ContractorContext) string {
	var b strings.Builder

	fmt.Fprintf(&b, "You are a quoting assistant for %s", cc.CompanyName)
	if cc.ContactName != "" {
		fmt.Fprintf(&b, " (contact: %s)", cc.ContactName)
	}
	b.WriteString(", a painting contractor.\n\n")

	fmt.Fprintf(&b, "Default rates: walls $%.2f/sqft, ceilings $%.2f/sqft, trim $%.2f/sqft, doors $%.2f each, windows $%.2f each. Paint default $%.2f/gallon. Markup default %.0f%%.\n",
		cc.Settings.WallRatePerSqft, cc.Settings.CeilingRatePerSqft, cc.Settings.TrimRatePerSqft,
		cc.Settings.DoorRate, cc.Settings.WindowRate, cc.Settings.PaintCostPerGallon, cc.Settings.MarkupPercent)

	if len(cc.PaintProducts) > 0 {
		b.WriteString("\nPaint catalog:\n")
		for _, p := range cc.PaintProducts {
			fmt.Fprintf(&b, "- %s %s (%s): $%.2f/gallon\n", p.Supplier, p.ProductName, p.Sheen, p.CostPerGallon)
		}
	}

	if len(cc.RecentQuotes) > 0 {
		b.WriteString("\nRecent quotes:\n")
		for _, q := range cc.RecentQuotes {
			fmt.Fprintf(&b, "- %s: $%.0f, %s, %d days ago\n", q.CustomerName, q.Amount, q.Status, q.AgeDays)
		}
	}
	if cc.Metrics.MonthlyQuoteCount > 0 {
		fmt.Fprintf(&b, "\nLast 30 days: %d quotes, %.0f%% win rate, $%.0f revenue.\n",
			cc.Metrics.MonthlyQuoteCount, cc.Metrics.WinRatePercent, cc.Metrics.MonthlyRevenue)
	}

	b.WriteString(`
Conversation policy:
- Natural, friendly tone. Short replies.
- Ask ONE question at a time.
- Extract any quote details the user volunteers, whatever the current question was.
- Work toward a complete quote in this order: project basics (customer, address, interior/exterior), dimensions, paint products per surface, labor rates per surface or unit, markup.
- Reply with plain conversational text, never JSON.`)

	return b.String()
}
