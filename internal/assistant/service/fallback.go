package service

import "strings"

// Reply confidence levels: a canned keyword reply is reported well below a
// successful model reply.
const (
	modelReplyConfidence  = 0.9
	cannedReplyConfidence = 0.3
)

// cannedReply picks a keyword-triggered response when the model call for the
// conversational reply fails. The conversation must never dead-end.
func cannedReply(message string) string {
	lower := strings.ToLower(message)
	switch {
	case strings.Contains(lower, "price") || strings.Contains(lower, "quote") || strings.Contains(lower, "cost") || strings.Contains(lower, "estimate"):
		return "I can put a quote together for you. Could you tell me the customer's name, the property address, and roughly how much area needs painting?"
	case strings.Contains(lower, "paint") || strings.Contains(lower, "color") || strings.Contains(lower, "colour") || strings.Contains(lower, "sheen"):
		return "Happy to help with paint choices. Which product are you planning to use, and do you know its cost per gallon?"
	case strings.Contains(lower, "room") || strings.Contains(lower, "house") || strings.Contains(lower, "wall") || strings.Contains(lower, "ceiling"):
		return "Got it. Can you give me the measurements — square footage of the walls, or linear feet plus ceiling height?"
	default:
		return "I'm here to help you build painting quotes. Tell me about the job — customer, address, and what needs painting — and I'll take it from there."
	}
}
