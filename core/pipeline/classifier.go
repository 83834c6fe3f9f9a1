package pipeline

import (
	"regexp"
	"strings"

	"github.com/siherrmann/crmfill/model"
)

// StageRule pairs a deal stage with the keyword set that signals it.
type StageRule struct {
	Stage    string
	Keywords []string
}

// StageRules is evaluated in list order: the first rule with any
// case-insensitive keyword hit anywhere in the text wins, regardless of
// where in the text the keyword appears.
var StageRules = []StageRule{
	{Stage: "Demo Scheduled", Keywords: []string{"demo", "walk-through", "walkthrough", "product demo"}},
	{Stage: "PoC", Keywords: []string{"poc", "proof of concept"}},
	{Stage: "Proposal", Keywords: []string{"proposal", "quote", "pricing", "estimate"}},
	{Stage: "Qualified", Keywords: []string{"interested", "evaluate", "evaluating"}},
}

// PainPointKeywords flag a sentence as describing a customer pain point.
var PainPointKeywords = []string{
	"need", "issue", "problem", "churn", "difficulty", "pain", "interested", "want", "looking for",
}

// NextActionKeywords flag a sentence as describing a follow-up action.
var NextActionKeywords = []string{
	"next", "follow up", "demo", "schedule", "meeting", "follow-up",
}

var (
	// titlePattern is case sensitive: lowercase occurrences of these role
	// words do not match.
	titlePattern = regexp.MustCompile(`Director|Manager|CTO|CEO|Lead|Head|VP|Founder|Officer`)

	emailPattern = regexp.MustCompile(`[\w.-]+@[\w.-]+\.\w+`)

	// phonePattern is deliberately loose: optional country code, then 1-4
	// groups of 2-4 digits, ending in a 3-4 digit group. It can match
	// unrelated digit runs that happen to fit this shape.
	phonePattern = regexp.MustCompile(`(\+\d{1,3}[-\s]?)?(\d{2,4}[-\s]?){1,4}\d{3,4}`)

	competitorPattern = regexp.MustCompile(`(?i)HubSpot|Salesforce|Zoho|Freshworks|Zendesk|Oracle`)
)

// DetectStage returns the deal stage of the first matching rule, or nil.
func DetectStage(text string) *string {
	lower := strings.ToLower(text)
	for _, rule := range StageRules {
		for _, keyword := range rule.Keywords {
			if strings.Contains(lower, keyword) {
				stage := rule.Stage
				return &stage
			}
		}
	}
	return nil
}

// DetectTitle returns the first role keyword found in the text, or nil.
func DetectTitle(text string) *string {
	if match := titlePattern.FindString(text); match != "" {
		return &match
	}
	return nil
}

// DetectEmail returns the first email-shaped substring, or nil.
func DetectEmail(text string) *string {
	if match := emailPattern.FindString(text); match != "" {
		return &match
	}
	return nil
}

// DetectPhone returns the first phone-shaped substring, or nil.
func DetectPhone(text string) *string {
	if match := phonePattern.FindString(text); match != "" {
		return &match
	}
	return nil
}

// DetectPainPoints returns every sentence containing a pain-point keyword,
// trimmed, in document order.
func DetectPainPoints(sentences []string) []string {
	var painPoints []string
	for _, sentence := range sentences {
		lower := strings.ToLower(sentence)
		for _, keyword := range PainPointKeywords {
			if strings.Contains(lower, keyword) {
				painPoints = append(painPoints, strings.TrimSpace(sentence))
				break
			}
		}
	}
	return painPoints
}

// DetectNextActions turns every sentence containing an action keyword into a
// NextAction. The owner is set when the sentence mentions the sales side;
// the due date comes from a date-like substring resolved independently.
// A sentence can be both a pain point and a next action.
func DetectNextActions(sentences []string, resolve ResolveDateFunc, owner string) []model.NextAction {
	var actions []model.NextAction
	for _, sentence := range sentences {
		lower := strings.ToLower(sentence)
		matched := false
		for _, keyword := range NextActionKeywords {
			if strings.Contains(lower, keyword) {
				matched = true
				break
			}
		}
		if !matched {
			continue
		}

		action := model.NextAction{
			Description: strings.TrimSpace(sentence),
			DueDate:     ResolveActionDate(sentence, resolve),
		}
		if strings.Contains(lower, "sales") || strings.Contains(lower, "rep") {
			action.Owner = &owner
		}
		actions = append(actions, action)
	}
	return actions
}

// DetectCompetitors returns competitor mentions deduplicated
// case-insensitively, in first-occurrence order.
func DetectCompetitors(text string) []string {
	matches := competitorPattern.FindAllString(text, -1)
	seen := make(map[string]bool, len(matches))
	var competitors []string
	for _, match := range matches {
		key := strings.ToLower(match)
		if seen[key] {
			continue
		}
		seen[key] = true
		competitors = append(competitors, match)
	}
	return competitors
}
