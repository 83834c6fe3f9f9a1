package model

// EntityLabel is the semantic category attached to a recognized span.
type EntityLabel string

const (
	LabelPerson EntityLabel = "PERSON"
	LabelOrg    EntityLabel = "ORG"
	LabelGPE    EntityLabel = "GPE"
	LabelLoc    EntityLabel = "LOC"
	LabelDate   EntityLabel = "DATE"
	LabelTime   EntityLabel = "TIME"
	LabelMoney  EntityLabel = "MONEY"
)

// EntitySpan is a contiguous substring of the input text tagged with a
// semantic category by the entity recognizer.
type EntitySpan struct {
	Text  string      `json:"text"`
	Label EntityLabel `json:"label"`
}

// CollapseSpans deduplicates spans by exact text within a label while keeping
// first-occurrence order. Headline fields pick the first span of a label, so
// keeping occurrence order makes that selection stable across runs.
func CollapseSpans(spans []EntitySpan) []EntitySpan {
	seen := make(map[EntitySpan]bool, len(spans))
	collapsed := make([]EntitySpan, 0, len(spans))
	for _, span := range spans {
		if seen[span] {
			continue
		}
		seen[span] = true
		collapsed = append(collapsed, span)
	}
	return collapsed
}

// FilterSpans returns the texts of all spans carrying one of the given
// labels, in the order the spans appear.
func FilterSpans(spans []EntitySpan, labels ...EntityLabel) []string {
	var texts []string
	for _, span := range spans {
		for _, label := range labels {
			if span.Label == label {
				texts = append(texts, span.Text)
				break
			}
		}
	}
	return texts
}
