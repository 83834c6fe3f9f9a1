package pipeline

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/knights-analytics/hugot"
	"github.com/knights-analytics/hugot/pipelines"

	"github.com/siherrmann/crmfill/helper"
	"github.com/siherrmann/crmfill/model"
)

var (
	// dateSpanPattern and timeSpanPattern supplement span labels the NER
	// model does not emit. Money spans reuse FallbackMoneyPattern.
	dateSpanPattern = regexp.MustCompile(`(?i)\b(?:today|tomorrow|yesterday|next\s+(?:week|month|quarter|monday|tuesday|wednesday|thursday|friday|saturday|sunday)|(?:january|february|march|april|may|june|july|august|september|october|november|december)\s+\d{1,2}(?:st|nd|rd|th)?(?:,?\s*\d{4})?)\b`)
	timeSpanPattern = regexp.MustCompile(`(?i)\b\d{1,2}(?::\d{2})?\s*(?:am|pm)\b`)
)

// DefaultRecognizer creates an entity recognizer backed by a NER model.
// Uses distilbert-NER for named entity recognition of persons, organizations
// and locations. MONEY, DATE and TIME spans are supplemented from patterns
// because the model carries no such labels.
func DefaultRecognizer() (RecognizeFunc, error) {
	// Prepare model (download if needed)
	modelName := "KnightsAnalytics/distilbert-NER"
	modelPath, err := helper.PrepareModel(modelName, "model.onnx")
	if err != nil {
		return nil, err
	}

	// Initialize hugot session with Go backend
	session, err := hugot.NewGoSession()
	if err != nil {
		return nil, fmt.Errorf("failed to create hugot session: %w", err)
	}

	// Create token classification pipeline for NER
	config := hugot.TokenClassificationConfig{
		ModelPath: modelPath,
		Name:      "ner-pipeline",
		Options: []hugot.TokenClassificationOption{
			pipelines.WithSimpleAggregation(),
			pipelines.WithIgnoreLabels([]string{"O"}), // Ignore non-entity tokens
		},
	}
	nerPipeline, err := hugot.NewPipeline(session, config)
	if err != nil {
		if destroyErr := session.Destroy(); destroyErr != nil {
			return nil, fmt.Errorf("failed to create NER pipeline: %w (cleanup error: %v)", err, destroyErr)
		}
		return nil, fmt.Errorf("failed to create NER pipeline: %w", err)
	}

	return func(text string) ([]model.EntitySpan, error) {
		var spans []model.EntitySpan

		if strings.TrimSpace(text) != "" {
			result, err := nerPipeline.RunPipeline([]string{text})
			if err != nil {
				return nil, fmt.Errorf("failed to run NER: %w", err)
			}

			if len(result.Entities) > 0 {
				for _, entity := range result.Entities[0] {
					label, ok := mapEntityLabel(normalizeEntityType(entity.Entity))
					if !ok {
						continue
					}
					spans = append(spans, model.EntitySpan{
						Text:  strings.TrimSpace(entity.Word),
						Label: label,
					})
				}
			}
		}

		spans = append(spans, patternSpans(text)...)
		return spans, nil
	}, nil
}

// normalizeEntityType removes B- and I- prefixes from NER labels
func normalizeEntityType(label string) string {
	// Remove BIO tagging prefixes (B- for beginning, I- for inside)
	if strings.HasPrefix(label, "B-") {
		return label[2:]
	}
	if strings.HasPrefix(label, "I-") {
		return label[2:]
	}
	return label
}

// mapEntityLabel maps NER model labels onto the consumed label set.
// MISC has no place in a CRM record and is dropped.
func mapEntityLabel(label string) (model.EntityLabel, bool) {
	switch label {
	case "PER", "PERSON":
		return model.LabelPerson, true
	case "ORG", "ORGANIZATION":
		return model.LabelOrg, true
	case "LOC", "LOCATION":
		return model.LabelLoc, true
	case "GPE":
		return model.LabelGPE, true
	default:
		return "", false
	}
}

// patternSpans derives MONEY, DATE and TIME spans from fixed patterns.
func patternSpans(text string) []model.EntitySpan {
	var spans []model.EntitySpan
	for _, match := range FallbackMoneyPattern.FindAllString(text, -1) {
		spans = append(spans, model.EntitySpan{Text: strings.TrimSpace(match), Label: model.LabelMoney})
	}
	for _, match := range dateSpanPattern.FindAllString(text, -1) {
		spans = append(spans, model.EntitySpan{Text: strings.TrimSpace(match), Label: model.LabelDate})
	}
	for _, match := range timeSpanPattern.FindAllString(text, -1) {
		spans = append(spans, model.EntitySpan{Text: strings.TrimSpace(match), Label: model.LabelTime})
	}
	return spans
}
