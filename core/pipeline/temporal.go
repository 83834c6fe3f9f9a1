package pipeline

import (
	"regexp"
	"time"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"

	"github.com/siherrmann/crmfill/model"
)

// actionDatePattern isolates a "Month Day[, Year]" style substring inside a
// next-action sentence, e.g. "March 5th" or "October 12, 2026".
var actionDatePattern = regexp.MustCompile(`[A-Z][a-z]+\s\d{1,2}(?:st|nd|rd|th)?(?:,?\s?\d{4})?`)

// DefaultDateResolver resolves natural-language date phrases relative to the
// current time using the english and common rule sets.
func DefaultDateResolver() ResolveDateFunc {
	w := when.New(nil)
	w.Add(en.All...)
	w.Add(common.All...)

	return func(text string) *string {
		result, err := w.Parse(text, time.Now())
		if err != nil || result == nil {
			return nil
		}
		iso := result.Time.Format("2006-01-02")
		return &iso
	}
}

// FirstResolvedDate resolves every DATE/TIME span in first-occurrence order
// and returns the first date that resolves. Nil when none do.
func FirstResolvedDate(spans []model.EntitySpan, resolve ResolveDateFunc) *string {
	if resolve == nil {
		return nil
	}
	for _, text := range model.FilterSpans(spans, model.LabelDate, model.LabelTime) {
		if date := resolve(text); date != nil {
			return date
		}
	}
	return nil
}

// ResolveActionDate isolates a date-like substring in a next-action sentence
// and resolves it independently. Nil when no substring is found or
// resolution fails.
func ResolveActionDate(sentence string, resolve ResolveDateFunc) *string {
	if resolve == nil {
		return nil
	}
	match := actionDatePattern.FindString(sentence)
	if match == "" {
		return nil
	}
	return resolve(match)
}
