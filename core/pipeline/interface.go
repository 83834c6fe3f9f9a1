package pipeline

import "github.com/siherrmann/crmfill/model"

// RecognizeFunc labels spans of text with semantic categories. The pipeline
// consumes recognizers as fixed oracles and only reads the PERSON, ORG, GPE,
// LOC, DATE, TIME and MONEY labels.
type RecognizeFunc func(text string) ([]model.EntitySpan, error)

// SentenceFunc splits text into an ordered sequence of sentences.
type SentenceFunc func(text string) []string

// ResolveDateFunc resolves a natural-language date phrase ("next Tuesday",
// "March 5th") to an ISO calendar date. Returns nil when the phrase cannot
// be resolved.
type ResolveDateFunc func(text string) *string

// Pipeline bundles the external capabilities one extraction consumes.
type Pipeline struct {
	Recognizer   RecognizeFunc
	Sentences    SentenceFunc
	DateResolver ResolveDateFunc
}

// NewPipeline creates a new extraction pipeline.
func NewPipeline(recognizer RecognizeFunc, sentences SentenceFunc, resolver ResolveDateFunc) *Pipeline {
	return &Pipeline{
		Recognizer:   recognizer,
		Sentences:    sentences,
		DateResolver: resolver,
	}
}

// SetRecognizer sets the entity recognition function.
func (p *Pipeline) SetRecognizer(recognizer RecognizeFunc) {
	p.Recognizer = recognizer
}

// SetSentences sets the sentence-boundary function.
func (p *Pipeline) SetSentences(sentences SentenceFunc) {
	p.Sentences = sentences
}

// SetDateResolver sets the temporal resolution function.
func (p *Pipeline) SetDateResolver(resolver ResolveDateFunc) {
	p.DateResolver = resolver
}
