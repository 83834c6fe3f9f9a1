package pipeline

import "strings"

// DefaultSentenceSplitter splits text on sentence-ending punctuation followed
// by a space. The final sentence keeps its punctuation only when the text
// does not end mid-sentence.
func DefaultSentenceSplitter() SentenceFunc {
	return func(text string) []string {
		if strings.TrimSpace(text) == "" {
			return nil
		}

		text = strings.ReplaceAll(text, "! ", "!|")
		text = strings.ReplaceAll(text, "? ", "?|")
		text = strings.ReplaceAll(text, ". ", ".|")
		text = strings.ReplaceAll(text, "!\n", "!|")
		text = strings.ReplaceAll(text, "?\n", "?|")
		text = strings.ReplaceAll(text, ".\n", ".|")

		parts := strings.Split(text, "|")
		var sentences []string
		for _, s := range parts {
			s = strings.TrimSpace(s)
			if s != "" {
				sentences = append(sentences, s)
			}
		}
		return sentences
	}
}
