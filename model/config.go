package model

// Default values for ExtractionConfig.
const (
	// DefaultConfidence is emitted on every record. It is a fixed constant,
	// not a computed score.
	DefaultConfidence = 0.80

	// DefaultCroreMultiplier matches the historical behavior of the money
	// normalizer. The standard crore value is 10,000,000; this smaller value
	// is kept as the default and made configurable instead of being silently
	// corrected.
	DefaultCroreMultiplier = 1_000_000

	// DefaultNotesLimit is the number of leading characters of the input kept
	// as notes.
	DefaultNotesLimit = 1000

	// DefaultActionOwner is assigned to next actions whose sentence mentions
	// the sales side.
	DefaultActionOwner = "Sales Rep"
)

// ExtractionConfig carries the tunable constants of the extraction pipeline.
type ExtractionConfig struct {
	Confidence      float64 `json:"confidence"`
	CroreMultiplier float64 `json:"crore_multiplier"`
	NotesLimit      int     `json:"notes_limit"`
	ActionOwner     string  `json:"action_owner"`
}

// DefaultExtractionConfig returns the configuration matching the documented
// pipeline behavior.
func DefaultExtractionConfig() *ExtractionConfig {
	return &ExtractionConfig{
		Confidence:      DefaultConfidence,
		CroreMultiplier: DefaultCroreMultiplier,
		NotesLimit:      DefaultNotesLimit,
		ActionOwner:     DefaultActionOwner,
	}
}
