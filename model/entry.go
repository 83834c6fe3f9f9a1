package model

import "time"

// RegistryEntry is one registered contact email or company name, with audit
// metadata such as the source of the first sighting.
type RegistryEntry struct {
	ID        int       `json:"id"`
	Kind      string    `json:"kind"`
	Value     string    `json:"value"`
	Metadata  Metadata  `json:"metadata"`
	CreatedAt time.Time `json:"created_at"`
}
