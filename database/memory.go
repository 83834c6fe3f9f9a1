package database

import (
	"context"
	"strings"
	"sync"
)

// MemoryRegistry is an in-process Registry for running without Postgres.
// Values are folded to lower case so lookups are case insensitive. A single
// mutex spans check and insert, keeping the pair atomic under concurrency.
type MemoryRegistry struct {
	mu        sync.Mutex
	contacts  map[string]struct{}
	companies map[string]struct{}
}

// NewMemoryRegistry creates a new empty in-memory registry.
func NewMemoryRegistry() *MemoryRegistry {
	return &MemoryRegistry{
		contacts:  map[string]struct{}{},
		companies: map[string]struct{}{},
	}
}

// CheckAndRegister checks both values and registers them under one lock.
// Nil values are skipped and report false.
func (r *MemoryRegistry) CheckAndRegister(ctx context.Context, email *string, company *string) (bool, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var contactExists, companyExists bool
	if email != nil {
		key := strings.ToLower(*email)
		_, contactExists = r.contacts[key]
		r.contacts[key] = struct{}{}
	}
	if company != nil {
		key := strings.ToLower(*company)
		_, companyExists = r.companies[key]
		r.companies[key] = struct{}{}
	}

	return contactExists, companyExists, nil
}

// CountSeen returns the number of distinct registered values of a kind
// ("contact" or "company").
func (r *MemoryRegistry) CountSeen(kind string) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	switch kind {
	case "contact":
		return len(r.contacts)
	case "company":
		return len(r.companies)
	default:
		return 0
	}
}
