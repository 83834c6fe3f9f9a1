package model

// Contact holds the person-level fields extracted from a transcript.
type Contact struct {
	Name  *string `json:"name"`
	Title *string `json:"title"`
	Email *string `json:"email"`
	Phone *string `json:"phone"`
}

// Company holds the organization-level fields. Industry, size and website are
// not derivable from a transcript and stay nil.
type Company struct {
	Name     *string `json:"name"`
	Industry *string `json:"industry"`
	Size     *string `json:"size"`
	Website  *string `json:"website"`
}

// Deal holds the opportunity-level fields.
type Deal struct {
	Name      string   `json:"name"`
	Value     *float64 `json:"value"`
	Currency  *string  `json:"currency"`
	Stage     *string  `json:"stage"`
	CloseDate *string  `json:"close_date"`
}

// NextAction is a follow-up item extracted from a single sentence.
type NextAction struct {
	Description string  `json:"action"`
	Owner       *string `json:"owner"`
	DueDate     *string `json:"due_date"`
}

// DuplicateChecks reports registry membership as observed before the current
// record was registered.
type DuplicateChecks struct {
	ContactExists bool `json:"contact_exists"`
	CompanyExists bool `json:"company_exists"`
}

// CRMPush is a mocked push result with placeholder identifiers. Nothing is
// persisted to a CRM.
type CRMPush struct {
	Status    string `json:"status"`
	ContactID string `json:"contact_id"`
	CompanyID string `json:"company_id"`
}

// ExtractionRecord is the sole output of the extraction pipeline.
// Slice fields are nil (not empty) when nothing was detected.
type ExtractionRecord struct {
	Contact         Contact         `json:"contact"`
	Company         Company         `json:"company"`
	Deal            Deal            `json:"deal"`
	PainPoints      []string        `json:"pain_points"`
	Competitors     []string        `json:"competitors"`
	NextActions     []NextAction    `json:"next_actions"`
	Notes           string          `json:"notes"`
	Confidence      float64         `json:"confidence"`
	DuplicateChecks DuplicateChecks `json:"duplicate_checks"`
	CRMPush         CRMPush         `json:"crm_push"`
}
