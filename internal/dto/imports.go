package dto

// CompanyImportOutcome reports what an import merge did to one company.
type CompanyImportOutcome struct {
	CompanyID string `json:"company_id,omitempty"`
	Name      string `json:"name"`
	Created   bool   `json:"created"`
	Merged    int    `json:"merged"`
	Added     int    `json:"added"`
	Error     string `json:"error,omitempty"`
}

// ImportSummary aggregates an entire import batch.
type ImportSummary struct {
	Companies []CompanyImportOutcome `json:"companies"`
	Merged    int                    `json:"merged"`
	Added     int                    `json:"added"`
	Updated   int                    `json:"updated"`
	Failed    int                    `json:"failed"`
}

// DedupeOutcome reports the result of self-deduplicating one company roster.
type DedupeOutcome struct {
	CompanyID string `json:"company_id"`
	Name      string `json:"name"`
	Removed   int    `json:"removed"`
	Error     string `json:"error,omitempty"`
}
