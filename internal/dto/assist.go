package dto

// AssistLinksRequest asks the assist worker for job-search links built from
// an employee profile.
type AssistLinksRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	JobTitle  string `json:"job_title,omitempty"`
	Company   string `json:"company,omitempty"`
	Location  string `json:"location,omitempty"`
}
