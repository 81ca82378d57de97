package dto

// ListFilter contains query parameters for company listing endpoints.
type ListFilter struct {
	Q        string
	Industry string
	Location string
	Page     int
	PerPage  int
}

// UpdateCompanyRequest captures partial company edits.
type UpdateCompanyRequest struct {
	Name         *string `json:"name,omitempty"`
	Domain       *string `json:"domain,omitempty"`
	Industry     *string `json:"industry,omitempty"`
	Size         *string `json:"size,omitempty"`
	Type         *string `json:"type,omitempty"`
	Headquarters *string `json:"headquarters,omitempty"`
	LinkedIn     *string `json:"linkedin,omitempty"`
}

// PhoneLockRequest toggles masked display for an employee phone.
type PhoneLockRequest struct {
	Locked bool `json:"locked"`
}
