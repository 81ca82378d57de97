package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Company represents an organisation in the directory. A company exclusively
// owns its employees: employee order is import order and carries no ranking.
type Company struct {
	ID           uuid.UUID  `json:"id"`
	Name         string     `json:"name"`
	Domain       string     `json:"domain,omitempty"`
	Industry     string     `json:"industry,omitempty"`
	Size         string     `json:"size,omitempty"`
	Type         string     `json:"type,omitempty"`
	Headquarters string     `json:"headquarters,omitempty"`
	LinkedIn     string     `json:"linkedin,omitempty"`
	Employees    []Employee `json:"employees"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// Employee represents a person belonging to exactly one company.
type Employee struct {
	ID          uuid.UUID `json:"id"`
	FirstName   string    `json:"first_name,omitempty"`
	LastName    string    `json:"last_name,omitempty"`
	Email       string    `json:"email,omitempty"`
	Phone       string    `json:"phone,omitempty"`
	JobTitle    string    `json:"job_title,omitempty"`
	LinkedIn    string    `json:"linkedin,omitempty"`
	Location    string    `json:"location,omitempty"`
	PhoneLocked bool      `json:"phone_locked,omitempty"`
}

// HasName reports whether at least one name component is present. Ingestion
// drops rows where both components are blank.
func (e Employee) HasName() bool {
	return strings.TrimSpace(e.FirstName) != "" || strings.TrimSpace(e.LastName) != ""
}

// FullName joins the name components for display.
func (e Employee) FullName() string {
	return strings.TrimSpace(strings.TrimSpace(e.FirstName) + " " + strings.TrimSpace(e.LastName))
}
