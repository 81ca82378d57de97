// Package ingest turns raw CSV or JSON roster exports into grouped Company
// records ready for deduplication and persistence.
package ingest

import (
	"strings"

	"github.com/google/uuid"

	"github.com/octobees/staff-directory/internal/entity"
	"github.com/octobees/staff-directory/internal/schema"
)

// grouper collapses flat rows into one Company per grouping key. The first
// row seen for a key creates the company; later rows only append employees.
type grouper struct {
	order  []string
	groups map[string]*entity.Company
}

func newGrouper() *grouper {
	return &grouper{groups: make(map[string]*entity.Company)}
}

func (g *grouper) add(companyFields, employeeFields map[string]string) {
	key := GroupKey(companyFields[schema.FieldDomain], companyFields[schema.FieldCompanyName])

	company, ok := g.groups[key]
	if !ok {
		company = &entity.Company{
			ID:           uuid.New(),
			Name:         valueOrDefault(companyFields[schema.FieldCompanyName], "N/A"),
			Domain:       strings.TrimSpace(companyFields[schema.FieldDomain]),
			Industry:     strings.TrimSpace(companyFields[schema.FieldIndustry]),
			Size:         strings.TrimSpace(companyFields[schema.FieldSize]),
			Type:         strings.TrimSpace(companyFields[schema.FieldType]),
			Headquarters: strings.TrimSpace(companyFields[schema.FieldHeadquarters]),
			LinkedIn:     strings.TrimSpace(companyFields[schema.FieldCompanyLinkedIn]),
			Employees:    []entity.Employee{},
		}
		g.groups[key] = company
		g.order = append(g.order, key)
	}

	employee := entity.Employee{
		ID:        uuid.New(),
		FirstName: strings.TrimSpace(employeeFields[schema.FieldFirstName]),
		LastName:  strings.TrimSpace(employeeFields[schema.FieldLastName]),
		Email:     strings.TrimSpace(employeeFields[schema.FieldEmail]),
		Phone:     strings.TrimSpace(employeeFields[schema.FieldPhone]),
		JobTitle:  strings.TrimSpace(employeeFields[schema.FieldJobTitle]),
		LinkedIn:  strings.TrimSpace(employeeFields[schema.FieldLinkedIn]),
		Location:  strings.TrimSpace(employeeFields[schema.FieldLocation]),
	}
	if employee.HasName() {
		company.Employees = append(company.Employees, employee)
	}
}

// companies returns the grouped result in first-seen order.
func (g *grouper) companies() []entity.Company {
	result := make([]entity.Company, 0, len(g.order))
	for _, key := range g.order {
		result = append(result, *g.groups[key])
	}
	return result
}

func valueOrDefault(value, fallback string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return fallback
	}
	return value
}
