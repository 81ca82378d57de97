// Package scoring rates how complete a company's directory entry is. The
// admin view uses the score to surface entries worth enriching first.
package scoring

import (
	"strings"

	"github.com/octobees/staff-directory/internal/entity"
)

const (
	categoryProfile  = "company_profile"
	categoryContacts = "contact_coverage"
	categoryIdentity = "identity_coverage"
)

// ScoreResult reports the aggregate score and the per-category breakdown.
type ScoreResult struct {
	Total     int            `json:"total"`
	Breakdown map[string]int `json:"breakdown"`
}

// ComputeScore evaluates a company entry and returns the score breakdown.
// Scores range 0-100: up to 40 for the company profile, 40 for employee
// contact coverage and 20 for identity coverage.
func ComputeScore(company entity.Company) ScoreResult {
	breakdown := map[string]int{
		categoryProfile:  scoreProfile(company),
		categoryContacts: scoreContacts(company.Employees),
		categoryIdentity: scoreIdentity(company.Employees),
	}

	total := 0
	for _, value := range breakdown {
		total += value
	}
	return ScoreResult{Total: total, Breakdown: breakdown}
}

func scoreProfile(company entity.Company) int {
	score := 0
	if hasValue(company.Domain) {
		score += 10
	}
	if hasValue(company.Industry) {
		score += 5
	}
	if hasValue(company.Size) {
		score += 5
	}
	if hasValue(company.Headquarters) {
		score += 10
	}
	if hasValue(company.LinkedIn) {
		score += 10
	}
	return score
}

func scoreContacts(employees []entity.Employee) int {
	if len(employees) == 0 {
		return 0
	}
	withEmail := 0
	withPhone := 0
	for _, employee := range employees {
		if hasValue(employee.Email) {
			withEmail++
		}
		if hasValue(employee.Phone) {
			withPhone++
		}
	}
	return coverage(withEmail, len(employees), 20) + coverage(withPhone, len(employees), 20)
}

func scoreIdentity(employees []entity.Employee) int {
	if len(employees) == 0 {
		return 0
	}
	withTitle := 0
	withLinkedIn := 0
	for _, employee := range employees {
		if hasValue(employee.JobTitle) {
			withTitle++
		}
		if hasValue(employee.LinkedIn) {
			withLinkedIn++
		}
	}
	return coverage(withTitle, len(employees), 10) + coverage(withLinkedIn, len(employees), 10)
}

// coverage scales a hit count to the category's maximum points.
func coverage(hits, total, max int) int {
	if total == 0 {
		return 0
	}
	return hits * max / total
}

func hasValue(value string) bool {
	return strings.TrimSpace(value) != ""
}
