package ingest

import (
	"encoding/json"
	"log"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/octobees/staff-directory/internal/entity"
	"github.com/octobees/staff-directory/internal/schema"
)

// ParseJSON parses raw JSON roster text into grouped companies. Malformed
// JSON is swallowed: the cause is logged and an empty result returned, so
// callers treat "no companies" as the uniform failure signal.
func ParseJSON(text string) []entity.Company {
	var decoded any
	if err := json.Unmarshal([]byte(text), &decoded); err != nil {
		log.Printf("ingest: discarding unparseable json payload: %v", err)
		return nil
	}
	return ParseJSONValue(decoded)
}

// ParseJSONValue consumes an already-decoded JSON structure. Anything other
// than a top-level array yields an empty result. When the first element
// already exposes an employees array the payload is treated as pre-grouped;
// otherwise it is handled as flat rows sharing the CSV grouping path.
func ParseJSONValue(value any) []entity.Company {
	items, ok := value.([]any)
	if !ok {
		log.Printf("ingest: json payload top level is not an array")
		return nil
	}
	if len(items) == 0 {
		return nil
	}

	if first, ok := items[0].(map[string]any); ok {
		if _, pre := first["employees"].([]any); pre {
			return parsePreGrouped(items)
		}
	}
	return parseFlatRows(items)
}

// parsePreGrouped maps company objects that already carry nested employee
// lists. Each field tries the canonical key first and then the legacy
// human-readable variants, defaulting to the empty string.
func parsePreGrouped(items []any) []entity.Company {
	companies := make([]entity.Company, 0, len(items))
	for _, item := range items {
		raw, ok := item.(map[string]any)
		if !ok {
			continue
		}

		company := entity.Company{
			ID:           parseOrNewID(raw),
			Name:         valueOrDefault(schema.LookupAlias(raw, schema.CompanyKeyAliases, schema.FieldCompanyName), "N/A"),
			Domain:       schema.LookupAlias(raw, schema.CompanyKeyAliases, schema.FieldDomain),
			Industry:     schema.LookupAlias(raw, schema.CompanyKeyAliases, schema.FieldIndustry),
			Size:         schema.LookupAlias(raw, schema.CompanyKeyAliases, schema.FieldSize),
			Type:         schema.LookupAlias(raw, schema.CompanyKeyAliases, schema.FieldType),
			Headquarters: schema.LookupAlias(raw, schema.CompanyKeyAliases, schema.FieldHeadquarters),
			LinkedIn:     schema.LookupAlias(raw, schema.CompanyKeyAliases, schema.FieldCompanyLinkedIn),
			Employees:    []entity.Employee{},
		}

		nested, _ := raw["employees"].([]any)
		for _, member := range nested {
			rawEmployee, ok := member.(map[string]any)
			if !ok {
				continue
			}
			employee := entity.Employee{
				ID:        parseOrNewID(rawEmployee),
				FirstName: schema.LookupAlias(rawEmployee, schema.EmployeeKeyAliases, schema.FieldFirstName),
				LastName:  schema.LookupAlias(rawEmployee, schema.EmployeeKeyAliases, schema.FieldLastName),
				Email:     schema.LookupAlias(rawEmployee, schema.EmployeeKeyAliases, schema.FieldEmail),
				Phone:     schema.LookupAlias(rawEmployee, schema.EmployeeKeyAliases, schema.FieldPhone),
				JobTitle:  schema.LookupAlias(rawEmployee, schema.EmployeeKeyAliases, schema.FieldJobTitle),
				LinkedIn:  schema.LookupAlias(rawEmployee, schema.EmployeeKeyAliases, schema.FieldLinkedIn),
				Location:  schema.LookupAlias(rawEmployee, schema.EmployeeKeyAliases, schema.FieldLocation),
			}
			if phoneLocked, ok := rawEmployee["phoneLocked"].(bool); ok {
				employee.PhoneLocked = phoneLocked
			}
			if employee.HasName() {
				company.Employees = append(company.Employees, employee)
			}
		}

		companies = append(companies, company)
	}
	return companies
}

// parseFlatRows maps row objects through the header mapper and the same
// grouping logic used by the CSV path.
func parseFlatRows(items []any) []entity.Company {
	g := newGrouper()
	for _, item := range items {
		raw, ok := item.(map[string]any)
		if !ok {
			continue
		}
		companyFields := make(map[string]string)
		employeeFields := make(map[string]string)
		for key, value := range raw {
			field, category := schema.MapHeader(key)
			switch category {
			case schema.CategoryCompany:
				companyFields[field] = stringValue(value)
			case schema.CategoryEmployee:
				employeeFields[field] = stringValue(value)
			}
		}
		g.add(companyFields, employeeFields)
	}
	return g.companies()
}

func parseOrNewID(raw map[string]any) uuid.UUID {
	if value, ok := raw["id"].(string); ok {
		if id, err := uuid.Parse(strings.TrimSpace(value)); err == nil {
			return id
		}
	}
	return uuid.New()
}

func stringValue(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return ""
	}
}
