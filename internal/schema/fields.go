// Package schema maps heterogeneous import headers onto the canonical
// directory record fields.
package schema

import "strings"

// Category tags which record a canonical field belongs to.
type Category int

const (
	CategoryUnknown Category = iota
	CategoryCompany
	CategoryEmployee
)

// String returns the lowercase tag used in logs and diagnostics.
func (c Category) String() string {
	switch c {
	case CategoryCompany:
		return "company"
	case CategoryEmployee:
		return "employee"
	default:
		return "unknown"
	}
}

// Canonical company field names.
const (
	FieldCompanyName     = "name"
	FieldDomain          = "domain"
	FieldIndustry        = "industry"
	FieldSize            = "size"
	FieldType            = "type"
	FieldHeadquarters    = "headquarters"
	FieldCompanyLinkedIn = "companyLinkedin"
)

// Canonical employee field names.
const (
	FieldFirstName = "firstName"
	FieldLastName  = "lastName"
	FieldEmail     = "email"
	FieldPhone     = "phone"
	FieldJobTitle  = "jobTitle"
	FieldLinkedIn  = "linkedin"
	FieldLocation  = "location"
)

type mapping struct {
	Field    string
	Category Category
}

// headerMappings is keyed by the lowercased, trimmed source header.
var headerMappings = map[string]mapping{
	"company name":         {FieldCompanyName, CategoryCompany},
	"company":              {FieldCompanyName, CategoryCompany},
	"company domain":       {FieldDomain, CategoryCompany},
	"domain":               {FieldDomain, CategoryCompany},
	"website":              {FieldDomain, CategoryCompany},
	"company industry":     {FieldIndustry, CategoryCompany},
	"industry":             {FieldIndustry, CategoryCompany},
	"company size":         {FieldSize, CategoryCompany},
	"company type":         {FieldType, CategoryCompany},
	"company headquarters": {FieldHeadquarters, CategoryCompany},
	"headquarters":         {FieldHeadquarters, CategoryCompany},
	"company linkedin":     {FieldCompanyLinkedIn, CategoryCompany},

	"first name": {FieldFirstName, CategoryEmployee},
	"firstname":  {FieldFirstName, CategoryEmployee},
	"last name":  {FieldLastName, CategoryEmployee},
	"lastname":   {FieldLastName, CategoryEmployee},
	"email":      {FieldEmail, CategoryEmployee},
	"phone":      {FieldPhone, CategoryEmployee},
	"job title":  {FieldJobTitle, CategoryEmployee},
	"title":      {FieldJobTitle, CategoryEmployee},
	"linkedin":   {FieldLinkedIn, CategoryEmployee},
	"location":   {FieldLocation, CategoryEmployee},
}

// MapHeader resolves a raw header into its canonical field name and category.
// Headers outside the known vocabulary fall back to a lowercase name with
// whitespace runs collapsed to underscores, tagged CategoryUnknown. The
// function is total: it always returns a usable field name.
func MapHeader(header string) (string, Category) {
	key := strings.ToLower(strings.TrimSpace(header))
	if m, ok := headerMappings[key]; ok {
		return m.Field, m.Category
	}
	return strings.Join(strings.Fields(key), "_"), CategoryUnknown
}

// CompanyKeyAliases lists, per canonical company field, the JSON keys tried
// in order when reading pre-grouped payloads. The canonical key comes first,
// then legacy human-readable variants.
var CompanyKeyAliases = map[string][]string{
	FieldCompanyName:     {"name", "Company name", "company_name", "company"},
	FieldDomain:          {"domain", "Company domain", "website"},
	FieldIndustry:        {"industry", "Company industry"},
	FieldSize:            {"size", "Company size"},
	FieldType:            {"type", "Company type"},
	FieldHeadquarters:    {"headquarters", "Company headquarters"},
	FieldCompanyLinkedIn: {"linkedin", "Company LinkedIn", "companyLinkedin"},
}

// EmployeeKeyAliases is the employee-side counterpart of CompanyKeyAliases.
var EmployeeKeyAliases = map[string][]string{
	FieldFirstName: {"firstName", "First name", "first_name"},
	FieldLastName:  {"lastName", "Last name", "last_name"},
	FieldEmail:     {"email", "Email"},
	FieldPhone:     {"phone", "Phone"},
	FieldJobTitle:  {"jobTitle", "Job title", "job_title", "title"},
	FieldLinkedIn:  {"linkedin", "LinkedIn"},
	FieldLocation:  {"location", "Location"},
}

// LookupAlias returns the first non-empty value among the alias keys for the
// given canonical field, or the empty string.
func LookupAlias(raw map[string]any, aliases map[string][]string, field string) string {
	for _, key := range aliases[field] {
		if value, ok := raw[key]; ok {
			if s, ok := value.(string); ok && strings.TrimSpace(s) != "" {
				return strings.TrimSpace(s)
			}
		}
	}
	return ""
}
