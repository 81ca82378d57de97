package schema

import "testing"

func TestMapHeader(t *testing.T) {
	tests := map[string]struct {
		header   string
		field    string
		category Category
	}{
		"company name":        {"Company name", FieldCompanyName, CategoryCompany},
		"case insensitive":    {"COMPANY DOMAIN", FieldDomain, CategoryCompany},
		"surrounding spaces":  {"  First name  ", FieldFirstName, CategoryEmployee},
		"employee linkedin":   {"LinkedIn", FieldLinkedIn, CategoryEmployee},
		"company linkedin":    {"Company LinkedIn", FieldCompanyLinkedIn, CategoryCompany},
		"job title":           {"Job title", FieldJobTitle, CategoryEmployee},
		"unknown single word": {"Salary", "salary", CategoryUnknown},
		"unknown multi word":  {"Preferred   Contact Hours", "preferred_contact_hours", CategoryUnknown},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			field, category := MapHeader(tt.header)
			if field != tt.field {
				t.Fatalf("expected field %q, got %q", tt.field, field)
			}
			if category != tt.category {
				t.Fatalf("expected category %v, got %v", tt.category, category)
			}
		})
	}
}

func TestMapHeaderIsTotal(t *testing.T) {
	field, category := MapHeader("")
	if field != "" || category != CategoryUnknown {
		t.Fatalf("expected empty fallback, got %q/%v", field, category)
	}
}

func TestCategoryString(t *testing.T) {
	if CategoryCompany.String() != "company" || CategoryEmployee.String() != "employee" || CategoryUnknown.String() != "unknown" {
		t.Fatalf("unexpected category labels")
	}
}

func TestLookupAlias(t *testing.T) {
	raw := map[string]any{
		"First name": "Jane",
		"lastName":   "Doe",
		"Email":      "  jane@acme.com ",
		"phone":      42, // non-string values are ignored
	}

	if got := LookupAlias(raw, EmployeeKeyAliases, FieldFirstName); got != "Jane" {
		t.Fatalf("expected legacy key fallback, got %q", got)
	}
	if got := LookupAlias(raw, EmployeeKeyAliases, FieldLastName); got != "Doe" {
		t.Fatalf("expected canonical key hit, got %q", got)
	}
	if got := LookupAlias(raw, EmployeeKeyAliases, FieldEmail); got != "jane@acme.com" {
		t.Fatalf("expected trimmed value, got %q", got)
	}
	if got := LookupAlias(raw, EmployeeKeyAliases, FieldPhone); got != "" {
		t.Fatalf("expected empty for non-string value, got %q", got)
	}
	if got := LookupAlias(raw, EmployeeKeyAliases, FieldLocation); got != "" {
		t.Fatalf("expected empty for absent field, got %q", got)
	}
}
