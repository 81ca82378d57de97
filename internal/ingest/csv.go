package ingest

import (
	"strings"

	"github.com/octobees/staff-directory/internal/entity"
	"github.com/octobees/staff-directory/internal/schema"
)

// ParseCSV parses comma separated roster text into grouped companies. The
// first non-blank line is the header row; a payload with no data rows yields
// an empty result rather than an error. Fields may be double quoted, with ""
// inside a quoted field reading as a literal quote.
func ParseCSV(text string) []entity.Company {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	if len(lines) < 2 {
		return nil
	}

	type column struct {
		field    string
		category schema.Category
	}
	headers := splitCSVLine(lines[0])
	columns := make([]column, len(headers))
	for i, header := range headers {
		field, category := schema.MapHeader(header)
		columns[i] = column{field: field, category: category}
	}

	g := newGrouper()
	for _, line := range lines[1:] {
		values := splitCSVLine(line)
		companyFields := make(map[string]string)
		employeeFields := make(map[string]string)
		for i, col := range columns {
			if i >= len(values) {
				break
			}
			switch col.category {
			case schema.CategoryCompany:
				companyFields[col.field] = values[i]
			case schema.CategoryEmployee:
				employeeFields[col.field] = values[i]
			}
		}
		g.add(companyFields, employeeFields)
	}
	return g.companies()
}

// splitCSVLine splits one line on commas outside double quotes. A doubled
// quote inside a quoted field becomes a literal quote. Each field is trimmed
// of surrounding whitespace after parsing.
func splitCSVLine(line string) []string {
	var (
		fields   []string
		current  strings.Builder
		inQuotes bool
	)

	for i := 0; i < len(line); i++ {
		ch := line[i]
		switch {
		case ch == '"':
			if inQuotes && i+1 < len(line) && line[i+1] == '"' {
				current.WriteByte('"')
				i++
			} else {
				inQuotes = !inQuotes
			}
		case ch == ',' && !inQuotes:
			fields = append(fields, strings.TrimSpace(current.String()))
			current.Reset()
		default:
			current.WriteByte(ch)
		}
	}
	fields = append(fields, strings.TrimSpace(current.String()))
	return fields
}
