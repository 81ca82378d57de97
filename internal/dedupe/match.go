// Package dedupe reconciles employee records that denote the same person:
// multi-signal identity matching, per-field merge policy and list-level
// collapse used by the import driver.
package dedupe

import (
	"regexp"
	"strings"

	"github.com/octobees/staff-directory/internal/entity"
)

var (
	nonDigitPattern    = regexp.MustCompile(`\D`)
	punctuationPattern = regexp.MustCompile("[.,;:!?'\"()\\[\\]{}\\-_/\\\\]")
)

// placeholderTokens are values that scrapers and exports emit instead of a
// blank field. They count as empty and never participate in a match.
var placeholderTokens = map[string]struct{}{
	"n/a":            {},
	"-":              {},
	"no email":       {},
	"no phone":       {},
	"unknown":        {},
	"no email found": {},
}

// FindMatch scans existing in list order and returns the index of the first
// record the candidate resolves to, trying per record: email equality, phone
// digit equality, linkedin profile equality, then fuzzy name plus compatible
// title. The first qualifying record wins regardless of which signal
// qualified it.
func FindMatch(existing []entity.Employee, candidate entity.Employee) (int, bool) {
	candEmail := normalizeSignal(candidate.Email)
	candPhone := phoneDigits(candidate.Phone)
	candLinkedIn := linkedInSlug(candidate.LinkedIn)
	candName := normalizeFullName(candidate.FirstName, candidate.LastName)
	candTitle := normalizeSignal(candidate.JobTitle)

	for i, record := range existing {
		if candEmail != "" {
			if email := normalizeSignal(record.Email); email != "" && email == candEmail {
				return i, true
			}
		}
		if candPhone != "" {
			if phone := phoneDigits(record.Phone); phone != "" && phone == candPhone {
				return i, true
			}
		}
		if candLinkedIn != "" {
			if slug := linkedInSlug(record.LinkedIn); slug != "" && slug == candLinkedIn {
				return i, true
			}
		}
		if candName != "" && candName == normalizeFullName(record.FirstName, record.LastName) {
			if titlesCompatible(candTitle, normalizeSignal(record.JobTitle)) {
				return i, true
			}
		}
	}
	return 0, false
}

// normalizeSignal trims, lowercases and maps placeholder junk to empty so it
// can never satisfy an equality test.
func normalizeSignal(value string) string {
	v := strings.ToLower(strings.TrimSpace(value))
	if v == "" {
		return ""
	}
	if _, placeholder := placeholderTokens[v]; placeholder {
		return ""
	}
	if strings.Contains(v, "not revealed") || strings.Contains(v, "no phone") {
		return ""
	}
	return v
}

// phoneDigits reduces a phone value to its digits; formatting never affects
// identity.
func phoneDigits(value string) string {
	if normalizeSignal(value) == "" {
		return ""
	}
	return nonDigitPattern.ReplaceAllString(value, "")
}

// linkedInSlug reduces a full profile URL or bare slug to the profile
// identifier so both forms compare equal.
func linkedInSlug(value string) string {
	v := normalizeSignal(value)
	if v == "" {
		return ""
	}
	v = strings.TrimSuffix(v, "/")
	v = strings.TrimPrefix(v, "https://")
	v = strings.TrimPrefix(v, "http://")
	v = strings.TrimPrefix(v, "www.")
	v = strings.TrimPrefix(v, "linkedin.com/in/")
	return v
}

// normalizeFullName lowercases the concatenated name, strips punctuation and
// collapses internal whitespace.
func normalizeFullName(first, last string) string {
	full := strings.ToLower(strings.TrimSpace(first + " " + last))
	full = punctuationPattern.ReplaceAllString(full, "")
	return strings.Join(strings.Fields(full), " ")
}

// titlesCompatible treats an empty title as a non-blocking signal; otherwise
// titles must be equal or one contain the other.
func titlesCompatible(a, b string) bool {
	if a == "" || b == "" {
		return true
	}
	return a == b || strings.Contains(a, b) || strings.Contains(b, a)
}
