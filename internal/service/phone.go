package service

import (
	"strings"

	"github.com/nyaruka/phonenumbers"
)

const defaultPhoneRegion = "US"

// PhoneFormatter renders employee phone numbers for directory responses.
// Locked numbers are masked; unlocked ones are normalized to E.164 when they
// parse as valid numbers and passed through untouched otherwise.
type PhoneFormatter struct {
	DefaultRegion string
}

// NewPhoneFormatter builds a formatter with a sane default region.
func NewPhoneFormatter(region string) *PhoneFormatter {
	region = strings.ToUpper(strings.TrimSpace(region))
	if region == "" {
		region = defaultPhoneRegion
	}
	return &PhoneFormatter{DefaultRegion: region}
}

// Display returns the caller-facing representation of a phone value.
func (f *PhoneFormatter) Display(raw string, locked bool) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	if locked {
		return maskPhone(raw)
	}
	number, err := phonenumbers.Parse(raw, f.DefaultRegion)
	if err != nil || !phonenumbers.IsValidNumber(number) {
		return raw
	}
	return phonenumbers.Format(number, phonenumbers.E164)
}

// maskPhone hides all but the last two digits so a locked number stays
// recognisable without being dialable.
func maskPhone(raw string) string {
	digits := 0
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			digits++
		}
	}

	var b strings.Builder
	seen := 0
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			seen++
			if seen > digits-2 {
				b.WriteRune(r)
			} else {
				b.WriteRune('*')
			}
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
