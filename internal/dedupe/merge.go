package dedupe

import (
	"strings"

	"github.com/octobees/staff-directory/internal/entity"
)

// Merge folds the newly observed source record into the authoritative target.
// The target keeps its id, phoneLocked flag and any field the policy below
// does not address.
//
// Per-field policy when both sides are non-empty: names always keep the
// target; phone is replaced when the digit strings differ (new numbers
// supersede on re-import, reformatting of the same number does not); every
// other contact field is replaced only when the source string is strictly
// longer, the longer value being taken as the more complete one.
func Merge(target, source entity.Employee) entity.Employee {
	merged := target
	merged.FirstName = keepTarget(target.FirstName, source.FirstName)
	merged.LastName = keepTarget(target.LastName, source.LastName)
	merged.Email = longerWins(target.Email, source.Email)
	merged.Phone = mergePhone(target.Phone, source.Phone)
	merged.JobTitle = longerWins(target.JobTitle, source.JobTitle)
	merged.LinkedIn = longerWins(target.LinkedIn, source.LinkedIn)
	merged.Location = longerWins(target.Location, source.Location)
	return merged
}

func keepTarget(target, source string) string {
	if strings.TrimSpace(target) == "" {
		return source
	}
	return target
}

func longerWins(target, source string) string {
	if strings.TrimSpace(target) == "" {
		return source
	}
	if strings.TrimSpace(source) == "" {
		return target
	}
	if len(source) > len(target) {
		return source
	}
	return target
}

func mergePhone(target, source string) string {
	if strings.TrimSpace(target) == "" {
		return source
	}
	if strings.TrimSpace(source) == "" {
		return target
	}
	if phoneDigits(source) != phoneDigits(target) {
		return source
	}
	return target
}
