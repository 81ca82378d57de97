package dedupe

import (
	"github.com/google/uuid"

	"github.com/octobees/staff-directory/internal/entity"
)

// BatchStats reports what an import merge did to one company's roster.
type BatchStats struct {
	Merged int `json:"merged"`
	Added  int `json:"added"`
}

// Collapse self-dedups an employee list. Employees are folded into an
// accumulator in input order: a match replaces the accumulator entry with the
// merge of the two, anything else is appended unchanged. The second return
// value is the number of duplicates removed.
func Collapse(employees []entity.Employee) ([]entity.Employee, int) {
	accumulator := make([]entity.Employee, 0, len(employees))
	for _, candidate := range employees {
		if idx, ok := FindMatch(accumulator, candidate); ok {
			accumulator[idx] = Merge(accumulator[idx], candidate)
			continue
		}
		accumulator = append(accumulator, candidate)
	}
	return accumulator, len(employees) - len(accumulator)
}

// MergeBatch reconciles freshly parsed employees against the persisted
// roster. The accumulator starts as the full persisted list; a parsed
// employee matching a persisted one merges into it and keeps the persisted id
// so storage treats the result as an update. Unmatched employees receive an
// id when they lack one and append as genuinely new records.
func MergeBatch(persisted, parsed []entity.Employee) ([]entity.Employee, BatchStats) {
	accumulator := make([]entity.Employee, len(persisted))
	copy(accumulator, persisted)

	var stats BatchStats
	for _, candidate := range parsed {
		if idx, ok := FindMatch(accumulator, candidate); ok {
			merged := Merge(accumulator[idx], candidate)
			merged.ID = accumulator[idx].ID
			accumulator[idx] = merged
			stats.Merged++
			continue
		}
		if candidate.ID == uuid.Nil {
			candidate.ID = uuid.New()
		}
		accumulator = append(accumulator, candidate)
		stats.Added++
	}
	return accumulator, stats
}
