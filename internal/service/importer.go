package service

import (
	"context"
	"log"
	"strings"

	"github.com/google/uuid"

	"github.com/octobees/staff-directory/internal/dedupe"
	"github.com/octobees/staff-directory/internal/dto"
	"github.com/octobees/staff-directory/internal/entity"
	"github.com/octobees/staff-directory/internal/ingest"
	"github.com/octobees/staff-directory/internal/repository"
)

// ImportValidationError indicates that the uploaded roster payload is invalid.
type ImportValidationError struct {
	Message string
}

// Error implements the error interface.
func (e ImportValidationError) Error() string {
	return e.Message
}

// ImportService merges uploaded rosters into the persisted catalogue.
type ImportService struct {
	repo     repository.CompaniesRepository
	snapshot SnapshotStore
}

// NewImportService creates a new instance of ImportService. The snapshot
// store may be nil.
func NewImportService(repo repository.CompaniesRepository, snapshot SnapshotStore) *ImportService {
	return &ImportService{repo: repo, snapshot: snapshot}
}

// ImportRoster parses the uploaded bytes (CSV or JSON, sniffed from the
// payload) and merges the result into the persisted catalogue. Matching is
// by case-insensitive exact company name; each matched company receives
// exactly one roster write, and a write failure is recorded for that company
// without aborting the rest of the batch.
func (s *ImportService) ImportRoster(ctx context.Context, data []byte) (dto.ImportSummary, error) {
	text := ingest.DecodeText(data)

	var parsed []entity.Company
	if looksLikeJSON(text) {
		parsed = ingest.ParseJSON(text)
	} else {
		parsed = ingest.ParseCSV(text)
	}
	if len(parsed) == 0 {
		return dto.ImportSummary{}, ImportValidationError{Message: "no importable records found"}
	}

	persisted, err := s.repo.GetAll(ctx)
	if err != nil {
		return dto.ImportSummary{}, err
	}

	var summary dto.ImportSummary
	for _, batch := range parsed {
		outcome := s.mergeCompany(ctx, &persisted, batch)
		summary.Companies = append(summary.Companies, outcome)
		summary.Merged += outcome.Merged
		summary.Added += outcome.Added
		if outcome.Error != "" {
			summary.Failed++
		} else if !outcome.Created {
			summary.Updated++
		}
	}

	s.refreshSnapshot(ctx)
	return summary, nil
}

// mergeCompany reconciles one parsed company against the persisted set,
// updating the in-memory set so later batch entries see the merged roster.
func (s *ImportService) mergeCompany(ctx context.Context, persisted *[]entity.Company, batch entity.Company) dto.CompanyImportOutcome {
	outcome := dto.CompanyImportOutcome{Name: batch.Name}

	if target := findByName(*persisted, batch.Name); target != nil {
		merged, stats := dedupe.MergeBatch(target.Employees, batch.Employees)
		outcome.CompanyID = target.ID.String()
		outcome.Merged = stats.Merged
		outcome.Added = stats.Added

		if err := s.repo.UpdateEmployees(ctx, target.ID, merged); err != nil {
			outcome.Error = err.Error()
			return outcome
		}
		target.Employees = merged
		return outcome
	}

	collapsed, removed := dedupe.Collapse(batch.Employees)
	for i := range collapsed {
		if collapsed[i].ID == uuid.Nil {
			collapsed[i].ID = uuid.New()
		}
	}
	batch.Employees = collapsed

	if err := s.repo.Create(ctx, &batch); err != nil {
		outcome.Error = err.Error()
		return outcome
	}
	outcome.CompanyID = batch.ID.String()
	outcome.Created = true
	outcome.Merged = removed
	outcome.Added = len(batch.Employees)
	*persisted = append(*persisted, batch)
	return outcome
}

// findByName matches companies across the parse/persisted boundary by
// case-insensitive exact name. This is deliberately looser than the
// domain-aware grouping key used inside a single parse.
func findByName(companies []entity.Company, name string) *entity.Company {
	name = strings.TrimSpace(name)
	for i := range companies {
		if strings.EqualFold(strings.TrimSpace(companies[i].Name), name) {
			return &companies[i]
		}
	}
	return nil
}

func looksLikeJSON(text string) bool {
	trimmed := strings.TrimSpace(text)
	return strings.HasPrefix(trimmed, "[") || strings.HasPrefix(trimmed, "{")
}

func (s *ImportService) refreshSnapshot(ctx context.Context) {
	if s.snapshot == nil {
		return
	}
	companies, err := s.repo.GetAll(ctx)
	if err != nil {
		log.Printf("import: snapshot refresh skipped: %v", err)
		return
	}
	if err := s.snapshot.Save(ctx, companies); err != nil {
		log.Printf("import: snapshot save failed: %v", err)
	}
}
