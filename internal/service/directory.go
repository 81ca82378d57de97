package service

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/octobees/staff-directory/internal/dedupe"
	"github.com/octobees/staff-directory/internal/dto"
	"github.com/octobees/staff-directory/internal/entity"
	"github.com/octobees/staff-directory/internal/repository"
)

// ErrEmployeeNotFound indicates the employee id is not present in the
// company's roster.
var ErrEmployeeNotFound = errors.New("employee not found")

// SnapshotStore is the local fallback copy of the catalogue.
type SnapshotStore interface {
	Save(ctx context.Context, companies []entity.Company) error
	Load(ctx context.Context) ([]entity.Company, time.Time, error)
}

// CatalogueView is a directory listing, possibly served from the snapshot.
type CatalogueView struct {
	Companies []entity.Company `json:"companies"`
	Cached    bool             `json:"cached,omitempty"`
	CachedAt  *time.Time       `json:"cached_at,omitempty"`
}

// DirectoryService exposes read/write operations for the company catalogue.
type DirectoryService struct {
	repo     repository.CompaniesRepository
	snapshot SnapshotStore
	phones   *PhoneFormatter
}

// NewDirectoryService creates a new instance of DirectoryService. The
// snapshot store may be nil, in which case reads have no offline fallback.
func NewDirectoryService(repo repository.CompaniesRepository, snapshot SnapshotStore, phones *PhoneFormatter) *DirectoryService {
	if phones == nil {
		phones = NewPhoneFormatter("")
	}
	return &DirectoryService{repo: repo, snapshot: snapshot, phones: phones}
}

// ListCompanies returns companies respecting pagination defaults. When the
// repository is unavailable the last snapshot is served instead, flagged as
// cached.
func (s *DirectoryService) ListCompanies(ctx context.Context, filter dto.ListFilter) (CatalogueView, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PerPage <= 0 {
		filter.PerPage = 20
	}
	if filter.PerPage > 100 {
		filter.PerPage = 100
	}

	companies, err := s.repo.List(ctx, filter)
	if err != nil {
		return s.listFromSnapshot(ctx, filter, err)
	}
	return CatalogueView{Companies: s.present(companies)}, nil
}

func (s *DirectoryService) listFromSnapshot(ctx context.Context, filter dto.ListFilter, cause error) (CatalogueView, error) {
	if s.snapshot == nil {
		return CatalogueView{}, cause
	}
	companies, savedAt, err := s.snapshot.Load(ctx)
	if err != nil {
		return CatalogueView{}, cause
	}
	log.Printf("directory: serving catalogue from snapshot saved at %s (repository error: %v)", savedAt.Format(time.RFC3339), cause)

	filtered := filterSnapshot(companies, filter)
	return CatalogueView{Companies: s.present(filtered), Cached: true, CachedAt: &savedAt}, nil
}

// filterSnapshot applies the list filter in memory, mirroring the repository
// query semantics closely enough for a degraded read path.
func filterSnapshot(companies []entity.Company, filter dto.ListFilter) []entity.Company {
	q := strings.ToLower(strings.TrimSpace(filter.Q))
	industry := strings.ToLower(strings.TrimSpace(filter.Industry))
	location := strings.ToLower(strings.TrimSpace(filter.Location))

	var filtered []entity.Company
	for _, company := range companies {
		if q != "" && !strings.Contains(strings.ToLower(company.Name), q) && !strings.Contains(strings.ToLower(company.Domain), q) {
			continue
		}
		if industry != "" && strings.ToLower(company.Industry) != industry {
			continue
		}
		if location != "" && strings.ToLower(company.Headquarters) != location {
			continue
		}
		filtered = append(filtered, company)
	}

	start := (filter.Page - 1) * filter.PerPage
	if start >= len(filtered) {
		return nil
	}
	end := start + filter.PerPage
	if end > len(filtered) {
		end = len(filtered)
	}
	return filtered[start:end]
}

// GetCompany fetches one company with presentation-ready phone values.
func (s *DirectoryService) GetCompany(ctx context.Context, id uuid.UUID) (*entity.Company, error) {
	company, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	presented := s.presentOne(*company)
	return &presented, nil
}

// UpdateCompany applies a partial edit to the company profile.
func (s *DirectoryService) UpdateCompany(ctx context.Context, id uuid.UUID, req dto.UpdateCompanyRequest) (*entity.Company, error) {
	company, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	applyIfSet := func(target *string, value *string) {
		if value != nil {
			*target = strings.TrimSpace(*value)
		}
	}
	applyIfSet(&company.Name, req.Name)
	applyIfSet(&company.Domain, req.Domain)
	applyIfSet(&company.Industry, req.Industry)
	applyIfSet(&company.Size, req.Size)
	applyIfSet(&company.Type, req.Type)
	applyIfSet(&company.Headquarters, req.Headquarters)
	applyIfSet(&company.LinkedIn, req.LinkedIn)

	if err := s.repo.Update(ctx, company); err != nil {
		return nil, err
	}
	s.refreshSnapshot(ctx)
	return company, nil
}

// DeleteCompany removes a company and the roster it owns.
func (s *DirectoryService) DeleteCompany(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.refreshSnapshot(ctx)
	return nil
}

// SetPhoneLock toggles the phone visibility flag for one employee.
func (s *DirectoryService) SetPhoneLock(ctx context.Context, companyID, employeeID uuid.UUID, locked bool) error {
	company, err := s.repo.GetByID(ctx, companyID)
	if err != nil {
		return err
	}

	found := false
	for i := range company.Employees {
		if company.Employees[i].ID == employeeID {
			company.Employees[i].PhoneLocked = locked
			found = true
			break
		}
	}
	if !found {
		return ErrEmployeeNotFound
	}

	if err := s.repo.UpdateEmployees(ctx, companyID, company.Employees); err != nil {
		return err
	}
	s.refreshSnapshot(ctx)
	return nil
}

// DedupeCompany collapses duplicate employees within one company and
// persists the surviving roster in a single write.
func (s *DirectoryService) DedupeCompany(ctx context.Context, id uuid.UUID) (dto.DedupeOutcome, error) {
	company, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return dto.DedupeOutcome{}, err
	}

	collapsed, removed := dedupe.Collapse(company.Employees)
	outcome := dto.DedupeOutcome{CompanyID: company.ID.String(), Name: company.Name, Removed: removed}
	if removed == 0 {
		return outcome, nil
	}

	if err := s.repo.UpdateEmployees(ctx, company.ID, collapsed); err != nil {
		return dto.DedupeOutcome{}, err
	}
	s.refreshSnapshot(ctx)
	return outcome, nil
}

// DedupeAll runs the self-dedup pass over every company. A persistence
// failure is recorded in that company's outcome and processing continues.
func (s *DirectoryService) DedupeAll(ctx context.Context) ([]dto.DedupeOutcome, error) {
	companies, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	outcomes := make([]dto.DedupeOutcome, 0, len(companies))
	for _, company := range companies {
		collapsed, removed := dedupe.Collapse(company.Employees)
		outcome := dto.DedupeOutcome{CompanyID: company.ID.String(), Name: company.Name, Removed: removed}
		if removed > 0 {
			if err := s.repo.UpdateEmployees(ctx, company.ID, collapsed); err != nil {
				outcome.Error = err.Error()
			}
		}
		outcomes = append(outcomes, outcome)
	}
	s.refreshSnapshot(ctx)
	return outcomes, nil
}

// refreshSnapshot stores the current catalogue in the local fallback. Best
// effort: failures are logged, never surfaced.
func (s *DirectoryService) refreshSnapshot(ctx context.Context) {
	if s.snapshot == nil {
		return
	}
	companies, err := s.repo.GetAll(ctx)
	if err != nil {
		log.Printf("directory: snapshot refresh skipped: %v", err)
		return
	}
	if err := s.snapshot.Save(ctx, companies); err != nil {
		log.Printf("directory: snapshot save failed: %v", err)
	}
}

func (s *DirectoryService) present(companies []entity.Company) []entity.Company {
	presented := make([]entity.Company, len(companies))
	for i, company := range companies {
		presented[i] = s.presentOne(company)
	}
	return presented
}

func (s *DirectoryService) presentOne(company entity.Company) entity.Company {
	employees := make([]entity.Employee, len(company.Employees))
	for i, employee := range company.Employees {
		employee.Phone = s.phones.Display(employee.Phone, employee.PhoneLocked)
		employees[i] = employee
	}
	company.Employees = employees
	return company
}
