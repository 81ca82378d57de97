package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/octobees/staff-directory/internal/dto"
	"github.com/octobees/staff-directory/internal/entity"
)

// ErrCompanyNotFound indicates there is no company for the given lookup.
var ErrCompanyNotFound = errors.New("company not found")

// CompaniesRepository describes persistence operations for company documents.
// Each company row stores its employee roster as a single jsonb document, so
// employee-level merges batch into one write per company.
type CompaniesRepository interface {
	List(ctx context.Context, filter dto.ListFilter) ([]entity.Company, error)
	GetAll(ctx context.Context) ([]entity.Company, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Company, error)
	Create(ctx context.Context, company *entity.Company) error
	Update(ctx context.Context, company *entity.Company) error
	UpdateEmployees(ctx context.Context, id uuid.UUID, employees []entity.Employee) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// pgxPool is the subset of pgxpool.Pool the repository uses; tests stub it.
type pgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

var _ pgxPool = (*pgxpool.Pool)(nil)

// PGXCompaniesRepository implements CompaniesRepository using pgx.
type PGXCompaniesRepository struct {
	pool pgxPool
}

// NewPGXCompaniesRepository wires a pgx backed repository.
func NewPGXCompaniesRepository(pool *pgxpool.Pool) *PGXCompaniesRepository {
	return &PGXCompaniesRepository{pool: pool}
}

const companyColumns = `id, name, domain, industry, size, type, headquarters, linkedin, employees, created_at, updated_at`

// List retrieves companies matching the provided filter, name ascending.
func (r *PGXCompaniesRepository) List(ctx context.Context, filter dto.ListFilter) ([]entity.Company, error) {
	query := strings.Builder{}
	query.WriteString(`SELECT ` + companyColumns + ` FROM companies`)

	var (
		clauses []string
		args    []any
		idx     = 1
	)
	if filter.Q != "" {
		pattern := fmt.Sprintf("%%%s%%", filter.Q)
		clauses = append(clauses, fmt.Sprintf("(name ILIKE $%d OR domain ILIKE $%d)", idx, idx+1))
		args = append(args, pattern, pattern)
		idx += 2
	}
	if filter.Industry != "" {
		clauses = append(clauses, fmt.Sprintf("LOWER(industry) = LOWER($%d)", idx))
		args = append(args, filter.Industry)
		idx++
	}
	if filter.Location != "" {
		clauses = append(clauses, fmt.Sprintf("LOWER(headquarters) = LOWER($%d)", idx))
		args = append(args, filter.Location)
		idx++
	}
	if len(clauses) > 0 {
		query.WriteString(" WHERE ")
		query.WriteString(strings.Join(clauses, " AND "))
	}
	query.WriteString(" ORDER BY name ASC")

	page := filter.Page
	if page <= 0 {
		page = 1
	}
	perPage := filter.PerPage
	if perPage <= 0 {
		perPage = 20
	}
	query.WriteString(fmt.Sprintf(" LIMIT $%d OFFSET $%d", idx, idx+1))
	args = append(args, perPage, (page-1)*perPage)

	rows, err := r.pool.Query(ctx, query.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	defer rows.Close()

	return scanCompanies(rows)
}

// GetAll returns the entire catalogue in name order. The import driver uses
// this as the persisted base for cross-batch merging.
func (r *PGXCompaniesRepository) GetAll(ctx context.Context) ([]entity.Company, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+companyColumns+` FROM companies ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("get all companies: %w", err)
	}
	defer rows.Close()

	return scanCompanies(rows)
}

// GetByID fetches a single company document.
func (r *PGXCompaniesRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Company, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+companyColumns+` FROM companies WHERE id = $1`, id)
	company, err := scanCompany(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCompanyNotFound
		}
		return nil, fmt.Errorf("get company: %w", err)
	}
	return company, nil
}

// Create inserts a new company document with its current roster.
func (r *PGXCompaniesRepository) Create(ctx context.Context, company *entity.Company) error {
	if company == nil {
		return fmt.Errorf("company payload is nil")
	}
	if company.ID == uuid.Nil {
		company.ID = uuid.New()
	}

	employees, err := marshalEmployees(company.Employees)
	if err != nil {
		return err
	}

	_, err = r.pool.Exec(ctx, `
        INSERT INTO companies (id, name, domain, industry, size, type, headquarters, linkedin, employees, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9::jsonb, NOW())
    `,
		company.ID,
		company.Name,
		company.Domain,
		company.Industry,
		company.Size,
		company.Type,
		company.Headquarters,
		company.LinkedIn,
		employees,
	)
	if err != nil {
		return fmt.Errorf("insert company %q: %w", company.Name, err)
	}
	return nil
}

// Update replaces the company's profile fields and roster.
func (r *PGXCompaniesRepository) Update(ctx context.Context, company *entity.Company) error {
	if company == nil {
		return fmt.Errorf("company payload is nil")
	}

	employees, err := marshalEmployees(company.Employees)
	if err != nil {
		return err
	}

	tag, err := r.pool.Exec(ctx, `
        UPDATE companies
        SET name = $2, domain = $3, industry = $4, size = $5, type = $6,
            headquarters = $7, linkedin = $8, employees = $9::jsonb, updated_at = NOW()
        WHERE id = $1
    `,
		company.ID,
		company.Name,
		company.Domain,
		company.Industry,
		company.Size,
		company.Type,
		company.Headquarters,
		company.LinkedIn,
		employees,
	)
	if err != nil {
		return fmt.Errorf("update company %q: %w", company.Name, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrCompanyNotFound
	}
	return nil
}

// UpdateEmployees replaces only the roster document. Import merges batch all
// employee-level changes for a company into this single write.
func (r *PGXCompaniesRepository) UpdateEmployees(ctx context.Context, id uuid.UUID, employees []entity.Employee) error {
	payload, err := marshalEmployees(employees)
	if err != nil {
		return err
	}

	tag, err := r.pool.Exec(ctx, `UPDATE companies SET employees = $2::jsonb, updated_at = NOW() WHERE id = $1`, id, payload)
	if err != nil {
		return fmt.Errorf("update employees for company %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrCompanyNotFound
	}
	return nil
}

// Delete removes a company document and the roster it owns.
func (r *PGXCompaniesRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM companies WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete company %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrCompanyNotFound
	}
	return nil
}

func marshalEmployees(employees []entity.Employee) (string, error) {
	if employees == nil {
		employees = []entity.Employee{}
	}
	payload, err := json.Marshal(employees)
	if err != nil {
		return "", fmt.Errorf("marshal employees: %w", err)
	}
	return string(payload), nil
}

func scanCompanies(rows pgx.Rows) ([]entity.Company, error) {
	var companies []entity.Company
	for rows.Next() {
		company, err := scanCompany(rows)
		if err != nil {
			return nil, fmt.Errorf("scan company: %w", err)
		}
		companies = append(companies, *company)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate companies: %w", err)
	}
	return companies, nil
}

func scanCompany(row pgx.Row) (*entity.Company, error) {
	var (
		company   entity.Company
		employees []byte
	)
	err := row.Scan(
		&company.ID,
		&company.Name,
		&company.Domain,
		&company.Industry,
		&company.Size,
		&company.Type,
		&company.Headquarters,
		&company.LinkedIn,
		&employees,
		&company.CreatedAt,
		&company.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(employees) > 0 {
		if err := json.Unmarshal(employees, &company.Employees); err != nil {
			return nil, fmt.Errorf("unmarshal employees: %w", err)
		}
	}
	if company.Employees == nil {
		company.Employees = []entity.Employee{}
	}
	return &company, nil
}
