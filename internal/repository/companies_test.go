package repository

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/octobees/staff-directory/internal/dto"
	"github.com/octobees/staff-directory/internal/entity"
)

type stubCompanyRows struct {
	payloads []string
	cursor   int
}

func (s *stubCompanyRows) Close()                                       {}
func (s *stubCompanyRows) Err() error                                   { return nil }
func (s *stubCompanyRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (s *stubCompanyRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (s *stubCompanyRows) Next() bool {
	if s.cursor >= len(s.payloads) {
		return false
	}
	s.cursor++
	return true
}

func (s *stubCompanyRows) Scan(dest ...any) error {
	if s.cursor == 0 || s.cursor > len(s.payloads) {
		return errors.New("scan called outside row")
	}
	now := time.Now()

	*dest[0].(*uuid.UUID) = uuid.MustParse("aaaaaaaa-aaaa-aaaa-aaaa-aaaaaaaaaaaa")
	*dest[1].(*string) = "Acme"
	*dest[2].(*string) = "acme.com"
	*dest[3].(*string) = "Software"
	*dest[4].(*string) = "51-200"
	*dest[5].(*string) = "Private"
	*dest[6].(*string) = "Berlin"
	*dest[7].(*string) = "linkedin.com/company/acme"
	*dest[8].(*[]byte) = []byte(s.payloads[s.cursor-1])
	*dest[9].(*time.Time) = now
	*dest[10].(*time.Time) = now
	return nil
}

func (s *stubCompanyRows) Values() ([]any, error) { return nil, nil }
func (s *stubCompanyRows) RawValues() [][]byte    { return nil }
func (s *stubCompanyRows) Conn() *pgx.Conn        { return nil }

type stubCompaniesPool struct {
	lastSQL  string
	lastArgs []any
	rows     pgx.Rows
	execTag  pgconn.CommandTag
	execErr  error
	queryErr error
}

func (p *stubCompaniesPool) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	p.lastSQL = sql
	p.lastArgs = args
	return p.execTag, p.execErr
}

func (p *stubCompaniesPool) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	p.lastSQL = sql
	p.lastArgs = args
	if p.queryErr != nil {
		return nil, p.queryErr
	}
	return p.rows, nil
}

func (p *stubCompaniesPool) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	p.lastSQL = sql
	p.lastArgs = args
	return p.rows
}

func TestPGXCompaniesRepository_List_BuildsFilters(t *testing.T) {
	pool := &stubCompaniesPool{rows: &stubCompanyRows{payloads: []string{`[{"first_name":"Jane"}]`}}}
	repo := &PGXCompaniesRepository{pool: pool}

	companies, err := repo.List(context.Background(), dto.ListFilter{
		Q:        "acme",
		Industry: "Software",
		Location: "Berlin",
		Page:     2,
		PerPage:  10,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(companies) != 1 {
		t.Fatalf("expected 1 company, got %d", len(companies))
	}
	if companies[0].Employees[0].FirstName != "Jane" {
		t.Fatalf("expected roster decoded from jsonb, got %+v", companies[0].Employees)
	}

	sql := pool.lastSQL
	for _, fragment := range []string{"ILIKE", "LOWER(industry)", "LOWER(headquarters)", "ORDER BY name ASC", "LIMIT", "OFFSET"} {
		if !strings.Contains(sql, fragment) {
			t.Fatalf("expected query to contain %q, got %s", fragment, sql)
		}
	}
	if len(pool.lastArgs) != 6 {
		t.Fatalf("expected 6 args (q x2, industry, location, limit, offset), got %d", len(pool.lastArgs))
	}
	if pool.lastArgs[5] != 10 {
		t.Fatalf("expected offset 10 for page 2, got %v", pool.lastArgs[5])
	}
}

func TestPGXCompaniesRepository_List_QueryError(t *testing.T) {
	pool := &stubCompaniesPool{queryErr: errors.New("connection reset")}
	repo := &PGXCompaniesRepository{pool: pool}

	if _, err := repo.List(context.Background(), dto.ListFilter{}); err == nil {
		t.Fatal("expected query error surfaced")
	}
}

func TestPGXCompaniesRepository_Create_AssignsID(t *testing.T) {
	pool := &stubCompaniesPool{execTag: pgconn.NewCommandTag("INSERT 0 1")}
	repo := &PGXCompaniesRepository{pool: pool}

	company := &entity.Company{Name: "Acme", Employees: []entity.Employee{{FirstName: "Jane"}}}
	if err := repo.Create(context.Background(), company); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if company.ID == uuid.Nil {
		t.Fatal("expected id assigned on insert")
	}
	if !strings.Contains(pool.lastSQL, "INSERT INTO companies") {
		t.Fatalf("unexpected sql: %s", pool.lastSQL)
	}

	payload, ok := pool.lastArgs[len(pool.lastArgs)-1].(string)
	if !ok || !strings.Contains(payload, `"first_name":"Jane"`) {
		t.Fatalf("expected roster marshalled as jsonb payload, got %v", pool.lastArgs)
	}
}

func TestPGXCompaniesRepository_UpdateEmployees_NotFound(t *testing.T) {
	pool := &stubCompaniesPool{execTag: pgconn.NewCommandTag("UPDATE 0")}
	repo := &PGXCompaniesRepository{pool: pool}

	err := repo.UpdateEmployees(context.Background(), uuid.New(), nil)
	if !errors.Is(err, ErrCompanyNotFound) {
		t.Fatalf("expected ErrCompanyNotFound, got %v", err)
	}
	payload, ok := pool.lastArgs[1].(string)
	if !ok || payload != "[]" {
		t.Fatalf("expected nil roster marshalled as empty array, got %v", pool.lastArgs[1])
	}
}

func TestPGXCompaniesRepository_Delete(t *testing.T) {
	pool := &stubCompaniesPool{execTag: pgconn.NewCommandTag("DELETE 1")}
	repo := &PGXCompaniesRepository{pool: pool}

	if err := repo.Delete(context.Background(), uuid.New()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	pool.execTag = pgconn.NewCommandTag("DELETE 0")
	if err := repo.Delete(context.Background(), uuid.New()); !errors.Is(err, ErrCompanyNotFound) {
		t.Fatalf("expected ErrCompanyNotFound, got %v", err)
	}
}
