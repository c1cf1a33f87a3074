// Package registry reads voters from the university student registry, a
// secondary SQL database (MySQL in production, Postgres or SQLite elsewhere).
package registry

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	apperrors "voteverse-backend/internal/errors"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/mysqldialect"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	_ "modernc.org/sqlite"
)

// Record is one row of the registry voters table.
type Record struct {
	bun.BaseModel `bun:"table:voters,alias:v"`

	RegNo       string `bun:"reg_no,pk"`
	Name        string `bun:"name"`
	College     string `bun:"college"`
	Programme   string `bun:"programme"`
	YearOfStudy int    `bun:"year_of_study"`
	PhoneNumber string `bun:"phone_number,nullzero"`
	Email       string `bun:"email"`
	DormBlock   string `bun:"dorm_block"`
	ImageURL    string `bun:"image_url,nullzero"`
}

// SplitName splits the registry's single name column into first and last name.
// Everything after the first word is the last name.
func (r Record) SplitName() (first, last string) {
	parts := strings.Fields(r.Name)
	switch len(parts) {
	case 0:
		return "", ""
	case 1:
		return parts[0], ""
	default:
		return parts[0], strings.Join(parts[1:], " ")
	}
}

// Registry is a read-only view of the registry voters table.
type Registry struct {
	db    *bun.DB
	table string
}

// Open connects to the registry database. driver is one of mysql, postgres, sqlite.
func Open(driver, dsn, table string) (*Registry, error) {
	if dsn == "" {
		return nil, apperrors.ErrRegistryNotConfigured
	}
	driverName, err := sqlDriverName(driver)
	if err != nil {
		return nil, err
	}
	sqlDB, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("open registry: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping registry: %w", err)
	}
	return New(sqlDB, driver, table), nil
}

// New wraps an existing connection.
func New(sqlDB *sql.DB, driver, table string) *Registry {
	if table == "" {
		table = "voters"
	}
	return &Registry{db: createBunDB(sqlDB, driver), table: table}
}

func sqlDriverName(driver string) (string, error) {
	switch driver {
	case "mysql":
		return "mysql", nil
	case "postgres":
		return "pgx", nil
	case "sqlite":
		return "sqlite", nil
	default:
		return "", fmt.Errorf("unsupported registry driver %q", driver)
	}
}

func createBunDB(sqlDB *sql.DB, driver string) *bun.DB {
	switch driver {
	case "postgres":
		return bun.NewDB(sqlDB, pgdialect.New())
	case "mysql":
		return bun.NewDB(sqlDB, mysqldialect.New())
	default:
		return bun.NewDB(sqlDB, sqlitedialect.New())
	}
}

// List returns every registry voter ordered by registration number.
func (r *Registry) List(ctx context.Context) ([]Record, error) {
	var records []Record
	err := r.db.NewSelect().
		Model(&records).
		ModelTableExpr("? AS v", bun.Ident(r.table)).
		OrderExpr("v.reg_no ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("list registry voters: %w", err)
	}
	return records, nil
}

// Get returns one registry voter.
func (r *Registry) Get(ctx context.Context, regNo string) (*Record, error) {
	var record Record
	err := r.db.NewSelect().
		Model(&record).
		ModelTableExpr("? AS v", bun.Ident(r.table)).
		Where("v.reg_no = ?", regNo).
		Limit(1).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.ErrVoterNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get registry voter: %w", err)
	}
	return &record, nil
}

// Close closes the underlying connection.
func (r *Registry) Close() error {
	return r.db.Close()
}

// Ping checks the registry connection.
func (r *Registry) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}
