package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"loan-amortizer/domain"

	_ "modernc.org/sqlite" // register sqlite driver
)

// createdAtLayout has a fixed width so created_at sorts lexically.
const createdAtLayout = "2006-01-02T15:04:05.000000000Z"

// SQLitePlanRepository persists plans in a sqlite file. Loan parameters are
// stored as a JSON document.
type SQLitePlanRepository struct {
	db *sql.DB
}

func NewSQLitePlanRepository(dbPath string) (*SQLitePlanRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create db directory: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &SQLitePlanRepository{db: db}, nil
}

func (r *SQLitePlanRepository) Close() error {
	return r.db.Close()
}

func (r *SQLitePlanRepository) Save(ctx context.Context, plan domain.Plan) error {
	params, err := json.Marshal(plan.Params)
	if err != nil {
		return fmt.Errorf("failed to encode plan params: %w", err)
	}

	query := `
		INSERT INTO plans (id, name, params, created_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET name = excluded.name, params = excluded.params`
	_, err = r.db.ExecContext(ctx, query,
		plan.ID, plan.Name, string(params), plan.CreatedAt.UTC().Format(createdAtLayout))
	if err != nil {
		return fmt.Errorf("failed to save plan: %w", err)
	}
	return nil
}

func (r *SQLitePlanRepository) Get(ctx context.Context, id string) (domain.Plan, error) {
	query := `SELECT id, name, params, created_at FROM plans WHERE id = ?`
	plan, err := scanPlan(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Plan{}, fmt.Errorf("%w: %s", ErrPlanNotFound, id)
	}
	if err != nil {
		return domain.Plan{}, fmt.Errorf("failed to find plan: %w", err)
	}
	return plan, nil
}

// List returns plans oldest first.
func (r *SQLitePlanRepository) List(ctx context.Context) ([]domain.Plan, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, params, created_at FROM plans ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list plans: %w", err)
	}
	defer func() { _ = rows.Close() }()

	plans := []domain.Plan{}
	for rows.Next() {
		plan, err := scanPlan(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to read plan: %w", err)
		}
		plans = append(plans, plan)
	}
	return plans, rows.Err()
}

func (r *SQLitePlanRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM plans WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete plan: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete plan: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrPlanNotFound, id)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPlan(row rowScanner) (domain.Plan, error) {
	var (
		plan      domain.Plan
		params    string
		createdAt string
	)
	if err := row.Scan(&plan.ID, &plan.Name, &params, &createdAt); err != nil {
		return domain.Plan{}, err
	}
	if err := json.Unmarshal([]byte(params), &plan.Params); err != nil {
		return domain.Plan{}, fmt.Errorf("decode params: %w", err)
	}
	t, err := time.Parse(createdAtLayout, createdAt)
	if err != nil {
		return domain.Plan{}, fmt.Errorf("decode created_at: %w", err)
	}
	plan.CreatedAt = t
	return plan, nil
}
