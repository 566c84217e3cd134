package repository

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"loan-amortizer/domain"
)

func samplePlan(id string, created time.Time) domain.Plan {
	return domain.Plan{
		ID:   id,
		Name: "plan " + id,
		Params: domain.LoanParameters{
			Principal:         250000,
			AnnualRatePct:     5.25,
			TermMonths:        360,
			Start:             domain.YearMonth{Year: 2025, Month: 6},
			Extras:            map[int]float64{1: 1000, 12: 250.5},
			RecastMonths:      []int{24},
			AutoRecastOnExtra: true,
		},
		CreatedAt: created,
	}
}

func exercisePlanRepository(t *testing.T, repo PlanRepository) {
	t.Helper()
	ctx := context.Background()
	base := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	second := samplePlan("b", base.Add(time.Hour))
	first := samplePlan("a", base)
	if err := repo.Save(ctx, second); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := repo.Save(ctx, first); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := repo.Get(ctx, "a")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Name != first.Name || got.Params.Extras[12] != 250.5 || got.Params.Start != first.Params.Start {
		t.Errorf("unexpected plan: %+v", got)
	}
	if len(got.Params.RecastMonths) != 1 || got.Params.RecastMonths[0] != 24 || !got.Params.AutoRecastOnExtra {
		t.Errorf("recast settings not preserved: %+v", got.Params)
	}
	if !got.CreatedAt.Equal(first.CreatedAt) {
		t.Errorf("created_at = %v, want %v", got.CreatedAt, first.CreatedAt)
	}

	plans, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(plans) != 2 || plans[0].ID != "a" || plans[1].ID != "b" {
		t.Errorf("expected plans ordered oldest first, got %+v", plans)
	}

	renamed := first
	renamed.Name = "renamed"
	if err := repo.Save(ctx, renamed); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, _ = repo.Get(ctx, "a")
	if got.Name != "renamed" {
		t.Errorf("expected save to replace, got name %q", got.Name)
	}

	if err := repo.Delete(ctx, "a"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := repo.Get(ctx, "a"); !errors.Is(err, ErrPlanNotFound) {
		t.Errorf("expected ErrPlanNotFound, got %v", err)
	}
	if err := repo.Delete(ctx, "a"); !errors.Is(err, ErrPlanNotFound) {
		t.Errorf("expected ErrPlanNotFound on second delete, got %v", err)
	}
}

func TestPlanRepositoryMemory(t *testing.T) {
	exercisePlanRepository(t, NewPlanRepositoryMemory())
}

func TestPlanRepositoryMemory_ReturnsCopies(t *testing.T) {
	repo := NewPlanRepositoryMemory()
	ctx := context.Background()
	_ = repo.Save(ctx, samplePlan("a", time.Now()))

	got, _ := repo.Get(ctx, "a")
	got.Params.Extras[1] = 99999

	again, _ := repo.Get(ctx, "a")
	if again.Params.Extras[1] != 1000 {
		t.Errorf("stored plan was mutated through a returned copy")
	}
}

func TestSQLitePlanRepository(t *testing.T) {
	repo, err := NewSQLitePlanRepository(filepath.Join(t.TempDir(), "db", "plans.db"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer repo.Close()

	exercisePlanRepository(t, repo)
}

func TestSQLitePlanRepository_Reopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plans.db")
	ctx := context.Background()

	repo, err := NewSQLitePlanRepository(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := repo.Save(ctx, samplePlan("keep", time.Now())); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	repo.Close()

	reopened, err := NewSQLitePlanRepository(path)
	if err != nil {
		t.Fatalf("unexpected error reopening: %v", err)
	}
	defer reopened.Close()

	if _, err := reopened.Get(ctx, "keep"); err != nil {
		t.Errorf("expected plan to survive reopen: %v", err)
	}
}
