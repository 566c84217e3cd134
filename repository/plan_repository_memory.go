package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"loan-amortizer/domain"
)

// PlanRepositoryMemory is an in-memory implementation of PlanRepository.
type PlanRepositoryMemory struct {
	mu   sync.RWMutex
	data map[string]domain.Plan
}

// NewPlanRepositoryMemory creates a new in-memory plan repository.
func NewPlanRepositoryMemory() *PlanRepositoryMemory {
	return &PlanRepositoryMemory{
		data: make(map[string]domain.Plan),
	}
}

// Save stores the plan in memory, replacing any plan with the same ID.
func (r *PlanRepositoryMemory) Save(_ context.Context, plan domain.Plan) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[plan.ID] = clonePlan(plan)
	return nil
}

func (r *PlanRepositoryMemory) Get(_ context.Context, id string) (domain.Plan, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	plan, ok := r.data[id]
	if !ok {
		return domain.Plan{}, fmt.Errorf("%w: %s", ErrPlanNotFound, id)
	}
	return clonePlan(plan), nil
}

// List returns plans oldest first.
func (r *PlanRepositoryMemory) List(_ context.Context) ([]domain.Plan, error) {
	r.mu.RLock()
	plans := make([]domain.Plan, 0, len(r.data))
	for _, plan := range r.data {
		plans = append(plans, clonePlan(plan))
	}
	r.mu.RUnlock()

	sort.Slice(plans, func(i, j int) bool {
		if plans[i].CreatedAt.Equal(plans[j].CreatedAt) {
			return plans[i].ID < plans[j].ID
		}
		return plans[i].CreatedAt.Before(plans[j].CreatedAt)
	})
	return plans, nil
}

func (r *PlanRepositoryMemory) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.data[id]; !ok {
		return fmt.Errorf("%w: %s", ErrPlanNotFound, id)
	}
	delete(r.data, id)
	return nil
}

// clonePlan copies the reference fields so callers cannot mutate stored plans.
func clonePlan(plan domain.Plan) domain.Plan {
	if plan.Params.Extras != nil {
		extras := make(map[int]float64, len(plan.Params.Extras))
		for k, v := range plan.Params.Extras {
			extras[k] = v
		}
		plan.Params.Extras = extras
	}
	if plan.Params.RecastMonths != nil {
		plan.Params.RecastMonths = append([]int(nil), plan.Params.RecastMonths...)
	}
	return plan
}
