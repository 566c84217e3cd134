package repository

import (
	"context"
	"errors"

	"loan-amortizer/domain"
)

var ErrPlanNotFound = errors.New("plan not found")

type PlanRepository interface {
	Save(ctx context.Context, plan domain.Plan) error
	Get(ctx context.Context, id string) (domain.Plan, error)
	List(ctx context.Context) ([]domain.Plan, error)
	Delete(ctx context.Context, id string) error
}
