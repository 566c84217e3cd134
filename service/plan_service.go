package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"loan-amortizer/domain"
	"loan-amortizer/repository"
)

type PlanService struct {
	repo      repository.PlanRepository
	schedules *ScheduleService
	log       *logrus.Logger
	now       func() time.Time
}

func NewPlanService(repo repository.PlanRepository, schedules *ScheduleService, log *logrus.Logger) *PlanService {
	return &PlanService{
		repo:      repo,
		schedules: schedules,
		log:       log,
		now:       time.Now,
	}
}

// Create validates and stores a named plan under a fresh ID.
func (s *PlanService) Create(ctx context.Context, name string, params domain.LoanParameters) (domain.Plan, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Plan{}, fmt.Errorf("%w: name is required", ErrInvalidPlan)
	}
	if len(name) > MaxPlanNameLength {
		return domain.Plan{}, fmt.Errorf("%w: name exceeds %d characters", ErrInvalidPlan, MaxPlanNameLength)
	}
	if err := checkLimits(params); err != nil {
		return domain.Plan{}, err
	}

	plan := domain.Plan{
		ID:        uuid.New().String(),
		Name:      name,
		Params:    params,
		CreatedAt: s.now().UTC(),
	}
	if err := s.repo.Save(ctx, plan); err != nil {
		return domain.Plan{}, err
	}

	s.log.Infof("Plan saved: %s (%s)", plan.Name, plan.ID)
	return plan, nil
}

func (s *PlanService) Get(ctx context.Context, id string) (domain.Plan, error) {
	return s.repo.Get(ctx, id)
}

func (s *PlanService) List(ctx context.Context) ([]domain.Plan, error) {
	return s.repo.List(ctx)
}

func (s *PlanService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Infof("Plan deleted: %s", id)
	return nil
}

// Schedule loads a saved plan and calculates its schedule.
func (s *PlanService) Schedule(ctx context.Context, id string) (domain.Plan, domain.ScheduleResult, error) {
	plan, err := s.repo.Get(ctx, id)
	if err != nil {
		return domain.Plan{}, domain.ScheduleResult{}, err
	}
	result, err := s.schedules.Calculate(ctx, plan.Params)
	if err != nil {
		return domain.Plan{}, domain.ScheduleResult{}, err
	}
	return plan, result, nil
}
