package service

import (
	"context"
	"math"

	"golang.org/x/sync/errgroup"

	"loan-amortizer/domain"
)

type ComparisonService struct {
	schedules *ScheduleService
}

func NewComparisonService(schedules *ScheduleService) *ComparisonService {
	return &ComparisonService{schedules: schedules}
}

// Compare builds the plan described by params and the same loan without any
// prepayments, and reports what the prepayments save.
func (s *ComparisonService) Compare(
	ctx context.Context,
	params domain.LoanParameters,
) (domain.ScheduleComparison, error) {

	var baseline, plan domain.ScheduleResult

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		baseline, err = s.schedules.Calculate(gctx, params.WithoutPrepayments())
		return err
	})
	g.Go(func() error {
		var err error
		plan, err = s.schedules.Calculate(gctx, params)
		return err
	})
	if err := g.Wait(); err != nil {
		return domain.ScheduleComparison{}, err
	}

	comparison := domain.ScheduleComparison{
		Baseline: summarize(baseline),
		Plan:     summarize(plan),
	}
	comparison.Savings = domain.Savings{
		InterestSaved:    roundTo2Decimals(math.Max(0, baseline.TotalInterest-plan.TotalInterest)),
		MonthsSaved:      baseline.PayoffMonth - plan.PayoffMonth,
		PaymentReduction: roundTo2Decimals(math.Max(0, comparison.Baseline.InitialPayment-comparison.Plan.FinalPayment)),
	}
	return comparison, nil
}

func summarize(result domain.ScheduleResult) domain.ScheduleSummary {
	return domain.ScheduleSummary{
		InitialPayment: roundTo2Decimals(result.InitialPayment()),
		FinalPayment:   roundTo2Decimals(regularPayment(result.Rows)),
		TotalInterest:  roundTo2Decimals(result.TotalInterest),
		TotalPaid:      roundTo2Decimals(result.TotalPaid),
		PayoffMonth:    result.PayoffMonth,
	}
}

// regularPayment is the scheduled payment in force at the end of the loan.
// The payoff row is skipped because its payment is capped to what was owed.
func regularPayment(rows []domain.ScheduleRow) float64 {
	switch len(rows) {
	case 0:
		return 0
	case 1:
		return rows[0].Payment
	}
	return rows[len(rows)-2].Payment
}
