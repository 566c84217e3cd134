package service

import (
	"fmt"
	"maps"
	"math"
	"slices"

	"loan-amortizer/domain"
)

// scheduleState is what carries over from one month to the next.
type scheduleState struct {
	balance       float64
	payment       float64
	remainingTerm int
}

// monthEvents are the caller-supplied events for a single month.
type monthEvents struct {
	extra        float64
	recast       bool
	recastOnPaid bool
}

// ValidateParameters reports the first problem with params, wrapped in
// ErrInvalidParameters.
func ValidateParameters(params domain.LoanParameters) error {
	if !isFinite(params.Principal) || params.Principal <= 0 {
		return fmt.Errorf("%w: principal must be positive", ErrInvalidParameters)
	}
	if params.TermMonths < MinTermMonths {
		return fmt.Errorf("%w: term must be at least %d month", ErrInvalidParameters, MinTermMonths)
	}
	if !isFinite(params.AnnualRatePct) || params.AnnualRatePct < 0 {
		return fmt.Errorf("%w: annual rate must not be negative", ErrInvalidParameters)
	}
	for _, month := range slices.Sorted(maps.Keys(params.Extras)) {
		amount := params.Extras[month]
		if !isFinite(amount) || amount < 0 {
			return fmt.Errorf("%w: extra payment for month %d must not be negative", ErrInvalidParameters, month)
		}
	}
	// A one-month payment bounds every payment and interest charge.
	if !isFinite(annuityPayment(params.Principal, monthlyRate(params.AnnualRatePct), 1)) {
		return fmt.Errorf("%w: principal and rate overflow the monthly payment", ErrInvalidParameters)
	}
	return nil
}

// BuildSchedule computes the month-by-month amortization ledger for params.
// It is a pure function: equal inputs produce identical results, and it
// fails only on invalid input, before any row is produced.
func BuildSchedule(params domain.LoanParameters) (domain.ScheduleResult, error) {
	if err := ValidateParameters(params); err != nil {
		return domain.ScheduleResult{}, err
	}

	rate := monthlyRate(params.AnnualRatePct)
	recasts := make(map[int]bool, len(params.RecastMonths))
	for _, month := range params.RecastMonths {
		recasts[month] = true
	}

	state := scheduleState{
		balance:       params.Principal,
		payment:       annuityPayment(params.Principal, rate, params.TermMonths),
		remainingTerm: params.TermMonths,
	}
	result := domain.ScheduleResult{
		Rows: make([]domain.ScheduleRow, 0, min(params.TermMonths, MaxTermMonths)),
	}

	for idx := 1; idx <= params.TermMonths && state.balance > 0; idx++ {
		var row domain.ScheduleRow
		row, state = stepMonth(idx, rate, state, monthEvents{
			extra:        params.Extras[idx],
			recast:       recasts[idx],
			recastOnPaid: params.AutoRecastOnExtra,
		})
		row.Period = params.Start.AddMonths(idx - 1)

		result.Rows = append(result.Rows, row)
		result.TotalInterest += row.Interest
		result.TotalPaid += row.Total
		result.PayoffMonth = idx
	}

	// A balance still open after the last month stays on the final row.
	return result, nil
}

// stepMonth applies one month of payments to state and returns the ledger
// row together with the state the next month starts from.
func stepMonth(idx int, rate float64, state scheduleState, events monthEvents) (domain.ScheduleRow, scheduleState) {
	interest := state.balance * rate
	payment := state.payment

	principal := payment - interest
	if principal >= state.balance {
		principal = state.balance
		payment = interest + principal
	}
	if principal < 0 {
		principal = 0
	}

	extra := events.extra
	if room := state.balance - principal; extra > room {
		extra = room
	}

	balance := state.balance - principal - extra
	if balance < balanceEpsilon {
		balance = 0
	}

	row := domain.ScheduleRow{
		Idx:       idx,
		Payment:   payment,
		Interest:  interest,
		Principal: principal,
		Extra:     extra,
		Total:     interest + principal + extra,
		Balance:   balance,
	}

	next := scheduleState{
		balance:       balance,
		payment:       state.payment,
		remainingTerm: state.remainingTerm - 1,
	}
	recast := events.recast || (events.recastOnPaid && extra > 0)
	if recast && next.balance > 0 && next.remainingTerm > 0 {
		next.payment = annuityPayment(next.balance, rate, next.remainingTerm)
	}

	return row, next
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
