package domain

// ScheduleRow is one month of the amortization ledger.
type ScheduleRow struct {
	Idx       int       `json:"idx"`
	Period    YearMonth `json:"period"`
	Payment   float64   `json:"payment"`
	Interest  float64   `json:"interest"`
	Principal float64   `json:"principal"`
	Extra     float64   `json:"extra"`
	Total     float64   `json:"total"`
	Balance   float64   `json:"balance"`
}

type ScheduleResult struct {
	Rows          []ScheduleRow `json:"rows"`
	TotalInterest float64       `json:"total_interest"`
	TotalPaid     float64       `json:"total_paid"`
	PayoffMonth   int           `json:"payoff_month"`
}

// InitialPayment returns the scheduled payment of the first row, or 0 for
// an empty schedule.
func (r ScheduleResult) InitialPayment() float64 {
	if len(r.Rows) == 0 {
		return 0
	}
	return r.Rows[0].Payment
}

// FinalBalance returns the balance left after the last row.
func (r ScheduleResult) FinalBalance() float64 {
	if len(r.Rows) == 0 {
		return 0
	}
	return r.Rows[len(r.Rows)-1].Balance
}
