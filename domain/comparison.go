package domain

type ScheduleSummary struct {
	InitialPayment float64 `json:"initial_payment"`
	FinalPayment   float64 `json:"final_payment"`
	TotalInterest  float64 `json:"total_interest"`
	TotalPaid      float64 `json:"total_paid"`
	PayoffMonth    int     `json:"payoff_month"`
}

type Savings struct {
	InterestSaved    float64 `json:"interest_saved"`
	MonthsSaved      int     `json:"months_saved"`
	PaymentReduction float64 `json:"payment_reduction"`
}

// ScheduleComparison sets a prepayment plan against the same loan paid
// strictly on schedule.
type ScheduleComparison struct {
	Baseline ScheduleSummary `json:"baseline"`
	Plan     ScheduleSummary `json:"plan"`
	Savings  Savings         `json:"savings"`
}
