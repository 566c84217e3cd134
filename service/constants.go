package service

const (
	MaxLoanAmount   = 1_000_000_000.0 // 1 billion
	MaxInterestRate = 1000.0          // 1000% per year
	MaxTermMonths   = 1200            // 100 years
	MinTermMonths   = 1

	// balanceEpsilon is the magnitude below which a remaining balance is
	// treated as fully paid.
	balanceEpsilon = 1e-9

	MaxPlanNameLength = 120
)
