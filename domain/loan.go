package domain

// LoanParameters describes a fixed-rate loan and the prepayments planned
// against it. Month indices are 1-based.
type LoanParameters struct {
	Principal         float64         `json:"principal"`
	AnnualRatePct     float64         `json:"annual_rate_pct"`
	TermMonths        int             `json:"term_months"`
	Start             YearMonth       `json:"start"`
	Extras            map[int]float64 `json:"extras,omitempty"`
	RecastMonths      []int           `json:"recast_months,omitempty"`
	AutoRecastOnExtra bool            `json:"auto_recast_on_extra"`
}

// WithoutPrepayments returns a copy of the loan with no extras and no recasts.
func (p LoanParameters) WithoutPrepayments() LoanParameters {
	p.Extras = nil
	p.RecastMonths = nil
	p.AutoRecastOnExtra = false
	return p
}
