package domain

import "time"

// Plan is a named, saved set of loan parameters.
type Plan struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Params    LoanParameters `json:"params"`
	CreatedAt time.Time      `json:"created_at"`
}
