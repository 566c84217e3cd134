// Package planfile reads loan plans written in TOML.
//
// A plan file looks like:
//
//	principal = 100000
//	annual_rate_pct = 6
//	term_months = 360
//	start = "2024-01"
//	auto_recast_on_extra = false
//	recast_months = [24]
//
//	[[extra]]
//	month = 1
//	amount = 1000
package planfile

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"loan-amortizer/domain"
)

// File mirrors the TOML layout of a plan.
type File struct {
	Name              string  `toml:"name,omitempty"`
	Principal         float64 `toml:"principal"`
	AnnualRatePct     float64 `toml:"annual_rate_pct"`
	TermMonths        int     `toml:"term_months"`
	Start             string  `toml:"start,omitempty"`
	AutoRecastOnExtra bool    `toml:"auto_recast_on_extra"`
	RecastMonths      []int   `toml:"recast_months,omitempty"`
	Extra             []Extra `toml:"extra,omitempty"`
}

// Extra is one prepayment entry.
type Extra struct {
	Month  int     `toml:"month"`
	Amount float64 `toml:"amount"`
}

// Load reads and decodes the plan at path.
func Load(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("reading plan: %w", err)
	}
	return Parse(data)
}

// Parse decodes a plan from TOML, rejecting unknown keys.
func Parse(data []byte) (File, error) {
	var f File
	md, err := toml.Decode(string(data), &f)
	if err != nil {
		return File{}, fmt.Errorf("parsing plan: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return File{}, fmt.Errorf("parsing plan: unknown key %q", undecoded[0].String())
	}
	return f, nil
}

// Params converts the file into loan parameters. Extras listed twice for the
// same month are summed.
func (f File) Params() (domain.LoanParameters, error) {
	params := domain.LoanParameters{
		Principal:         f.Principal,
		AnnualRatePct:     f.AnnualRatePct,
		TermMonths:        f.TermMonths,
		RecastMonths:      f.RecastMonths,
		AutoRecastOnExtra: f.AutoRecastOnExtra,
	}

	if f.Start != "" {
		start, err := domain.ParseYearMonth(f.Start)
		if err != nil {
			return domain.LoanParameters{}, err
		}
		params.Start = start
	}

	if len(f.Extra) > 0 {
		params.Extras = make(map[int]float64, len(f.Extra))
		for _, e := range f.Extra {
			if e.Month < 1 {
				return domain.LoanParameters{}, fmt.Errorf("extra payment month %d must be at least 1", e.Month)
			}
			params.Extras[e.Month] += e.Amount
		}
	}
	return params, nil
}

// Save writes f to path as TOML.
func Save(path string, f File) error {
	out, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("creating plan file: %w", err)
	}
	defer out.Close()

	if err := toml.NewEncoder(out).Encode(f); err != nil {
		return fmt.Errorf("writing plan file: %w", err)
	}
	return nil
}

// FromParams is the inverse of Params.
func FromParams(name string, params domain.LoanParameters) File {
	f := File{
		Name:              name,
		Principal:         params.Principal,
		AnnualRatePct:     params.AnnualRatePct,
		TermMonths:        params.TermMonths,
		Start:             params.Start.String(),
		AutoRecastOnExtra: params.AutoRecastOnExtra,
		RecastMonths:      params.RecastMonths,
	}
	for month := 1; month <= params.TermMonths; month++ {
		if amount, ok := params.Extras[month]; ok {
			f.Extra = append(f.Extra, Extra{Month: month, Amount: amount})
		}
	}
	return f
}
