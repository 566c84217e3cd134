package planfile

import (
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"loan-amortizer/domain"
)

const samplePlan = `
name = "house"
principal = 100000
annual_rate_pct = 6
term_months = 360
start = "2024-01"
auto_recast_on_extra = true
recast_months = [24]

[[extra]]
month = 1
amount = 1000

[[extra]]
month = 1
amount = 500

[[extra]]
month = 13
amount = 250.5
`

func TestParse(t *testing.T) {
	f, err := Parse([]byte(samplePlan))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	params, err := f.Params()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := domain.LoanParameters{
		Principal:         100000,
		AnnualRatePct:     6,
		TermMonths:        360,
		Start:             domain.YearMonth{Year: 2024, Month: 1},
		Extras:            map[int]float64{1: 1500, 13: 250.5},
		RecastMonths:      []int{24},
		AutoRecastOnExtra: true,
	}
	if !reflect.DeepEqual(params, want) {
		t.Errorf("got %+v\nwant %+v", params, want)
	}
	if f.Name != "house" {
		t.Errorf("name = %q", f.Name)
	}
}

func TestParse_Errors(t *testing.T) {
	tests := map[string]string{
		"unknown key": "principal = 1\nmystery = 2\n",
		"wrong type":  "principal = \"lots\"\n",
		"broken toml": "principal = \n",
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := Parse([]byte(body)); err == nil {
				t.Errorf("expected error")
			}
		})
	}
}

func TestParams_Errors(t *testing.T) {
	if _, err := (File{Start: "2024/01"}).Params(); err == nil {
		t.Errorf("expected error for bad start")
	}
	if _, err := (File{Extra: []Extra{{Month: 0, Amount: 1}}}).Params(); err == nil || !strings.Contains(err.Error(), "month 0") {
		t.Errorf("expected error for month 0, got %v", err)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	params := domain.LoanParameters{
		Principal:     250000,
		AnnualRatePct: 5.5,
		TermMonths:    180,
		Start:         domain.YearMonth{Year: 2026, Month: 3},
		Extras:        map[int]float64{6: 2000, 2: 100},
	}
	path := filepath.Join(t.TempDir(), "plan.toml")

	if err := Save(path, FromParams("refi", params)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	f, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err := f.Params()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(got, params) {
		t.Errorf("got %+v\nwant %+v", got, params)
	}
	if f.Extra[0].Month != 2 {
		t.Errorf("expected extras ordered by month, got %+v", f.Extra)
	}
}

func TestLoad_Missing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Errorf("expected error for missing file")
	}
}
