package cli

import (
	"strings"
	"testing"

	"loan-amortizer/domain"
)

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "$0.00"},
		{599.5505, "$599.55"},
		{1234567.891, "$1,234,567.89"},
		{100000, "$100,000.00"},
		{-1234.5, "-$1,234.50"},
	}
	for _, tt := range tests {
		if got := FormatMoney(tt.in); got != tt.want {
			t.Errorf("FormatMoney(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatMonths(t *testing.T) {
	tests := map[int]string{
		7:   "7",
		12:  "12 (1y)",
		301: "301 (25y 1m)",
		360: "360 (30y)",
	}
	for in, want := range tests {
		if got := FormatMonths(in); got != want {
			t.Errorf("FormatMonths(%d) = %q, want %q", in, got, want)
		}
	}
}

func TestRenderTable(t *testing.T) {
	result := domain.ScheduleResult{
		Rows: []domain.ScheduleRow{
			{Idx: 1, Period: domain.YearMonth{Year: 2024, Month: 1}, Payment: 1000, Principal: 1000, Balance: 9000},
		},
	}
	out := RenderTable(ScheduleTable(result))

	for _, want := range []string{"Month", "Balance", "2024-01", "$9,000.00"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q:\n%s", want, out)
		}
	}
	if got := strings.Count(out, "\n"); got != 5 {
		t.Errorf("expected 5 lines, got %d", got)
	}
}

func TestRenderTable_NoHeaders(t *testing.T) {
	if out := RenderTable(Table{}); out != "" {
		t.Errorf("expected empty output, got %q", out)
	}
}
