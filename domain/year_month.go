package domain

import (
	"fmt"
	"strings"
	"time"
)

// YearMonth is a calendar month used to label schedule rows. The zero value
// means "no anchor".
type YearMonth struct {
	Year  int
	Month int
}

// ParseYearMonth parses "YYYY-MM".
func ParseYearMonth(s string) (YearMonth, error) {
	s = strings.TrimSpace(s)
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return YearMonth{}, fmt.Errorf("invalid year-month %q: expected YYYY-MM", s)
	}
	return YearMonth{Year: t.Year(), Month: int(t.Month())}, nil
}

func (ym YearMonth) IsZero() bool {
	return ym.Year == 0 && ym.Month == 0
}

// AddMonths returns the month n months later. The zero value stays zero.
func (ym YearMonth) AddMonths(n int) YearMonth {
	if ym.IsZero() {
		return ym
	}
	total := ym.Year*12 + (ym.Month - 1) + n
	return YearMonth{Year: total / 12, Month: total%12 + 1}
}

func (ym YearMonth) String() string {
	if ym.IsZero() {
		return ""
	}
	return fmt.Sprintf("%04d-%02d", ym.Year, ym.Month)
}

func (ym YearMonth) MarshalText() ([]byte, error) {
	return []byte(ym.String()), nil
}

func (ym *YearMonth) UnmarshalText(text []byte) error {
	if len(strings.TrimSpace(string(text))) == 0 {
		*ym = YearMonth{}
		return nil
	}
	parsed, err := ParseYearMonth(string(text))
	if err != nil {
		return err
	}
	*ym = parsed
	return nil
}
