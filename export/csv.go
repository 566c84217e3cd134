// Package export serializes computed schedules for download.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/shopspring/decimal"

	"loan-amortizer/domain"
)

var csvHeader = []string{"month", "period", "payment", "interest", "principal", "extra", "total", "balance"}

// WriteCSV writes one line per schedule row, in order, after a header line.
// Amounts are fixed to two decimals.
func WriteCSV(w io.Writer, result domain.ScheduleResult) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, row := range result.Rows {
		record := []string{
			strconv.Itoa(row.Idx),
			row.Period.String(),
			Amount(row.Payment),
			Amount(row.Interest),
			Amount(row.Principal),
			Amount(row.Extra),
			Amount(row.Total),
			Amount(row.Balance),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write csv row %d: %w", row.Idx, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// Amount formats v with two decimals, rounding half away from zero.
func Amount(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}
