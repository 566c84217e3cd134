package service

import "math"

func monthlyRate(annualRatePct float64) float64 {
	return annualRatePct / 100 / 12
}

// annuityPayment is the fixed payment that amortizes balance over periods
// months at rate. A zero rate falls back to straight-line repayment.
func annuityPayment(balance, rate float64, periods int) float64 {
	if periods <= 0 {
		return balance
	}
	n := float64(periods)
	if rate == 0 {
		return balance / n
	}
	return balance * (rate / (1 - math.Pow(1+rate, -n)))
}

// roundTo2Decimals rounds a float64 to cents.
func roundTo2Decimals(value float64) float64 {
	return math.Round(value*100) / 100
}
