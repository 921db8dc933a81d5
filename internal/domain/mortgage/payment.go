package mortgage

import "math"

const (
	// Below this periodic rate the annuity denominator is numerically
	// unstable, so the payment degenerates to simple division.
	zeroRateThreshold = 0.0001

	// Between zeroRateThreshold and this bound a linear approximation of
	// the annuity formula is used.
	linearRateThreshold = 0.001
)

// MonthlyPayment computes the periodic payment for a principal amortized at a
// periodic rate over the given number of periods, rounded to cents.
//
// The formula is piecewise to stay stable near zero rates:
//
//	|r| < 0.0001  ->  P / n
//	 r  < 0.001   ->  P * (1 + r*n) / n
//	otherwise     ->  P * r(1+r)^n / ((1+r)^n - 1)
func MonthlyPayment(principal Money, periodicRate float64, periods int) Money {
	if periods <= 0 {
		return 0
	}

	n := float64(periods)
	var payment float64
	switch {
	case math.Abs(periodicRate) < zeroRateThreshold:
		payment = principal / n
	case periodicRate < linearRateThreshold:
		payment = principal * (1 + periodicRate*n) / n
	default:
		pow := math.Pow(1+periodicRate, n)
		payment = principal * periodicRate * pow / (pow - 1)
	}

	return roundTo(payment, 2)
}

// PeriodicRate converts an annual percentage rate to a monthly fraction.
func PeriodicRate(annualRatePercent float64) float64 {
	return annualRatePercent / 100.0 / 12.0
}
