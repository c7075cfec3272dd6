package lattice

import "math"

// PayoffFunc maps a terminal asset price and a strike to an exercise value.
type PayoffFunc func(assetPrice, strike float64) float64

// CallPayoff is the exercise value of a European call at expiry.
func CallPayoff(assetPrice, strike float64) float64 {
	return math.Max(assetPrice-strike, 0.0)
}

// PutPayoff is the exercise value of a European put at expiry.
func PutPayoff(assetPrice, strike float64) float64 {
	return math.Max(strike-assetPrice, 0.0)
}

// BarrierCrossed reports whether the price path touched the barrier at any
// time from 0 through maturity. Stops at the first touch.
func BarrierCrossed(assetPrices []float64, barrier float64) bool {
	for _, price := range assetPrices {
		if price >= barrier {
			return true
		}
	}
	return false
}

// UpAndInCallPayoff is the exercise value of an up-and-in call on a full
// price path: a call payoff on the final price when the barrier was
// touched, zero otherwise. The closed-form pricer never walks paths; this
// function exists for path-level consumers and reference checks.
func UpAndInCallPayoff(assetPrices []float64, strike, barrier float64) float64 {
	if len(assetPrices) == 0 || !BarrierCrossed(assetPrices, barrier) {
		return 0.0
	}
	return CallPayoff(assetPrices[len(assetPrices)-1], strike)
}
