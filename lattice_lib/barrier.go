package lattice

import (
	"fmt"
	"math"
)

// BarrierLimit returns the number of up-moves that places the asset
// exactly on the barrier: the L in [0, maturity) with
// startPrice*(1+up)^L == barrier. The reflection decomposition needs an
// exact lattice level, so when no level matches the search fails with
// ErrBarrierLevelNotFound instead of guessing.
func BarrierLimit(up float64, maturity int, startPrice, barrier float64) (int, error) {
	upReturn := 1.0 + up
	for numberUps := 0; numberUps < maturity; numberUps++ {
		if barrier == startPrice*math.Pow(upReturn, float64(numberUps)) {
			return numberUps, nil
		}
	}
	return 0, fmt.Errorf("%w: barrier=%g startPrice=%g up=%g maturity=%d",
		ErrBarrierLevelNotFound, barrier, startPrice, up, maturity)
}

// sumAboveBarrier accumulates the weighted call payoff over terminal
// scenarios finishing at or above the barrier. Terminal prices use the
// symmetric-walk form startPrice*(1+up)^(2k-maturity), which relies on the
// multiplicative symmetry (1+up)(1+down) = 1.
func sumAboveBarrier(model MarketModel, maturity int, startPrice, strike, barrier float64) float64 {
	upReturn := 1.0 + model.Up
	measure := DeriveMeasure(model)

	sum := 0.0
	for numberUps := 0; numberUps < terminalScenarios(maturity); numberUps++ {
		endPrice := startPrice * math.Pow(upReturn, float64(2*numberUps-maturity))
		if endPrice >= barrier {
			sum += CallPayoff(endPrice, strike) * binomialPMF(numberUps, maturity, measure.Up)
		}
	}
	return sum
}

// sumBelowReflectedBarrier accumulates the scenarios that touched the
// barrier but finished below it, by reflecting them across the barrier
// level: the strike is pulled down by (1+up)^(-2L), the barrier maps to
// startPrice²/barrier, and the reflected sum is scaled by
// (p/q)^L * (barrier/startPrice)².
func sumBelowReflectedBarrier(model MarketModel, maturity int, startPrice, strike, barrier float64) (float64, error) {
	limit, err := BarrierLimit(model.Up, maturity, startPrice, barrier)
	if err != nil {
		return 0, err
	}

	upReturn := 1.0 + model.Up
	measure := DeriveMeasure(model)
	reflectedStrike := strike * math.Pow(upReturn, float64(-2*limit))
	reflectedBarrier := startPrice * startPrice / barrier

	sum := 0.0
	for numberUps := 0; numberUps < terminalScenarios(maturity); numberUps++ {
		endPrice := startPrice * math.Pow(upReturn, float64(2*numberUps-maturity))
		if endPrice < reflectedBarrier {
			sum += CallPayoff(endPrice, reflectedStrike) * binomialPMF(numberUps, maturity, measure.Up)
		}
	}
	scale := math.Pow(measure.Up/measure.Down, float64(limit)) * math.Pow(barrier/startPrice, 2.0)
	return scale * sum, nil
}

// PriceUpAndInCall prices a European up-and-in call via the reflection
// principle: one sum over scenarios ending at or above the barrier, one
// reflected sum over scenarios that touched it and fell back, discounted
// together. Cost is O(maturity); no path enumeration.
//
// Preconditions, neither checked: down < rate < up, and multiplicative
// symmetry (1+up)(1+down) = 1 — the reflection identity only holds for a
// symmetric walk. Returns ErrBarrierLevelNotFound when the barrier is not
// an exact lattice level reachable within the maturity.
func PriceUpAndInCall(model MarketModel, maturity int, startPrice, strike, barrier float64) (float64, error) {
	below, err := sumBelowReflectedBarrier(model, maturity, startPrice, strike, barrier)
	if err != nil {
		return 0, err
	}
	above := sumAboveBarrier(model, maturity, startPrice, strike, barrier)
	return (above + below) / math.Pow(1.0+model.Rate, float64(maturity)), nil
}
