package lattice

import "fmt"

// MarketModel describes a CRR market: a riskless rate per step and the
// up/down returns of the risky asset per step. All pricing in this package
// assumes the no-arbitrage ordering Down < Rate < Up. That ordering is a
// precondition, not a runtime check: a violating model yields a
// "probability" outside (0,1) and the pricing routines carry on with it.
type MarketModel struct {
	Rate float64 // riskless rate per step, > -1
	Up   float64 // up return, > Rate
	Down float64 // down return, < Rate
}

// RiskNeutralMeasure is the unique probability pair under which the
// discounted asset price is a martingale. It is derived per pricing call
// and never stored.
type RiskNeutralMeasure struct {
	Up   float64
	Down float64
}

// DeriveMeasure computes the risk-neutral measure for m. Under the
// no-arbitrage ordering both probabilities lie in (0,1) and sum to one.
func DeriveMeasure(m MarketModel) RiskNeutralMeasure {
	up := (m.Rate - m.Down) / (m.Up - m.Down)
	return RiskNeutralMeasure{Up: up, Down: 1.0 - up}
}

// Validate reports whether the model admits a risk-neutral measure.
// Pricing functions never call this; it exists for boundaries that want to
// fail fast instead of propagating out-of-range probabilities.
func (m MarketModel) Validate() error {
	if m.Rate <= -1.0 || m.Down >= m.Rate || m.Rate >= m.Up {
		return fmt.Errorf("%w: need -1 < rate, down < rate < up, got rate=%g up=%g down=%g",
			ErrInvalidModelParameters, m.Rate, m.Up, m.Down)
	}
	return nil
}
