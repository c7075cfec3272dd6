package lattice

import (
	"errors"
	"math"
	"testing"
)

func TestDeriveMeasure(t *testing.T) {
	t.Run("symmetric doubling walk", func(t *testing.T) {
		m := DeriveMeasure(MarketModel{Rate: 0.0, Up: 1.0, Down: -0.5})
		if math.Abs(m.Up-1.0/3.0) > 1e-15 {
			t.Errorf("Expected probability up 1/3, got %v", m.Up)
		}
		if math.Abs(m.Down-2.0/3.0) > 1e-15 {
			t.Errorf("Expected probability down 2/3, got %v", m.Down)
		}
	})

	t.Run("probabilities sum to one and lie in (0,1)", func(t *testing.T) {
		models := []MarketModel{
			{Rate: 0.0, Up: 1.0, Down: -0.5},
			{Rate: 0.05, Up: 0.2, Down: -0.1},
			{Rate: -0.25, Up: 1.0, Down: -0.5},
			{Rate: 0.01, Up: 0.02, Down: -0.02},
			{Rate: 0.99, Up: 1.0, Down: -0.5},
		}
		for _, model := range models {
			measure := DeriveMeasure(model)
			if sum := measure.Up + measure.Down; math.Abs(sum-1.0) > 1e-15 {
				t.Errorf("Measure for %+v sums to %v, want 1", model, sum)
			}
			if measure.Up <= 0 || measure.Up >= 1 || measure.Down <= 0 || measure.Down >= 1 {
				t.Errorf("Measure for %+v outside (0,1): %+v", model, measure)
			}
		}
	})

	t.Run("arbitrage model yields out-of-range probability, no panic", func(t *testing.T) {
		measure := DeriveMeasure(MarketModel{Rate: 0.5, Up: 0.2, Down: -0.1})
		if measure.Up <= 1.0 {
			t.Errorf("Expected probability above 1 for rate > up, got %v", measure.Up)
		}
	})
}

func TestMarketModelValidate(t *testing.T) {
	t.Run("valid model passes", func(t *testing.T) {
		if err := (MarketModel{Rate: 0.0, Up: 1.0, Down: -0.5}).Validate(); err != nil {
			t.Errorf("Unexpected error: %v", err)
		}
	})

	t.Run("rate above up fails", func(t *testing.T) {
		err := (MarketModel{Rate: 0.5, Up: 0.2, Down: -0.1}).Validate()
		if !errors.Is(err, ErrInvalidModelParameters) {
			t.Errorf("Expected ErrInvalidModelParameters, got %v", err)
		}
	})

	t.Run("rate below down fails", func(t *testing.T) {
		err := (MarketModel{Rate: -0.2, Up: 0.2, Down: -0.1}).Validate()
		if !errors.Is(err, ErrInvalidModelParameters) {
			t.Errorf("Expected ErrInvalidModelParameters, got %v", err)
		}
	})

	t.Run("rate at -1 fails", func(t *testing.T) {
		err := (MarketModel{Rate: -1.0, Up: 1.0, Down: -1.5}).Validate()
		if !errors.Is(err, ErrInvalidModelParameters) {
			t.Errorf("Expected ErrInvalidModelParameters, got %v", err)
		}
	})
}
