package sweep

import (
	"encoding/csv"
	"errors"
	"math"
	"os"
	"testing"

	lattice "github.com/mfaber/crrlattice/lattice_lib"
)

func TestRun(t *testing.T) {
	t.Run("evaluates every point in order", func(t *testing.T) {
		xs := []float64{1, 2, 3, 4}
		double := func(x float64) (float64, error) { return 2 * x, nil }
		square := func(x float64) (float64, error) { return x * x, nil }

		curve, err := Run("test", "x", xs, []string{"double", "square"}, []PriceFn{double, square}, 3)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if len(curve.Points) != len(xs) {
			t.Fatalf("Expected %d points, got %d", len(xs), len(curve.Points))
		}
		for i, point := range curve.Points {
			if point.X != xs[i] {
				t.Errorf("Point %d has x=%v, want %v", i, point.X, xs[i])
			}
			if point.Prices[0] != 2*xs[i] || point.Prices[1] != xs[i]*xs[i] {
				t.Errorf("Point %d prices %v", i, point.Prices)
			}
		}
	})

	t.Run("failed cell becomes NaN without aborting", func(t *testing.T) {
		failAtTwo := func(x float64) (float64, error) {
			if x == 2 {
				return 0, errors.New("unpriceable")
			}
			return x, nil
		}
		curve, err := Run("test", "x", []float64{1, 2, 3}, []string{"s"}, []PriceFn{failAtTwo}, 1)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if !math.IsNaN(curve.Points[1].Prices[0]) {
			t.Errorf("Expected NaN at failed point, got %v", curve.Points[1].Prices[0])
		}
		if curve.Points[0].Prices[0] != 1 || curve.Points[2].Prices[0] != 3 {
			t.Errorf("Neighboring points disturbed: %+v", curve.Points)
		}
	})

	t.Run("mismatched series and functions", func(t *testing.T) {
		_, err := Run("test", "x", []float64{1}, []string{"a", "b"},
			[]PriceFn{func(x float64) (float64, error) { return x, nil }}, 1)
		if err == nil {
			t.Error("Expected error for mismatched series")
		}
	})
}

func TestWriteCSV(t *testing.T) {
	curve := &Curve{
		Name:   "demo",
		XLabel: "x",
		Series: []string{"a", "b"},
		Points: []Point{
			{X: 1, Prices: []float64{0.123456789, 2}},
			{X: 2, Prices: []float64{math.NaN(), 4}},
		},
	}
	dir := t.TempDir()

	path, err := WriteCSV(curve, dir, "curve_%s.csv", 6)
	if err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}

	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("Failed to open written file: %v", err)
	}
	defer file.Close()
	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		t.Fatalf("Failed to parse CSV: %v", err)
	}

	if len(records) != 3 {
		t.Fatalf("Expected header plus 2 rows, got %d records", len(records))
	}
	if records[0][0] != "x" || records[0][1] != "a" || records[0][2] != "b" {
		t.Errorf("Unexpected header: %v", records[0])
	}
	if records[1][1] != "0.123457" {
		t.Errorf("Expected rounded cell 0.123457, got %s", records[1][1])
	}
	if records[2][1] != "" {
		t.Errorf("Expected empty cell for NaN, got %q", records[2][1])
	}
	if records[2][2] != "4" {
		t.Errorf("Expected 4, got %s", records[2][2])
	}
}

func TestBarrierCurve(t *testing.T) {
	curve, err := BarrierCurve(4)
	if err != nil {
		t.Fatalf("BarrierCurve failed: %v", err)
	}
	if len(curve.Points) != 15 {
		t.Fatalf("Expected 15 points, got %d", len(curve.Points))
	}

	t.Run("matches direct pricing", func(t *testing.T) {
		model := lattice.MarketModel{Rate: 0.0, Up: 1.0, Down: -0.5}
		want, err := lattice.PriceUpAndInCall(model, 20, 1, 1, 8)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		// rate=0 is the second series; barrier 8 is the fourth point.
		got := curve.Points[3].Prices[1]
		if math.Abs(got-want) > 1e-15 {
			t.Errorf("Sweep cell %v disagrees with direct price %v", got, want)
		}
	})

	t.Run("non-increasing in the barrier", func(t *testing.T) {
		for s := range curve.Series {
			for i := 1; i < len(curve.Points); i++ {
				prev, cur := curve.Points[i-1].Prices[s], curve.Points[i].Prices[s]
				if cur > prev+1e-12 {
					t.Errorf("Series %s increased from %v to %v at barrier %v",
						curve.Series[s], prev, cur, curve.Points[i].X)
				}
			}
		}
	})
}

func TestStrikeCurveHandlesZeroStrike(t *testing.T) {
	curve, err := StrikeCurve(4)
	if err != nil {
		t.Fatalf("StrikeCurve failed: %v", err)
	}
	if len(curve.Points) != 120 {
		t.Fatalf("Expected 120 points, got %d", len(curve.Points))
	}
	first := curve.Points[0].Prices[1]
	if math.IsNaN(first) || first < 0 {
		t.Errorf("Expected priceable non-negative value at strike 0, got %v", first)
	}
}
