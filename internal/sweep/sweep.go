// Package sweep evaluates pricing curves over swept parameter ranges and
// exports them as CSV for external plotting. It is strictly a consumer of
// the lattice pricer: nothing here influences pricing semantics.
package sweep

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	lattice "github.com/mfaber/crrlattice/lattice_lib"
)

// PriceFn prices one series at one sweep value.
type PriceFn func(x float64) (float64, error)

// Point is one evaluated sample: the varying parameter value and the price
// of each series at that value. NaN marks a cell that could not be priced.
type Point struct {
	X      float64
	Prices []float64
}

// Curve is a named family of price series over one varying parameter.
type Curve struct {
	Name   string // e.g. "maturity"
	XLabel string
	Series []string // one label per series, e.g. "rate=-0.25"
	Points []Point
}

// Run evaluates every sweep point across workers. Pricing calls are pure
// and independent, so points can be computed in any order; each goroutine
// writes only its own point. A series that fails at a point records NaN
// and the sweep continues.
func Run(name, xLabel string, xs []float64, series []string, fns []PriceFn, workers int) (*Curve, error) {
	if len(series) != len(fns) {
		return nil, fmt.Errorf("sweep %s: %d series labels for %d price functions", name, len(series), len(fns))
	}
	curve := &Curve{
		Name:   name,
		XLabel: xLabel,
		Series: series,
		Points: make([]Point, len(xs)),
	}

	var group errgroup.Group
	group.SetLimit(workers)
	for i, x := range xs {
		i, x := i, x
		group.Go(func() error {
			prices := make([]float64, len(fns))
			for j, fn := range fns {
				value, err := fn(x)
				if err != nil {
					value = math.NaN()
				}
				prices[j] = value
			}
			curve.Points[i] = Point{X: x, Prices: prices}
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return curve, nil
}

// WriteCSV writes the curve under dir using filenameFormat (one %s, the
// curve name) and returns the written path. NaN cells become empty fields.
func WriteCSV(curve *Curve, dir, filenameFormat string, precision int32) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating output dir: %w", err)
	}
	path := filepath.Join(dir, fmt.Sprintf(filenameFormat, curve.Name))
	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating curve file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	header := append([]string{curve.XLabel}, curve.Series...)
	if err := writer.Write(header); err != nil {
		return "", err
	}
	for _, point := range curve.Points {
		record := make([]string, 0, len(point.Prices)+1)
		record = append(record, strconv.FormatFloat(point.X, 'g', -1, 64))
		for _, price := range point.Prices {
			if math.IsNaN(price) {
				record = append(record, "")
				continue
			}
			record = append(record, decimal.NewFromFloat(price).Round(precision).String())
		}
		if err := writer.Write(record); err != nil {
			return "", err
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", err
	}
	return path, nil
}

// The four canonical curves below reproduce the historical demonstration
// sweeps for the up-and-in call on the symmetric doubling walk
// (up = 1, down = -0.5, start price 1).

// MaturityCurve prices over maturities 4..99 at three riskless rates, with
// strike 1 and barrier 8.
func MaturityCurve(workers int) (*Curve, error) {
	xs := make([]float64, 0, 96)
	for maturity := 4; maturity < 100; maturity++ {
		xs = append(xs, float64(maturity))
	}
	rates := []float64{-0.25, 0.0, 0.25}
	fns := make([]PriceFn, len(rates))
	for i, rate := range rates {
		rate := rate
		fns[i] = func(x float64) (float64, error) {
			model := lattice.MarketModel{Rate: rate, Up: 1.0, Down: -0.5}
			return lattice.PriceUpAndInCall(model, int(x), 1, 1, 8)
		}
	}
	return Run("maturity", "maturity", xs, rateLabels(rates), fns, workers)
}

// BarrierCurve prices over barriers 2^0..2^14 at three riskless rates,
// with maturity 20 and strike 1.
func BarrierCurve(workers int) (*Curve, error) {
	xs := make([]float64, 0, 15)
	for exponent := 0; exponent < 15; exponent++ {
		xs = append(xs, math.Pow(2, float64(exponent)))
	}
	rates := []float64{-0.25, 0.0, 0.25}
	fns := make([]PriceFn, len(rates))
	for i, rate := range rates {
		rate := rate
		fns[i] = func(x float64) (float64, error) {
			model := lattice.MarketModel{Rate: rate, Up: 1.0, Down: -0.5}
			return lattice.PriceUpAndInCall(model, 20, 1, 1, x)
		}
	}
	return Run("barrier", "barrier", xs, rateLabels(rates), fns, workers)
}

// StrikeCurve prices over strikes 0..119 at three riskless rates, with
// maturity 20 and barrier 128.
func StrikeCurve(workers int) (*Curve, error) {
	xs := make([]float64, 0, 120)
	for strike := 0; strike < 120; strike++ {
		xs = append(xs, float64(strike))
	}
	rates := []float64{-0.25, 0.0, 0.25}
	fns := make([]PriceFn, len(rates))
	for i, rate := range rates {
		rate := rate
		fns[i] = func(x float64) (float64, error) {
			model := lattice.MarketModel{Rate: rate, Up: 1.0, Down: -0.5}
			return lattice.PriceUpAndInCall(model, 20, 1, x, 128)
		}
	}
	return Run("strike", "strike", xs, rateLabels(rates), fns, workers)
}

// RateCurve prices over 100 evenly spaced rates in [-0.49, 0.99] at three
// barrier levels, with maturity 20 and strike 1.
func RateCurve(workers int) (*Curve, error) {
	const points = 100
	xs := make([]float64, 0, points)
	for i := 0; i < points; i++ {
		xs = append(xs, -0.49+(0.99-(-0.49))*float64(i)/float64(points-1))
	}
	barriers := []float64{2, 16, 128}
	fns := make([]PriceFn, len(barriers))
	labels := make([]string, len(barriers))
	for i, barrier := range barriers {
		barrier := barrier
		labels[i] = fmt.Sprintf("barrier=%g", barrier)
		fns[i] = func(x float64) (float64, error) {
			model := lattice.MarketModel{Rate: x, Up: 1.0, Down: -0.5}
			return lattice.PriceUpAndInCall(model, 20, 1, 1, barrier)
		}
	}
	return Run("rate", "interest_rate", xs, labels, fns, workers)
}

func rateLabels(rates []float64) []string {
	labels := make([]string, len(rates))
	for i, rate := range rates {
		labels[i] = fmt.Sprintf("rate=%g", rate)
	}
	return labels
}
