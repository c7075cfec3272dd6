// Command sweep regenerates the demonstration price curves for the
// up-and-in call: price against maturity, barrier, strike and interest
// rate, one CSV per curve, ready for external plotting.
package main

import (
	"flag"
	"log"

	"go.uber.org/zap"

	"github.com/mfaber/crrlattice/internal/config"
	"github.com/mfaber/crrlattice/internal/logger"
	"github.com/mfaber/crrlattice/internal/sweep"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	outputDir := flag.String("out", "", "output directory (overrides config)")
	flag.Parse()

	cfg := config.LoadFromFile(*configPath)
	if *outputDir != "" {
		cfg.Sweep.OutputDir = *outputDir
	}

	if err := logger.InitWithConfig(cfg.Logging.LogLevel, cfg.Logging.LogFile); err != nil {
		log.Fatalf("Failed to initialize logging: %v", err)
	}
	defer logger.Log.Sync()

	builders := []func(int) (*sweep.Curve, error){
		sweep.MaturityCurve,
		sweep.BarrierCurve,
		sweep.StrikeCurve,
		sweep.RateCurve,
	}
	for _, build := range builders {
		curve, err := build(cfg.Sweep.Workers)
		if err != nil {
			logger.Log.Fatal("Sweep failed", zap.Error(err))
		}
		path, err := sweep.WriteCSV(curve, cfg.Sweep.OutputDir, cfg.Sweep.FilenameFormat, cfg.Display.PricePrecision)
		if err != nil {
			logger.Log.Fatal("Curve export failed",
				zap.String("curve", curve.Name), zap.Error(err))
		}
		logger.Log.Info("Curve written",
			zap.String("curve", curve.Name),
			zap.String("file", path),
			zap.Int("points", len(curve.Points)))
	}
}
