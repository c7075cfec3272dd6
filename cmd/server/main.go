package main

import (
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/mfaber/crrlattice/internal/config"
	"github.com/mfaber/crrlattice/internal/handlers"
	"github.com/mfaber/crrlattice/internal/logger"
)

func main() {
	cfg := config.Load()

	if err := logger.InitWithConfig(cfg.Logging.LogLevel, cfg.Logging.LogFile); err != nil {
		log.Fatalf("Failed to initialize logging: %v", err)
	}
	defer logger.Log.Sync()

	router := mux.NewRouter()
	handlers.NewPricingHandler(cfg).RegisterRoutes(router)

	logger.Log.Info("CRR lattice pricer starting",
		zap.String("port", cfg.Port),
		zap.String("log_level", cfg.Logging.LogLevel))

	if err := http.ListenAndServe(":"+cfg.Port, router); err != nil {
		logger.Log.Fatal("Server stopped", zap.Error(err))
	}
}
