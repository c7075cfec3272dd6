package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/mfaber/crrlattice/internal/config"
	"github.com/mfaber/crrlattice/internal/logger"
	"github.com/mfaber/crrlattice/internal/models"
	lattice "github.com/mfaber/crrlattice/lattice_lib"
)

// PricingHandler is a dumb HTTP layer over the lattice pricer: decode the
// request, validate at the boundary, price, encode. All numeric semantics
// live in lattice_lib; rejecting bad input here never changes the result
// for valid input.
type PricingHandler struct {
	config *config.Config
}

func NewPricingHandler(cfg *config.Config) *PricingHandler {
	return &PricingHandler{config: cfg}
}

// RegisterRoutes attaches the pricing API to router.
func (h *PricingHandler) RegisterRoutes(router *mux.Router) {
	api := router.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/price/call", h.PriceCallHandler).Methods(http.MethodPost)
	api.HandleFunc("/price/put", h.PricePutHandler).Methods(http.MethodPost)
	api.HandleFunc("/price/up-and-in-call", h.PriceUpAndInCallHandler).Methods(http.MethodPost)
	api.HandleFunc("/health", h.HealthHandler).Methods(http.MethodGet)
}

// PriceCallHandler prices a European call option.
func (h *PricingHandler) PriceCallHandler(w http.ResponseWriter, r *http.Request) {
	h.priceVanilla(w, r, "call", lattice.PriceCall)
}

// PricePutHandler prices a European put option.
func (h *PricingHandler) PricePutHandler(w http.ResponseWriter, r *http.Request) {
	h.priceVanilla(w, r, "put", lattice.PricePut)
}

func (h *PricingHandler) priceVanilla(w http.ResponseWriter, r *http.Request,
	contract string, price func(lattice.MarketModel, int, float64, float64) float64) {

	var req models.PriceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, contract, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}
	model := lattice.MarketModel{Rate: req.Rate, Up: req.Up, Down: req.Down}
	if err := validateContract(model, req.Maturity, req.StartPrice, req.Strike); err != nil {
		writeError(w, contract, http.StatusBadRequest, err)
		return
	}

	value := price(model, req.Maturity, req.StartPrice, req.Strike)
	logger.Log.Debug("priced contract",
		zap.String("contract", contract),
		zap.Int("maturity", req.Maturity),
		zap.Float64("price", value))
	writePrice(w, contract, value, h.config.Display.PricePrecision)
}

// PriceUpAndInCallHandler prices a European up-and-in barrier call.
func (h *PricingHandler) PriceUpAndInCallHandler(w http.ResponseWriter, r *http.Request) {
	const contract = "up-and-in-call"

	var req models.BarrierPriceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, contract, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}
	model := lattice.MarketModel{Rate: req.Rate, Up: req.Up, Down: req.Down}
	if err := validateContract(model, req.Maturity, req.StartPrice, req.Strike); err != nil {
		writeError(w, contract, http.StatusBadRequest, err)
		return
	}
	if req.Barrier <= req.Strike {
		writeError(w, contract, http.StatusBadRequest,
			fmt.Errorf("barrier must exceed strike, got barrier=%g strike=%g", req.Barrier, req.Strike))
		return
	}

	value, err := lattice.PriceUpAndInCall(model, req.Maturity, req.StartPrice, req.Strike, req.Barrier)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, lattice.ErrBarrierLevelNotFound) {
			status = http.StatusUnprocessableEntity
		}
		writeError(w, contract, status, err)
		return
	}
	logger.Log.Debug("priced contract",
		zap.String("contract", contract),
		zap.Int("maturity", req.Maturity),
		zap.Float64("barrier", req.Barrier),
		zap.Float64("price", value))
	writePrice(w, contract, value, h.config.Display.PricePrecision)
}

// HealthHandler reports liveness and the supported contracts.
func (h *PricingHandler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, models.HealthResponse{
		Status:    "ok",
		Engine:    "crr-lattice",
		Contracts: []string{"call", "put", "up-and-in-call"},
	})
}

func validateContract(model lattice.MarketModel, maturity int, startPrice, strike float64) error {
	if err := model.Validate(); err != nil {
		return err
	}
	if maturity < 1 {
		return fmt.Errorf("maturity must be a positive step count, got %d", maturity)
	}
	if startPrice <= 0 {
		return fmt.Errorf("start price must be positive, got %g", startPrice)
	}
	if strike <= 0 {
		return fmt.Errorf("strike must be positive, got %g", strike)
	}
	return nil
}

func writePrice(w http.ResponseWriter, contract string, value float64, precision int32) {
	field := models.NewPriceField(value, precision)
	writeJSON(w, http.StatusOK, models.PriceResponse{
		Success:  true,
		Contract: contract,
		Price:    &field,
	})
}

func writeError(w http.ResponseWriter, contract string, status int, err error) {
	logger.Log.Warn("pricing request rejected",
		zap.String("contract", contract),
		zap.Int("status", status),
		zap.Error(err))
	writeJSON(w, status, models.PriceResponse{
		Success:  false,
		Contract: contract,
		Error:    err.Error(),
	})
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
