package lattice

import "errors"

var (
	// ErrInvalidModelParameters reports a market model that violates the
	// no-arbitrage condition down < rate < up.
	ErrInvalidModelParameters = errors.New("invalid model parameters")

	// ErrBarrierLevelNotFound reports that no whole number of up-moves
	// places the asset exactly on the barrier level.
	ErrBarrierLevelNotFound = errors.New("no valid barrier crossing level found for given parameters")
)
