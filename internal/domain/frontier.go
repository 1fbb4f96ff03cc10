package domain

import (
	"errors"
	"fmt"
)

// ErrWeightMismatch marks a frontier whose rows don't line up with the
// declared asset list.
var ErrWeightMismatch = errors.New("frontier weights do not match asset list")

// FrontierRow is one candidate portfolio sampled from the efficient
// frontier by the external optimizer.
type FrontierRow struct {
	MeanReturn float64 `json:"meanReturn"`
	// StdDev is the portfolio return standard deviation, used as the
	// risk proxy
	StdDev  float64   `json:"stdDev"`
	Weights []float64 `json:"weights"`
}

// FrontierTable holds the sampled frontier. Assets gives the symbol
// order that every row's weights follow. Rows are not assumed to be
// sorted by risk or return, and weights don't need to sum exactly to 1
// (the optimizer's constraints keep them around 0.99-1.01).
type FrontierTable struct {
	Assets []string      `json:"assets"`
	Rows   []FrontierRow `json:"rows"`
}

// Validate checks that every row carries one weight per declared asset.
func (t FrontierTable) Validate() error {
	for i, row := range t.Rows {
		if len(row.Weights) != len(t.Assets) {
			return fmt.Errorf("frontier row %d has %d weights but table declares %d assets: %w", i, len(row.Weights), len(t.Assets), ErrWeightMismatch)
		}
	}
	return nil
}

type AssetWeight struct {
	Symbol string  `json:"symbol"`
	Weight float64 `json:"weight"`
}

// TangentPortfolio is the frontier row with the highest Sharpe ratio,
// plus the weight view keyed by symbol. Weights preserve the asset
// order the optimizer was given.
type TangentPortfolio struct {
	MeanReturn  float64       `json:"meanReturn"`
	StdDev      float64       `json:"stdDev"`
	SharpeRatio float64       `json:"sharpeRatio"`
	Weights     []AssetWeight `json:"weights"`
}
