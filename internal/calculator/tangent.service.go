package calculator

import (
	"errors"
	"fmt"
	"tangent/internal/domain"
)

// DefaultDailyRiskFreeRate is the fallback daily risk-free rate, roughly
// a 3% annual treasury yield spread over 252 trading days. Callers that
// want a live rate should pull one from pkg/interest_rate instead.
const DefaultDailyRiskFreeRate = 0.00012

var (
	ErrEmptyFrontier  = errors.New("frontier table has no rows")
	ErrDegenerateRisk = errors.New("frontier row has non-positive risk")
)

// SharpeRatio computes the risk-adjusted excess return of a portfolio.
func SharpeRatio(meanReturn, stdDev, riskFreeRate float64) float64 {
	return (meanReturn - riskFreeRate) / stdDev
}

// SelectTangent scans the frontier and returns the row with the highest
// Sharpe ratio. The scan is stable: when two rows tie exactly, the
// earlier one wins. A row with stdDev <= 0 fails the whole selection
// rather than ranking as an unbounded ratio - the optimizer never emits
// zero-risk portfolios, so one showing up means the table is corrupt.
func SelectTangent(table domain.FrontierTable, riskFreeRate float64) (*domain.TangentPortfolio, error) {
	if len(table.Rows) == 0 {
		return nil, ErrEmptyFrontier
	}
	if err := table.Validate(); err != nil {
		return nil, err
	}

	bestIdx := -1
	bestSharpe := 0.0
	for i, row := range table.Rows {
		if row.StdDev <= 0 {
			return nil, fmt.Errorf("row %d has stdDev %f: %w", i, row.StdDev, ErrDegenerateRisk)
		}
		sharpe := SharpeRatio(row.MeanReturn, row.StdDev, riskFreeRate)
		if bestIdx == -1 || sharpe > bestSharpe {
			bestIdx = i
			bestSharpe = sharpe
		}
	}

	best := table.Rows[bestIdx]
	weights := make([]domain.AssetWeight, len(table.Assets))
	for i, symbol := range table.Assets {
		weights[i] = domain.AssetWeight{
			Symbol: symbol,
			Weight: best.Weights[i],
		}
	}

	return &domain.TangentPortfolio{
		MeanReturn:  best.MeanReturn,
		StdDev:      best.StdDev,
		SharpeRatio: bestSharpe,
		Weights:     weights,
	}, nil
}
