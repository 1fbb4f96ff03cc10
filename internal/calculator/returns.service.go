package calculator

import (
	"fmt"
	"math"
	"sort"
	"tangent/internal/domain"

	"github.com/montanaflynn/stats"
	"github.com/shopspring/decimal"
)

const tradingDaysPerYear = 252

type ReturnStatsResult struct {
	Symbol           string  `json:"symbol"`
	DailyMeanReturn  float64 `json:"dailyMeanReturn"`
	DailyStdev       float64 `json:"dailyStdev"`
	AnnualizedReturn float64 `json:"annualizedReturn"`
	AnnualizedStdev  float64 `json:"annualizedStdev"`
	SharpeRatio      float64 `json:"sharpeRatio"`
}

// CalculateReturnStats computes daily and annualized return statistics
// for one asset's price history. The price series is sorted by date
// before computing returns, so callers can pass db rows directly.
func CalculateReturnStats(symbol string, prices []domain.AssetPrice, riskFreeRate float64) (*ReturnStatsResult, error) {
	returns, err := dailyReturns(prices)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate returns for %s: %w", symbol, err)
	}

	meanReturn, err := stats.Mean(returns)
	if err != nil {
		return nil, err
	}
	stdev, err := stats.StandardDeviationSample(returns)
	if err != nil {
		return nil, err
	}
	if stdev == 0 {
		return nil, fmt.Errorf("%s has zero return variance over the period: %w", symbol, ErrDegenerateRisk)
	}

	startPrice := prices[0].Price
	endPrice := prices[len(prices)-1].Price
	numHours := prices[len(prices)-1].Date.Sub(prices[0].Date).Hours()
	if numHours <= 0 {
		return nil, fmt.Errorf("price history for %s spans no time", symbol)
	}
	numYears := numHours / (365 * 24)
	annualizedReturn := math.Pow(endPrice/startPrice, 1/numYears) - 1

	return &ReturnStatsResult{
		Symbol:           symbol,
		DailyMeanReturn:  meanReturn,
		DailyStdev:       stdev,
		AnnualizedReturn: annualizedReturn,
		AnnualizedStdev:  stdev * math.Sqrt(tradingDaysPerYear),
		SharpeRatio:      SharpeRatio(meanReturn, stdev, riskFreeRate),
	}, nil
}

func dailyReturns(prices []domain.AssetPrice) ([]float64, error) {
	if len(prices) < 2 {
		return nil, fmt.Errorf("cannot calculate returns on < 2 prices")
	}
	sort.Slice(prices, func(i, j int) bool {
		return prices[i].Date.Before(prices[j].Date)
	})

	returns := []float64{}
	lastPrice := decimal.NewFromFloat(prices[0].Price)
	for _, p := range prices[1:] {
		if p.Price <= 0 {
			return nil, fmt.Errorf("non-positive price %f on %v", p.Price, p.Date)
		}
		price := decimal.NewFromFloat(p.Price)
		ret := price.Sub(lastPrice).Div(lastPrice).InexactFloat64()
		lastPrice = price

		returns = append(returns, ret)
	}

	return returns, nil
}
