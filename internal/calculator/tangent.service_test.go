package calculator

import (
	"tangent/internal/domain"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestSelectTangent(t *testing.T) {
	t.Run("picks highest sharpe row", func(t *testing.T) {
		table := domain.FrontierTable{
			Assets: []string{"AAPL", "MSFT"},
			Rows: []domain.FrontierRow{
				{MeanReturn: 0.0010, StdDev: 0.0200, Weights: []float64{0.6, 0.4}},
				{MeanReturn: 0.0015, StdDev: 0.0180, Weights: []float64{0.3, 0.7}},
				{MeanReturn: 0.0005, StdDev: 0.0100, Weights: []float64{0.9, 0.1}},
			},
		}

		out, err := SelectTangent(table, 0.00012)
		require.NoError(t, err)

		require.Equal(t, 0.0015, out.MeanReturn)
		require.Equal(t, 0.0180, out.StdDev)
		require.InDelta(t, 0.0767, out.SharpeRatio, 0.0001)
		require.Empty(t,
			cmp.Diff(
				[]domain.AssetWeight{
					{Symbol: "AAPL", Weight: 0.3},
					{Symbol: "MSFT", Weight: 0.7},
				},
				out.Weights,
			),
		)
	})

	t.Run("ties go to the earlier row", func(t *testing.T) {
		table := domain.FrontierTable{
			Assets: []string{"AAPL", "MSFT"},
			Rows: []domain.FrontierRow{
				{MeanReturn: 0.0010, StdDev: 0.0200, Weights: []float64{1, 0}},
				{MeanReturn: 0.0010, StdDev: 0.0200, Weights: []float64{0, 1}},
			},
		}

		out, err := SelectTangent(table, 0.00012)
		require.NoError(t, err)

		require.Equal(t, []domain.AssetWeight{
			{Symbol: "AAPL", Weight: 1},
			{Symbol: "MSFT", Weight: 0},
		}, out.Weights)
	})

	t.Run("single row wins regardless of ratio", func(t *testing.T) {
		table := domain.FrontierTable{
			Assets: []string{"AAPL"},
			Rows: []domain.FrontierRow{
				{MeanReturn: -0.5, StdDev: 0.0100, Weights: []float64{1}},
			},
		}

		out, err := SelectTangent(table, 0.00012)
		require.NoError(t, err)

		require.Equal(t, -0.5, out.MeanReturn)
		require.Less(t, out.SharpeRatio, 0.0)
	})

	t.Run("selected row always comes from the table", func(t *testing.T) {
		table := domain.FrontierTable{
			Assets: []string{"AAPL", "MSFT", "GOOG"},
			Rows: []domain.FrontierRow{
				{MeanReturn: 0.0009, StdDev: 0.0150, Weights: []float64{0.5, 0.3, 0.2}},
				{MeanReturn: 0.0012, StdDev: 0.0210, Weights: []float64{0.2, 0.5, 0.3}},
				{MeanReturn: 0.0007, StdDev: 0.0090, Weights: []float64{0.1, 0.1, 0.8}},
				{MeanReturn: 0.0011, StdDev: 0.0160, Weights: []float64{0.4, 0.4, 0.2}},
			},
		}

		out, err := SelectTangent(table, 0.00012)
		require.NoError(t, err)

		found := false
		for _, row := range table.Rows {
			if row.MeanReturn == out.MeanReturn && row.StdDev == out.StdDev {
				found = true
				selectedSharpe := SharpeRatio(row.MeanReturn, row.StdDev, 0.00012)
				for _, other := range table.Rows {
					require.GreaterOrEqual(t, selectedSharpe, SharpeRatio(other.MeanReturn, other.StdDev, 0.00012))
				}
			}
		}
		require.True(t, found)
	})

	t.Run("idempotent for the same inputs", func(t *testing.T) {
		table := domain.FrontierTable{
			Assets: []string{"AAPL", "MSFT"},
			Rows: []domain.FrontierRow{
				{MeanReturn: 0.0010, StdDev: 0.0200, Weights: []float64{0.6, 0.4}},
				{MeanReturn: 0.0015, StdDev: 0.0180, Weights: []float64{0.3, 0.7}},
			},
		}

		first, err := SelectTangent(table, 0.00012)
		require.NoError(t, err)
		second, err := SelectTangent(table, 0.00012)
		require.NoError(t, err)

		require.Empty(t, cmp.Diff(first, second))
	})

	t.Run("empty table", func(t *testing.T) {
		_, err := SelectTangent(domain.FrontierTable{Assets: []string{"AAPL"}}, 0.00012)
		require.ErrorIs(t, err, ErrEmptyFrontier)
	})

	t.Run("zero stdev row rejected even when its return beats the rate", func(t *testing.T) {
		table := domain.FrontierTable{
			Assets: []string{"AAPL"},
			Rows: []domain.FrontierRow{
				{MeanReturn: 0.0010, StdDev: 0.0200, Weights: []float64{1}},
				{MeanReturn: 0.0015, StdDev: 0, Weights: []float64{1}},
			},
		}

		_, err := SelectTangent(table, 0.00012)
		require.ErrorIs(t, err, ErrDegenerateRisk)
	})

	t.Run("weight count mismatch", func(t *testing.T) {
		table := domain.FrontierTable{
			Assets: []string{"AAPL", "MSFT"},
			Rows: []domain.FrontierRow{
				{MeanReturn: 0.0010, StdDev: 0.0200, Weights: []float64{1}},
			},
		}

		_, err := SelectTangent(table, 0.00012)
		require.ErrorIs(t, err, domain.ErrWeightMismatch)
	})
}
