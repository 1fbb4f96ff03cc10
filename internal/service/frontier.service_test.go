package service

import (
	"strings"
	"tangent/internal/domain"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestLoadFrontierCsv(t *testing.T) {
	t.Run("parses header order into assets", func(t *testing.T) {
		in := strings.Join([]string{
			"mean_return,std_dev,AAPL,MSFT,GOOG",
			"0.0010,0.0200,0.6,0.3,0.1",
			"0.0015,0.0180,0.3,0.5,0.2",
		}, "\n")

		table, err := LoadFrontierCsv(strings.NewReader(in))
		require.NoError(t, err)

		require.Empty(t,
			cmp.Diff(
				&domain.FrontierTable{
					Assets: []string{"AAPL", "MSFT", "GOOG"},
					Rows: []domain.FrontierRow{
						{MeanReturn: 0.0010, StdDev: 0.0200, Weights: []float64{0.6, 0.3, 0.1}},
						{MeanReturn: 0.0015, StdDev: 0.0180, Weights: []float64{0.3, 0.5, 0.2}},
					},
				},
				table,
			),
		)
	})

	t.Run("header only gives an empty table", func(t *testing.T) {
		table, err := LoadFrontierCsv(strings.NewReader("mean_return,std_dev,AAPL"))
		require.NoError(t, err)
		require.Empty(t, table.Rows)
	})

	t.Run("rejects wrong header", func(t *testing.T) {
		_, err := LoadFrontierCsv(strings.NewReader("return,risk,AAPL\n0.001,0.02,1"))
		require.Error(t, err)
	})

	t.Run("rejects non-numeric weight", func(t *testing.T) {
		_, err := LoadFrontierCsv(strings.NewReader("mean_return,std_dev,AAPL\n0.001,0.02,abc"))
		require.Error(t, err)
	})
}
