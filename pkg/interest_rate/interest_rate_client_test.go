package interestrate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestInterestRateMap_GetRate(t *testing.T) {
	rates := InterestRateMap{
		Rates: map[int]float64{
			1:  0.0148,
			3:  0.0155,
			12: 0.0159,
			60: 0.0169,
		},
	}

	t.Run("exact tenor", func(t *testing.T) {
		require.Equal(t, 0.0155, rates.GetRate(3))
	})

	t.Run("below shortest tenor", func(t *testing.T) {
		require.Equal(t, 0.0148, rates.GetRate(0))
	})

	t.Run("above longest tenor", func(t *testing.T) {
		require.Equal(t, 0.0169, rates.GetRate(120))
	})

	t.Run("between tenors interpolates", func(t *testing.T) {
		require.InDelta(t, (0.0155+0.0159)/2, rates.GetRate(6), 1e-9)
	})
}

func TestGetYieldCurve(t *testing.T) {
	// live network call, skip in ci checks
	if true {
		t.Skip()
	}

	response, err := GetYieldCurve(time.Date(
		2020, 1, 1, 0, 0, 0, 0, time.UTC,
	))
	require.NoError(t, err)
	require.InDelta(t, 0.0155, response.GetRate(3), 0.0001)
}
