package interestrate

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"
)

const tradingDaysPerYear = 252

// tenor used when a single "risk-free" number is needed
const riskFreeTenorMonths = 3

func interestRateMonthsFromApi(in string) (int, error) {
	cleanedStr := strings.Replace(in, "yield_", "", 1)
	unit := string(cleanedStr[len(cleanedStr)-1])
	cleanedStr = cleanedStr[:len(cleanedStr)-1]
	months, err := strconv.Atoi(cleanedStr)
	if err != nil {
		return 0, err
	}

	if unit == "y" {
		months *= 12
	}

	return months, nil
}

type InterestRateMap struct {
	Rates map[int]float64
}

func (im InterestRateMap) GetRate(monthsOut int) float64 {
	v, ok := im.Rates[monthsOut]
	if ok {
		return v
	}

	keys := []int{}
	for k := range im.Rates {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		return keys[i] < keys[j]
	})

	// figure out closest values and interpolate
	if monthsOut < keys[0] {
		return im.Rates[keys[0]]
	}
	if monthsOut > keys[len(keys)-1] {
		return im.Rates[keys[len(keys)-1]]
	}

	for i := 0; i < len(keys)-1; i++ {
		key1 := keys[i]
		key2 := keys[i+1]
		if monthsOut > key1 && monthsOut < key2 {
			return (im.Rates[key1] + im.Rates[key2]) / 2
		}
	}
	panic("unable to compute rate")
}

// DailyRiskFreeRate converts the short-tenor treasury yield on the
// given day to a daily rate, for use against daily return series.
func DailyRiskFreeRate(date time.Time) (float64, error) {
	rates, err := GetYieldCurve(date)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch yield curve for %s: %w", date.Format(time.DateOnly), err)
	}

	return rates.GetRate(riskFreeTenorMonths) / tradingDaysPerYear, nil
}

// lazy, in-memory cache for API requests
var cache map[string][]byte = map[string][]byte{}

func getBytes(date time.Time) ([]byte, error) {
	tStr := date.Format(time.DateOnly)

	if out, ok := cache[tStr]; ok {
		return out, nil
	}

	client := http.DefaultClient
	url := fmt.Sprintf("https://www.ustreasuryyieldcurve.com/api/v1/yield_curve_snapshot?date=%s&offset=0", tStr)

	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	response, err := client.Do(req)
	if err != nil {
		return nil, err
	}

	responseBytes, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, fmt.Errorf("received status code %d and failed to read body: %w", response.StatusCode, err)
	}

	if response.StatusCode != 200 {
		return nil, fmt.Errorf("failed with status code %d: %s", response.StatusCode, string(responseBytes))
	}

	cache[tStr] = responseBytes

	return responseBytes, nil
}

func GetYieldCurve(date time.Time) (*InterestRateMap, error) {
	keys := []string{
		"yield_1m",
		"yield_2m",
		"yield_3m",
		"yield_4m",
		"yield_6m",
		"yield_1y",
		"yield_2y",
		"yield_3y",
		"yield_5y",
		"yield_7y",
		"yield_10y",
		"yield_20y",
		"yield_30y",
	}

	responseBytes, err := getBytes(date)
	if err != nil {
		return nil, err
	}

	responseBody := []map[string]interface{}{}

	err = json.Unmarshal(responseBytes, &responseBody)
	if err != nil {
		return nil, err
	}

	out := map[int]float64{}
	oneNonNil := false

	for _, response := range responseBody {
		for k, v := range response {
			for _, field := range keys {
				if k == field {
					months, err := interestRateMonthsFromApi(k)
					if err != nil {
						return nil, err
					}
					if v != nil {
						oneNonNil = true
						out[months] = v.(float64) / 100
					}
				}
			}
		}
	}
	if !oneNonNil {
		// holidays report all-null curves, walk back until a real one
		return GetYieldCurve(date.AddDate(0, -1, 0))
	}

	return &InterestRateMap{
		Rates: out,
	}, nil
}
