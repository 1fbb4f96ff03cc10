package api

import (
	"tangent/internal/domain"

	"github.com/gin-gonic/gin"
)

type tangentPortfolioRequest struct {
	Assets []string `json:"assets"`
	Rows   []struct {
		MeanReturn float64   `json:"meanReturn"`
		StdDev     float64   `json:"stdDev"`
		Weights    []float64 `json:"weights"`
	} `json:"rows"`
	// optional; defaults to the daily risk-free constant
	RiskFreeRate *float64 `json:"riskFreeRate"`
}

func (m ApiHandler) tangentPortfolio(c *gin.Context) {
	var requestBody tangentPortfolioRequest

	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJson(err, c)
		return
	}

	table := domain.FrontierTable{
		Assets: requestBody.Assets,
		Rows:   make([]domain.FrontierRow, 0, len(requestBody.Rows)),
	}
	for _, row := range requestBody.Rows {
		table.Rows = append(table.Rows, domain.FrontierRow{
			MeanReturn: row.MeanReturn,
			StdDev:     row.StdDev,
			Weights:    row.Weights,
		})
	}

	tangent, err := m.AnalysisService.SelectTangent(c.Request.Context(), table, requestBody.RiskFreeRate)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, tangent)
}
