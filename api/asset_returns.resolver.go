package api

import (
	"time"

	"github.com/gin-gonic/gin"
)

type assetReturnsRequest struct {
	Symbol       string   `json:"symbol"`
	Start        string   `json:"start"`
	End          string   `json:"end"`
	RiskFreeRate *float64 `json:"riskFreeRate"`
}

func (m ApiHandler) assetReturns(c *gin.Context) {
	var requestBody assetReturnsRequest

	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJson(err, c)
		return
	}

	start, err := time.Parse("2006-01-02", requestBody.Start)
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}
	end, err := time.Parse("2006-01-02", requestBody.End)
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	out, err := m.AnalysisService.AssetReturnStats(c.Request.Context(), requestBody.Symbol, start, end, requestBody.RiskFreeRate)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, out)
}
