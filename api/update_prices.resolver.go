package api

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"
)

type updatePricesRequest struct {
	Symbols []string `json:"symbols"`
}

// updatePrices refreshes stored prices. An empty or missing symbol list
// refreshes every symbol already in the store.
func (m ApiHandler) updatePrices(c *gin.Context) {
	var requestBody updatePricesRequest

	if err := c.ShouldBindJSON(&requestBody); err != nil && !errors.Is(err, io.EOF) {
		returnErrorJson(err, c)
		return
	}

	err := m.PriceService.IngestPrices(c.Request.Context(), requestBody.Symbols)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	out := map[string]string{
		"message": "ok",
	}

	c.JSON(200, out)
}
