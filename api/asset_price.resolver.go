package api

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
)

func (m ApiHandler) assetPrice(c *gin.Context) {
	symbol := c.Query("symbol")
	if symbol == "" {
		returnErrorJsonCode(fmt.Errorf("symbol is required"), c, 400)
		return
	}

	date := time.Now().UTC()
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.Parse(time.DateOnly, raw)
		if err != nil {
			returnErrorJsonCode(fmt.Errorf("invalid date %q", raw), c, 400)
			return
		}
		date = parsed
	}

	price, err := m.PriceService.PriceOn(c.Request.Context(), symbol, date)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, gin.H{
		"symbol": symbol,
		"date":   date.Format(time.DateOnly),
		"price":  price,
	})
}
