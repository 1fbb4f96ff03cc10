package api

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const defaultRunListLimit = 25

func (m ApiHandler) analysisRuns(c *gin.Context) {
	limit := int64(defaultRunListLimit)
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed <= 0 {
			returnErrorJsonCode(fmt.Errorf("invalid limit %q", raw), c, 400)
			return
		}
		limit = parsed
	}

	runs, err := m.AnalysisService.ListRuns(c.Request.Context(), limit)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, gin.H{
		"runs": runs,
	})
}

func (m ApiHandler) analysisRun(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("invalid run id %q", c.Param("id")), c, 400)
		return
	}

	run, err := m.AnalysisService.GetRun(c.Request.Context(), id)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, run)
}
