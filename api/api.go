package api

import (
	"database/sql"
	"errors"
	"fmt"
	"tangent/internal/calculator"
	"tangent/internal/domain"
	"tangent/internal/logger"
	"tangent/internal/service"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type ApiHandler struct {
	Db               *sql.DB
	AnalysisService  service.AnalysisService
	PriceService     service.PriceService
	JwtSigningSecret string
}

func (m ApiHandler) InitializeRouterEngine() *gin.Engine {
	router := gin.Default()
	router.Use(cors.Default())
	router.Use(m.logRequestMiddleware)

	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(200, map[string]string{"message": "welcome to tangent"})
	})
	router.POST("/tangentPortfolio", m.tangentPortfolio)
	router.POST("/assetReturns", m.assetReturns)
	router.GET("/analysisRuns", m.analysisRuns)
	router.GET("/analysisRuns/:id", m.analysisRun)
	router.GET("/assetPrice", m.assetPrice)
	router.POST("/updatePrices", m.requireAuth, m.updatePrices)

	return router
}

func (m ApiHandler) StartApi(port int) error {
	router := m.InitializeRouterEngine()
	return router.Run(fmt.Sprintf(":%d", port))
}

func returnErrorJson(err error, c *gin.Context) {
	code := 500
	// selector failures are caller mistakes, not server faults
	if errors.Is(err, calculator.ErrEmptyFrontier) ||
		errors.Is(err, calculator.ErrDegenerateRisk) ||
		errors.Is(err, domain.ErrWeightMismatch) {
		code = 400
	}
	if errors.Is(err, service.ErrRunNotFound) {
		code = 404
	}
	returnErrorJsonCode(err, c, code)
}

func returnErrorJsonCode(err error, c *gin.Context, code int) {
	logger.FromContext(c.Request.Context()).Error(err.Error())
	c.AbortWithStatusJSON(code, gin.H{
		"error": err.Error(),
	})
}

func (m ApiHandler) logRequestMiddleware(c *gin.Context) {
	log := logger.New().With(
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
	)
	c.Request = c.Request.WithContext(
		logger.AddToContext(c.Request.Context(), log),
	)

	start := time.Now()
	c.Next()
	log.Infow("request handled",
		"status", c.Writer.Status(),
		"elapsedMs", time.Since(start).Milliseconds(),
	)
}
