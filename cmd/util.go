package cmd

import (
	"database/sql"
	"fmt"
	"log"
	"tangent/api"
	"tangent/internal/repository"
	"tangent/internal/service"
	"tangent/internal/util"

	_ "github.com/lib/pq"
)

func CloseDependencies(handler *api.ApiHandler) {
	err := handler.Db.Close()
	if err != nil {
		log.Fatalf("failed to close db: %v", err)
	}
}

func InitializeDependencies() (*api.ApiHandler, error) {
	secrets, err := util.LoadSecrets()
	if err != nil {
		return nil, fmt.Errorf("failed to load secrets: %w", err)
	}

	dbConn, err := sql.Open("postgres", secrets.Db.ToConnectionStr())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to db: %w", err)
	}

	priceRepository := repository.NewAdjustedPriceRepository(dbConn)
	analysisRunRepository := repository.NewAnalysisRunRepository(dbConn)

	priceService := service.NewPriceService(priceRepository)
	analysisService := service.NewAnalysisService(analysisRunRepository, priceRepository)

	return &api.ApiHandler{
		Db:               dbConn,
		AnalysisService:  analysisService,
		PriceService:     priceService,
		JwtSigningSecret: secrets.JwtSigningSecret,
	}, nil
}
