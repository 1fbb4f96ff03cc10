package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"tangent/internal/calculator"
	"tangent/internal/db/models/postgres/public/model"
	"tangent/internal/domain"
	"tangent/internal/logger"
	"tangent/internal/repository"
	"time"

	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
)

var ErrRunNotFound = errors.New("analysis run not found")

type AnalysisService interface {
	// SelectTangent picks the max-sharpe row from the frontier and
	// records the selection. A nil riskFreeRate falls back to the
	// default daily rate.
	SelectTangent(ctx context.Context, table domain.FrontierTable, riskFreeRate *float64) (*domain.TangentPortfolio, error)
	AssetReturnStats(ctx context.Context, symbol string, start, end time.Time, riskFreeRate *float64) (*calculator.ReturnStatsResult, error)
	ListRuns(ctx context.Context, limit int64) ([]AnalysisRunResult, error)
	GetRun(ctx context.Context, id uuid.UUID) (*AnalysisRunResult, error)
}

type AnalysisRunResult struct {
	AnalysisRunID uuid.UUID               `json:"analysisRunId"`
	Tangent       domain.TangentPortfolio `json:"tangent"`
	RiskFreeRate  float64                 `json:"riskFreeRate"`
	CreatedAt     time.Time               `json:"createdAt"`
}

type analysisServiceHandler struct {
	AnalysisRunRepository repository.AnalysisRunRepository
	AdjPriceRepository    repository.AdjustedPriceRepository
}

func NewAnalysisService(
	analysisRunRepository repository.AnalysisRunRepository,
	adjPriceRepository repository.AdjustedPriceRepository,
) AnalysisService {
	return &analysisServiceHandler{
		AnalysisRunRepository: analysisRunRepository,
		AdjPriceRepository:    adjPriceRepository,
	}
}

func resolveRiskFreeRate(riskFreeRate *float64) float64 {
	if riskFreeRate != nil {
		return *riskFreeRate
	}
	return calculator.DefaultDailyRiskFreeRate
}

func (h *analysisServiceHandler) SelectTangent(ctx context.Context, table domain.FrontierTable, riskFreeRate *float64) (*domain.TangentPortfolio, error) {
	rate := resolveRiskFreeRate(riskFreeRate)

	tangent, err := calculator.SelectTangent(table, rate)
	if err != nil {
		return nil, err
	}

	weightsJson, err := json.Marshal(tangent.Weights)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal tangent weights: %w", err)
	}

	run, err := h.AnalysisRunRepository.Add(nil, model.AnalysisRun{
		MeanReturn:   tangent.MeanReturn,
		StdDev:       tangent.StdDev,
		SharpeRatio:  tangent.SharpeRatio,
		RiskFreeRate: rate,
		Weights:      string(weightsJson),
	})
	if err != nil {
		return nil, err
	}
	logger.FromContext(ctx).Infof("recorded analysis run %s (sharpe %f)", run.AnalysisRunID, run.SharpeRatio)

	return tangent, nil
}

func (h *analysisServiceHandler) AssetReturnStats(ctx context.Context, symbol string, start, end time.Time, riskFreeRate *float64) (*calculator.ReturnStatsResult, error) {
	prices, err := h.AdjPriceRepository.List(symbol, start, end)
	if err != nil {
		return nil, err
	}
	if len(prices) == 0 {
		return nil, fmt.Errorf("no prices stored for %s between %v and %v", symbol, start, end)
	}

	return calculator.CalculateReturnStats(symbol, prices, resolveRiskFreeRate(riskFreeRate))
}

func runResultFromModel(run model.AnalysisRun) (*AnalysisRunResult, error) {
	weights := []domain.AssetWeight{}
	err := json.Unmarshal([]byte(run.Weights), &weights)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal weights for run %s: %w", run.AnalysisRunID, err)
	}

	return &AnalysisRunResult{
		AnalysisRunID: run.AnalysisRunID,
		Tangent: domain.TangentPortfolio{
			MeanReturn:  run.MeanReturn,
			StdDev:      run.StdDev,
			SharpeRatio: run.SharpeRatio,
			Weights:     weights,
		},
		RiskFreeRate: run.RiskFreeRate,
		CreatedAt:    run.CreatedAt,
	}, nil
}

func (h *analysisServiceHandler) ListRuns(ctx context.Context, limit int64) ([]AnalysisRunResult, error) {
	runs, err := h.AnalysisRunRepository.List(limit)
	if err != nil {
		return nil, err
	}

	out := []AnalysisRunResult{}
	for _, run := range runs {
		result, err := runResultFromModel(run)
		if err != nil {
			return nil, err
		}
		out = append(out, *result)
	}

	return out, nil
}

func (h *analysisServiceHandler) GetRun(ctx context.Context, id uuid.UUID) (*AnalysisRunResult, error) {
	run, err := h.AnalysisRunRepository.Get(id)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, fmt.Errorf("%s: %w", id, ErrRunNotFound)
	} else if err != nil {
		return nil, err
	}

	return runResultFromModel(*run)
}
