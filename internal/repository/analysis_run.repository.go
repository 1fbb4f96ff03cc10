package repository

import (
	"database/sql"
	"fmt"
	"time"

	"tangent/internal/db/models/postgres/public/model"
	"tangent/internal/db/models/postgres/public/table"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
)

type AnalysisRunRepository interface {
	Add(tx *sql.Tx, run model.AnalysisRun) (*model.AnalysisRun, error)
	Get(id uuid.UUID) (*model.AnalysisRun, error)
	List(limit int64) ([]model.AnalysisRun, error)
}

type analysisRunRepositoryHandler struct {
	Db *sql.DB
}

func NewAnalysisRunRepository(db *sql.DB) AnalysisRunRepository {
	return analysisRunRepositoryHandler{Db: db}
}

func (h analysisRunRepositoryHandler) Add(tx *sql.Tx, run model.AnalysisRun) (*model.AnalysisRun, error) {
	run.CreatedAt = time.Now().UTC()

	query := table.AnalysisRun.
		INSERT(
			table.AnalysisRun.MutableColumns,
		).
		MODEL(run).
		RETURNING(table.AnalysisRun.AllColumns)

	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}

	out := model.AnalysisRun{}
	err := query.Query(db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to insert analysis run: %w", err)
	}

	return &out, nil
}

func (h analysisRunRepositoryHandler) Get(id uuid.UUID) (*model.AnalysisRun, error) {
	query := table.AnalysisRun.
		SELECT(table.AnalysisRun.AllColumns).
		WHERE(table.AnalysisRun.AnalysisRunID.EQ(postgres.UUID(id)))

	out := model.AnalysisRun{}
	err := query.Query(h.Db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to get analysis run %s: %w", id, err)
	}

	return &out, nil
}

func (h analysisRunRepositoryHandler) List(limit int64) ([]model.AnalysisRun, error) {
	query := table.AnalysisRun.
		SELECT(table.AnalysisRun.AllColumns).
		ORDER_BY(table.AnalysisRun.CreatedAt.DESC()).
		LIMIT(limit)

	out := []model.AnalysisRun{}
	err := query.Query(h.Db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to list analysis runs: %w", err)
	}

	return out, nil
}
