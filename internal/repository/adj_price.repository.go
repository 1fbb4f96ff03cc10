package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"tangent/internal/db/models/postgres/public/model"
	. "tangent/internal/db/models/postgres/public/table"
	"tangent/internal/domain"
	"time"

	. "github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
)

type PriceCache map[string]map[time.Time]float64

type AdjustedPriceRepository interface {
	Add(tx *sql.Tx, prices []model.AdjustedPrice) error
	Get(symbol string, date time.Time) (float64, error)
	List(symbol string, start, end time.Time) ([]domain.AssetPrice, error)
	ListSymbols() ([]string, error)
	LatestPriceDate(symbol string) (*time.Time, error)
}

func NewAdjustedPriceRepository(db *sql.DB) AdjustedPriceRepository {
	return &adjustedPriceRepositoryHandler{
		Db:        db,
		Cache:     make(PriceCache),
		ReadMutex: &sync.RWMutex{},
	}
}

type adjustedPriceRepositoryHandler struct {
	Db        *sql.DB
	Cache     PriceCache
	ReadMutex *sync.RWMutex
}

func (h *adjustedPriceRepositoryHandler) getFromCache(symbol string, date time.Time) *float64 {
	h.ReadMutex.RLock()
	defer h.ReadMutex.RUnlock()
	if _, ok := h.Cache[symbol]; ok {
		if price, ok := h.Cache[symbol][date]; ok {
			return &price
		}
	}
	return nil
}

func (h *adjustedPriceRepositoryHandler) addToCache(symbol string, date time.Time, price float64) {
	h.ReadMutex.Lock()
	defer h.ReadMutex.Unlock()
	if _, ok := h.Cache[symbol]; !ok {
		h.Cache[symbol] = map[time.Time]float64{}
	}
	h.Cache[symbol][date] = price
}

func (h *adjustedPriceRepositoryHandler) Add(tx *sql.Tx, prices []model.AdjustedPrice) error {
	query := AdjustedPrice.
		INSERT(AdjustedPrice.MutableColumns).
		MODELS(prices).
		ON_CONFLICT(
			AdjustedPrice.Symbol, AdjustedPrice.Date,
		).DO_UPDATE(
		SET(
			AdjustedPrice.Price.SET(AdjustedPrice.EXCLUDED.Price),
		),
	)

	var db qrm.Executable = h.Db
	if tx != nil {
		db = tx
	}

	_, err := query.Exec(db)
	if err != nil {
		return fmt.Errorf("failed to add adjusted prices to db: %w", err)
	}

	return nil
}

func (h *adjustedPriceRepositoryHandler) Get(symbol string, date time.Time) (float64, error) {
	if pc := h.getFromCache(symbol, date); pc != nil {
		return *pc, nil
	}

	minDate := TimestampT(date.AddDate(0, 0, -3))
	maxDate := TimestampT(date)
	// use range so we can do t-3 for weekends or holidays
	query := AdjustedPrice.
		SELECT(AdjustedPrice.AllColumns).
		WHERE(
			AND(
				AdjustedPrice.Symbol.EQ(String(symbol)),
				AdjustedPrice.Date.BETWEEN(minDate, maxDate),
			),
		).
		ORDER_BY(AdjustedPrice.Date.DESC()).
		LIMIT(1)

	result := model.AdjustedPrice{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return 0, fmt.Errorf("failed to query price for %s on %v: %w", symbol, date, err)
	}

	h.addToCache(symbol, date, result.Price)
	return result.Price, nil
}

func (h *adjustedPriceRepositoryHandler) List(symbol string, start, end time.Time) ([]domain.AssetPrice, error) {
	query := AdjustedPrice.
		SELECT(AdjustedPrice.AllColumns).
		WHERE(
			AND(
				AdjustedPrice.Symbol.EQ(String(symbol)),
				AdjustedPrice.Date.BETWEEN(TimestampT(start), TimestampT(end)),
			),
		).
		ORDER_BY(AdjustedPrice.Date.ASC())

	result := []model.AdjustedPrice{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list prices for %s: %w", symbol, err)
	}

	out := []domain.AssetPrice{}
	for _, p := range result {
		out = append(out, domain.AssetPrice{
			Symbol: p.Symbol,
			Date:   p.Date,
			Price:  p.Price,
		})
	}

	return out, nil
}

func (h *adjustedPriceRepositoryHandler) ListSymbols() ([]string, error) {
	query := AdjustedPrice.
		SELECT(AdjustedPrice.Symbol).
		GROUP_BY(AdjustedPrice.Symbol).
		ORDER_BY(AdjustedPrice.Symbol.ASC())

	q, args := query.Sql()

	rows, err := h.Db.Query(q, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list symbols: %w", err)
	}
	defer rows.Close()

	out := []string{}
	for rows.Next() {
		var s string
		err := rows.Scan(&s)
		if err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		out = append(out, s)
	}

	return out, nil
}

func (h *adjustedPriceRepositoryHandler) LatestPriceDate(symbol string) (*time.Time, error) {
	query := AdjustedPrice.
		SELECT(AdjustedPrice.Date).
		WHERE(AdjustedPrice.Symbol.EQ(String(symbol))).
		ORDER_BY(AdjustedPrice.Date.DESC()).
		LIMIT(1)

	result := model.AdjustedPrice{}
	err := query.Query(h.Db, &result)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get latest price date for %s: %w", symbol, err)
	}

	return &result.Date, nil
}
