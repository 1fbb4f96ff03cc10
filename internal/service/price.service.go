package service

import (
	"context"
	"fmt"
	"io"
	"tangent/internal/db/models/postgres/public/model"
	"tangent/internal/logger"
	"tangent/internal/repository"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/piquette/finance-go/chart"
	"github.com/piquette/finance-go/datetime"
)

// earliest date we bother backfilling from
var defaultIngestStart = time.Date(2018, 1, 1, 0, 0, 0, 0, time.UTC)

type PriceService interface {
	// IngestPrices refreshes daily prices for the given symbols. An
	// empty list refreshes every symbol already stored.
	IngestPrices(ctx context.Context, symbols []string) error
	ImportPricesCsv(ctx context.Context, r io.Reader) (int, error)
	PriceOn(ctx context.Context, symbol string, date time.Time) (float64, error)
}

type priceServiceHandler struct {
	AdjPriceRepository repository.AdjustedPriceRepository
}

func NewPriceService(adjPriceRepository repository.AdjustedPriceRepository) PriceService {
	return &priceServiceHandler{
		AdjPriceRepository: adjPriceRepository,
	}
}

// IngestPrices pulls daily adjusted closes from Yahoo for each symbol
// and upserts them. Symbols that already have prices are only fetched
// from their latest stored date forward.
func (h *priceServiceHandler) IngestPrices(ctx context.Context, symbols []string) error {
	log := logger.FromContext(ctx)
	if len(symbols) == 0 {
		stored, err := h.AdjPriceRepository.ListSymbols()
		if err != nil {
			return err
		}
		if len(stored) == 0 {
			return fmt.Errorf("no symbols given and none stored yet")
		}
		symbols = stored
	}
	for _, symbol := range symbols {
		start := defaultIngestStart
		latest, err := h.AdjPriceRepository.LatestPriceDate(symbol)
		if err != nil {
			return err
		}
		if latest != nil {
			start = *latest
		}

		models, err := fetchPrices(symbol, start)
		if err != nil {
			return err
		}
		if len(models) == 0 {
			log.Infof("no new prices for %s", symbol)
			continue
		}

		err = h.AdjPriceRepository.Add(nil, models)
		if err != nil {
			return err
		}
		log.Infof("ingested %d prices for %s", len(models), symbol)
	}

	return nil
}

func fetchPrices(symbol string, start time.Time) ([]model.AdjustedPrice, error) {
	now := time.Now()
	params := &chart.Params{
		Start:    datetime.New(&start),
		End:      datetime.New(&now),
		Symbol:   symbol,
		Interval: datetime.OneDay,
	}
	iter := chart.Get(params)

	models := []model.AdjustedPrice{}
	for iter.Next() {
		models = append(models, model.AdjustedPrice{
			Symbol:    symbol,
			Date:      time.Unix(int64(iter.Bar().Timestamp), 0),
			Price:     iter.Bar().AdjClose.InexactFloat64(),
			CreatedAt: time.Now().UTC(),
		})
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("failed to get prices for %s: %w", symbol, err)
	}

	return models, nil
}

type priceCsvRow struct {
	Symbol string  `csv:"symbol"`
	Date   string  `csv:"date"`
	Price  float64 `csv:"price"`
}

// ImportPricesCsv loads offline price fixtures with columns
// symbol,date,price. Returns the number of rows imported.
func (h *priceServiceHandler) ImportPricesCsv(ctx context.Context, r io.Reader) (int, error) {
	rows := []priceCsvRow{}
	err := gocsv.Unmarshal(r, &rows)
	if err != nil {
		return 0, fmt.Errorf("failed to parse price csv: %w", err)
	}

	models := []model.AdjustedPrice{}
	for i, row := range rows {
		date, err := time.Parse(time.DateOnly, row.Date)
		if err != nil {
			return 0, fmt.Errorf("failed to parse date on csv row %d: %w", i, err)
		}
		models = append(models, model.AdjustedPrice{
			Symbol:    row.Symbol,
			Date:      date,
			Price:     row.Price,
			CreatedAt: time.Now().UTC(),
		})
	}
	if len(models) == 0 {
		return 0, nil
	}

	err = h.AdjPriceRepository.Add(nil, models)
	if err != nil {
		return 0, err
	}

	return len(models), nil
}

// PriceOn looks up the stored adjusted close for a symbol on a date,
// falling back a few days for weekends and holidays.
func (h *priceServiceHandler) PriceOn(ctx context.Context, symbol string, date time.Time) (float64, error) {
	return h.AdjPriceRepository.Get(symbol, date)
}
