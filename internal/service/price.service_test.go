package service

import (
	"context"
	"strings"
	"tangent/internal/db/models/postgres/public/model"
	mock_repository "tangent/internal/repository/mocks"
	"tangent/internal/util"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestPriceService_ImportPricesCsv(t *testing.T) {
	t.Run("imports rows", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		priceRepository := mock_repository.NewMockAdjustedPriceRepository(ctrl)

		handler := NewPriceService(priceRepository)

		in := strings.Join([]string{
			"symbol,date,price",
			"AAPL,2024-01-02,185.64",
			"MSFT,2024-01-02,370.87",
		}, "\n")

		priceRepository.EXPECT().
			Add(gomock.Nil(), gomock.Any()).
			DoAndReturn(func(_ interface{}, models []model.AdjustedPrice) error {
				require.Len(t, models, 2)
				require.Equal(t, "AAPL", models[0].Symbol)
				require.Equal(t, 185.64, models[0].Price)
				require.Equal(t, util.NewDate(2024, 1, 2), models[0].Date)
				return nil
			})

		n, err := handler.ImportPricesCsv(context.Background(), strings.NewReader(in))
		require.NoError(t, err)
		require.Equal(t, 2, n)
	})

	t.Run("bad date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		priceRepository := mock_repository.NewMockAdjustedPriceRepository(ctrl)

		handler := NewPriceService(priceRepository)

		in := "symbol,date,price\nAAPL,01/02/2024,185.64"

		_, err := handler.ImportPricesCsv(context.Background(), strings.NewReader(in))
		require.Error(t, err)
	})

	t.Run("empty file imports nothing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		priceRepository := mock_repository.NewMockAdjustedPriceRepository(ctrl)

		handler := NewPriceService(priceRepository)

		n, err := handler.ImportPricesCsv(context.Background(), strings.NewReader("symbol,date,price"))
		require.NoError(t, err)
		require.Equal(t, 0, n)
	})
}

func TestPriceService_IngestPrices(t *testing.T) {
	t.Run("empty symbol list falls back to stored symbols", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		priceRepository := mock_repository.NewMockAdjustedPriceRepository(ctrl)

		handler := NewPriceService(priceRepository)

		priceRepository.EXPECT().
			ListSymbols().
			Return([]string{}, nil)

		err := handler.IngestPrices(context.Background(), nil)
		require.ErrorContains(t, err, "no symbols")
	})
}

func TestPriceService_PriceOn(t *testing.T) {
	t.Run("returns the stored price", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		priceRepository := mock_repository.NewMockAdjustedPriceRepository(ctrl)

		handler := NewPriceService(priceRepository)

		date := util.NewDate(2024, 1, 2)
		priceRepository.EXPECT().
			Get("AAPL", date).
			Return(185.64, nil)

		price, err := handler.PriceOn(context.Background(), "AAPL", date)
		require.NoError(t, err)
		require.Equal(t, 185.64, price)
	})
}
