package service

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"tangent/internal/domain"
)

// LoadFrontierCsv parses the optimizer's frontier export. The header
// must start with mean_return,std_dev; every remaining column is an
// asset symbol, in the order the assets were declared to the optimizer.
// Weight columns are parsed per header position so the table never
// depends on offset slicing downstream.
func LoadFrontierCsv(r io.Reader) (*domain.FrontierTable, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read frontier csv: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("frontier csv has no header row")
	}

	header := records[0]
	if len(header) < 3 || header[0] != "mean_return" || header[1] != "std_dev" {
		return nil, fmt.Errorf("frontier csv header must be mean_return,std_dev,<asset...>, got %v", header)
	}

	table := &domain.FrontierTable{
		Assets: header[2:],
		Rows:   []domain.FrontierRow{},
	}

	for i, record := range records[1:] {
		if len(record) != len(header) {
			return nil, fmt.Errorf("frontier csv row %d has %d fields, expected %d", i+1, len(record), len(header))
		}
		fields := make([]float64, len(record))
		for j, raw := range record {
			fields[j], err = strconv.ParseFloat(raw, 64)
			if err != nil {
				return nil, fmt.Errorf("failed to parse frontier csv row %d column %s: %w", i+1, header[j], err)
			}
		}
		table.Rows = append(table.Rows, domain.FrontierRow{
			MeanReturn: fields[0],
			StdDev:     fields[1],
			Weights:    fields[2:],
		})
	}

	return table, nil
}
