package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"tangent/cmd"
	"tangent/internal/service"
	"tangent/internal/util"
	interestrate "tangent/pkg/interest_rate"
	"time"

	_ "github.com/lib/pq"
	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{Use: "tangent", Short: "Tangent portfolio analysis CLI"}

	root.AddCommand(tangentCmd())
	root.AddCommand(ingestCmd())
	root.AddCommand(importPricesCmd())
	root.AddCommand(serveCmd())

	if err := root.Execute(); err != nil {
		log.Fatal(err)
	}
}

func tangentCmd() *cobra.Command {
	var (
		frontierPath string
		riskFreeRate float64
		treasuryRate bool
	)
	c := &cobra.Command{
		Use:   "tangent",
		Short: "Select the max-sharpe portfolio from a frontier CSV",
		RunE: func(c *cobra.Command, args []string) error {
			handler, err := cmd.InitializeDependencies()
			if err != nil {
				return err
			}
			defer cmd.CloseDependencies(handler)

			f, err := os.Open(frontierPath)
			if err != nil {
				return fmt.Errorf("failed to open frontier file: %w", err)
			}
			defer f.Close()

			table, err := service.LoadFrontierCsv(f)
			if err != nil {
				return err
			}

			var rate *float64
			if c.Flags().Changed("risk-free-rate") {
				rate = &riskFreeRate
			} else if treasuryRate {
				dailyRate, err := interestrate.DailyRiskFreeRate(time.Now())
				if err != nil {
					return err
				}
				rate = &dailyRate
			}

			out, err := handler.AnalysisService.SelectTangent(context.Background(), *table, rate)
			if err != nil {
				return err
			}

			util.Pprint(out)
			return nil
		},
	}
	c.Flags().StringVar(&frontierPath, "frontier", "", "path to the optimizer's frontier csv")
	c.Flags().Float64Var(&riskFreeRate, "risk-free-rate", 0, "daily risk-free rate override")
	c.Flags().BoolVar(&treasuryRate, "treasury-rate", false, "derive the rate from today's treasury yield curve")
	c.MarkFlagRequired("frontier")
	return c
}

func ingestCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "ingest [symbols...]",
		Short: "Fetch and store daily adjusted prices (no args refreshes all stored symbols)",
		Args:  cobra.ArbitraryArgs,
		RunE: func(c *cobra.Command, args []string) error {
			handler, err := cmd.InitializeDependencies()
			if err != nil {
				return err
			}
			defer cmd.CloseDependencies(handler)

			return handler.PriceService.IngestPrices(context.Background(), args)
		},
	}
	return c
}

func importPricesCmd() *cobra.Command {
	var csvPath string
	c := &cobra.Command{
		Use:   "import-prices",
		Short: "Import prices from a symbol,date,price csv",
		RunE: func(c *cobra.Command, args []string) error {
			handler, err := cmd.InitializeDependencies()
			if err != nil {
				return err
			}
			defer cmd.CloseDependencies(handler)

			f, err := os.Open(csvPath)
			if err != nil {
				return fmt.Errorf("failed to open price csv: %w", err)
			}
			defer f.Close()

			n, err := handler.PriceService.ImportPricesCsv(context.Background(), f)
			if err != nil {
				return err
			}
			fmt.Printf("imported %d prices\n", n)
			return nil
		},
	}
	c.Flags().StringVar(&csvPath, "csv", "", "path to the price csv")
	c.MarkFlagRequired("csv")
	return c
}

func serveCmd() *cobra.Command {
	var port int
	c := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(c *cobra.Command, args []string) error {
			handler, err := cmd.InitializeDependencies()
			if err != nil {
				return err
			}
			defer cmd.CloseDependencies(handler)

			return handler.StartApi(port)
		},
	}
	c.Flags().IntVar(&port, "port", 3009, "port to listen on")
	return c
}
