package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/google/uuid"

	"roomledger/internal/config"
	"roomledger/internal/dataprocessing"
	"roomledger/internal/exporter"
	"roomledger/internal/extract"
	"roomledger/internal/files"
	"roomledger/internal/infrastructure"
)

func main() {
	inDir := flag.String("in", "", "directory containing the PDF occupancy reports (overrides config)")
	outDir := flag.String("out", "", "output root for per-year spreadsheets (overrides config)")
	configFile := flag.String("config", "", "path to config file (defaults to config.yaml)")
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}
	if *inDir != "" {
		cfg.Paths.ReportsDir = *inDir
	}
	if *outDir != "" {
		cfg.Paths.OutputDir = *outDir
	}

	if err := ensureDirectories(cfg); err != nil {
		slog.Error("failed to create required directories", "error", err)
		os.Exit(1)
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Warn("failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}
	defer infrastructure.CloseLogFile()

	ctx := infrastructure.WithTraceID(context.Background(), uuid.New().String())

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("processing failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	start := time.Now()
	logger.Info("starting occupancy report processing",
		slog.String("reports_dir", cfg.Paths.ReportsDir),
		slog.String("output_dir", cfg.Paths.OutputDir))

	discovery := files.NewDiscovery(cfg.Paths.ReportsDir)
	reports, err := discovery.FindPDFFiles(".")
	if err != nil {
		return fmt.Errorf("scan reports directory: %w", err)
	}
	if len(reports) == 0 {
		return fmt.Errorf("%w: no PDF files in %s", dataprocessing.ErrNoReports, cfg.Paths.ReportsDir)
	}
	logger.Info("discovered pdf reports", slog.Int("count", len(reports)))

	coordinator := dataprocessing.NewCoordinator(cfg.Processing, extract.NewPlumberSource(), logger)
	tables, err := coordinator.Run(ctx, files.Paths(reports))
	if err != nil {
		return err
	}

	builder := dataprocessing.NewBuilder(cfg.Processing, cfg.Property.RoomNumbers(), logger)
	excel := exporter.NewExcelWriter(logger)
	csv := exporter.NewCSVWriter(logger)

	for _, year := range tables.Years() {
		report := builder.Build(tables.GetOrInsert(year))
		yearDir := filepath.Join(cfg.Paths.OutputDir, strconv.Itoa(year))

		detail := exporter.DetailSheet(report.Detail)
		if err := excel.WriteTable(filepath.Join(yearDir, config.DetailFileName), detail); err != nil {
			return fmt.Errorf("write detail table for %d: %w", year, err)
		}
		if err := csv.WriteTable(filepath.Join(yearDir, config.DetailCSVName), detail); err != nil {
			return fmt.Errorf("write detail csv for %d: %w", year, err)
		}

		revenue := exporter.RevenueSheet(cfg.Processing.RoomColumn, report.Revenue)
		if err := excel.WriteMatrixTable(filepath.Join(yearDir, config.RevenueFileName), revenue); err != nil {
			return fmt.Errorf("write revenue matrix for %d: %w", year, err)
		}

		bookings := exporter.BookingSheet(cfg.Processing.RoomColumn, report.Bookings)
		if err := excel.WriteMatrixTable(filepath.Join(yearDir, config.BookingFileName), bookings); err != nil {
			return fmt.Errorf("write booking matrix for %d: %w", year, err)
		}

		logger.Info("wrote year outputs",
			slog.Int("year", year),
			slog.String("dir", yearDir))
	}

	logger.Info("processing complete",
		slog.Int("years", len(tables.Years())),
		slog.Float64("runtime_seconds", time.Since(start).Seconds()))

	return nil
}

func ensureDirectories(cfg *config.Config) error {
	for _, dir := range []string{cfg.Paths.ReportsDir, cfg.Paths.OutputDir, cfg.Paths.LogsDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	return nil
}
