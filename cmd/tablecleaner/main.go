// cmd/tablecleaner/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/David-Botos/table-cleaner/pkg/cleaner"
	"github.com/David-Botos/table-cleaner/pkg/config"
	"github.com/David-Botos/table-cleaner/pkg/source"
)

func main() {
	csvPath := flag.String("csv", "", "path to a CSV file to clean")
	xlsxPath := flag.String("xlsx", "", "path to an .xlsx workbook to clean")
	sheet := flag.String("sheet", "", "sheet name for -xlsx (default: first sheet)")
	driver := flag.String("driver", "", "database driver: postgres or snowflake")
	query := flag.String("query", "", "SQL query producing the table for -driver")
	outPath := flag.String("out", "", "write the cleaned table as CSV to this path")
	flag.Parse()

	// Missing .env files are fine; the environment may already be set
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		os.Exit(1)
	}

	logger, err := config.NewLogger(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(cfg, logger, *csvPath, *xlsxPath, *sheet, *driver, *query, *outPath); err != nil {
		logger.Error("Cleaning failed", zap.Error(err))
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *zap.Logger, csvPath, xlsxPath, sheet, driver, query, outPath string) error {
	ctx := context.Background()

	src, cleanup, err := selectSource(ctx, logger, csvPath, xlsxPath, sheet, driver, query)
	if err != nil {
		return err
	}
	if cleanup != nil {
		defer cleanup()
	}

	table, err := src.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load table: %w", err)
	}

	tc, err := cleaner.NewTableCleaner(logger, cfg.CleanerOptions())
	if err != nil {
		return err
	}

	cleaned, report, err := tc.Clean(table)
	if err != nil {
		return err
	}

	fmt.Print(report.String())

	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", outPath, err)
		}
		defer f.Close()
		if err := source.WriteCSV(f, cleaned); err != nil {
			return fmt.Errorf("failed to write %s: %w", outPath, err)
		}
		logger.Info("Wrote cleaned table", zap.String("path", outPath))
	}

	return nil
}

// selectSource picks the table source from the flags, returning an
// optional cleanup function for sources that hold connections
func selectSource(ctx context.Context, logger *zap.Logger, csvPath, xlsxPath, sheet, driver, query string) (source.Source, func(), error) {
	switch {
	case csvPath != "":
		return source.NewCSVSource(csvPath, logger), nil, nil

	case xlsxPath != "":
		return source.NewExcelSource(xlsxPath, sheet, logger), nil, nil

	case driver == "postgres":
		if query == "" {
			return nil, nil, fmt.Errorf("-driver requires -query")
		}
		dbCfg, err := config.LoadPostgresConfig()
		if err != nil {
			return nil, nil, err
		}
		src, err := source.NewPostgresSource(ctx, dbCfg, query, logger)
		if err != nil {
			return nil, nil, err
		}
		return src, func() { src.Close() }, nil

	case driver == "snowflake":
		if query == "" {
			return nil, nil, fmt.Errorf("-driver requires -query")
		}
		dbCfg, err := config.LoadSnowflakeConfig()
		if err != nil {
			return nil, nil, err
		}
		src, err := source.NewSnowflakeSource(ctx, dbCfg, query, logger)
		if err != nil {
			return nil, nil, err
		}
		return src, func() { src.Close() }, nil

	default:
		return nil, nil, fmt.Errorf("no source given: use -csv, -xlsx, or -driver with -query")
	}
}
