package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/craftlog/pattern-tracker/internal/common"
	"github.com/craftlog/pattern-tracker/internal/export"
	"github.com/craftlog/pattern-tracker/internal/repository"
)

func main() {
	var (
		out = flag.String("out", "", "output XLSX file path (defaults to <data dir>/patterns.xlsx)")
	)
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if *out == "" {
		*out = filepath.Join(cfg.Storage.DataDir, "patterns.xlsx")
	}

	ctx := context.Background()

	store, err := repository.NewStore(cfg.Storage.DataDir, logger)
	if err != nil {
		logger.Error("open catalog", "error", err)
		os.Exit(1)
	}
	defer func() {
		_ = store.Close()
	}()

	svc := export.NewService(store.Patterns(), logger)
	xlsxBytes, err := svc.ExportCatalogXLSX(ctx)
	if err != nil {
		logger.Error("export catalog", "error", err)
		os.Exit(1)
	}

	if err := os.WriteFile(*out, xlsxBytes, 0o644); err != nil {
		logger.Error("write output file", "error", err)
		os.Exit(1)
	}
	logger.Info("catalog exported", "output", *out)
}
