package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/craftlog/pattern-tracker/internal/common"
	"github.com/craftlog/pattern-tracker/internal/ingest"
	"github.com/craftlog/pattern-tracker/internal/llm"
	"github.com/craftlog/pattern-tracker/internal/llm/ollama"
	"github.com/craftlog/pattern-tracker/internal/pipeline"
	"github.com/craftlog/pattern-tracker/internal/raster"
	"github.com/craftlog/pattern-tracker/internal/repository"
	"github.com/craftlog/pattern-tracker/internal/storage"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	if cfg.Storage.WatchDir == "" {
		logger.Error("WATCH_DIR env var is required")
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	store, err := repository.NewStore(cfg.Storage.DataDir, logger)
	if err != nil {
		logger.Error("open catalog", "error", err)
		os.Exit(1)
	}
	defer func() {
		_ = store.Close()
	}()

	docs := storage.NewDir(cfg.Storage.DataDir)
	rasterizer := raster.NewRasterizer(raster.Config{
		Pdftoppm: cfg.Raster.Pdftoppm,
		DPI:      cfg.Raster.DPI,
	}, logger)

	visionClient := ollama.NewClient(ollama.Config{
		BaseURL: cfg.Vision.BaseURL,
		Model:   cfg.Vision.Model,
		Timeout: cfg.Vision.Timeout,
	}, logger)
	enhancer := llm.NewEnhancer(llm.Config{
		MaxPages: cfg.Vision.MaxPages,
		Timeout:  cfg.Vision.Timeout,
	}, rasterizer, visionClient, logger)

	processor := pipeline.NewProcessor(logger, enhancer, rasterizer)
	ingestor := ingest.NewFSIngestor(store.Files(), store.Patterns(), docs, processor, logger)
	thumbs := raster.NewThumbnailCache(
		filepath.Join(cfg.Storage.DataDir, "thumbnails"), docs, rasterizer, logger)

	events, errs, err := ingest.StartWatcher(ctx, ingest.WatchConfig{
		Roots:       []string{cfg.Storage.WatchDir},
		InitialScan: true,
		Debounce:    2 * time.Second,
		Logger:      logger,
	})
	if err != nil {
		logger.Error("start watcher", "error", err)
		os.Exit(1)
	}

	logger.Info("watching for pattern documents",
		"watch_dir", cfg.Storage.WatchDir,
		"data_dir", cfg.Storage.DataDir,
		"model", cfg.Vision.Model,
	)

	for {
		select {
		case <-ctx.Done():
			logger.Info("shutting down")
			return
		case err, ok := <-errs:
			if ok && err != nil {
				logger.Error("watcher error", "error", err)
			}
		case path, ok := <-events:
			if !ok {
				return
			}
			res, err := ingestor.IngestPath(ctx, path)
			if err != nil {
				logger.Error("ingest failed", "path", path, "error", err)
				continue
			}
			if res.Deduplicated {
				continue
			}
			if _, err := thumbs.GetOrCreate(ctx, filepath.Base(res.StoredPath), 1); err != nil {
				logger.Warn("thumbnail warm failed", "path", res.StoredPath, "error", err)
			}
			logger.Info("pattern catalogued",
				"path", path,
				"pattern_id", res.PatternID,
				"file_id", res.FileID,
			)
		}
	}
}
