package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/craftlog/pattern-tracker/internal/common"
	"github.com/craftlog/pattern-tracker/internal/llm"
	"github.com/craftlog/pattern-tracker/internal/llm/ollama"
	"github.com/craftlog/pattern-tracker/internal/pipeline"
	"github.com/craftlog/pattern-tracker/internal/raster"
)

func main() {
	var (
		enhance  = flag.Bool("enhance", false, "send page images to the vision model to fill extraction gaps")
		previews = flag.Bool("previews", false, "include base64 page previews in the output")
		verbose  = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: parsepdf [-enhance] [-previews] [-v] <pattern.pdf>")
		os.Exit(2)
	}
	path := flag.Arg(0)

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()

	rasterizer := raster.NewRasterizer(raster.Config{
		Pdftoppm: cfg.Raster.Pdftoppm,
		DPI:      cfg.Raster.DPI,
	}, logger)

	var enhancer *llm.Enhancer
	if *enhance {
		client := ollama.NewClient(ollama.Config{
			BaseURL: cfg.Vision.BaseURL,
			Model:   cfg.Vision.Model,
			Timeout: cfg.Vision.Timeout,
		}, logger)
		enhancer = llm.NewEnhancer(llm.Config{
			MaxPages: cfg.Vision.MaxPages,
			Timeout:  cfg.Vision.Timeout,
		}, rasterizer, client, logger)
	}

	var previewRaster *raster.Rasterizer
	if *previews {
		previewRaster = rasterizer
	}

	processor := pipeline.NewProcessor(logger, enhancer, previewRaster)
	result := processor.ProcessFile(context.Background(), path)

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		logger.Error("encode result", "error", err)
		os.Exit(1)
	}
}
