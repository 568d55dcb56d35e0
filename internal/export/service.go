package export

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/craftlog/pattern-tracker/internal/repository"
)

// Service is a tiny façade over the catalog that produces XLSX bytes for exports.
type Service struct {
	patterns repository.PatternRepository
	logger   *slog.Logger
}

func NewService(patterns repository.PatternRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{patterns: patterns, logger: logger}
}

// ExportCatalogXLSX returns an XLSX workbook (as bytes) listing every
// catalogued pattern with its lookup values flattened to comma lists.
func (s *Service) ExportCatalogXLSX(ctx context.Context) ([]byte, error) {
	start := time.Now()

	pats, err := s.patterns.ListPatterns(ctx)
	if err != nil {
		return nil, fmt.Errorf("query patterns: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Patterns"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		_, err := f.NewSheet(sheet)
		if err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Name",
		"Designer",
		"Craft",
		"Difficulty",
		"Project Types",
		"Yarn Weights",
		"Tool Sizes",
		"Yarn Brands",
		"Tags",
		"Free",
		"Favorite",
		"Made",
		"Source",
		"Date Added",
		"File Path",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, p := range pats {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		difficulty := ""
		if p.Difficulty != nil {
			difficulty = difficultyLabel(*p.Difficulty)
		}

		write(1, p.Name)
		write(2, p.Designer)
		write(3, p.CraftType)
		write(4, difficulty)
		write(5, strings.Join(p.ProjectTypes, ", "))
		write(6, strings.Join(p.YarnWeights, ", "))
		write(7, strings.Join(p.ToolSizes, ", "))
		write(8, strings.Join(p.YarnBrands, ", "))
		write(9, strings.Join(p.Tags, ", "))
		write(10, yesNo(p.IsFree))
		write(11, yesNo(p.IsFavorite))
		write(12, yesNo(p.HaveMade))
		write(13, truncate(p.PatSource, 140))
		if !p.DateAdded.IsZero() {
			write(14, p.DateAdded.Format("2006-01-02"))
		} else {
			write(14, "")
		}
		write(15, p.FilePath)

		row++
	}

	_ = f.SetColWidth(sheet, "A", "A", 32) // name
	_ = f.SetColWidth(sheet, "B", "B", 22) // designer
	_ = f.SetColWidth(sheet, "C", "D", 14) // craft, difficulty
	_ = f.SetColWidth(sheet, "E", "I", 24) // lists
	_ = f.SetColWidth(sheet, "J", "L", 9)  // flags
	_ = f.SetColWidth(sheet, "M", "M", 40) // source
	_ = f.SetColWidth(sheet, "N", "N", 12) // date
	_ = f.SetColWidth(sheet, "O", "O", 60) // path

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"rows", len(pats),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func difficultyLabel(d int) string {
	switch d {
	case 1:
		return "Beginner"
	case 2:
		return "Easy"
	case 3:
		return "Intermediate"
	case 4:
		return "Advanced"
	default:
		return fmt.Sprintf("%d", d)
	}
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	if n <= 1 {
		return s[:n]
	}
	return s[:n-1] + "…"
}
