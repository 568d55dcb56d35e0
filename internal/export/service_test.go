package export

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/craftlog/pattern-tracker/internal/entity"
	"github.com/craftlog/pattern-tracker/internal/repository"
)

func TestExportCatalogXLSX(t *testing.T) {
	store, err := repository.NewStore(t.TempDir(), nil)
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	ctx := context.Background()
	two := 2
	_, err = store.Patterns().AddPattern(ctx, repository.AddPatternRequest{
		Draft: entity.PatternDraft{
			Name:        "BUTTERFLY TOP",
			Designer:    "Mae Crochets",
			CraftType:   "Crochet",
			Difficulty:  &two,
			YarnWeights: []string{"4", "5"},
			Tags:        []string{"easy"},
		},
		FilePath: "/data/patterns/butterfly.pdf",
		IsFree:   true,
	})
	require.NoError(t, err)

	svc := NewService(store.Patterns(), nil)
	b, err := svc.ExportCatalogXLSX(ctx)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(b))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows("Patterns")
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "Name", rows[0][0])
	assert.Equal(t, "BUTTERFLY TOP", rows[1][0])
	assert.Equal(t, "Mae Crochets", rows[1][1])
	assert.Equal(t, "Crochet", rows[1][2])
	assert.Equal(t, "Easy", rows[1][3])
	assert.Equal(t, "4, 5", rows[1][5])
	assert.Equal(t, "Yes", rows[1][9])
}

func TestExportCatalogXLSXEmptyCatalog(t *testing.T) {
	store, err := repository.NewStore(t.TempDir(), nil)
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	svc := NewService(store.Patterns(), nil)
	b, err := svc.ExportCatalogXLSX(context.Background())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(b))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows("Patterns")
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
