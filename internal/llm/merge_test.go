package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/craftlog/pattern-tracker/internal/entity"
)

func intp(v int) *int { return &v }

func TestMergeFillsGapsOnly(t *testing.T) {
	draft := entity.PatternDraft{
		Name:      "BUTTERFLY TOP",
		CraftType: "Crochet",
	}
	Merge(&draft, PatternFields{
		Name:       "Butterfly Crop Top",
		Designer:   "Mae Crochets",
		CraftType:  "Knitting",
		Difficulty: intp(2),
		PatSource:  "https://example.com/p/1",
	})

	// Existing scalars win; empty ones are filled.
	assert.Equal(t, "BUTTERFLY TOP", draft.Name)
	assert.Equal(t, "Crochet", draft.CraftType)
	assert.Equal(t, "Mae Crochets", draft.Designer)
	assert.Equal(t, "https://example.com/p/1", draft.PatSource)
	require.NotNil(t, draft.Difficulty)
	assert.Equal(t, 2, *draft.Difficulty)
}

func TestMergeDifficultyKeepsExisting(t *testing.T) {
	draft := entity.PatternDraft{Difficulty: intp(1)}
	Merge(&draft, PatternFields{Difficulty: intp(4)})
	assert.Equal(t, 1, *draft.Difficulty)
}

func TestMergeUnionsLists(t *testing.T) {
	draft := entity.PatternDraft{
		YarnWeights: []string{"4"},
		Tags:        []string{"easy", "quick"},
	}
	Merge(&draft, PatternFields{
		YarnWeights: []string{"5", "4"},
		Tags:        []string{"quick", "seamless"},
		YarnBrands:  []string{"Caron"},
	})

	// Existing first, new appended in arrival order, duplicates dropped.
	assert.Equal(t, []string{"4", "5"}, draft.YarnWeights)
	assert.Equal(t, []string{"easy", "quick", "seamless"}, draft.Tags)
	assert.Equal(t, []string{"Caron"}, draft.YarnBrands)
}

func TestMergeEmptyIncomingListLeavesExisting(t *testing.T) {
	draft := entity.PatternDraft{ToolSizes: []string{"4.5"}}
	Merge(&draft, PatternFields{})
	assert.Equal(t, []string{"4.5"}, draft.ToolSizes)
}

func TestMergeIsIdempotent(t *testing.T) {
	draft := entity.PatternDraft{Name: "Shawl", Tags: []string{"lace"}}
	in := PatternFields{
		Designer: "Jane Doe",
		Tags:     []string{"lace", "colorwork"},
	}
	Merge(&draft, in)
	once := draft
	Merge(&draft, in)
	assert.Equal(t, once, draft)
}

func TestExtractJSONObject(t *testing.T) {
	tests := []struct {
		name     string
		response string
		want     string
		ok       bool
	}{
		{"bare object", `{"name":"x"}`, `{"name":"x"}`, true},
		{"prose around object", "Sure! Here you go:\n{\"name\":\"x\"}\nHope that helps.", `{"name":"x"}`, true},
		{"nested braces kept", `note {"a":{"b":1}} end`, `{"a":{"b":1}}`, true},
		{"no object", "I could not read the pages.", "", false},
		{"reversed braces", "} nothing {", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractJSONObject(tt.response)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, string(got))
			}
		})
	}
}

func TestDecodeFieldsCaseInsensitiveKeys(t *testing.T) {
	f, err := DecodeFields([]byte(`{"Name":"Shawl","craftype":"x","CRAFTTYPE":"Knitting","yarnweights":["4"]}`))
	require.NoError(t, err)
	assert.Equal(t, "Shawl", f.Name)
	assert.Equal(t, "Knitting", f.CraftType)
	assert.Equal(t, []string{"4"}, f.YarnWeights)
}
