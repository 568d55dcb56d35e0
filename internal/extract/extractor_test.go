package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const butterflyText = `BUTTERFLY TOP
by Mae Crochets
This crochet pattern is rated easy and works up quick.
Make a sweater pattern variation if you prefer long sleeves.
Materials: Caron Simply Soft yarn, worsted weight, bulky held double
Hook: 4.5 mm (US 8)
Find more at https://example.com/butterfly-top`

func TestExtractEndToEnd(t *testing.T) {
	draft := Extract(butterflyText)

	assert.Equal(t, "BUTTERFLY TOP", draft.Name)
	assert.Equal(t, "Mae Crochets", draft.Designer)
	assert.Equal(t, "Crochet", draft.CraftType)
	require.NotNil(t, draft.Difficulty)
	assert.Equal(t, 2, *draft.Difficulty)
	assert.Equal(t, "https://example.com/butterfly-top", draft.PatSource)
	assert.ElementsMatch(t, []string{"4", "5"}, draft.YarnWeights)
	assert.ElementsMatch(t, []string{"4.5", "5.0"}, draft.ToolSizes)
	assert.Contains(t, draft.YarnBrands, "Caron")
	assert.Contains(t, draft.Tags, "easy")
}

func TestExtractEmptyText(t *testing.T) {
	draft := Extract("")
	assert.True(t, draft.IsEmpty())
}

func TestExtractDesigner(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"by credit", "Lovely shawl\nby Mae Crochets\nRow 1: ch 20", "Mae Crochets"},
		{"designed by", "Designed by Anna Lee\nMaterials list follows", "Anna Lee"},
		{"designer role", "Designer: Jane Doe\nGauge: 16 sts", "Jane Doe"},
		{"credit cut at line break", "by Mae Crochets\nThis pattern uses worsted yarn", "Mae Crochets"},
		{"absent", "A pattern with no credit at all", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Extract(tt.text).Designer)
		})
	}
}

func TestExtractCraftType(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"a simple knitting project", "Knitting"},
		{"a cozy knit top", "Knitting"},
		{"crochet this in an afternoon", "Crochet"},
		{"needle weaving for beginners", "Weaving"},
		{"a cross stitch sampler", "Cross stitch"},
		{"no craft words here", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Extract(tt.text).CraftType, tt.text)
	}
}

func TestExtractDifficultyFirstMatchWins(t *testing.T) {
	// Rule order decides collisions: beginner outranks every later keyword
	// even when both appear.
	easy := Extract("An easy pattern for the confident beginner")
	require.NotNil(t, easy.Difficulty)
	assert.Equal(t, 1, *easy.Difficulty)

	expert := Extract("strictly for expert knitters")
	require.NotNil(t, expert.Difficulty)
	assert.Equal(t, 4, *expert.Difficulty)

	assert.Nil(t, Extract("no rating words at all").Difficulty)
}

func TestExtractDifficultyWholeWordsOnly(t *testing.T) {
	// "beginners" is not the whole word "beginner".
	d := Extract("for adventurous beginners, rated easy")
	require.NotNil(t, d.Difficulty)
	assert.Equal(t, 2, *d.Difficulty)
}

func TestExtractYarnWeights(t *testing.T) {
	tests := []struct {
		text string
		want []string
	}{
		{"worsted weight yarn", []string{"4"}},
		{"worsted with bulky trim", []string{"4", "5"}},
		{"super bulky only", []string{"5", "6"}},
		{"fingering or sock yarn", []string{"1"}},
		{"superbulky written as one word", []string{"6"}},
		{"no weights named", nil},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Extract(tt.text).YarnWeights, tt.text)
	}
}

func TestExtractToolSizes(t *testing.T) {
	tests := []struct {
		text string
		want []string
	}{
		{"Hook: 4.5 mm", []string{"4.5"}},
		{"US 8 needles", []string{"5.0"}},
		{"4.5mm (US 8)", []string{"4.5", "5.0"}},
		{"5.0 mm (US 8)", []string{"5.0"}},
		{"size 7 needle", []string{"4.5"}},
		// US sizes without a standard metric equivalent vanish.
		{"US 12 needles", nil},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Extract(tt.text).ToolSizes, tt.text)
	}
}

func TestExtractProjectTypes(t *testing.T) {
	draft := Extract("Make a cardigan for fall. This blanket is worked flat. A lovely sweater pattern.")
	assert.ElementsMatch(t, []string{"Cardigan", "Blanket", "Sweater"}, draft.ProjectTypes)

	assert.Empty(t, Extract("make a widget for your desk").ProjectTypes)
}

func TestExtractYarnBrandsPrefersMaterialsSection(t *testing.T) {
	text := `Prose naming Red Heart long before the actual list.

Materials:
Lion Brand Wool-Ease, two skeins
5.0 mm hook`
	brands := Extract(text).YarnBrands
	assert.Contains(t, brands, "Lion Brand")
	assert.Contains(t, brands, "Wool-Ease")
	assert.NotContains(t, brands, "Red Heart")
}

func TestExtractYarnBrandsCanonicalizesVariants(t *testing.T) {
	brands := Extract("Materials: Caron Simply Soft, one skein").YarnBrands
	// Simply Soft and Caron both resolve to Caron and dedupe by canonical.
	assert.Equal(t, []string{"Caron"}, brands)
}

func TestExtractTags(t *testing.T) {
	draft := Extract("a seamless top-down design with cables")
	assert.ElementsMatch(t, []string{"cables", "seamless", "top-down"}, draft.Tags)
}

func TestExtractSource(t *testing.T) {
	assert.Equal(t, "https://example.com/p/1",
		Extract("get it at https://example.com/p/1 today").PatSource)
	assert.Equal(t, "", Extract("no links here").PatSource)
}

func TestDedupeKeepsFirstOccurrenceOrder(t *testing.T) {
	assert.Equal(t, []string{"b", "a", "c"}, dedupe([]string{"b", "a", "b", "c", "a"}))
	assert.Nil(t, dedupe(nil))
}
