package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalCraft(t *testing.T) {
	assert.Equal(t, "Knitting", CanonicalCraft("knit"))
	assert.Equal(t, "Knitting", CanonicalCraft("knitting"))
	assert.Equal(t, "Crochet", CanonicalCraft("crochet"))
	assert.Equal(t, "Crocheted", CanonicalCraft("Crocheted"))
	assert.Equal(t, "Weaving", CanonicalCraft("weaving"))
	assert.Equal(t, "Embroidery", CanonicalCraft("embroidery"))
	assert.Equal(t, "Cross stitch", CanonicalCraft("cross stitch"))
	assert.Equal(t, "", CanonicalCraft("  "))
}

func TestCanonicalProjectType(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"sweater", "Sweater", true},
		{"Jumper", "Sweater", true},
		{"AMIGURUMI", "Toy", true},
		{" beanie ", "Hat", true},
		{"widget", "", false},
	}
	for _, tt := range tests {
		got, ok := CanonicalProjectType(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestUSToMetric(t *testing.T) {
	assert.Equal(t, "5.0", USToMetric[8])
	assert.Equal(t, "4.0", USToMetric[6])
	_, ok := USToMetric[12]
	assert.False(t, ok)
}

func TestNormalizeExt(t *testing.T) {
	assert.Equal(t, "pdf", NormalizeExt(".PDF"))
	assert.Equal(t, "pdf", NormalizeExt("pdf"))
	assert.Equal(t, "", NormalizeExt("."))
}

func TestDifficultyRuleOrdering(t *testing.T) {
	// The slice order is the collision policy; beginner must come first.
	assert.Equal(t, "beginner", DifficultyRules[0].Keyword)
	assert.Equal(t, 1, DifficultyRules[0].Level)
	last := DifficultyRules[len(DifficultyRules)-1]
	assert.Equal(t, "expert", last.Keyword)
	assert.Equal(t, 4, last.Level)
}

func TestBrandVariantsResolveBeforeParentBrand(t *testing.T) {
	// "Simply Soft" must canonicalize to Caron ahead of the bare "Caron"
	// entry so sub-brand spellings map to the house brand exactly once.
	var simplySoft, caron int
	for i, v := range BrandVariants {
		switch v.Variant {
		case "Simply Soft":
			simplySoft = i
			assert.Equal(t, "Caron", v.Canonical)
		case "Caron":
			caron = i
		}
	}
	assert.Less(t, simplySoft, caron)
}
