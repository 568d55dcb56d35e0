package constants

import "strings"

// CraftType is the canonical craft label stored on a pattern.
type CraftType string

const (
	Knitting    CraftType = "Knitting"
	Crochet     CraftType = "Crochet"
	Crocheted   CraftType = "Crocheted"
	Weaving     CraftType = "Weaving"
	Embroidery  CraftType = "Embroidery"
	CrossStitch CraftType = "Cross stitch"
)

// CraftVocabulary lists the craft keywords probed in text, in match order.
// "knit" canonicalizes to Knitting; every other entry Title-Cases itself.
var CraftVocabulary = []string{
	"knitting", "crochet", "knit", "crocheted", "weaving", "embroidery", "cross stitch",
}

// craftLabels resolves each vocabulary word to its stored label. "knit"
// folds into Knitting; "crocheted" stays a distinct label because the
// catalog keeps whichever wording the document used.
var craftLabels = map[string]CraftType{
	"knitting":     Knitting,
	"knit":         Knitting,
	"crochet":      Crochet,
	"crocheted":    Crocheted,
	"weaving":      Weaving,
	"embroidery":   Embroidery,
	"cross stitch": CrossStitch,
}

// CanonicalCraft maps a matched vocabulary word to its stored label.
func CanonicalCraft(word string) string {
	w := strings.ToLower(strings.TrimSpace(word))
	if c, ok := craftLabels[w]; ok {
		return string(c)
	}
	if w == "" {
		return ""
	}
	return strings.ToUpper(w[:1]) + w[1:]
}

// DifficultyRule maps a whole-word keyword to the 1-4 ordinal scale.
type DifficultyRule struct {
	Keyword string
	Level   int
}

// DifficultyRules are checked in slice order and the first match wins.
// "advanced" and "expert" both map to 4; a text containing both "beginner"
// and "expert" resolves to 1 because of the ordering. That collision is a
// documented policy, not an accident.
var DifficultyRules = []DifficultyRule{
	{Keyword: "beginner", Level: 1},
	{Keyword: "easy", Level: 2},
	{Keyword: "intermediate", Level: 3},
	{Keyword: "advanced", Level: 4},
	{Keyword: "expert", Level: 4},
}

// YarnWeightGroup ties a set of weight-name keywords to the standard
// numeric weight code ("0".."7"). Every group that matches contributes.
type YarnWeightGroup struct {
	Keywords []string
	Code     string
}

var YarnWeightGroups = []YarnWeightGroup{
	{Keywords: []string{"lace"}, Code: "0"},
	{Keywords: []string{"fingering", "sock"}, Code: "1"},
	{Keywords: []string{"sport"}, Code: "2"},
	{Keywords: []string{"dk", "light"}, Code: "3"},
	{Keywords: []string{"worsted", "medium"}, Code: "4"},
	{Keywords: []string{"bulky", "chunky"}, Code: "5"},
	{Keywords: []string{"super bulky"}, Code: "6"},
	{Keywords: []string{"jumbo"}, Code: "7"},
}

// TagVocabulary is the fixed set of technique tags probed as substrings.
var TagVocabulary = []string{
	"colorwork", "cables", "lace", "textured", "ribbed", "seamless",
	"top-down", "bottom-up", "in-the-round", "flat", "quick", "easy",
}
