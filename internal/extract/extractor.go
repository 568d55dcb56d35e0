// Package extract derives a PatternDraft from raw pattern text using fixed
// keyword and regex rule tables. Extraction is pure and never fails:
// absence of evidence yields absent fields.
package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/craftlog/pattern-tracker/constants"
	"github.com/craftlog/pattern-tracker/internal/entity"
)

var (
	reDesignerBy   = regexp.MustCompile(`(?i)(?:by|design(?:ed)?\s+by|author)\s*:?\s*([A-Za-z\s]{2,30})`)
	reDesignerRole = regexp.MustCompile(`(?i)designer\s*:?\s*([A-Za-z\s]{2,30})`)
	reSourceURL    = regexp.MustCompile(`(?i)https?://\S+`)
	reMetricSize   = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*mm`)
	reUSSize       = regexp.MustCompile(`(?i)(?:US|size)\s*(\d+)`)

	difficultyPatterns = compileWordRules()
	weightPatterns     = compileWeightGroups()
)

func compileWordRules() []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(constants.DifficultyRules))
	for i, r := range constants.DifficultyRules {
		out[i] = regexp.MustCompile(`(?i)\b` + r.Keyword + `\b`)
	}
	return out
}

func compileWeightGroups() []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(constants.YarnWeightGroups))
	for i, g := range constants.YarnWeightGroups {
		alts := make([]string, len(g.Keywords))
		for j, kw := range g.Keywords {
			// multi-word keywords tolerate missing space ("superbulky")
			alts[j] = strings.ReplaceAll(regexp.QuoteMeta(kw), ` `, `\s*`)
		}
		out[i] = regexp.MustCompile(`(?i)\b(?:` + strings.Join(alts, "|") + `)\b`)
	}
	return out
}

// Extract runs every field rule against the full document text and returns
// the resulting draft. Rules are independent of each other.
func Extract(fullText string) entity.PatternDraft {
	return entity.PatternDraft{
		Name:         extractTitle(fullText),
		Designer:     extractDesigner(fullText),
		CraftType:    extractCraftType(fullText),
		Difficulty:   extractDifficulty(fullText),
		PatSource:    extractSource(fullText),
		YarnWeights:  extractYarnWeights(fullText),
		ToolSizes:    extractToolSizes(fullText),
		ProjectTypes: extractProjectTypes(fullText),
		YarnBrands:   extractYarnBrands(fullText),
		Tags:         extractTags(fullText),
	}
}

// JoinPages folds per-page text into the single buffer extraction runs on.
func JoinPages(pages []string) string {
	return strings.Join(pages, "\n\n")
}

func extractDesigner(text string) string {
	for _, re := range []*regexp.Regexp{reDesignerBy, reDesignerRole} {
		if m := re.FindStringSubmatch(text); m != nil {
			return firstLine(strings.TrimSpace(m[1]))
		}
	}
	return ""
}

// firstLine cuts a capture at the first line break so a greedy match cannot
// swallow the lines following an author credit.
func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}

func extractCraftType(text string) string {
	lower := strings.ToLower(text)
	for _, craft := range constants.CraftVocabulary {
		if strings.Contains(lower, craft) {
			return constants.CanonicalCraft(craft)
		}
	}
	return ""
}

func extractDifficulty(text string) *int {
	for i, re := range difficultyPatterns {
		if re.MatchString(text) {
			level := constants.DifficultyRules[i].Level
			return &level
		}
	}
	return nil
}

func extractSource(text string) string {
	return reSourceURL.FindString(text)
}

func extractYarnWeights(text string) []string {
	var weights []string
	for i, re := range weightPatterns {
		if re.MatchString(text) {
			weights = append(weights, constants.YarnWeightGroups[i].Code)
		}
	}
	return dedupe(weights)
}

func extractToolSizes(text string) []string {
	var sizes []string
	for _, m := range reMetricSize.FindAllStringSubmatch(text, -1) {
		sizes = append(sizes, m[1])
	}
	for _, m := range reUSSize.FindAllStringSubmatch(text, -1) {
		us, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		if metric, ok := constants.USToMetric[us]; ok {
			sizes = append(sizes, metric)
		}
		// unmapped US sizes are dropped
	}
	return dedupe(sizes)
}

func extractTags(text string) []string {
	lower := strings.ToLower(text)
	var tags []string
	for _, tag := range constants.TagVocabulary {
		if strings.Contains(lower, tag) {
			tags = append(tags, tag)
		}
	}
	return dedupe(tags)
}

// dedupe removes duplicates while keeping first-occurrence order.
func dedupe(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(in))
	out := in[:0]
	for _, v := range in {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
