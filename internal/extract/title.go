package extract

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/craftlog/pattern-tracker/constants"
)

var (
	reAllCapsRun = regexp.MustCompile(`\b[A-Z][A-Z\s]{7,35}[A-Z]\b`)
	reCraftItem  = regexp.MustCompile(`(?i)\b([A-Z]{3,15})\s+(` + strings.Join(constants.CraftItemNouns, "|") + `)\b`)

	knownTitlePatterns = compileKnownTitles()
)

func compileKnownTitles() []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(constants.KnownTitles))
	for i, t := range constants.KnownTitles {
		words := strings.Fields(t)
		for j, w := range words {
			words[j] = regexp.QuoteMeta(w)
		}
		out[i] = regexp.MustCompile(`(?i)\b` + strings.Join(words, `\s+`) + `\b`)
	}
	return out
}

// extractTitle tries four strategies in priority order; the first hit wins.
func extractTitle(text string) string {
	// 1) ALL-CAPS token runs filtered through the deny/allow lists.
	for _, raw := range reAllCapsRun.FindAllString(text, -1) {
		candidate := strings.TrimSpace(raw)
		if matchesDenylist(candidate) {
			continue
		}
		if hasCraftNoun(candidate) && multiWord(candidate) {
			return candidate
		}
	}

	// 2) Known-title literals.
	for i, re := range knownTitlePatterns {
		if re.MatchString(text) {
			return constants.KnownTitles[i]
		}
	}

	// 3) `<WORD> <craft-noun>` anywhere, normalized to uppercase.
	if m := reCraftItem.FindString(text); m != "" {
		return strings.ToUpper(m)
	}

	// 4) Scan the first 15 plausible lines for an ALL-CAPS or Title Case
	// heading, skipping author credits, URLs and row instructions.
	return titleFromLines(text)
}

func titleFromLines(text string) string {
	var lines []string
	for _, l := range strings.FieldsFunc(text, func(r rune) bool { return r == '\n' || r == '\r' }) {
		l = strings.TrimSpace(l)
		if len(l) > 3 && len(l) < 60 {
			lines = append(lines, l)
		}
	}
	if len(lines) > 15 {
		lines = lines[:15]
	}

	for _, line := range lines {
		lower := strings.ToLower(line)
		if skipTitleLine(lower) {
			continue
		}
		if line == strings.ToUpper(line) && len(line) >= 6 && len(line) <= 40 && multiWord(line) {
			return line
		}
		if isTitleCase(line) && len(line) >= 6 && len(line) <= 40 {
			return line
		}
	}
	return ""
}

func skipTitleLine(lower string) bool {
	for _, p := range constants.TitleLineSkipPrefixes {
		if strings.HasPrefix(lower, p) {
			return true
		}
	}
	for _, m := range constants.TitleLineSkipMarkers {
		if strings.Contains(lower, m) {
			return true
		}
	}
	return false
}

func matchesDenylist(candidate string) bool {
	for _, bad := range constants.TitleDenylist {
		if strings.Contains(candidate, bad) {
			return true
		}
	}
	return false
}

func hasCraftNoun(candidate string) bool {
	lower := strings.ToLower(candidate)
	for _, good := range constants.TitleAllowlist {
		if strings.Contains(lower, good) {
			return true
		}
	}
	return false
}

func multiWord(s string) bool {
	return len(strings.Fields(s)) >= 2
}

func isTitleCase(line string) bool {
	words := strings.Fields(line)
	if len(words) == 0 {
		return false
	}
	for _, w := range words {
		r := []rune(w)[0]
		if !unicode.IsUpper(r) {
			return false
		}
	}
	return true
}
