package extract

import (
	"regexp"
	"strings"

	"github.com/craftlog/pattern-tracker/constants"
)

// projectContextPatterns capture a candidate project noun from the phrases
// patterns use to describe what they make. Applied per sentence.
var projectContextPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:make|knit|crochet|create|pattern\s+for)\s+(?:a|an)?\s*(\w+)`),
	regexp.MustCompile(`(?i)(\w+)\s+pattern`),
	regexp.MustCompile(`(?i)this\s+(\w+)\s+(?:is|features|uses)`),
	regexp.MustCompile(`(?i)(?:finished|completed)\s+(\w+)\s+(?:measures|will)`),
}

func extractProjectTypes(text string) []string {
	sentences := strings.FieldsFunc(text, func(r rune) bool {
		return r == '.' || r == '\n' || r == '!' || r == '?'
	})

	var types []string
	for _, sentence := range sentences {
		for _, re := range projectContextPatterns {
			for _, m := range re.FindAllStringSubmatch(sentence, -1) {
				if canon, ok := constants.CanonicalProjectType(m[1]); ok {
					types = append(types, canon)
				}
			}
		}
	}
	return dedupe(types)
}
