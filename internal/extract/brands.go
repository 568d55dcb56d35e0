package extract

import (
	"regexp"
	"strings"

	"github.com/craftlog/pattern-tracker/constants"
)

// brandContextPatterns capture phrases where a brand name precedes or
// follows yarn wording; captures are re-checked against the variant table.
var brandContextPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:using|with|in)\s+([A-Za-z\s&']+)\s+(?:yarn|in)`),
	regexp.MustCompile(`(?i)([A-Za-z\s&']+)\s+(?:yarn|worsted|dk|aran|chunky|sport)`),
	regexp.MustCompile(`(?i)materials?:\s*([A-Za-z\s&',]+)`),
	regexp.MustCompile(`(?i)yarn:\s*([A-Za-z\s&',]+)`),
}

// extractYarnBrands prefers a materials section when one exists, widening
// to the full text otherwise, and unions direct variant hits with hits
// inside the context-regex captures. Dedup is by canonical brand name.
func extractYarnBrands(text string) []string {
	searchText := materialsSection(text)
	if searchText == "" {
		searchText = text
	}

	var brands []string
	add := func(canonical string) {
		for _, b := range brands {
			if b == canonical {
				return
			}
		}
		brands = append(brands, canonical)
	}

	for _, v := range constants.BrandVariants {
		if containsFold(searchText, v.Variant) {
			add(v.Canonical)
		}
	}

	for _, re := range brandContextPatterns {
		for _, m := range re.FindAllStringSubmatch(searchText, -1) {
			candidate := strings.TrimSpace(m[1])
			for _, v := range constants.BrandVariants {
				if containsFold(candidate, v.Variant) {
					add(v.Canonical)
				}
			}
		}
	}
	return brands
}

// materialsSection returns a window of lines starting at the first line
// that names a materials block, or "" when none is found.
func materialsSection(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lower := strings.ToLower(line)
		for _, header := range constants.MaterialsSectionHeaders {
			if strings.Contains(lower, header) {
				end := i + constants.MaterialsSectionLines
				if end > len(lines) {
					end = len(lines)
				}
				return strings.Join(lines[i:end], " ")
			}
		}
	}
	return ""
}
