package constants

import "strings"

// projectTypeMap canonicalizes a candidate word captured from context
// regexes into a project category. Unmapped candidates are discarded.
var projectTypeMap = map[string]string{
	"sweater":   "Sweater",
	"pullover":  "Sweater",
	"jumper":    "Sweater",
	"cardigan":  "Cardigan",
	"cardi":     "Cardigan",
	"hat":       "Hat",
	"beanie":    "Hat",
	"cap":       "Hat",
	"scarf":     "Scarf",
	"wrap":      "Scarf",
	"blanket":   "Blanket",
	"throw":     "Blanket",
	"afghan":    "Blanket",
	"socks":     "Socks",
	"sock":      "Socks",
	"mittens":   "Mittens",
	"mitts":     "Mittens",
	"gloves":    "Gloves",
	"shawl":     "Shawl",
	"cowl":      "Cowl",
	"toy":       "Toy",
	"amigurumi": "Toy",
	"doll":      "Toy",
	"bag":       "Bag",
	"purse":     "Bag",
	"tote":      "Bag",
}

// CanonicalProjectType resolves a candidate to its category.
func CanonicalProjectType(candidate string) (string, bool) {
	t, ok := projectTypeMap[strings.ToLower(strings.TrimSpace(candidate))]
	return t, ok
}
