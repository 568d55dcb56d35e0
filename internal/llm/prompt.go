package llm

import (
	"fmt"
	"strings"

	"github.com/craftlog/pattern-tracker/internal/entity"
)

// BuildReviewPrompt composes the enrichment instruction: the current draft
// value (or NOT FOUND) per field, strict visually-verifiable-only rules,
// and the exact JSON shape the model must answer with.
func BuildReviewPrompt(d entity.PatternDraft) string {
	var b strings.Builder
	b.WriteString("You are reviewing a crochet/knitting pattern. Look at the images carefully. " +
		"ONLY add or correct information that you can CLEARLY SEE in the images. " +
		"DO NOT guess or make up information.\n\n")

	b.WriteString("Current extracted data:\n")
	b.WriteString("Name: " + orNotFound(d.Name) + "\n")
	b.WriteString("Designer: " + orNotFound(d.Designer) + "\n")
	b.WriteString("Craft Type: " + orNotFound(d.CraftType) + "\n")
	if d.Difficulty != nil {
		b.WriteString(fmt.Sprintf("Difficulty: %d\n", *d.Difficulty))
	} else {
		b.WriteString("Difficulty: NOT FOUND\n")
	}
	b.WriteString("Source URL: " + orNotFound(d.PatSource) + "\n")
	b.WriteString("Yarn Weights: " + listOrNotFound(d.YarnWeights) + "\n")
	b.WriteString("Tool Sizes: " + listOrNotFound(d.ToolSizes) + "\n")
	b.WriteString("Project Types: " + listOrNotFound(d.ProjectTypes) + "\n")
	b.WriteString("Yarn Brands: " + listOrNotFound(d.YarnBrands) + "\n")
	b.WriteString("Tags: " + listOrNotFound(d.Tags) + "\n\n")

	b.WriteString("CRITICAL: Only include yarn brands you can actually read in the images. " +
		"If you cannot see any brand names, use an empty array [].\n\n")

	b.WriteString(`Respond ONLY with valid JSON:
{
    "name": "BUTTERFLY TOP",
    "designer": "Mae Crochets",
    "craftType": "Crochet",
    "difficulty": 2,
    "patSource": "https://example.com",
    "yarnWeights": ["4"],
    "toolSizes": ["5.0"],
    "projectTypes": ["Top"],
    "yarnBrands": ["Lion Brand", "Red Heart"],
    "tags": ["seamless", "lace"]
}

If you cannot see information, use null or []. No explanations.`)

	return b.String()
}

func orNotFound(s string) string {
	if strings.TrimSpace(s) == "" {
		return "NOT FOUND"
	}
	return s
}

func listOrNotFound(vals []string) string {
	if len(vals) == 0 {
		return "NOT FOUND"
	}
	return strings.Join(vals, ", ")
}
