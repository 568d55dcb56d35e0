package llm

import (
	"encoding/json"
	"strings"

	"github.com/craftlog/pattern-tracker/internal/entity"
)

// ExtractJSONObject carves the first top-level JSON object out of the
// model's free-form response text: first '{' through last '}'. Vision
// models pad their answers with prose despite instructions.
func ExtractJSONObject(response string) ([]byte, bool) {
	start := strings.IndexByte(response, '{')
	end := strings.LastIndexByte(response, '}')
	if start == -1 || end == -1 || end < start {
		return nil, false
	}
	return []byte(response[start : end+1]), true
}

// DecodeFields parses a carved JSON object into PatternFields.
// encoding/json matches keys case-insensitively, which covers models that
// answer with snake_case-ish or capitalized keys.
func DecodeFields(raw []byte) (PatternFields, error) {
	var f PatternFields
	err := json.Unmarshal(raw, &f)
	return f, err
}

// Merge folds enrichment fields into the draft under the fill-gaps-only
// algebra: a scalar is written only when the draft's value is empty and
// the incoming one is not; a non-empty incoming list is unioned onto the
// existing one, existing elements first, new elements appended in arrival
// order, duplicates dropped. Re-applying the same fields is a no-op.
func Merge(d *entity.PatternDraft, in PatternFields) {
	if d.Name == "" && in.Name != "" {
		d.Name = in.Name
	}
	if d.Designer == "" && in.Designer != "" {
		d.Designer = in.Designer
	}
	if d.CraftType == "" && in.CraftType != "" {
		d.CraftType = in.CraftType
	}
	if d.Difficulty == nil && in.Difficulty != nil {
		v := *in.Difficulty
		d.Difficulty = &v
	}
	if d.PatSource == "" && in.PatSource != "" {
		d.PatSource = in.PatSource
	}

	d.YarnWeights = unionInto(d.YarnWeights, in.YarnWeights)
	d.ToolSizes = unionInto(d.ToolSizes, in.ToolSizes)
	d.ProjectTypes = unionInto(d.ProjectTypes, in.ProjectTypes)
	d.YarnBrands = unionInto(d.YarnBrands, in.YarnBrands)
	d.Tags = unionInto(d.Tags, in.Tags)
}

func unionInto(existing, incoming []string) []string {
	if len(incoming) == 0 {
		return existing
	}
	seen := make(map[string]struct{}, len(existing)+len(incoming))
	out := make([]string, 0, len(existing)+len(incoming))
	for _, v := range existing {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	for _, v := range incoming {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
