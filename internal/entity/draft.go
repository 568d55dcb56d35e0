package entity

// PatternDraft is the structured candidate produced by heuristic extraction
// and refined by vision enrichment. Scalar fields hold at most one
// canonicalized value; list fields never contain duplicates.
type PatternDraft struct {
	Name         string   `json:"name,omitempty"`
	Designer     string   `json:"designer,omitempty"`
	CraftType    string   `json:"craftType,omitempty"`
	Difficulty   *int     `json:"difficulty,omitempty"` // 1-4 ordinal
	PatSource    string   `json:"patSource,omitempty"`  // source URL
	YarnWeights  []string `json:"yarnWeights,omitempty"`
	ToolSizes    []string `json:"toolSizes,omitempty"` // millimeter decimals
	ProjectTypes []string `json:"projectTypes,omitempty"`
	YarnBrands   []string `json:"yarnBrands,omitempty"`
	Tags         []string `json:"tags,omitempty"`
}

// IsEmpty reports whether extraction found nothing at all.
func (d *PatternDraft) IsEmpty() bool {
	return d.Name == "" && d.Designer == "" && d.CraftType == "" &&
		d.Difficulty == nil && d.PatSource == "" &&
		len(d.YarnWeights) == 0 && len(d.ToolSizes) == 0 &&
		len(d.ProjectTypes) == 0 && len(d.YarnBrands) == 0 && len(d.Tags) == 0
}
