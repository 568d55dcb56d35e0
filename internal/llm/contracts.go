package llm

import "context"

// PatternFields is the normalized shape we expect from the vision model.
// Key matching is case-insensitive on decode.
type PatternFields struct {
	Name         string   `json:"name"`
	Designer     string   `json:"designer"`
	CraftType    string   `json:"craftType"`
	Difficulty   *int     `json:"difficulty"`
	PatSource    string   `json:"patSource"`
	YarnWeights  []string `json:"yarnWeights"`
	ToolSizes    []string `json:"toolSizes"`
	ProjectTypes []string `json:"projectTypes"`
	YarnBrands   []string `json:"yarnBrands"`
	Tags         []string `json:"tags"`
}

// VisionClient is the narrow capability the enhancer depends on: send a
// prompt plus base64 JPEG pages, get the model's raw text back. Tests
// substitute a double returning canned JSON.
type VisionClient interface {
	Generate(ctx context.Context, prompt string, images []string) (string, error)
}
