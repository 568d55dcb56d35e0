package entity

import "time"

// Pattern represents a catalogued pattern for data transfer between layers.
// Lookup values (designer, craft type, lists) are carried by name; the
// repository resolves them to rows with get-or-create semantics.
type Pattern struct {
	ID           int64      `json:"id"`
	Name         string     `json:"name"`
	Designer     string     `json:"designer,omitempty"`
	CraftType    string     `json:"craft_type"`
	Difficulty   *int       `json:"difficulty,omitempty"`
	PatSource    string     `json:"pat_source,omitempty"`
	FilePath     string     `json:"file_path"`
	IsFree       bool       `json:"is_free"`
	IsFavorite   bool       `json:"is_favorite"`
	HaveMade     bool       `json:"have_made"`
	DateAdded    time.Time  `json:"date_added"`
	LastViewed   *time.Time `json:"last_viewed,omitempty"`
	YarnWeights  []string   `json:"yarn_weights,omitempty"`
	ToolSizes    []string   `json:"tool_sizes,omitempty"`
	ProjectTypes []string   `json:"project_types,omitempty"`
	YarnBrands   []string   `json:"yarn_brands,omitempty"`
	Tags         []string   `json:"tags,omitempty"`
}
