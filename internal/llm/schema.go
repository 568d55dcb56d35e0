package llm

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// BuildPatternJSONSchema returns a JSON-Schema (draft 2020-12 subset) as a
// generic map for the shape the vision model is asked to produce. Every
// field is optional; the model is told to emit null/[] for anything it
// cannot see, so null is admitted alongside each type. Extra keys are
// tolerated and ignored on decode.
func BuildPatternJSONSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"name":       nullableString(),
			"designer":   nullableString(),
			"craftType":  nullableString(),
			"difficulty": map[string]any{"type": []string{"integer", "null"}, "minimum": 1, "maximum": 4},
			"patSource":  nullableString(),
			"yarnWeights":  stringArray(),
			"toolSizes":    stringArray(),
			"projectTypes": stringArray(),
			"yarnBrands":   stringArray(),
			"tags":         stringArray(),
		},
	}
}

func nullableString() map[string]any {
	return map[string]any{"type": []string{"string", "null"}}
}

func stringArray() map[string]any {
	return map[string]any{
		"type":  []string{"array", "null"},
		"items": map[string]any{"type": "string"},
	}
}

// ValidateJSONAgainstSchema validates "data" against "schemaMap".
func ValidateJSONAgainstSchema(schemaMap map[string]any, data []byte) error {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("schema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("json does not match schema: %w", err)
	}
	return nil
}
