package llm

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
)

var listKeys = []string{"yarnWeights", "toolSizes", "projectTypes", "yarnBrands", "tags"}

var scalarKeys = []string{"name", "designer", "craftType", "patSource"}

// SanitizeFields normalizes the almost-right JSON small vision models
// produce so the document can still validate and decode: numeric list
// elements become strings ([4] -> ["4"]), a float difficulty is truncated
// to its integer part, string "null"/"NOT FOUND" scalars are dropped, and
// anything of an unusable type is removed rather than failing the whole
// enhancement. Returns the cleaned document and the keys it dropped.
func SanitizeFields(doc []byte) ([]byte, []string, error) {
	var m map[string]any
	if err := json.Unmarshal(doc, &m); err != nil {
		return nil, nil, err
	}

	var dropped []string

	for _, k := range scalarKeys {
		v, ok := lookup(m, k)
		if !ok {
			continue
		}
		switch t := v.(type) {
		case nil:
			delete(m, k)
		case string:
			s := strings.TrimSpace(t)
			if s == "" || strings.EqualFold(s, "null") || strings.EqualFold(s, "not found") {
				delete(m, k)
				dropped = append(dropped, k)
			} else {
				m[k] = s
			}
		default:
			delete(m, k)
			dropped = append(dropped, k)
		}
	}

	if v, ok := lookup(m, "difficulty"); ok {
		switch t := v.(type) {
		case nil:
			delete(m, "difficulty")
		case float64:
			n := int(math.Trunc(t))
			if n >= 1 && n <= 4 {
				m["difficulty"] = n
			} else {
				delete(m, "difficulty")
				dropped = append(dropped, "difficulty")
			}
		case string:
			// "2" happens; "easy" does not survive
			var n int
			if _, err := fmt.Sscanf(strings.TrimSpace(t), "%d", &n); err == nil && n >= 1 && n <= 4 {
				m["difficulty"] = n
			} else {
				delete(m, "difficulty")
				dropped = append(dropped, "difficulty")
			}
		default:
			delete(m, "difficulty")
			dropped = append(dropped, "difficulty")
		}
	}

	for _, k := range listKeys {
		v, ok := lookup(m, k)
		if !ok {
			continue
		}
		arr, isArr := v.([]any)
		if !isArr {
			delete(m, k)
			if v != nil {
				dropped = append(dropped, k)
			}
			continue
		}
		out := make([]string, 0, len(arr))
		for _, el := range arr {
			switch e := el.(type) {
			case string:
				if s := strings.TrimSpace(e); s != "" {
					out = append(out, s)
				}
			case float64:
				if e == math.Trunc(e) {
					out = append(out, fmt.Sprintf("%d", int(e)))
				} else {
					out = append(out, strings.TrimRight(strings.TrimRight(fmt.Sprintf("%f", e), "0"), "."))
				}
			}
		}
		m[k] = out
	}

	b, err := json.Marshal(m)
	if err != nil {
		return nil, nil, err
	}
	return b, dropped, nil
}

// lookup finds a key case-insensitively, renaming it to the canonical
// casing so later passes and the decoder agree.
func lookup(m map[string]any, key string) (any, bool) {
	if v, ok := m[key]; ok {
		return v, true
	}
	for k, v := range m {
		if strings.EqualFold(k, key) {
			delete(m, k)
			m[key] = v
			return v, true
		}
	}
	return nil, false
}
