package llm

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sanitized(t *testing.T, doc string) map[string]any {
	t.Helper()
	b, _, err := SanitizeFields([]byte(doc))
	require.NoError(t, err)
	var m map[string]any
	require.NoError(t, json.Unmarshal(b, &m))
	return m
}

func TestSanitizeDropsPlaceholderScalars(t *testing.T) {
	m := sanitized(t, `{"name":"NOT FOUND","designer":"null","craftType":"Crochet","patSource":"  "}`)
	assert.NotContains(t, m, "name")
	assert.NotContains(t, m, "designer")
	assert.NotContains(t, m, "patSource")
	assert.Equal(t, "Crochet", m["craftType"])
}

func TestSanitizeTrimsScalars(t *testing.T) {
	m := sanitized(t, `{"name":"  Butterfly Top  "}`)
	assert.Equal(t, "Butterfly Top", m["name"])
}

func TestSanitizeDifficulty(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want any
	}{
		{"integer kept", `{"difficulty":3}`, float64(3)},
		{"float truncated", `{"difficulty":2.7}`, float64(2)},
		{"numeric string parsed", `{"difficulty":"2"}`, float64(2)},
		{"out of range dropped", `{"difficulty":7}`, nil},
		{"word dropped", `{"difficulty":"easy"}`, nil},
		{"null dropped", `{"difficulty":null}`, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := sanitized(t, tt.doc)
			if tt.want == nil {
				assert.NotContains(t, m, "difficulty")
			} else {
				assert.Equal(t, tt.want, m["difficulty"])
			}
		})
	}
}

func TestSanitizeCoercesNumericListElements(t *testing.T) {
	m := sanitized(t, `{"yarnWeights":[4,"5",4.5,"  ",null]}`)
	assert.Equal(t, []any{"4", "5", "4.5"}, m["yarnWeights"])
}

func TestSanitizeDropsNonArrayLists(t *testing.T) {
	b, dropped, err := SanitizeFields([]byte(`{"tags":"easy, quick"}`))
	require.NoError(t, err)
	assert.Contains(t, dropped, "tags")
	var m map[string]any
	require.NoError(t, json.Unmarshal(b, &m))
	assert.NotContains(t, m, "tags")
}

func TestSanitizeRenamesCaseVariantKeys(t *testing.T) {
	m := sanitized(t, `{"YarnBrands":["Caron"],"NAME":"Shawl"}`)
	assert.Equal(t, []any{"Caron"}, m["yarnBrands"])
	assert.Equal(t, "Shawl", m["name"])
}

func TestSanitizeRejectsMalformedJSON(t *testing.T) {
	_, _, err := SanitizeFields([]byte(`{"name":`))
	assert.Error(t, err)
}
