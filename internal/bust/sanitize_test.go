// internal/bust/sanitize_test.go
package bust

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/Justine-AH/master-of-command-save-editor/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseBust(t *testing.T, raw string) core.BustNode {
	t.Helper()
	var node core.BustNode
	require.NoError(t, json.Unmarshal([]byte(raw), &node))
	return node
}

func TestSanitize_EmptyColorListGetsPlaceholder(t *testing.T) {
	tree := parseBust(t, `{"Hat": {"HatColorData": {"PrimaryColors": []}}}`)

	Sanitize(tree)

	colors := tree["Hat"].(map[string]any)["HatColorData"].(map[string]any)["PrimaryColors"].([]any)
	require.Len(t, colors, 1)
	assert.Equal(t, core.PlaceholderColor(), colors[0])
}

func TestSanitize_MultiColorListCollapsesToOne(t *testing.T) {
	tree := parseBust(t, `{"Shirt": {"ShirtColorData": {
		"PrimaryColors": [
			{"r": 10, "g": 10, "b": 10, "a": 255},
			{"r": 20, "g": 20, "b": 20, "a": 255},
			{"r": 30, "g": 30, "b": 30, "a": 255}
		],
		"SecondaryColors": [{"r": 1, "g": 2, "b": 3, "a": 255}]
	}}}`)
	original := tree.DeepCopy()

	Sanitize(tree)

	colorData := tree["Shirt"].(map[string]any)["ShirtColorData"].(map[string]any)
	primaries := colorData["PrimaryColors"].([]any)
	require.Len(t, primaries, 1)
	originalPrimaries := original["Shirt"].(map[string]any)["ShirtColorData"].(map[string]any)["PrimaryColors"].([]any)
	assert.Contains(t, originalPrimaries, primaries[0], "kept color comes from the original list")

	secondaries := colorData["SecondaryColors"].([]any)
	require.Len(t, secondaries, 1)
}

func TestSanitize_ItemsListCollapsesToOne(t *testing.T) {
	tree := parseBust(t, `{"Hat": {"Items": ["tricorne", "shako", "bearskin"]}}`)

	Sanitize(tree)

	items := tree["Hat"].(map[string]any)["Items"].([]any)
	require.Len(t, items, 1)
	assert.Contains(t, []any{"tricorne", "shako", "bearskin"}, items[0])
}

func TestSanitize_SingleItemUntouched(t *testing.T) {
	tree := parseBust(t, `{"Boots": {"Items": ["riding_boots"]}}`)

	Sanitize(tree)

	items := tree["Boots"].(map[string]any)["Items"].([]any)
	assert.Equal(t, []any{"riding_boots"}, items)
}

func TestSanitize_UnrecognizedRolesUntouched(t *testing.T) {
	tree := parseBust(t, `{"Hat": {"HatColorData": {"FancyColors": [1, 2, 3]}}}`)

	Sanitize(tree)

	colors := tree["Hat"].(map[string]any)["HatColorData"].(map[string]any)["FancyColors"].([]any)
	assert.Len(t, colors, 3)
}

func TestSanitize_RecursesNestedParts(t *testing.T) {
	tree := parseBust(t, `{"Body": {"Layers": [
		{"Shirt": {"ShirtColorData": {"TertiaryColors": []}, "Items": ["a", "b"]}}
	]}}`)

	Sanitize(tree)

	shirt := tree["Body"].(map[string]any)["Layers"].([]any)[0].(map[string]any)["Shirt"].(map[string]any)
	colors := shirt["ShirtColorData"].(map[string]any)["TertiaryColors"].([]any)
	require.Len(t, colors, 1)
	assert.Equal(t, core.PlaceholderColor(), colors[0])
	assert.Len(t, shirt["Items"].([]any), 1)
}

func TestSanitize_Idempotent(t *testing.T) {
	tree := parseBust(t, `{"Hat": {
		"HatColorData": {
			"PrimaryColors": [{"r": 1, "g": 1, "b": 1, "a": 255}, {"r": 2, "g": 2, "b": 2, "a": 255}],
			"QuaternaryColors": []
		},
		"Items": ["x", "y"]
	}}`)

	Sanitize(tree)
	after := tree.DeepCopy()
	Sanitize(tree)

	assert.Equal(t, after, tree, "second pass over length-1 lists changes nothing")
}

// All color-role lists end up length 1 and all Items lists length <= 1,
// whatever the input shape.
func TestSanitize_PostConditions(t *testing.T) {
	tree := parseBust(t, `{
		"Hat": {"HatColorData": {"PrimaryColors": [], "SecondaryColors": [{"r":0,"g":0,"b":0,"a":0}]}, "Items": ["a","b","c"]},
		"Shirt": {"ShirtColorData": {"TertiaryColors": [{"r":9,"g":9,"b":9,"a":9},{"r":8,"g":8,"b":8,"a":8}]}},
		"Boots": {"Items": []}
	}`)

	Sanitize(tree)
	assertSanitized(t, map[string]any(tree))
}

func assertSanitized(t *testing.T, v any) {
	t.Helper()
	node, ok := v.(map[string]any)
	if !ok {
		return
	}
	for key, value := range node {
		if m, ok := value.(map[string]any); ok {
			if strings.HasSuffix(key, "ColorData") {
				for _, role := range core.ColorRoles {
					if list, ok := m[role].([]any); ok {
						assert.Len(t, list, 1, "role %s under %s", role, key)
					}
				}
			}
			assertSanitized(t, m)
		}
		if list, ok := value.([]any); ok {
			if key == "Items" {
				assert.LessOrEqual(t, len(list), 1, "Items under %s", key)
			}
			for _, item := range list {
				assertSanitized(t, item)
			}
		}
	}
}
