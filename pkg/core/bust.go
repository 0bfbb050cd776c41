// pkg/core/bust.go
package core

// BustNode is one level of a bust appearance tree. The game ships busts as
// free-form nested JSON keyed by body part (Hat, Shirt, Boots, ...), each part
// optionally carrying a "<Part>ColorData" map and an "Items" equipment list,
// so the tree is kept untyped.
type BustNode map[string]any

// ColorRoles are the color-list keys recognized inside a *ColorData map.
var ColorRoles = []string{
	"PrimaryColors",
	"SecondaryColors",
	"TertiaryColors",
	"QuaternaryColors",
}

// PlaceholderColor returns the RGBA value substituted for an empty color list.
// Empty lists make the game render an ugly default cyan.
func PlaceholderColor() map[string]any {
	return map[string]any{
		"r": float64(45),
		"g": float64(45),
		"b": float64(45),
		"a": float64(255),
	}
}

// DeepCopy returns a fully independent copy of the tree. Template reference
// data is handed out copied so sanitizing a regiment's bust never rewrites
// the store's tables.
func (n BustNode) DeepCopy() BustNode {
	if n == nil {
		return nil
	}
	return deepCopyValue(map[string]any(n)).(map[string]any)
}

func deepCopyValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = deepCopyValue(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = deepCopyValue(val)
		}
		return out
	default:
		return v
	}
}
