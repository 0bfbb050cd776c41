// internal/bust/sanitize.go

// Package bust repairs the appearance data the game ships with unit
// templates. The game expects exactly one color per role and at most one
// equipment item per slot; template files routinely violate both.
package bust

import (
	"math/rand"
	"strings"

	"github.com/Justine-AH/master-of-command-save-editor/pkg/core"
)

// maxDepth bounds the recursive walk. Real bust trees are a handful of
// levels deep; the guard keeps arbitrary input from recursing forever.
const maxDepth = 64

// Sanitize repairs a bust tree in place and returns it. For every
// "*ColorData" map, each recognized color-role list collapses to exactly one
// entry: the placeholder color when the list is empty, a uniformly random
// pick otherwise. Every "Items" list with more than one entry collapses to a
// single random pick. The transform is lossy and randomized; re-running it
// is idempotent because all lists are already length one.
//
// Callers must pass a copy when the tree aliases template reference data —
// the store's Bust accessor already does.
func Sanitize(tree core.BustNode) core.BustNode {
	walk(map[string]any(tree), 0)
	return tree
}

func walk(v any, depth int) {
	if depth > maxDepth {
		return
	}

	switch node := v.(type) {
	case map[string]any:
		for key, value := range node {
			lower := strings.ToLower(key)
			if strings.HasSuffix(lower, "colordata") {
				if colorData, ok := value.(map[string]any); ok {
					sanitizeColorData(colorData)
				}
			}
			if lower == "items" {
				if items, ok := value.([]any); ok && len(items) > 1 {
					node[key] = []any{items[rand.Intn(len(items))]}
				}
			}
			walk(node[key], depth+1)
		}
	case []any:
		for _, item := range node {
			walk(item, depth+1)
		}
	}
}

func sanitizeColorData(colorData map[string]any) {
	for _, role := range core.ColorRoles {
		value, ok := colorData[role]
		if !ok {
			continue
		}
		colors, ok := value.([]any)
		if !ok {
			continue
		}
		if len(colors) == 0 {
			colorData[role] = []any{core.PlaceholderColor()}
		} else {
			colorData[role] = []any{colors[rand.Intn(len(colors))]}
		}
	}
}
