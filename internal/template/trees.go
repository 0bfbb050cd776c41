// internal/template/trees.go
package template

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/Justine-AH/master-of-command-save-editor/pkg/core"
)

// loadTrees decodes UpgradeTrees.json keeping the trees in file order.
// Order matters: a unit listed in more than one tree belongs to the first
// tree that mentions it.
func loadTrees(path string) ([]core.UpgradeTree, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Table: TableUpgradeTrees, Path: path, Err: err}
	}
	defer f.Close()

	dec := json.NewDecoder(f)

	tok, err := dec.Token()
	if err != nil {
		return nil, &LoadError{Table: TableUpgradeTrees, Path: path, Err: err}
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, &LoadError{Table: TableUpgradeTrees, Path: path, Err: fmt.Errorf("expected top-level object, got %v", tok)}
	}

	var trees []core.UpgradeTree
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, &LoadError{Table: TableUpgradeTrees, Path: path, Err: err}
		}
		name, ok := keyTok.(string)
		if !ok {
			return nil, &LoadError{Table: TableUpgradeTrees, Path: path, Err: fmt.Errorf("expected tree name, got %v", keyTok)}
		}

		var body struct {
			Items map[string]core.UpgradeItem `json:"Items"`
		}
		if err := dec.Decode(&body); err != nil {
			return nil, &LoadError{Table: TableUpgradeTrees, Path: path, Err: fmt.Errorf("tree %q: %w", name, err)}
		}
		if body.Items == nil {
			body.Items = map[string]core.UpgradeItem{}
		}
		trees = append(trees, core.UpgradeTree{Name: name, Items: body.Items})
	}

	if trees == nil {
		trees = []core.UpgradeTree{}
	}
	return trees, nil
}
