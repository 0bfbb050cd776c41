// internal/upgrade/resolver.go

// Package upgrade resolves a unit's upgrade tree and its transitive
// prerequisite chain from the UpgradeTrees table.
package upgrade

import (
	"fmt"

	"github.com/Justine-AH/master-of-command-save-editor/pkg/core"
)

// CycleError reports a cycle in a tree's prerequisite data. Cyclic
// prerequisites are a template-data error; the resolver fails fast instead
// of recursing forever.
type CycleError struct {
	Tree   string
	UnitID string // the unit revisited while its own chain was being resolved
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("cyclic prerequisite data in tree %q at unit %q", e.Tree, e.UnitID)
}

// Resolve finds the tree owning unitID and its full prerequisite chain.
// Trees are scanned in table order and the first tree containing the unit
// wins. The chain lists each direct prerequisite followed by that
// prerequisite's own chain (depth-first, pre-order); duplicates are kept —
// the game's PreviousUnlockedUnits list expects them.
//
// A unit absent from every tree resolves to ("", nil, nil).
func Resolve(trees []core.UpgradeTree, unitID string) (string, []string, error) {
	for _, tree := range trees {
		if _, ok := tree.Items[unitID]; !ok {
			continue
		}
		chain, err := chainFor(tree, unitID, map[string]bool{unitID: true})
		if err != nil {
			return "", nil, err
		}
		return tree.Name, chain, nil
	}
	return "", nil, nil
}

// chainFor walks the prerequisite lists depth-first. inProgress tracks the
// current recursion path; revisiting a unit on it means the data is cyclic.
func chainFor(tree core.UpgradeTree, unitID string, inProgress map[string]bool) ([]string, error) {
	item, ok := tree.Items[unitID]
	if !ok {
		return nil, nil
	}

	chain := []string{}
	for _, prereq := range item.Prerequisite {
		if inProgress[prereq] {
			return nil, &CycleError{Tree: tree.Name, UnitID: prereq}
		}
		inProgress[prereq] = true
		sub, err := chainFor(tree, prereq, inProgress)
		delete(inProgress, prereq)
		if err != nil {
			return nil, err
		}
		chain = append(chain, prereq)
		chain = append(chain, sub...)
	}
	return chain, nil
}
