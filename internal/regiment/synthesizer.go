// internal/regiment/synthesizer.go

// Package regiment synthesizes complete regiment records from the template
// tables. Changing a regiment's unit type is a full replacement: stats,
// cosmetics, supply cost and prerequisites are all rederived from the target
// unit's templates.
package regiment

import (
	"fmt"
	"math/rand"

	"github.com/Justine-AH/master-of-command-save-editor/internal/bust"
	"github.com/Justine-AH/master-of-command-save-editor/internal/upgrade"
	"github.com/Justine-AH/master-of-command-save-editor/pkg/core"
)

// secondaryDyeColor is always written as this fixed cyan. The game ignores
// sampled secondary dyes; matching its own generator keeps saves consistent.
const secondaryDyeColor = "00FFFF"

// supplyMultipliers maps unit categories to their per-100-manpower supply
// cost.
var supplyMultipliers = map[core.Category]int{
	core.CategoryInfantry:  10,
	core.CategoryCavalry:   15,
	core.CategoryArtillery: 80,
}

// TemplateSource is the slice of the template store synthesis needs.
type TemplateSource interface {
	Ready() bool
	MissingTemplates() []string
	Unit(id string) (*core.UnitTemplate, bool)
	Flag(name string) (core.FlagTemplateSet, bool)
	Bust(unitID string) (core.BustNode, bool)
	UpgradeTrees() []core.UpgradeTree
}

// Synthesize builds a complete regiment record for the target unit type.
// A nil existing regiment starts from the blank scaffolding template;
// otherwise fields not derived from the unit (veterancy level, inventory,
// stat tracker) carry over. The existing record is never mutated — callers
// assign the returned regiment only on success.
func Synthesize(existing *core.Regiment, unitID string, position int, store TemplateSource) (*core.Regiment, error) {
	if !store.Ready() {
		return nil, &NotReadyError{Missing: store.MissingTemplates()}
	}

	unit, ok := store.Unit(unitID)
	if !ok {
		return nil, &UnknownUnitError{UnitID: unitID}
	}

	flag, err := synthesizeFlag(store, unit.FlagTemplate)
	if err != nil {
		return nil, err
	}

	bustTree, ok := store.Bust(unit.ID)
	if !ok {
		return nil, fmt.Errorf("no bust template for unit %q", unit.ID)
	}
	bust.Sanitize(bustTree)

	treeID, prereqs, err := upgrade.Resolve(store.UpgradeTrees(), unitID)
	if err != nil {
		return nil, err
	}

	category, ok := core.CategoryForRawType(unit.RawUnitType)
	if !ok {
		return nil, fmt.Errorf("unit %q has unmapped raw type %q", unit.ID, unit.RawUnitType)
	}
	mult, ok := supplyMultipliers[category]
	if !ok {
		return nil, fmt.Errorf("no supply multiplier for category %s", category)
	}

	var reg core.Regiment
	if existing != nil {
		reg = *existing
	} else {
		reg = *core.NewBlankRegiment()
	}

	reg.TargetManpower = unit.MaxManpower
	reg.Manpower = unit.MaxManpower
	reg.MaxManpower = unit.MaxManpower
	reg.MeleeAttribute = unit.BaseStats.MeleeSkill
	reg.AccuracyAttribute = unit.BaseStats.RangedSkill
	reg.ReloadAttribute = unit.BaseStats.ReloadSkill
	reg.MoraleAttribute = unit.BaseStats.Morale
	reg.FatigueAttribute = unit.BaseStats.FatigueSkill
	reg.ChargeBonusAttribute = int(unit.BaseStats.ChargeBonus)
	reg.WalkSpeed = int(unit.BaseStats.WalkSpeed)
	reg.RunSpeed = int(unit.BaseStats.SprintSpeed)
	reg.PreviousUnlockedUnits = prereqs
	reg.BustData = bustTree
	reg.FlagSave = flag
	reg.Name = unit.Name
	reg.UnitID = unitID
	reg.UpgradeTreeID = treeID
	reg.Supply = (unit.MaxManpower / 100) * mult
	reg.DivisionPosition = position

	countSynthesis(unitID)
	return &reg, nil
}

// synthesizeFlag samples one entry from each cosmetic list. Every list must
// be non-empty; empty lists are a template-data error.
func synthesizeFlag(store TemplateSource, name string) (*core.FlagSave, error) {
	set, ok := store.Flag(name)
	if !ok {
		return nil, fmt.Errorf("no flag template set %q", name)
	}

	primary, err := sampleOne(set.PrimaryColors, name, "PrimaryColors")
	if err != nil {
		return nil, err
	}
	secondary, err := sampleOne(set.SecondaryColors, name, "SecondaryColors")
	if err != nil {
		return nil, err
	}
	pattern, err := sampleOne(set.Patterns, name, "Patterns")
	if err != nil {
		return nil, err
	}
	emblem, err := sampleOne(set.Emblems, name, "Emblems")
	if err != nil {
		return nil, err
	}

	return &core.FlagSave{
		EmblemKey:         emblem,
		PrimaryColor:      primary,
		PatternKey:        pattern,
		SecondaryColor:    secondary,
		SecondaryDyeColor: secondaryDyeColor,
		PrimaryDyeColor:   primary,
	}, nil
}

func sampleOne(list []string, set, field string) (string, error) {
	if len(list) == 0 {
		return "", fmt.Errorf("flag template set %q: empty %s list", set, field)
	}
	return list[rand.Intn(len(list))], nil
}
