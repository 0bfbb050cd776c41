// pkg/core/template.go
package core

// BaseStats holds the combat statistics shipped with a unit template.
type BaseStats struct {
	MeleeSkill   float64 `json:"MeleeSkill"`
	RangedSkill  float64 `json:"RangedSkill"`
	ReloadSkill  float64 `json:"ReloadSkill"`
	Morale       float64 `json:"Morale"`
	FatigueSkill float64 `json:"FatigueSkill"`
	ChargeBonus  float64 `json:"ChargeBonus"`
	WalkSpeed    float64 `json:"WalkSpeed"`
	SprintSpeed  float64 `json:"SprintSpeed"`
}

// UnitTemplate describes one recruitable unit type from Template_Units.json.
// Name starts out as a localization key and is resolved to display text when
// the template store loads.
type UnitTemplate struct {
	ID           string    `json:"ID"`
	RawUnitType  string    `json:"RawUnitType"`
	Name         string    `json:"Name"`
	FlagTemplate string    `json:"FlagTemplate"`
	BaseStats    BaseStats `json:"BaseStats"`
	MaxManpower  int       `json:"MaxManpower"`
}

// FlagTemplateSet is a named bundle of cosmetic choices for flag synthesis.
// Every list must be non-empty for synthesis to succeed.
type FlagTemplateSet struct {
	PrimaryColors   []string `json:"PrimaryColors"`
	SecondaryColors []string `json:"SecondaryColors"`
	Patterns        []string `json:"Patterns"`
	Emblems         []string `json:"Emblems"`
}

// UpgradeItem is one entry in an upgrade tree, keyed by unit ID.
// Prerequisite may be null in the game data.
type UpgradeItem struct {
	Prerequisite []string `json:"Prerequisite"`
}

// UpgradeTree is a named prerequisite graph gating unit unlocks.
// Trees keep the order they appear in UpgradeTrees.json — tree ownership for
// units listed in more than one tree is resolved by first match in that order.
type UpgradeTree struct {
	Name  string
	Items map[string]UpgradeItem
}
