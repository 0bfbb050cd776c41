// pkg/core/regiment.go
package core

// FlagSave is the synthesized flag written into a regiment record.
// "Patternkey" (lowercase k) matches the game's save format exactly.
type FlagSave struct {
	EmblemKey         string `json:"EmblemKey"`
	PrimaryColor      string `json:"PrimaryColor"`
	PatternKey        string `json:"Patternkey"`
	SecondaryColor    string `json:"SecondaryColor"`
	SecondaryDyeColor string `json:"SecondaryDyeColor"`
	PrimaryDyeColor   string `json:"PrimaryDyeColor"`
}

// StatsTracker accumulates kill and loss counters for a regiment or officer.
type StatsTracker struct {
	Kills  int `json:"Kills"`
	Losses int `json:"Losses"`
}

// Regiment is one deployable unit slot within a division or the reserve pool.
type Regiment struct {
	UnitID                string       `json:"UnitID"`
	Name                  string       `json:"Name"`
	CurrentLevel          int          `json:"CurrentLevel"`
	TargetManpower        int          `json:"TargetManpower"`
	Manpower              int          `json:"Manpower"`
	MaxManpower           int          `json:"MaxManpower"`
	MeleeAttribute        float64      `json:"MeleeAttribute"`
	AccuracyAttribute     float64      `json:"AccuracyAttribute"`
	ReloadAttribute       float64      `json:"ReloadAttribute"`
	MoraleAttribute       float64      `json:"MoraleAttribute"`
	FatigueAttribute      float64      `json:"FatigueAttribute"`
	ChargeBonusAttribute  int          `json:"ChargeBonusAttribute"`
	WalkSpeed             int          `json:"WalkSpeed"`
	RunSpeed              int          `json:"RunSpeed"`
	PreviousUnlockedUnits []string     `json:"PreviousUnlockedUnits"`
	BustData              BustNode     `json:"BustData"`
	FlagSave              *FlagSave    `json:"FlagSave"`
	UpgradeTreeID         string       `json:"UpgradeTreeID"`
	Supply                int          `json:"Supply"`
	DivisionPosition      int          `json:"DivisionPosition"`
	Inventory             []string     `json:"Inventory"`
	StatsTracker          StatsTracker `json:"StatsTracker"`
}

// NewBlankRegiment returns the scaffolding every regiment record carries
// before unit-derived values are applied: level 1, empty inventory, zeroed
// stat tracker.
func NewBlankRegiment() *Regiment {
	return &Regiment{
		CurrentLevel:          1,
		PreviousUnlockedUnits: []string{},
		Inventory:             []string{},
	}
}
