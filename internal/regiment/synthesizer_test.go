// internal/regiment/synthesizer_test.go
package regiment

import (
	"testing"

	"github.com/Justine-AH/master-of-command-save-editor/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStore satisfies TemplateSource with fixed tables.
type fakeStore struct {
	units map[string]*core.UnitTemplate
	flags map[string]core.FlagTemplateSet
	busts map[string]core.BustNode
	trees []core.UpgradeTree
	ready bool
}

var _ TemplateSource = (*fakeStore)(nil)

func (f *fakeStore) Ready() bool { return f.ready }
func (f *fakeStore) MissingTemplates() []string {
	if f.ready {
		return nil
	}
	return []string{"units", "flags"}
}
func (f *fakeStore) Unit(id string) (*core.UnitTemplate, bool) {
	u, ok := f.units[id]
	return u, ok
}
func (f *fakeStore) Flag(name string) (core.FlagTemplateSet, bool) {
	fl, ok := f.flags[name]
	return fl, ok
}
func (f *fakeStore) Bust(unitID string) (core.BustNode, bool) {
	b, ok := f.busts[unitID]
	if !ok {
		return nil, false
	}
	return b.DeepCopy(), true
}
func (f *fakeStore) UpgradeTrees() []core.UpgradeTree { return f.trees }

func newFakeStore() *fakeStore {
	return &fakeStore{
		ready: true,
		units: map[string]*core.UnitTemplate{
			"line_infantry_01": {
				ID:           "line_infantry_01",
				RawUnitType:  "LINE_INFANTRY",
				Name:         "Line Infantry",
				FlagTemplate: "standard",
				BaseStats: core.BaseStats{
					MeleeSkill:   25,
					RangedSkill:  30,
					ReloadSkill:  20,
					Morale:       50,
					FatigueSkill: 40,
					ChargeBonus:  3.7,
					WalkSpeed:    1.9,
					SprintSpeed:  4.2,
				},
				MaxManpower: 500,
			},
			"hussar_01": {
				ID:           "hussar_01",
				RawUnitType:  "LIGHT_CAVALRY",
				Name:         "Hussars",
				FlagTemplate: "standard",
				BaseStats:    core.BaseStats{ChargeBonus: 12},
				MaxManpower:  250,
			},
		},
		flags: map[string]core.FlagTemplateSet{
			"standard": {
				PrimaryColors:   []string{"FF0000", "0000FF"},
				SecondaryColors: []string{"FFFFFF"},
				Patterns:        []string{"stripes", "plain"},
				Emblems:         []string{"eagle"},
			},
		},
		busts: map[string]core.BustNode{
			"line_infantry_01": {
				"Hat": map[string]any{
					"HatColorData": map[string]any{"PrimaryColors": []any{}},
					"Items":        []any{"tricorne", "shako"},
				},
			},
			"hussar_01": {"Shirt": map[string]any{"Items": []any{"dolman"}}},
		},
		trees: []core.UpgradeTree{
			{Name: "InfantryTree", Items: map[string]core.UpgradeItem{
				"recruit_01":       {},
				"line_infantry_01": {Prerequisite: []string{"recruit_01"}},
			}},
			{Name: "CavalryTree", Items: map[string]core.UpgradeItem{
				"hussar_01": {},
			}},
		},
	}
}

func TestSynthesize_IntoEmptySlot(t *testing.T) {
	store := newFakeStore()

	reg, err := Synthesize(nil, "line_infantry_01", 2, store)
	require.NoError(t, err)

	assert.Equal(t, "line_infantry_01", reg.UnitID)
	assert.Equal(t, "Line Infantry", reg.Name)
	assert.Equal(t, 2, reg.DivisionPosition)

	// Manpower triple-set resets any accumulated losses.
	assert.Equal(t, 500, reg.TargetManpower)
	assert.Equal(t, 500, reg.Manpower)
	assert.Equal(t, 500, reg.MaxManpower)

	// Supply = floor(500/100) * 10 for infantry.
	assert.Equal(t, 50, reg.Supply)

	assert.Equal(t, 25.0, reg.MeleeAttribute)
	assert.Equal(t, 30.0, reg.AccuracyAttribute)
	assert.Equal(t, 20.0, reg.ReloadAttribute)
	assert.Equal(t, 50.0, reg.MoraleAttribute)
	assert.Equal(t, 40.0, reg.FatigueAttribute)

	// Charge bonus and speeds truncate to integers.
	assert.Equal(t, 3, reg.ChargeBonusAttribute)
	assert.Equal(t, 1, reg.WalkSpeed)
	assert.Equal(t, 4, reg.RunSpeed)

	assert.Equal(t, "InfantryTree", reg.UpgradeTreeID)
	assert.Equal(t, []string{"recruit_01"}, reg.PreviousUnlockedUnits)

	// Blank scaffolding defaults.
	assert.Equal(t, 1, reg.CurrentLevel)
	assert.NotNil(t, reg.Inventory)
}

func TestSynthesize_FlagSampling(t *testing.T) {
	store := newFakeStore()

	reg, err := Synthesize(nil, "line_infantry_01", 0, store)
	require.NoError(t, err)

	flag := reg.FlagSave
	require.NotNil(t, flag)
	assert.Contains(t, []string{"FF0000", "0000FF"}, flag.PrimaryColor)
	assert.Equal(t, "FFFFFF", flag.SecondaryColor)
	assert.Contains(t, []string{"stripes", "plain"}, flag.PatternKey)
	assert.Equal(t, "eagle", flag.EmblemKey)
	assert.Equal(t, "00FFFF", flag.SecondaryDyeColor)
	assert.Equal(t, flag.PrimaryColor, flag.PrimaryDyeColor)
}

func TestSynthesize_BustSanitized(t *testing.T) {
	store := newFakeStore()

	reg, err := Synthesize(nil, "line_infantry_01", 0, store)
	require.NoError(t, err)

	hat := reg.BustData["Hat"].(map[string]any)
	colors := hat["HatColorData"].(map[string]any)["PrimaryColors"].([]any)
	require.Len(t, colors, 1)
	assert.Equal(t, core.PlaceholderColor(), colors[0])
	assert.Len(t, hat["Items"].([]any), 1)

	// The store's own copy stays intact.
	raw := store.busts["line_infantry_01"]["Hat"].(map[string]any)
	assert.Len(t, raw["Items"].([]any), 2)
}

func TestSynthesize_TypeChangeKeepsVeterancy(t *testing.T) {
	store := newFakeStore()
	existing := &core.Regiment{
		UnitID:       "line_infantry_01",
		CurrentLevel: 3,
		Manpower:     120, // losses accumulated
	}

	reg, err := Synthesize(existing, "hussar_01", 1, store)
	require.NoError(t, err)

	assert.Equal(t, "hussar_01", reg.UnitID)
	assert.Equal(t, 3, reg.CurrentLevel, "veterancy carries over on type change")
	assert.Equal(t, 250, reg.Manpower, "losses are reset to the new unit's maximum")
	assert.Equal(t, "CavalryTree", reg.UpgradeTreeID)
	assert.Empty(t, reg.PreviousUnlockedUnits)

	// Cavalry supply: floor(250/100) * 15.
	assert.Equal(t, 30, reg.Supply)

	// The original record is untouched.
	assert.Equal(t, "line_infantry_01", existing.UnitID)
	assert.Equal(t, 120, existing.Manpower)
}

func TestSynthesize_DeterministicExceptCosmetics(t *testing.T) {
	store := newFakeStore()

	first, err := Synthesize(nil, "line_infantry_01", 2, store)
	require.NoError(t, err)
	second, err := Synthesize(nil, "line_infantry_01", 2, store)
	require.NoError(t, err)

	// Cosmetic fields may differ; everything derived is deterministic.
	second.FlagSave = first.FlagSave
	second.BustData = first.BustData
	assert.Equal(t, first, second)
}

func TestSynthesize_NotReady(t *testing.T) {
	store := newFakeStore()
	store.ready = false

	reg, err := Synthesize(nil, "line_infantry_01", 0, store)
	assert.Nil(t, reg)

	var notReady *NotReadyError
	require.ErrorAs(t, err, &notReady)
	assert.Equal(t, []string{"units", "flags"}, notReady.Missing)
}

func TestSynthesize_UnknownUnit(t *testing.T) {
	store := newFakeStore()
	existing := &core.Regiment{UnitID: "line_infantry_01", Manpower: 77}

	reg, err := Synthesize(existing, "no_such_unit", 0, store)
	assert.Nil(t, reg)

	var unknown *UnknownUnitError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "no_such_unit", unknown.UnitID)

	// Aborted before any mutation.
	assert.Equal(t, 77, existing.Manpower)
}

func TestSynthesize_EmptyFlagListFails(t *testing.T) {
	store := newFakeStore()
	set := store.flags["standard"]
	set.Patterns = nil
	store.flags["standard"] = set

	_, err := Synthesize(nil, "line_infantry_01", 0, store)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Patterns")
}

func TestSynthesize_MissingBustFails(t *testing.T) {
	store := newFakeStore()
	delete(store.busts, "line_infantry_01")

	_, err := Synthesize(nil, "line_infantry_01", 0, store)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bust")
}
