// internal/template/store.go

// Package template loads and indexes the game's reference tables: units,
// upgrade trees, flags, busts, skills, and localization. Loading is
// all-or-nothing per game-directory selection — consumers never observe a
// partially loaded store.
package template

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/Justine-AH/master-of-command-save-editor/pkg/core"
)

// Relative paths under the selected game-data root.
const (
	unitsFile        = "Templates/Template_Units.json"
	treesFile        = "Templates/UpgradeTrees.json"
	flagsFile        = "Templates/FlagTemplates.json"
	bustsDir         = "Templates/Busts"
	questsDir        = "Templates/Quests"
	skillsDir        = "Templates/Skills"
	localizationFile = "Templates/English.json"
)

// Table names reported by MissingTemplates.
const (
	TableUnits        = "units"
	TableUpgradeTrees = "upgrade trees"
	TableFlags        = "flags"
	TableBusts        = "busts"
	TableSkills       = "skills"
	TableLocalization = "localization"
)

// TableNames lists every table the store manages, in load order.
var TableNames = []string{
	TableUnits,
	TableUpgradeTrees,
	TableFlags,
	TableBusts,
	TableSkills,
	TableLocalization,
}

// Unit IDs containing any of these substrings are developer-only entries and
// are omitted from UI-facing enumeration.
var excludedIDSubstrings = []string{"test", "debug", "dummy"}

// Raw unit types never offered for selection. Existing regiments of these
// types stay addressable through Unit.
var excludedRawTypes = map[string]struct{}{
	"SUPPLY_CARAVAN": {},
}

// Store holds the indexed reference tables.
type Store struct {
	log *slog.Logger

	units     map[string]*core.UnitTemplate
	unitOrder []string // file order, for stable enumeration
	trees     []core.UpgradeTree
	flags     map[string]core.FlagTemplateSet
	busts     map[string]core.BustNode
	skills    map[string]string // skill ID -> display text
	loc       map[string]string
}

// New creates an unloaded store.
func New(log *slog.Logger) *Store {
	if log == nil {
		log = slog.Default()
	}
	return &Store{log: log}
}

// Load reads every table from the given game-data root. On any failure the
// store is reset to fully unloaded and a *LoadError is returned.
func (s *Store) Load(root string) error {
	start := time.Now()
	s.reset()

	units, order, err := loadUnits(filepath.Join(root, unitsFile), s.log)
	if err != nil {
		return err
	}
	trees, err := loadTrees(filepath.Join(root, treesFile))
	if err != nil {
		return err
	}
	flags, err := loadFlags(filepath.Join(root, flagsFile))
	if err != nil {
		return err
	}
	busts, err := loadBusts(filepath.Join(root, bustsDir))
	if err != nil {
		return err
	}
	loc, err := loadLocalization(filepath.Join(root, localizationFile))
	if err != nil {
		return err
	}
	skills, err := loadSkills(filepath.Join(root, questsDir), filepath.Join(root, skillsDir), loc)
	if err != nil {
		return err
	}

	// Resolve unit display names up front, fail-soft to the raw key.
	for _, u := range units {
		u.Name = resolve(loc, u.Name, u.Name)
	}

	s.units = units
	s.unitOrder = order
	s.trees = trees
	s.flags = flags
	s.busts = busts
	s.skills = skills
	s.loc = loc

	recordLoadDuration(time.Since(start))
	s.log.Info("templates loaded",
		"root", root,
		"units", len(units),
		"trees", len(trees),
		"flags", len(flags),
		"busts", len(busts),
		"skills", len(skills),
		"duration", time.Since(start))
	return nil
}

func (s *Store) reset() {
	s.units = nil
	s.unitOrder = nil
	s.trees = nil
	s.flags = nil
	s.busts = nil
	s.skills = nil
	s.loc = nil
}

// MissingTemplates returns the names of tables not yet loaded.
func (s *Store) MissingTemplates() []string {
	var missing []string
	if s.units == nil {
		missing = append(missing, TableUnits)
	}
	if s.trees == nil {
		missing = append(missing, TableUpgradeTrees)
	}
	if s.flags == nil {
		missing = append(missing, TableFlags)
	}
	if s.busts == nil {
		missing = append(missing, TableBusts)
	}
	if s.skills == nil {
		missing = append(missing, TableSkills)
	}
	if s.loc == nil {
		missing = append(missing, TableLocalization)
	}
	return missing
}

// Ready reports whether every table is loaded.
func (s *Store) Ready() bool {
	return len(s.MissingTemplates()) == 0
}

// Unit looks up a unit template by ID in the raw table, including entries
// excluded from enumeration.
func (s *Store) Unit(id string) (*core.UnitTemplate, bool) {
	u, ok := s.units[id]
	return u, ok
}

// Units returns the UI-facing unit list in file order, with developer
// entries and excluded raw types filtered out.
func (s *Store) Units() []core.UnitTemplate {
	out := make([]core.UnitTemplate, 0, len(s.unitOrder))
	for _, id := range s.unitOrder {
		u := s.units[id]
		if isExcludedID(u.ID) {
			continue
		}
		if _, excluded := excludedRawTypes[u.RawUnitType]; excluded {
			continue
		}
		out = append(out, *u)
	}
	return out
}

// Flag looks up a flag template set by name.
func (s *Store) Flag(name string) (core.FlagTemplateSet, bool) {
	f, ok := s.flags[name]
	return f, ok
}

// Bust returns a deep copy of the unit's bust tree. Copying here keeps the
// sanitizer's lossy rewrite away from the store's reference data.
func (s *Store) Bust(unitID string) (core.BustNode, bool) {
	b, ok := s.busts[unitID]
	if !ok {
		return nil, false
	}
	return b.DeepCopy(), true
}

// UpgradeTrees returns the upgrade-tree table in file order.
func (s *Store) UpgradeTrees() []core.UpgradeTree {
	return s.trees
}

// Skills returns skill IDs with resolved display text, sorted by ID.
func (s *Store) Skills() map[string]string {
	out := make(map[string]string, len(s.skills))
	for k, v := range s.skills {
		out[k] = v
	}
	return out
}

// SkillIDs returns the skill IDs in sorted order for stable enumeration.
func (s *Store) SkillIDs() []string {
	ids := make([]string, 0, len(s.skills))
	for id := range s.skills {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// ResolveUnitName returns the display name for a unit ID, or fallback when
// the ID is unknown. Never fails.
func (s *Store) ResolveUnitName(id, fallback string) string {
	if u, ok := s.units[id]; ok {
		return u.Name
	}
	return fallback
}

// ResolveSkillName returns the display text for a skill ID, or fallback when
// the ID is unknown. Never fails.
func (s *Store) ResolveSkillName(id, fallback string) string {
	if text, ok := s.skills[id]; ok {
		return text
	}
	return fallback
}

func isExcludedID(id string) bool {
	lower := strings.ToLower(id)
	for _, sub := range excludedIDSubstrings {
		if strings.Contains(lower, sub) {
			return true
		}
	}
	return false
}

func loadUnits(path string, log *slog.Logger) (map[string]*core.UnitTemplate, []string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, &LoadError{Table: TableUnits, Path: path, Err: err}
	}
	var list []core.UnitTemplate
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, nil, &LoadError{Table: TableUnits, Path: path, Err: err}
	}

	units := make(map[string]*core.UnitTemplate, len(list))
	order := make([]string, 0, len(list))
	for i := range list {
		u := &list[i]
		if _, dup := units[u.ID]; dup {
			// Unit IDs are unique per the game data contract; keep the
			// first occurrence if the data breaks it.
			log.Warn("duplicate unit template ID, keeping first", "id", u.ID)
			continue
		}
		units[u.ID] = u
		order = append(order, u.ID)
	}
	return units, order, nil
}

func loadFlags(path string) (map[string]core.FlagTemplateSet, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Table: TableFlags, Path: path, Err: err}
	}
	var wrapper struct {
		FlagTemplates map[string]core.FlagTemplateSet `json:"FlagTemplates"`
	}
	if err := json.Unmarshal(raw, &wrapper); err != nil {
		return nil, &LoadError{Table: TableFlags, Path: path, Err: err}
	}
	if wrapper.FlagTemplates == nil {
		return nil, &LoadError{Table: TableFlags, Path: path, Err: fmt.Errorf("missing FlagTemplates key")}
	}
	return wrapper.FlagTemplates, nil
}

func loadBusts(dir string) (map[string]core.BustNode, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &LoadError{Table: TableBusts, Path: dir, Err: err}
	}

	busts := make(map[string]core.BustNode)
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, &LoadError{Table: TableBusts, Path: path, Err: err}
		}
		var node core.BustNode
		if err := json.Unmarshal(raw, &node); err != nil {
			return nil, &LoadError{Table: TableBusts, Path: path, Err: err}
		}
		stem := strings.TrimSuffix(entry.Name(), ".json")
		busts[stem] = node
	}
	return busts, nil
}
