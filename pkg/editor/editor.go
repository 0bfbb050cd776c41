// pkg/editor/editor.go

// Package editor is the collaborator facade a UI layer talks to. It owns the
// loaded save document, the template store, per-field change baselines and
// the optional edit-history journal, and applies edits one field at a time.
package editor

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Justine-AH/master-of-command-save-editor/internal/dirty"
	"github.com/Justine-AH/master-of-command-save-editor/internal/history"
	"github.com/Justine-AH/master-of-command-save-editor/internal/regiment"
	"github.com/Justine-AH/master-of-command-save-editor/internal/savefile"
	"github.com/Justine-AH/master-of-command-save-editor/internal/template"
	"github.com/Justine-AH/master-of-command-save-editor/pkg/core"
)

// MaxOfficerSkills is the number of skill slots an officer can hold.
const MaxOfficerSkills = 5

// ErrNoSaveLoaded is returned by edit operations before LoadSave succeeds.
var ErrNoSaveLoaded = errors.New("no save loaded")

// Choice is one entry for a UI selection list.
type Choice struct {
	ID      string
	Display string
}

// Editor applies edits to one loaded save document. Not safe for concurrent
// use; UI layers call it from a single goroutine.
type Editor struct {
	log      *slog.Logger
	store    *template.Store
	journal  *history.Manager
	baseline *dirty.Baseline

	doc      *core.SaveDocument
	savePath string
}

// New wires an editor around a template store and an optional history
// journal. journal may be nil when history is disabled.
func New(log *slog.Logger, journal *history.Manager) *Editor {
	if log == nil {
		log = slog.Default()
	}
	return &Editor{
		log:      log,
		store:    template.New(log),
		journal:  journal,
		baseline: dirty.NewBaseline(),
	}
}

// LoadTemplates loads the reference tables from the game-data root.
func (e *Editor) LoadTemplates(root string) error {
	return e.store.Load(root)
}

// TemplatesReady reports whether every reference table is loaded.
func (e *Editor) TemplatesReady() bool {
	return e.store.Ready()
}

// MissingTemplates returns the names of reference tables not yet loaded.
func (e *Editor) MissingTemplates() []string {
	return e.store.MissingTemplates()
}

// Document returns the loaded save document, or nil before LoadSave.
func (e *Editor) Document() *core.SaveDocument {
	return e.doc
}

// SavePath returns the path the current document was loaded from.
func (e *Editor) SavePath() string {
	return e.savePath
}

// LoadSave reads a save file and snapshots the change baselines.
func (e *Editor) LoadSave(path string) error {
	doc, err := savefile.Load(path)
	if err != nil {
		return err
	}
	e.doc = doc
	e.savePath = path
	e.snapshot()
	e.log.Info("save loaded", "path", path,
		"divisions", len(doc.PlayerSaveData.ArmySaveData.Divisions))
	return nil
}

// WriteSave writes the document atomically, then re-snapshots the baselines
// so nothing reads as dirty against the file on disk.
func (e *Editor) WriteSave(path string) error {
	if e.doc == nil {
		return ErrNoSaveLoaded
	}
	if err := savefile.Write(path, e.doc); err != nil {
		return err
	}
	e.savePath = path
	e.snapshot()
	e.record(path, "", "write", nil)
	e.log.Info("save written", "path", path)
	return nil
}

// SetRegiment edits one division slot. An empty unitID vacates the slot. A
// changed unit type triggers a full synthesis; an unchanged type with a
// changed level updates the veterancy level in place. A clean field is a
// no-op. On synthesis failure the slot is left untouched.
func (e *Editor) SetRegiment(division, slot int, unitID string, level int) error {
	if e.doc == nil {
		return ErrNoSaveLoaded
	}
	divisions := e.doc.PlayerSaveData.ArmySaveData.Divisions
	if division < 0 || division >= len(divisions) {
		return fmt.Errorf("division %d out of range", division)
	}
	if slot < 0 || slot >= core.RegimentsPerDivision {
		return fmt.Errorf("slot %d out of range", slot)
	}

	d := divisions[division]
	current, err := e.applyRegiment(d.Regiments[slot], unitID, level, slot,
		dirty.RegimentTypeField(division, slot),
		dirty.RegimentLevelField(division, slot),
		fmt.Sprintf("division/%d/slot/%d", division, slot))
	if err != nil {
		return err
	}
	d.Regiments[slot] = current
	return nil
}

// SetReserveRegiment edits one reserve-pool entry the same way SetRegiment
// edits a division slot.
func (e *Editor) SetReserveRegiment(index int, unitID string, level int) error {
	if e.doc == nil {
		return ErrNoSaveLoaded
	}
	army := &e.doc.PlayerSaveData.ArmySaveData
	if index < 0 || index >= len(army.ReserveRegiments) {
		return fmt.Errorf("reserve index %d out of range", index)
	}

	current, err := e.applyRegiment(army.ReserveRegiments[index], unitID, level, index,
		dirty.ReserveTypeField(index),
		dirty.ReserveLevelField(index),
		fmt.Sprintf("reserve/%d", index))
	if err != nil {
		return err
	}
	army.ReserveRegiments[index] = current
	return nil
}

// applyRegiment is the shared dirty-check-and-synthesize path for division
// and reserve slots. It returns the slot's new occupant.
func (e *Editor) applyRegiment(existing *core.Regiment, unitID string, level, position int, typeField, levelField dirty.Field, fieldPath string) (*core.Regiment, error) {
	typeDirty := e.baseline.SelectionDirty(typeField, unitID)
	levelDirty := e.baseline.ValueDirty(levelField, level)
	if !typeDirty && !levelDirty {
		return existing, nil
	}

	result := existing
	switch {
	case typeDirty && strings.TrimSpace(unitID) == "":
		result = nil
		e.record(e.savePath, fieldPath+"/type", "delete", nil)
	case typeDirty:
		synthesized, err := regiment.Synthesize(existing, unitID, position, e.store)
		if err != nil {
			return existing, err
		}
		if level > 0 {
			synthesized.CurrentLevel = level
		}
		result = synthesized
		e.record(e.savePath, fieldPath+"/type", "synthesize",
			map[string]any{"unitId": unitID, "level": synthesized.CurrentLevel})
		e.log.Info("regiment synthesized", "field", fieldPath, "unit", unitID)
	case levelDirty:
		if existing == nil {
			return existing, fmt.Errorf("no regiment at %s", fieldPath)
		}
		existing.CurrentLevel = level
		e.record(e.savePath, fieldPath+"/level", "update-level", level)
	}

	e.baseline.SetSelection(typeField, unitID)
	if result != nil {
		e.baseline.SetValue(levelField, result.CurrentLevel)
	} else {
		e.baseline.SetValue(levelField, 0)
	}
	return result, nil
}

// CreateOfficer fills a division's officer slot with the blank template.
// Occupied slots are left alone.
func (e *Editor) CreateOfficer(division int) error {
	d, err := e.division(division)
	if err != nil {
		return err
	}
	if d.OfficerSave != nil {
		return nil
	}
	d.OfficerSave = core.NewOfficer()
	e.snapshotOfficerAt(divisionOfficerFields(division), d.OfficerSave)
	e.record(e.savePath, fmt.Sprintf("division/%d/officer", division), "officer", "create")
	return nil
}

// DeleteOfficer vacates a division's officer slot.
func (e *Editor) DeleteOfficer(division int) error {
	d, err := e.division(division)
	if err != nil {
		return err
	}
	if d.OfficerSave == nil {
		return nil
	}
	d.OfficerSave = nil
	e.snapshotOfficerAt(divisionOfficerFields(division), nil)
	e.record(e.savePath, fmt.Sprintf("division/%d/officer", division), "officer", "delete")
	return nil
}

// CreateReserveOfficer fills one reserve slot with the blank template.
// Passing the current pool length grows the pool by one slot; occupied
// slots are left alone.
func (e *Editor) CreateReserveOfficer(index int) error {
	if e.doc == nil {
		return ErrNoSaveLoaded
	}
	army := &e.doc.PlayerSaveData.ArmySaveData
	if index < 0 || index > len(army.ReserveOfficers) {
		return fmt.Errorf("reserve officer index %d out of range", index)
	}
	if index == len(army.ReserveOfficers) {
		army.ReserveOfficers = append(army.ReserveOfficers, nil)
	}
	if army.ReserveOfficers[index] != nil {
		return nil
	}
	army.ReserveOfficers[index] = core.NewOfficer()
	e.snapshotOfficerAt(reserveOfficerFields(index), army.ReserveOfficers[index])
	e.record(e.savePath, fmt.Sprintf("reserve-officer/%d", index), "officer", "create")
	return nil
}

// DeleteReserveOfficer vacates one reserve slot. Slots are positional in
// the save file, so deletion nulls the entry instead of shifting the pool.
func (e *Editor) DeleteReserveOfficer(index int) error {
	if e.doc == nil {
		return ErrNoSaveLoaded
	}
	army := &e.doc.PlayerSaveData.ArmySaveData
	if index < 0 || index >= len(army.ReserveOfficers) {
		return fmt.Errorf("reserve officer index %d out of range", index)
	}
	if army.ReserveOfficers[index] == nil {
		return nil
	}
	army.ReserveOfficers[index] = nil
	e.snapshotOfficerAt(reserveOfficerFields(index), nil)
	e.record(e.savePath, fmt.Sprintf("reserve-officer/%d", index), "officer", "delete")
	return nil
}

// UpdateOfficer applies level, skill points and the skill list to a
// division's officer. Blank skill entries are dropped; more than five
// non-blank skills is an error. Clean fields are skipped.
func (e *Editor) UpdateOfficer(division, level, points int, skills []string) error {
	d, err := e.division(division)
	if err != nil {
		return err
	}
	if d.OfficerSave == nil {
		return fmt.Errorf("division %d has no officer", division)
	}
	return e.applyOfficer(d.OfficerSave, divisionOfficerFields(division), level, points, skills,
		fmt.Sprintf("division/%d/officer", division))
}

// UpdateReserveOfficer applies level, skill points and the skill list to a
// reserve officer, with the same rules as UpdateOfficer.
func (e *Editor) UpdateReserveOfficer(index, level, points int, skills []string) error {
	if e.doc == nil {
		return ErrNoSaveLoaded
	}
	army := &e.doc.PlayerSaveData.ArmySaveData
	if index < 0 || index >= len(army.ReserveOfficers) {
		return fmt.Errorf("reserve officer index %d out of range", index)
	}
	if army.ReserveOfficers[index] == nil {
		return fmt.Errorf("no reserve officer at index %d", index)
	}
	return e.applyOfficer(army.ReserveOfficers[index], reserveOfficerFields(index), level, points, skills,
		fmt.Sprintf("reserve-officer/%d", index))
}

// applyOfficer is the shared dirty-check-and-apply path for division and
// reserve officers.
func (e *Editor) applyOfficer(officer *core.Officer, fields officerFields, level, points int, skills []string, fieldPath string) error {
	filtered := filterSkills(skills)
	if len(filtered) > MaxOfficerSkills {
		return fmt.Errorf("officer can hold at most %d skills, got %d", MaxOfficerSkills, len(filtered))
	}

	changed := false
	if e.baseline.ValueDirty(fields.level, level) {
		officer.SetLevel(level)
		e.baseline.SetValue(fields.level, level)
		changed = true
	}
	if e.baseline.ValueDirty(fields.points, points) {
		officer.SetSkillPoints(points)
		e.baseline.SetValue(fields.points, points)
		changed = true
	}
	joined := strings.Join(filtered, ",")
	if e.baseline.SelectionDirty(fields.skills, joined) {
		officer.SetSkills(filtered)
		e.baseline.SetSelection(fields.skills, joined)
		changed = true
	}

	if changed {
		e.record(e.savePath, fieldPath, "officer",
			map[string]any{"level": level, "points": points, "skills": filtered})
	}
	return nil
}

// SetResources applies the four player resource values. Clean values are
// skipped so repeated applies do not pile up history rows.
func (e *Editor) SetResources(cash, food, ammo, manpower int) error {
	if e.doc == nil {
		return ErrNoSaveLoaded
	}
	player := &e.doc.PlayerSaveData

	resources := []struct {
		name   string
		target *int
		value  int
	}{
		{"cash", &player.Cash, cash},
		{"food", &player.Food, food},
		{"ammo", &player.Ammo, ammo},
		{"manpower", &player.Manpower, manpower},
	}
	for i, r := range resources {
		field := dirty.Field{Kind: dirty.KindResource, Division: -1, Slot: i}
		if !e.baseline.ValueDirty(field, r.value) {
			continue
		}
		*r.target = r.value
		e.baseline.SetValue(field, r.value)
		e.record(e.savePath, "resources/"+r.name, "resources", r.value)
	}
	return nil
}

// SetDivisionCount grows the division list with blank divisions or truncates
// it. Truncation discards the dropped divisions' regiments and officers.
func (e *Editor) SetDivisionCount(n int) error {
	if e.doc == nil {
		return ErrNoSaveLoaded
	}
	if n < 0 {
		return fmt.Errorf("division count %d out of range", n)
	}

	army := &e.doc.PlayerSaveData.ArmySaveData
	if n == len(army.Divisions) {
		return nil
	}
	for len(army.Divisions) < n {
		army.Divisions = append(army.Divisions, core.NewDivision())
	}
	army.Divisions = army.Divisions[:n]
	e.snapshot()
	e.record(e.savePath, "divisions/count", "resize", n)
	return nil
}

// UnitChoices returns the selectable unit list in template file order, with
// developer and excluded entries filtered out.
func (e *Editor) UnitChoices() []Choice {
	units := e.store.Units()
	choices := make([]Choice, 0, len(units))
	for _, u := range units {
		choices = append(choices, Choice{ID: u.ID, Display: u.Name})
	}
	return choices
}

// SkillChoices returns the selectable officer skills in stable order.
func (e *Editor) SkillChoices() []Choice {
	ids := e.store.SkillIDs()
	skills := e.store.Skills()
	choices := make([]Choice, 0, len(ids))
	for _, id := range ids {
		choices = append(choices, Choice{ID: id, Display: skills[id]})
	}
	return choices
}

// ResolveUnitDisplayName returns a unit's display name, falling back to the
// ID itself.
func (e *Editor) ResolveUnitDisplayName(id string) string {
	return e.store.ResolveUnitName(id, id)
}

// ResolveSkillDisplayName returns a skill's display text, falling back to
// the ID itself.
func (e *Editor) ResolveSkillDisplayName(id string) string {
	return e.store.ResolveSkillName(id, id)
}

func (e *Editor) division(index int) (*core.Division, error) {
	if e.doc == nil {
		return nil, ErrNoSaveLoaded
	}
	divisions := e.doc.PlayerSaveData.ArmySaveData.Divisions
	if index < 0 || index >= len(divisions) {
		return nil, fmt.Errorf("division %d out of range", index)
	}
	return divisions[index], nil
}

// officerFields addresses the three editable fields of one officer slot.
type officerFields struct {
	level  dirty.Field
	points dirty.Field
	skills dirty.Field
}

func divisionOfficerFields(division int) officerFields {
	return officerFields{
		level:  dirty.Field{Kind: dirty.KindOfficerLevel, Division: division, Slot: -1},
		points: dirty.Field{Kind: dirty.KindOfficerPoints, Division: division, Slot: -1},
		skills: dirty.Field{Kind: dirty.KindOfficerSkills, Division: division, Slot: -1},
	}
}

func reserveOfficerFields(index int) officerFields {
	return officerFields{
		level:  dirty.Field{Kind: dirty.KindOfficerLevel, Division: -1, Slot: index},
		points: dirty.Field{Kind: dirty.KindOfficerPoints, Division: -1, Slot: index},
		skills: dirty.Field{Kind: dirty.KindOfficerSkills, Division: -1, Slot: index},
	}
}

// snapshot rebuilds every baseline from the current document.
func (e *Editor) snapshot() {
	e.baseline.Reset()
	if e.doc == nil {
		return
	}
	player := &e.doc.PlayerSaveData

	for d, division := range player.ArmySaveData.Divisions {
		for s, reg := range division.Regiments {
			e.snapshotRegiment(dirty.RegimentTypeField(d, s), dirty.RegimentLevelField(d, s), reg)
		}
		e.snapshotOfficerAt(divisionOfficerFields(d), division.OfficerSave)
	}
	for i, reg := range player.ArmySaveData.ReserveRegiments {
		e.snapshotRegiment(dirty.ReserveTypeField(i), dirty.ReserveLevelField(i), reg)
	}
	for i, officer := range player.ArmySaveData.ReserveOfficers {
		e.snapshotOfficerAt(reserveOfficerFields(i), officer)
	}

	for i, value := range []int{player.Cash, player.Food, player.Ammo, player.Manpower} {
		e.baseline.SetValue(dirty.Field{Kind: dirty.KindResource, Division: -1, Slot: i}, value)
	}
}

func (e *Editor) snapshotRegiment(typeField, levelField dirty.Field, reg *core.Regiment) {
	if reg == nil {
		e.baseline.SetSelection(typeField, "")
		e.baseline.SetValue(levelField, 0)
		return
	}
	e.baseline.SetSelection(typeField, reg.UnitID)
	e.baseline.SetValue(levelField, reg.CurrentLevel)
}

func (e *Editor) snapshotOfficerAt(fields officerFields, officer *core.Officer) {
	if officer == nil {
		e.baseline.SetValue(fields.level, 0)
		e.baseline.SetValue(fields.points, 0)
		e.baseline.SetSelection(fields.skills, "")
		return
	}
	e.baseline.SetValue(fields.level, officer.Level)
	e.baseline.SetValue(fields.points, officer.SkillPointsAvailable)
	e.baseline.SetSelection(fields.skills, strings.Join(officer.SkillSaves, ","))
}

func (e *Editor) record(savePath, field, action string, payload any) {
	if e.journal == nil {
		return
	}
	e.journal.Record(savePath, field, action, payload)
}

func filterSkills(skills []string) []string {
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		if strings.TrimSpace(s) == "" {
			continue
		}
		out = append(out, s)
	}
	return out
}
