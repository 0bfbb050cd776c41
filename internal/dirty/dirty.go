// internal/dirty/dirty.go

// Package dirty tracks per-field baselines so the editor only resynthesizes
// regiments whose bound fields actually changed. Baselines are snapshotted
// once per save load and again after each successful write.
package dirty

// FieldKind names an editable field group.
type FieldKind string

const (
	KindRegimentType  FieldKind = "regiment.type"
	KindRegimentLevel FieldKind = "regiment.level"
	KindReserveType   FieldKind = "reserve.type"
	KindReserveLevel  FieldKind = "reserve.level"
	KindOfficerLevel  FieldKind = "officer.level"
	KindOfficerPoints FieldKind = "officer.points"
	KindOfficerSkills FieldKind = "officer.skills"
	KindResource      FieldKind = "resource"
)

// Field identifies one editable field. Division is -1 for reserve and
// resource fields; Slot is -1 where it does not apply.
type Field struct {
	Kind     FieldKind
	Division int
	Slot     int
}

// RegimentTypeField addresses a division regiment's unit-type selection.
func RegimentTypeField(division, slot int) Field {
	return Field{Kind: KindRegimentType, Division: division, Slot: slot}
}

// RegimentLevelField addresses a division regiment's veterancy level.
func RegimentLevelField(division, slot int) Field {
	return Field{Kind: KindRegimentLevel, Division: division, Slot: slot}
}

// ReserveTypeField addresses a reserve regiment's unit-type selection.
func ReserveTypeField(index int) Field {
	return Field{Kind: KindReserveType, Division: -1, Slot: index}
}

// ReserveLevelField addresses a reserve regiment's veterancy level.
func ReserveLevelField(index int) Field {
	return Field{Kind: KindReserveLevel, Division: -1, Slot: index}
}

// Baseline is the last-committed value of every tracked field.
type Baseline struct {
	selections map[Field]string
	values     map[Field]int
}

// NewBaseline returns an empty baseline: every selection reads as "no
// selection" and every numeric field as zero until snapshotted.
func NewBaseline() *Baseline {
	return &Baseline{
		selections: make(map[Field]string),
		values:     make(map[Field]int),
	}
}

// SetSelection records the committed value of a selection field.
func (b *Baseline) SetSelection(f Field, value string) {
	b.selections[f] = normalize(value)
}

// SetValue records the committed value of a numeric field.
func (b *Baseline) SetValue(f Field, value int) {
	b.values[f] = value
}

// SelectionDirty reports whether a selection field differs from its
// baseline. An empty string is the blank combobox sentinel and compares
// equal to "no selection", never to a literal value.
func (b *Baseline) SelectionDirty(f Field, current string) bool {
	return normalize(current) != b.selections[f]
}

// ValueDirty reports whether a numeric field differs from its baseline.
func (b *Baseline) ValueDirty(f Field, current int) bool {
	return current != b.values[f]
}

// Reset drops every recorded baseline.
func (b *Baseline) Reset() {
	b.selections = make(map[Field]string)
	b.values = make(map[Field]int)
}

func normalize(value string) string {
	// The blank combobox entry surfaces as "" or a padding space.
	if value == "" || value == " " {
		return ""
	}
	return value
}
