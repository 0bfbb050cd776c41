// internal/dirty/dirty_test.go
package dirty

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectionDirty(t *testing.T) {
	tests := []struct {
		name     string
		baseline string
		current  string
		want     bool
	}{
		{name: "unchanged value", baseline: "line_infantry_01", current: "line_infantry_01", want: false},
		{name: "changed value", baseline: "line_infantry_01", current: "hussar_01", want: true},
		{name: "empty baseline vs empty current", baseline: "", current: "", want: false},
		{name: "blank sentinel equals empty baseline", baseline: "", current: " ", want: false},
		{name: "selection cleared", baseline: "line_infantry_01", current: "", want: true},
		{name: "selection filled", baseline: "", current: "line_infantry_01", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBaseline()
			f := RegimentTypeField(0, 0)
			b.SetSelection(f, tt.baseline)
			assert.Equal(t, tt.want, b.SelectionDirty(f, tt.current))
		})
	}
}

func TestSelectionDirty_UntrackedFieldReadsAsEmpty(t *testing.T) {
	b := NewBaseline()
	f := ReserveTypeField(3)

	assert.False(t, b.SelectionDirty(f, ""))
	assert.True(t, b.SelectionDirty(f, "hussar_01"))
}

func TestValueDirty(t *testing.T) {
	b := NewBaseline()
	f := RegimentLevelField(1, 2)
	b.SetValue(f, 3)

	assert.False(t, b.ValueDirty(f, 3))
	assert.True(t, b.ValueDirty(f, 4))
}

func TestFieldsAreIndependent(t *testing.T) {
	b := NewBaseline()
	b.SetSelection(RegimentTypeField(0, 1), "line_infantry_01")

	assert.False(t, b.SelectionDirty(RegimentTypeField(0, 1), "line_infantry_01"))
	assert.True(t, b.SelectionDirty(RegimentTypeField(0, 2), "line_infantry_01"),
		"a different slot has its own baseline")
	assert.True(t, b.SelectionDirty(ReserveTypeField(1), "line_infantry_01"),
		"reserve slots never collide with division slots")
}

func TestReset(t *testing.T) {
	b := NewBaseline()
	f := RegimentTypeField(0, 0)
	b.SetSelection(f, "line_infantry_01")
	b.Reset()

	assert.True(t, b.SelectionDirty(f, "line_infantry_01"))
	assert.False(t, b.SelectionDirty(f, ""))
}
