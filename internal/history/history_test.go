// internal/history/history_test.go
package history

import (
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestManager(t *testing.T) *Manager {
	t.Helper()
	m := NewManager(zerolog.Nop())
	require.NoError(t, m.Open(filepath.Join(t.TempDir(), "history.db")))
	t.Cleanup(func() { m.Close() })
	return m
}

func TestManager_RecordAndRecent(t *testing.T) {
	m := openTestManager(t)

	m.Record("/saves/slot1.json", "division/0/slot/2/type", "synthesize", map[string]any{"unitId": "hussar_01"})
	m.Record("/saves/slot1.json", "resources/cash", "resources", 9000)
	m.Record("/saves/slot1.json", "", "write", nil)

	edits, err := m.Recent(10)
	require.NoError(t, err)
	require.Len(t, edits, 3)

	// Newest first.
	assert.Equal(t, "write", edits[0].Action)
	assert.Equal(t, "resources", edits[1].Action)
	assert.Equal(t, "synthesize", edits[2].Action)
	assert.JSONEq(t, `{"unitId":"hussar_01"}`, string(edits[2].Payload))
	assert.Empty(t, edits[0].Payload)
}

func TestManager_RecentHonorsLimit(t *testing.T) {
	m := openTestManager(t)

	for i := 0; i < 5; i++ {
		m.Record("/saves/slot1.json", "resources/food", "resources", i)
	}

	edits, err := m.Recent(2)
	require.NoError(t, err)
	assert.Len(t, edits, 2)
	assert.JSONEq(t, `4`, string(edits[0].Payload))
}

func TestManager_DisabledIsNoOp(t *testing.T) {
	m := NewManager(zerolog.Nop())

	assert.False(t, m.Enabled())
	m.Record("/saves/slot1.json", "resources/cash", "resources", 1)

	edits, err := m.Recent(10)
	require.NoError(t, err)
	assert.Nil(t, edits)
	assert.NoError(t, m.Close())
}

func TestManager_OpenBadPath(t *testing.T) {
	m := NewManager(zerolog.Nop())
	err := m.Open(filepath.Join(t.TempDir(), "missing", "nested", "history.db"))
	assert.Error(t, err)
	assert.False(t, m.Enabled())
}
